package config

const (
	// Configuration file paths
	ConfigPathEventCards      = "configs/events/"
	ConfigPathEventCardSchema = "configs/schemas/event_card.schema.json"
)
