package discord

// Log messages
const (
	LogMsgBotRunning = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgBotReady   = "Bot is ready"
)

// Friendly message constants for Discord responses
const (
	MsgEventNotFound   = "🔍 **Event Not Found**\nDouble-check the event ID."
	MsgInvalidOdds     = "📉 **Invalid Odds**\nAmerican odds are 0 (pick'em) or at least ±100."
	MsgAPIUnavailable  = "🛠️ **Scoring service unavailable**\nTry again in a minute."
	MsgNoEntries       = "Nobody has scored on this event yet."
	MsgGenericError    = "❌ Something went wrong."
	MsgPong            = "Pong! 🏓"
	MsgMissingArgument = "missing required %s argument"
)

// Embed colors
const (
	ColorOdds        = 0x3498db // Blue
	ColorPotential   = 0xf1c40f // Yellow
	ColorLeaderboard = 0x1abc9c // Teal
)

// Footer for user-facing embeds
const FooterPickem = "Pick'em"
