package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Pickem_Go/internal/contest"
	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/logger"
)

// SetStatusRequest moves an event to its next status
type SetStatusRequest struct {
	Status domain.EventStatus `json:"status" validate:"required,oneof=open locked complete"`
}

// SubmitPicksRequest replaces a user's entry for an event
type SubmitPicksRequest struct {
	UserID string              `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Picks  []contest.PickInput `json:"picks" validate:"required,min=1,max=50,dive"`
}

// RecordResultRequest records the winner of a match
type RecordResultRequest struct {
	Winner     domain.Side       `json:"winner" validate:"required,side"`
	FinishType domain.FinishType `json:"finish_type,omitempty" validate:"omitempty,finish_type"`
}

// ContestHandler serves the event, pick and result endpoints
type ContestHandler struct {
	svc contest.Service
}

// NewContestHandler creates a contest handler
func NewContestHandler(svc contest.Service) *ContestHandler {
	return &ContestHandler{svc: svc}
}

// HandleCreateEvent creates an event card
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param request body contest.NewEvent true "Event card"
// @Success 201 {object} domain.Event
// @Failure 400 {object} ValidationErrorResponse
// @Router /events [post]
func (h *ContestHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req contest.NewEvent
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateEvent); err != nil {
		return
	}

	evt, err := h.svc.CreateEvent(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, OpCreateEvent, err)
		return
	}

	respondJSON(w, http.StatusCreated, evt)
}

// HandleListEvents lists recent events
// @Summary List events
// @Tags events
// @Produce json
// @Param status query string false "open, locked or complete"
// @Param limit query int false "Maximum events (default 20, max 100)"
// @Success 200 {array} domain.Event
// @Failure 400 {object} ErrorResponse
// @Router /events [get]
func (h *ContestHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetIntQueryParam(r, w, "limit", 0)
	if !ok {
		return
	}
	status := domain.EventStatus(GetOptionalQueryParam(r, "status", ""))

	events, err := h.svc.ListEvents(r.Context(), status, limit)
	if err != nil {
		respondServiceError(w, r, OpListEvents, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}

	respondJSON(w, http.StatusOK, events)
}

// HandleGetEvent returns an event with its matches
// @Summary Get event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} ErrorResponse
// @Router /events/{eventID} [get]
func (h *ContestHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetUUIDPathParam(r, w, "eventID")
	if !ok {
		return
	}

	evt, err := h.svc.GetEvent(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, r, OpGetEvent, err)
		return
	}

	respondJSON(w, http.StatusOK, evt)
}

// HandleSetEventStatus locks or completes an event
// @Summary Set event status
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param request body SetStatusRequest true "Next status"
// @Success 200 {object} domain.Event
// @Failure 409 {object} ErrorResponse
// @Router /events/{eventID}/status [post]
func (h *ContestHandler) HandleSetEventStatus(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetUUIDPathParam(r, w, "eventID")
	if !ok {
		return
	}
	var req SetStatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetEventStatus); err != nil {
		return
	}

	evt, err := h.svc.SetEventStatus(r.Context(), eventID, req.Status)
	if err != nil {
		respondServiceError(w, r, OpSetEventStatus, err)
		return
	}

	respondJSON(w, http.StatusOK, evt)
}

// HandleSubmitPicks stores a user's entry
// @Summary Submit picks
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param request body SubmitPicksRequest true "Entry"
// @Success 201 {array} domain.Pick
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /events/{eventID}/picks [post]
func (h *ContestHandler) HandleSubmitPicks(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetUUIDPathParam(r, w, "eventID")
	if !ok {
		return
	}
	var req SubmitPicksRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSubmitPicks); err != nil {
		return
	}

	picks, err := h.svc.SubmitPicks(r.Context(), eventID, req.UserID, req.Picks)
	if err != nil {
		respondServiceError(w, r, OpSubmitPicks, err)
		return
	}

	logger.FromContext(r.Context()).Info("Entry accepted", "event_id", eventID, "user_id", req.UserID, "picks", len(picks))
	respondJSON(w, http.StatusCreated, picks)
}

// HandleRecordResult records a match result and rescores its picks
// @Summary Record match result
// @Tags events
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID"
// @Param request body RecordResultRequest true "Result"
// @Success 200 {object} domain.Match
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /matches/{matchID}/result [post]
func (h *ContestHandler) HandleRecordResult(w http.ResponseWriter, r *http.Request) {
	matchID, ok := GetUUIDPathParam(r, w, "matchID")
	if !ok {
		return
	}
	var req RecordResultRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRecordResult); err != nil {
		return
	}

	m, err := h.svc.RecordResult(r.Context(), matchID, req.Winner, req.FinishType)
	if err != nil {
		respondServiceError(w, r, OpRecordResult, err)
		return
	}

	respondJSON(w, http.StatusOK, m)
}

// HandleEventPotential returns the point range of a match picks card
// @Summary Event potential
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.EventPotential
// @Failure 400 {object} ErrorResponse
// @Router /events/{eventID}/potential [get]
func (h *ContestHandler) HandleEventPotential(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetUUIDPathParam(r, w, "eventID")
	if !ok {
		return
	}

	p, err := h.svc.GetEventPotential(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, r, OpEventPotential, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// HandleEntryPotential returns what a user has banked and can still win
// @Summary Entry potential
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Param userID path string true "User ID"
// @Success 200 {object} domain.EntryPotential
// @Failure 404 {object} ErrorResponse
// @Router /events/{eventID}/entries/{userID}/potential [get]
func (h *ContestHandler) HandleEntryPotential(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetUUIDPathParam(r, w, "eventID")
	if !ok {
		return
	}
	userID := chi.URLParam(r, "userID")

	p, err := h.svc.GetEntryPotential(r.Context(), eventID, userID)
	if err != nil {
		respondServiceError(w, r, OpEntryPotential, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// HandleLeaderboard ranks an event's entries
// @Summary Event leaderboard
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Param limit query int false "Maximum entries (default 10, max 100)"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 404 {object} ErrorResponse
// @Router /events/{eventID}/leaderboard [get]
func (h *ContestHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetUUIDPathParam(r, w, "eventID")
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit", domain.DefaultLeaderboardLimit)
	if !ok {
		return
	}

	entries, err := h.svc.GetLeaderboard(r.Context(), eventID, limit)
	if err != nil {
		respondServiceError(w, r, OpGetLeaderboard, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}

	respondJSON(w, http.StatusOK, entries)
}
