package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/facilops/facil-backend-go/internal/domain/roster"
	"github.com/facilops/facil-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RosterHandler interface {
	GenerateSchedule(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	ClearSchedule(w http.ResponseWriter, r *http.Request)
	ConfirmPresence(w http.ResponseWriter, r *http.Request)
	MarkVacant(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.Service
}

func NewRosterHandler(rosterService roster.Service) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

func (h *rosterHandlerImpl) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req roster.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PostID = chi.URLParam(r, "id")

	result, err := h.rosterService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Monthly schedule generated successfully", result)
}

func (h *rosterHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	result, err := h.rosterService.GetSchedule(r.Context(), postID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *rosterHandlerImpl) ClearSchedule(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	if err := h.rosterService.ClearSchedule(r.Context(), postID, year, month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly schedule cleared successfully", nil)
}

func (h *rosterHandlerImpl) ConfirmPresence(w http.ResponseWriter, r *http.Request) {
	var req roster.ConfirmPresenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PostID = chi.URLParam(r, "id")

	result, err := h.rosterService.ConfirmPresence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Presence confirmed", result)
}

func (h *rosterHandlerImpl) MarkVacant(w http.ResponseWriter, r *http.Request) {
	var req roster.MarkVacantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PostID = chi.URLParam(r, "id")

	result, err := h.rosterService.MarkVacant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day marked vacant", result)
}

func (h *rosterHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	result, err := h.rosterService.GetCalendar(r.Context(), postID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// monthParams parses the required year and month query parameters, writing
// the error response itself when they are missing or malformed.
func monthParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "year must be a number between 2000 and 2100", nil)
		return 0, 0, false
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month must be a number between 1 and 12", nil)
		return 0, 0, false
	}
	return year, month, true
}
