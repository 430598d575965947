package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"nat.service/internal/core"
	"nat.service/internal/core/model"
	"nat.service/internal/core/session"
)

// AttendanceHandler exposes the session engine and the read-side views.
type AttendanceHandler struct {
	Engine     *session.Engine
	Attendance *core.AttendanceService
}

type checkInRequest struct {
	WorkDescription string `json:"workDescription"`
}

type checkOutRequest struct {
	CompletionNotes string `json:"completionNotes"`
}

type sessionStateResponse struct {
	State  session.State           `json:"state"`
	Record *model.AttendanceRecord `json:"record,omitempty"`
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.Engine.CheckIn(r.Context(), mux.Vars(r)["employeeId"], req.WorkDescription)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req checkOutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.Engine.CheckOut(r.Context(), mux.Vars(r)["employeeId"], req.CompletionNotes)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// Today reports the current session state for the swipe screen.
func (h *AttendanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	state, rec, err := h.Engine.CurrentState(r.Context(), mux.Vars(r)["employeeId"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sessionStateResponse{State: state, Record: rec})
}

// History feeds the calendar tab.
func (h *AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.Attendance.History(r.Context(), mux.Vars(r)["employeeId"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}
