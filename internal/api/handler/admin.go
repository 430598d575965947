package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gorilla/mux"

	"nat.service/internal/core"
	"nat.service/internal/core/model"
	"nat.service/internal/core/session"
	"nat.service/internal/report"
)

// AdminHandler serves the dashboard: login, employee management, attendance
// views, reset requests, notes and report exports.
type AdminHandler struct {
	Auth       *core.AdminAuth
	Employees  *core.EmployeeService
	Attendance *core.AttendanceService
	Admin      *core.AdminService
	Clock      session.Clock
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.Auth.Login(req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		h.Auth.Logout(token)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Employees.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	respondJSON(w, http.StatusOK, employees)
}

type toggleRequest struct {
	IsActive bool `json:"isActive"`
}

func (h *AdminHandler) ToggleEmployee(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Employees.SetActive(r.Context(), mux.Vars(r)["employeeId"], req.IsActive); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Employees.Delete(r.Context(), mux.Vars(r)["employeeId"]); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AttendanceByDate lists one IST day for the attendance tab. Defaults to
// today when no date is given.
func (h *AdminHandler) AttendanceByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = session.DayKey(h.Clock.Now())
	}
	if !dayPattern.MatchString(date) {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "date must be yyyy-MM-dd"})
		return
	}

	records, err := h.Attendance.ByDate(r.Context(), date)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if records == nil {
		records = []model.AttendanceWithEmployee{}
	}
	respondJSON(w, http.StatusOK, records)
}

type fileResetRequest struct {
	Reason string `json:"reason"`
}

// FileResetRequest is the employee-side route; processing stays admin-only.
func (h *AdminHandler) FileResetRequest(w http.ResponseWriter, r *http.Request) {
	var req fileResetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.Admin.FileResetRequest(r.Context(), mux.Vars(r)["employeeId"], req.Reason)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) ListResetRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Admin.ListResetRequests(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if requests == nil {
		requests = []model.ResetRequest{}
	}
	respondJSON(w, http.StatusOK, requests)
}

type processResetRequest struct {
	Status        model.ResetRequestStatus `json:"status"`
	AdminResponse string                   `json:"adminResponse"`
}

func (h *AdminHandler) ProcessResetRequest(w http.ResponseWriter, r *http.Request) {
	var req processResetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.Admin.ProcessResetRequest(r.Context(), mux.Vars(r)["requestId"], req.Status, req.AdminResponse)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

type noteRequest struct {
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Priority    model.NotePriority `json:"priority"`
	IsImportant bool               `json:"isImportant"`
}

func (h *AdminHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	note, err := h.Admin.CreateNote(r.Context(), core.NoteInput{
		Title: req.Title, Content: req.Content,
		Priority: req.Priority, IsImportant: req.IsImportant,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (h *AdminHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Admin.ListNotes(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if notes == nil {
		notes = []model.AdminNote{}
	}
	respondJSON(w, http.StatusOK, notes)
}

func (h *AdminHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	note, err := h.Admin.UpdateNote(r.Context(), mux.Vars(r)["noteId"], core.NoteInput{
		Title: req.Title, Content: req.Content,
		Priority: req.Priority, IsImportant: req.IsImportant,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *AdminHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteNote(r.Context(), mux.Vars(r)["noteId"]); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams an attendance report for a date range as PDF or Excel.
// period=daily|weekly|monthly derives the range from today; period=custom
// takes explicit start/end.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := report.Format(q.Get("type"))
	if format != report.FormatPDF && format != report.FormatExcel {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "type must be pdf or excel"})
		return
	}

	start, end, ok := h.exportRange(q.Get("period"), q.Get("start"), q.Get("end"))
	if !ok {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid export period"})
		return
	}

	records, err := h.Attendance.ByDateRange(r.Context(), start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}

	rep := report.Build(records, start, end, h.Clock.Now())
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.FileName(format)+`"`)

	if format == report.FormatExcel {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = report.WriteExcel(w, rep)
	} else {
		w.Header().Set("Content-Type", "application/pdf")
		err = report.WritePDF(w, rep)
	}
	if err != nil {
		respondError(w, r, err)
	}
}

func (h *AdminHandler) exportRange(period, start, end string) (string, string, bool) {
	today := h.Clock.Now()
	switch period {
	case "", "daily":
		day := session.DayKey(today)
		return day, day, true
	case "weekly":
		return session.DayKey(today.AddDate(0, 0, -7)), session.DayKey(today), true
	case "monthly":
		return session.DayKey(today.AddDate(0, -1, 0)), session.DayKey(today), true
	case "custom":
		if !dayPattern.MatchString(start) || !dayPattern.MatchString(end) || strings.Compare(start, end) > 0 {
			return "", "", false
		}
		return start, end, true
	default:
		return "", "", false
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}
	return token
}
