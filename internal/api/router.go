package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"nat.service/internal/api/handler"
	"nat.service/internal/core"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Attendance *handler.AttendanceHandler
	Employees  *handler.EmployeeHandler
	Tasks      *handler.TaskHandler
	Admin      *handler.AdminHandler
	Auth       *core.AdminAuth
}

// NewRouter sets up the gorilla/mux router and defines all API routes.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is operational."))
	}).Methods(http.MethodGet)

	// Employee surface
	api.HandleFunc("/employees", h.Employees.Onboard).Methods(http.MethodPost)
	api.HandleFunc("/employees/{employeeId}", h.Employees.Get).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}", h.Employees.Update).Methods(http.MethodPut)

	api.HandleFunc("/employees/{employeeId}/attendance", h.Attendance.History).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/attendance/today", h.Attendance.Today).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/checkin", h.Attendance.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/employees/{employeeId}/checkout", h.Attendance.CheckOut).Methods(http.MethodPost)

	api.HandleFunc("/employees/{employeeId}/reset-requests", h.Admin.FileResetRequest).Methods(http.MethodPost)

	api.HandleFunc("/employees/{employeeId}/tasks", h.Tasks.Create).Methods(http.MethodPost)
	api.HandleFunc("/employees/{employeeId}/tasks", h.Tasks.List).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskId}", h.Tasks.Update).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{taskId}/toggle", h.Tasks.Toggle).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{taskId}", h.Tasks.Delete).Methods(http.MethodDelete)

	// Admin surface; everything behind the session token except login.
	api.HandleFunc("/admin/login", h.Admin.Login).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminAuthMiddleware(h.Auth))
	admin.HandleFunc("/logout", h.Admin.Logout).Methods(http.MethodPost)
	admin.HandleFunc("/employees", h.Admin.ListEmployees).Methods(http.MethodGet)
	admin.HandleFunc("/employees/{employeeId}/toggle", h.Admin.ToggleEmployee).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{employeeId}", h.Admin.DeleteEmployee).Methods(http.MethodDelete)
	admin.HandleFunc("/attendance", h.Admin.AttendanceByDate).Methods(http.MethodGet)
	admin.HandleFunc("/reset-requests", h.Admin.ListResetRequests).Methods(http.MethodGet)
	admin.HandleFunc("/reset-requests/{requestId}/process", h.Admin.ProcessResetRequest).Methods(http.MethodPost)
	admin.HandleFunc("/notes", h.Admin.CreateNote).Methods(http.MethodPost)
	admin.HandleFunc("/notes", h.Admin.ListNotes).Methods(http.MethodGet)
	admin.HandleFunc("/notes/{noteId}", h.Admin.UpdateNote).Methods(http.MethodPut)
	admin.HandleFunc("/notes/{noteId}", h.Admin.DeleteNote).Methods(http.MethodDelete)
	admin.HandleFunc("/exports", h.Admin.Export).Methods(http.MethodGet)

	return r
}

// AdminAuthMiddleware rejects requests without a live admin session token.
func AdminAuthMiddleware(auth *core.AdminAuth) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" || !auth.Validate(token) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"admin session required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
