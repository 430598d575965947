package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"nat.service/internal/core"
	"nat.service/internal/core/model"
)

type TaskHandler struct {
	Service *core.TaskService
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.Service.Create(r.Context(), mux.Vars(r)["employeeId"], req.Title, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Service.ListByEmployee(r.Context(), mux.Vars(r)["employeeId"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.Service.Update(r.Context(), mux.Vars(r)["taskId"], req.Title, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	task, err := h.Service.Toggle(r.Context(), mux.Vars(r)["taskId"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["taskId"]); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
