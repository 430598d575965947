package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"nat.service/internal/core"
	"nat.service/internal/core/model"
)

type EmployeeHandler struct {
	Service *core.EmployeeService
}

type onboardRequest struct {
	Name            string       `json:"name"`
	Gender          model.Gender `json:"gender"`
	JobRole         string       `json:"jobRole"`
	ProfilePhotoURL string       `json:"profilePhotoUrl"`
}

func (h *EmployeeHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	emp, err := h.Service.Onboard(r.Context(), core.OnboardInput{
		Name:            req.Name,
		Gender:          req.Gender,
		JobRole:         req.JobRole,
		ProfilePhotoURL: req.ProfilePhotoURL,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, emp)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Get(r.Context(), mux.Vars(r)["employeeId"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, emp)
}

type updateProfileRequest struct {
	Name            *string       `json:"name"`
	Gender          *model.Gender `json:"gender"`
	JobRole         *string       `json:"jobRole"`
	ProfilePhotoURL *string       `json:"profilePhotoUrl"`
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	emp, err := h.Service.UpdateProfile(r.Context(), mux.Vars(r)["employeeId"], core.UpdateProfileInput{
		Name:            req.Name,
		Gender:          req.Gender,
		JobRole:         req.JobRole,
		ProfilePhotoURL: req.ProfilePhotoURL,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, emp)
}
