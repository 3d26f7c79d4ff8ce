package handler

import (
	"encoding/json"
	"net/http"

	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/delivery/http/middleware"
	"therapist-directory/internal/usecase"
	"therapist-directory/pkg/response"
	"therapist-directory/pkg/validator"
)

type PreferenceHandler struct {
	preferenceUsecase usecase.PreferenceUsecase
	validator         *validator.CustomValidator
}

func NewPreferenceHandler(preferenceUsecase usecase.PreferenceUsecase, validator *validator.CustomValidator) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUsecase: preferenceUsecase,
		validator:         validator,
	}
}

func (h *PreferenceHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientIDFromContext(r.Context())

	theme, err := h.preferenceUsecase.GetTheme(r.Context(), clientID)
	if err != nil {
		writePreferenceError(w, err, "Failed to get theme")
		return
	}

	response.Success(w, http.StatusOK, "Theme retrieved successfully", theme)
}

func (h *PreferenceHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientIDFromContext(r.Context())

	var req dto.UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	theme, err := h.preferenceUsecase.SetTheme(r.Context(), clientID, &req)
	if err != nil {
		writePreferenceError(w, err, "Failed to update theme")
		return
	}

	response.Success(w, http.StatusOK, "Theme updated successfully", theme)
}

func (h *PreferenceHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientIDFromContext(r.Context())

	theme, err := h.preferenceUsecase.ToggleTheme(r.Context(), clientID)
	if err != nil {
		writePreferenceError(w, err, "Failed to toggle theme")
		return
	}

	response.Success(w, http.StatusOK, "Theme toggled successfully", theme)
}

func writePreferenceError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrMissingClientID:
		response.Error(w, http.StatusBadRequest, "Missing client id", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
