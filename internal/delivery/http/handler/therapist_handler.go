package handler

import (
	"errors"
	"net/http"
	"net/url"

	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/usecase"
	"therapist-directory/pkg/response"
	"therapist-directory/pkg/validator"
)

type TherapistHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewTherapistHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *TherapistHandler {
	return &TherapistHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *TherapistHandler) SearchTherapists(w http.ResponseWriter, r *http.Request) {
	req := SearchRequestFromQuery(r.URL.Query())

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	therapists, err := h.directoryUsecase.Search(r.Context(), req)
	if err != nil {
		writeDirectoryError(w, err, "Failed to search therapists")
		return
	}

	response.Success(w, http.StatusOK, "Therapists retrieved successfully", therapists)
}

func (h *TherapistHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.directoryUsecase.GetCities(r.Context())
	if err != nil {
		writeDirectoryError(w, err, "Failed to get cities")
		return
	}

	response.Success(w, http.StatusOK, "Cities retrieved successfully", cities)
}

func (h *TherapistHandler) GetDirectoryInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.directoryUsecase.GetInfo(r.Context())
	if err != nil {
		writeDirectoryError(w, err, "Failed to get directory info")
		return
	}

	response.Success(w, http.StatusOK, "Directory info retrieved successfully", info)
}

// SearchRequestFromQuery reads the filter parameters shared by the API and the page.
func SearchRequestFromQuery(q url.Values) *dto.SearchTherapistRequest {
	return &dto.SearchTherapistRequest{
		Search:     q.Get("search"),
		City:       q.Get("city"),
		Gender:     q.Get("gender"),
		Experience: q.Get("experience"),
		Fee:        q.Get("fee"),
		Mode:       q.Get("mode"),
	}
}

func writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	var datasetErr *usecase.DatasetError
	switch {
	case errors.As(err, &datasetErr):
		response.ServiceUnavailable(w, datasetErr.Message())
	case errors.Is(err, usecase.ErrDirectoryNotLoaded):
		response.ServiceUnavailable(w, "Directory is still loading")
	default:
		response.InternalServerError(w, fallback)
	}
}
