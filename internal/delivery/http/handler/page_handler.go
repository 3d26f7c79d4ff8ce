package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/delivery/http/middleware"
	"therapist-directory/internal/domain/entity"
	"therapist-directory/internal/usecase"
	"therapist-directory/pkg/validator"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var filterParams = []string{"search", "city", "gender", "experience", "fee", "mode"}

var pageTemplate = template.Must(template.New("directory.html").ParseFS(templateFS, "templates/directory.html"))

type directoryPage struct {
	Theme       string
	Dark        bool
	Filters     *dto.SearchTherapistRequest
	Cities      []string
	Experiences []entity.ExperienceBand
	Fees        []entity.FeeBand
	Modes       []entity.Mode
	Genders     []string
	ReturnURL   string
	Result      *dto.TherapistListResponse
	Error       string
}

// PageHandler renders the browsable directory page.
type PageHandler struct {
	directoryUsecase  usecase.DirectoryUsecase
	preferenceUsecase usecase.PreferenceUsecase
	validator         *validator.CustomValidator
	log               *logrus.Logger
}

func NewPageHandler(
	directoryUsecase usecase.DirectoryUsecase,
	preferenceUsecase usecase.PreferenceUsecase,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *PageHandler {
	return &PageHandler{
		directoryUsecase:  directoryUsecase,
		preferenceUsecase: preferenceUsecase,
		validator:         validator,
		log:               log,
	}
}

func (h *PageHandler) Directory(w http.ResponseWriter, r *http.Request) {
	req := SearchRequestFromQuery(r.URL.Query())
	page := &directoryPage{
		Theme:       string(entity.ThemeLight),
		Filters:     req,
		Experiences: entity.ExperienceBands,
		Fees:        entity.FeeBands,
		Modes:       entity.Modes,
		ReturnURL:   returnURL(r.URL.Query()),
	}

	clientID, _ := middleware.GetClientIDFromContext(r.Context())
	if theme, err := h.preferenceUsecase.GetTheme(r.Context(), clientID); err == nil {
		page.Theme = theme.Theme
	}
	page.Dark = entity.ParseTheme(page.Theme).IsDark()

	status := http.StatusOK
	if err := h.validator.Validate(req); err != nil {
		status = http.StatusBadRequest
		page.Error = "Invalid filters: " + joinErrors(h.validator.FormatValidationErrors(err))
	} else if result, err := h.directoryUsecase.Search(r.Context(), req); err != nil {
		status, page.Error = pageError(err)
	} else {
		page.Result = result
	}

	if directory, err := h.directoryUsecase.Snapshot(); err == nil {
		page.Cities = directory.Cities()
		page.Genders = directory.Genders()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, page); err != nil {
		h.log.Warnf("Failed to render directory page: %+v", err)
	}
}

// ToggleTheme flips the stored theme and sends the browser back to the page.
func (h *PageHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientIDFromContext(r.Context())
	if _, err := h.preferenceUsecase.ToggleTheme(r.Context(), clientID); err != nil {
		h.log.Warnf("Failed to toggle theme: %+v", err)
	}

	target := "/"
	if q := r.FormValue("return"); strings.HasPrefix(q, "/?") && !strings.HasPrefix(q, "//") {
		target = q
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// returnURL rebuilds the page URL with only the filter parameters.
func returnURL(q url.Values) string {
	kept := url.Values{}
	for _, key := range filterParams {
		if v := q.Get(key); v != "" {
			kept.Set(key, v)
		}
	}
	if len(kept) == 0 {
		return "/"
	}
	return "/?" + kept.Encode()
}

func pageError(err error) (int, string) {
	var datasetErr *usecase.DatasetError
	switch {
	case errors.As(err, &datasetErr):
		return http.StatusServiceUnavailable, datasetErr.Message()
	case errors.Is(err, usecase.ErrDirectoryNotLoaded):
		return http.StatusServiceUnavailable, "Directory is still loading"
	default:
		return http.StatusInternalServerError, "Failed to search therapists"
	}
}

func joinErrors(errs map[string]string) string {
	msgs := make([]string, 0, len(errs))
	for _, field := range filterParams {
		if msg, ok := errs[field]; ok {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, "; ")
}
