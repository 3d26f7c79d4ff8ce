package http

import (
	"net/http"

	"therapist-directory/internal/delivery/http/handler"
	"therapist-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	therapistHandler  *handler.TherapistHandler
	preferenceHandler *handler.PreferenceHandler
	pageHandler       *handler.PageHandler
	clientMiddleware  *middleware.ClientMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	therapistHandler *handler.TherapistHandler,
	preferenceHandler *handler.PreferenceHandler,
	pageHandler *handler.PageHandler,
	clientMiddleware *middleware.ClientMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		therapistHandler:  therapistHandler,
		preferenceHandler: preferenceHandler,
		pageHandler:       pageHandler,
		clientMiddleware:  clientMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory (public, read-only)
	api.HandleFunc("/therapists", r.therapistHandler.SearchTherapists).Methods(http.MethodGet)
	api.HandleFunc("/therapists/cities", r.therapistHandler.GetCities).Methods(http.MethodGet)
	api.HandleFunc("/directory", r.therapistHandler.GetDirectoryInfo).Methods(http.MethodGet)

	// Display preferences, keyed by anonymous client id
	preferences := api.PathPrefix("/preferences").Subrouter()
	preferences.Use(r.clientMiddleware.Identify)
	preferences.HandleFunc("/theme", r.preferenceHandler.GetTheme).Methods(http.MethodGet)
	preferences.HandleFunc("/theme", r.preferenceHandler.UpdateTheme).Methods(http.MethodPut)
	preferences.HandleFunc("/theme/toggle", r.preferenceHandler.ToggleTheme).Methods(http.MethodPost)

	// Browser page
	page := r.router.PathPrefix("/").Subrouter()
	page.Use(r.clientMiddleware.Identify)
	page.HandleFunc("/", r.pageHandler.Directory).Methods(http.MethodGet)
	page.HandleFunc("/theme/toggle", r.pageHandler.ToggleTheme).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
