package dto

import "time"

// Request DTOs

// SearchTherapistRequest carries the filter selections. Every field is optional.
type SearchTherapistRequest struct {
	Search     string `json:"search" validate:"omitempty,max=200"`
	City       string `json:"city" validate:"omitempty"`
	Gender     string `json:"gender" validate:"omitempty"`
	Experience string `json:"experience" validate:"omitempty,oneof=0-5 5-10 10-15 15+"`
	Fee        string `json:"fee" validate:"omitempty,oneof=under-2000 2000-4000 4000-6000 above-6000"`
	Mode       string `json:"mode" validate:"omitempty,oneof=In-person Online Both"`
}

// Response DTOs

type TherapistCardResponse struct {
	Name       string   `json:"name"`
	Rating     float64  `json:"rating,omitempty"`
	Stars      string   `json:"stars,omitempty"`
	City       string   `json:"city"`
	Fee        string   `json:"fee"`
	Experience string   `json:"experience"`
	Gender     string   `json:"gender"`
	Modes      string   `json:"modes,omitempty"`
	Tags       []string `json:"tags"`
	ProfileURL string   `json:"profile_url,omitempty"`
}

type TherapistListResponse struct {
	Therapists []TherapistCardResponse `json:"therapists"`
	Total      int                     `json:"total"`
	Message    string                  `json:"message,omitempty"`
}

type CityListResponse struct {
	Cities []string `json:"cities"`
	Total  int      `json:"total"`
}

type DirectoryInfoResponse struct {
	Source   string    `json:"source"`
	Total    int       `json:"total"`
	LoadedAt time.Time `json:"loaded_at"`
}
