package converter

import (
	"strings"

	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/domain/entity"
	"therapist-directory/internal/service"
)

const (
	UnknownCity      = "Unknown"
	NotAvailable     = "N/A"
	DefaultExpertise = "General Counseling"
	MaxCardTags      = 3
	NoResultsMessage = "No matching therapists found."
)

// TherapistToCard converts a Therapist entity to its card DTO.
// rating may be nil, in which case the card carries no rating.
func TherapistToCard(t *entity.Therapist, rating service.RatingService) *dto.TherapistCardResponse {
	if t == nil {
		return nil
	}

	card := &dto.TherapistCardResponse{
		Name:       t.Name,
		City:       orDefault(t.City, UnknownCity),
		Fee:        "Rs. " + NotAvailable,
		Experience: "0 yrs",
		Gender:     orDefault(t.Gender, NotAvailable),
		Modes:      t.Modes,
		Tags:       ExpertiseTags(t.Expertise),
		ProfileURL: t.ProfileURL,
	}
	if t.FeeText != "" {
		card.Fee = "Rs. " + t.FeeText
	}
	if t.ExperienceText != "" {
		card.Experience = t.ExperienceText + " yrs"
	}
	if rating != nil {
		r := rating.Next()
		card.Rating = r.Value
		card.Stars = r.Stars
	}

	return card
}

// TherapistsToCards converts a slice of Therapist entities to card DTOs
func TherapistsToCards(therapists []entity.Therapist, rating service.RatingService) []dto.TherapistCardResponse {
	cards := make([]dto.TherapistCardResponse, len(therapists))
	for i := range therapists {
		cards[i] = *TherapistToCard(&therapists[i], rating)
	}
	return cards
}

// TherapistsToListResponse wraps cards in the list DTO, adding the empty-result message.
func TherapistsToListResponse(therapists []entity.Therapist, rating service.RatingService) *dto.TherapistListResponse {
	resp := &dto.TherapistListResponse{
		Therapists: TherapistsToCards(therapists, rating),
		Total:      len(therapists),
	}
	if resp.Total == 0 {
		resp.Message = NoResultsMessage
	}
	return resp
}

// ExpertiseTags splits the ';'-separated expertise text into at most three tags.
func ExpertiseTags(expertise string) []string {
	if strings.TrimSpace(expertise) == "" {
		expertise = DefaultExpertise
	}

	parts := strings.Split(expertise, ";")
	if len(parts) > MaxCardTags {
		parts = parts[:MaxCardTags]
	}

	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// SearchRequestToCriteria maps the delivery request onto domain criteria.
func SearchRequestToCriteria(req *dto.SearchTherapistRequest) entity.Criteria {
	if req == nil {
		return entity.Criteria{}
	}
	return entity.Criteria{
		SearchText: req.Search,
		City:       req.City,
		Gender:     req.Gender,
		Experience: entity.ExperienceBand(req.Experience),
		Fee:        entity.FeeBand(req.Fee),
		Mode:       entity.Mode(req.Mode),
	}
}

// CriteriaToSearchRequest is the inverse of SearchRequestToCriteria, used to refill forms.
func CriteriaToSearchRequest(c entity.Criteria) *dto.SearchTherapistRequest {
	return &dto.SearchTherapistRequest{
		Search:     c.SearchText,
		City:       c.City,
		Gender:     c.Gender,
		Experience: string(c.Experience),
		Fee:        string(c.Fee),
		Mode:       string(c.Mode),
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
