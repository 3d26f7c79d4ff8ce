package converter

import (
	"testing"

	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/domain/entity"
	"therapist-directory/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTherapistToCard(t *testing.T) {
	therapist := &entity.Therapist{
		Name:            "Ayesha Khan",
		City:            "Lahore",
		Gender:          "Female",
		ExperienceYears: 6.5,
		ExperienceText:  "6.5",
		FeeAmount:       decimal.NewFromInt(1500),
		FeeText:         "1500",
		Modes:           "In-person, Online",
		Expertise:       "Anxiety; Depression ;OCD; Grief",
		ProfileURL:      "https://example.com/ayesha",
	}

	card := TherapistToCard(therapist, service.NewFixedRatingService(4.3))
	require.NotNil(t, card)

	assert.Equal(t, "Ayesha Khan", card.Name)
	assert.Equal(t, "Lahore", card.City)
	assert.Equal(t, "Rs. 1500", card.Fee)
	assert.Equal(t, "6.5 yrs", card.Experience)
	assert.Equal(t, "Female", card.Gender)
	assert.Equal(t, []string{"Anxiety", "Depression", "OCD"}, card.Tags)
	assert.Equal(t, 4.3, card.Rating)
	assert.Equal(t, "⭐⭐⭐⭐", card.Stars)
	assert.Equal(t, "https://example.com/ayesha", card.ProfileURL)
}

func TestTherapistToCardFallbacks(t *testing.T) {
	card := TherapistToCard(&entity.Therapist{Name: "Hina"}, nil)

	assert.Equal(t, UnknownCity, card.City)
	assert.Equal(t, "Rs. N/A", card.Fee)
	assert.Equal(t, "0 yrs", card.Experience)
	assert.Equal(t, NotAvailable, card.Gender)
	assert.Equal(t, []string{DefaultExpertise}, card.Tags)
	assert.Empty(t, card.ProfileURL)
	assert.Zero(t, card.Rating)
	assert.Empty(t, card.Stars)

	assert.Nil(t, TherapistToCard(nil, nil))
}

func TestTherapistToCardKeepsCellText(t *testing.T) {
	tests := []struct {
		name           string
		feeText        string
		experienceText string
		wantFee        string
		wantExperience string
	}{
		{name: "thousands separator", feeText: "2,500", experienceText: "10", wantFee: "Rs. 2,500", wantExperience: "10 yrs"},
		{name: "trailing zeros", feeText: "1500.00", experienceText: "3", wantFee: "Rs. 1500.00", wantExperience: "3 yrs"},
		{name: "non numeric", feeText: "Rs 3000", experienceText: "N/A", wantFee: "Rs. Rs 3000", wantExperience: "N/A yrs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := TherapistToCard(&entity.Therapist{
				Name:           "A",
				FeeText:        tt.feeText,
				ExperienceText: tt.experienceText,
			}, nil)

			assert.Equal(t, tt.wantFee, card.Fee)
			assert.Equal(t, tt.wantExperience, card.Experience)
		})
	}
}

func TestTherapistsToListResponse(t *testing.T) {
	resp := TherapistsToListResponse([]entity.Therapist{{Name: "A"}, {Name: "B"}}, nil)
	assert.Equal(t, 2, resp.Total)
	assert.Empty(t, resp.Message)
	assert.Equal(t, "A", resp.Therapists[0].Name)
	assert.Equal(t, "B", resp.Therapists[1].Name)

	empty := TherapistsToListResponse(nil, nil)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, NoResultsMessage, empty.Message)
	assert.NotNil(t, empty.Therapists)
}

func TestSearchRequestCriteriaRoundTrip(t *testing.T) {
	req := &dto.SearchTherapistRequest{
		Search:     "anxiety",
		City:       "Lahore",
		Gender:     "Female",
		Experience: "5-10",
		Fee:        "under-2000",
		Mode:       "Both",
	}

	criteria := SearchRequestToCriteria(req)
	assert.Equal(t, entity.Experience5To10, criteria.Experience)
	assert.Equal(t, entity.FeeUnder2000, criteria.Fee)
	assert.Equal(t, entity.ModeBoth, criteria.Mode)
	assert.Equal(t, req, CriteriaToSearchRequest(criteria))

	assert.True(t, SearchRequestToCriteria(nil).IsEmpty())
}
