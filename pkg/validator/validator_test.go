package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bandRequest struct {
	Experience string `json:"experience" validate:"omitempty,oneof=0-5 5-10 10-15 15+"`
	Theme      string `json:"theme" validate:"required,oneof=light dark"`
	Search     string `json:"search" validate:"omitempty,max=5"`
}

func TestValidateAcceptsEnumerations(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&bandRequest{Experience: "15+", Theme: "dark"}))
	assert.NoError(t, v.Validate(&bandRequest{Theme: "light"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&bandRequest{Experience: "20+", Search: "too long"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "experience must be one of: 0-5, 5-10, 10-15, 15+", errs["experience"])
	assert.Equal(t, "theme is required", errs["theme"])
	assert.Equal(t, "search must be at most 5 characters", errs["search"])
}
