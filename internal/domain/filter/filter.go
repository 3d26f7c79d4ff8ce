// Package filter narrows a therapist list by a set of independent criteria.
package filter

import (
	"strings"

	"therapist-directory/internal/domain/entity"
)

// Apply returns the therapists matching every set criterion, in input order.
// The input slice is never modified. With no criteria set it returns a copy
// of the whole input.
func Apply(therapists []entity.Therapist, c entity.Criteria) []entity.Therapist {
	search := c.NormalizedSearch()

	result := make([]entity.Therapist, 0, len(therapists))
	for _, t := range therapists {
		if matches(t, c, search) {
			result = append(result, t)
		}
	}
	return result
}

// Matches reports whether a single therapist satisfies the criteria.
func Matches(t entity.Therapist, c entity.Criteria) bool {
	return matches(t, c, c.NormalizedSearch())
}

func matches(t entity.Therapist, c entity.Criteria, search string) bool {
	if search != "" && !matchesSearch(t, search) {
		return false
	}
	if c.City != "" && t.City != c.City {
		return false
	}
	if c.Gender != "" && t.Gender != c.Gender {
		return false
	}
	if c.Experience != "" && !c.Experience.Contains(t.ExperienceYears) {
		return false
	}
	if c.Fee != "" && !c.Fee.Contains(t.FeeAmount) {
		return false
	}
	if c.Mode != "" && !c.Mode.Offered(t.Modes) {
		return false
	}
	return true
}

// search must already be lowercased
func matchesSearch(t entity.Therapist, search string) bool {
	return strings.Contains(strings.ToLower(t.Name), search) ||
		strings.Contains(strings.ToLower(t.Expertise), search) ||
		strings.Contains(strings.ToLower(t.Education), search)
}
