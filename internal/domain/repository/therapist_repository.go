package repository

import (
	"context"

	"therapist-directory/internal/domain/entity"
)

// TherapistRepository is a source the directory snapshot is loaded from.
type TherapistRepository interface {
	FindAll(ctx context.Context) ([]entity.Therapist, error)
	Describe() string
}

// TherapistStore is a TherapistRepository that can also be (re)seeded.
type TherapistStore interface {
	TherapistRepository
	ReplaceAll(ctx context.Context, therapists []entity.Therapist) error
}
