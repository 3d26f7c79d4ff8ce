package repository

import (
	"context"

	"therapist-directory/internal/domain/entity"
)

type PreferenceRepository interface {
	GetTheme(ctx context.Context, clientID string) (entity.Theme, error)
	SetTheme(ctx context.Context, clientID string, theme entity.Theme) error
}
