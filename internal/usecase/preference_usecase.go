package usecase

import (
	"context"
	"errors"

	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/domain/entity"
	"therapist-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrMissingClientID = errors.New("missing client id")

type PreferenceUsecase interface {
	GetTheme(ctx context.Context, clientID string) (*dto.ThemeResponse, error)
	SetTheme(ctx context.Context, clientID string, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error)
	ToggleTheme(ctx context.Context, clientID string) (*dto.ThemeResponse, error)
}

type preferenceUsecase struct {
	log            *logrus.Logger
	preferenceRepo repository.PreferenceRepository
}

func NewPreferenceUsecase(log *logrus.Logger, preferenceRepo repository.PreferenceRepository) PreferenceUsecase {
	return &preferenceUsecase{
		log:            log,
		preferenceRepo: preferenceRepo,
	}
}

func (u *preferenceUsecase) GetTheme(ctx context.Context, clientID string) (*dto.ThemeResponse, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}

	theme, err := u.preferenceRepo.GetTheme(ctx, clientID)
	if err != nil {
		u.log.Warnf("Failed to get theme preference: %+v", err)
		return nil, err
	}

	return &dto.ThemeResponse{Theme: string(theme)}, nil
}

func (u *preferenceUsecase) SetTheme(ctx context.Context, clientID string, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}

	theme := entity.ParseTheme(req.Theme)
	if err := u.preferenceRepo.SetTheme(ctx, clientID, theme); err != nil {
		u.log.Warnf("Failed to save theme preference: %+v", err)
		return nil, err
	}

	return &dto.ThemeResponse{Theme: string(theme)}, nil
}

func (u *preferenceUsecase) ToggleTheme(ctx context.Context, clientID string) (*dto.ThemeResponse, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}

	current, err := u.preferenceRepo.GetTheme(ctx, clientID)
	if err != nil {
		u.log.Warnf("Failed to get theme preference: %+v", err)
		return nil, err
	}

	next := current.Toggle()
	if err := u.preferenceRepo.SetTheme(ctx, clientID, next); err != nil {
		u.log.Warnf("Failed to save theme preference: %+v", err)
		return nil, err
	}

	return &dto.ThemeResponse{Theme: string(next)}, nil
}
