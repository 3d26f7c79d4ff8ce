package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"therapist-directory/internal/domain/entity"
	domainRepo "therapist-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const PreferenceThemeKeyPrefix = "preference:theme:"

type redisPreferenceRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPreferenceRepository(client *redis.Client, ttl time.Duration) domainRepo.PreferenceRepository {
	return &redisPreferenceRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisPreferenceRepository) GetTheme(ctx context.Context, clientID string) (entity.Theme, error) {
	value, err := r.client.Get(ctx, PreferenceThemeKeyPrefix+clientID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.ThemeLight, nil
		}
		return "", err
	}
	return entity.ParseTheme(value), nil
}

func (r *redisPreferenceRepository) SetTheme(ctx context.Context, clientID string, theme entity.Theme) error {
	return r.client.Set(ctx, PreferenceThemeKeyPrefix+clientID, string(theme), r.ttl).Err()
}

// memoryPreferenceRepository keeps preferences for the lifetime of the process.
type memoryPreferenceRepository struct {
	themes sync.Map // map[string]entity.Theme
}

func NewMemoryPreferenceRepository() domainRepo.PreferenceRepository {
	return &memoryPreferenceRepository{}
}

func (r *memoryPreferenceRepository) GetTheme(ctx context.Context, clientID string) (entity.Theme, error) {
	if value, ok := r.themes.Load(clientID); ok {
		return value.(entity.Theme), nil
	}
	return entity.ThemeLight, nil
}

func (r *memoryPreferenceRepository) SetTheme(ctx context.Context, clientID string, theme entity.Theme) error {
	r.themes.Store(clientID, theme)
	return nil
}
