package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"therapist-directory/internal/converter"
	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/domain/entity"
	"therapist-directory/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTherapistRepository struct {
	therapists []entity.Therapist
	err        error
	calls      int
}

func (f *fakeTherapistRepository) FindAll(ctx context.Context) ([]entity.Therapist, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.therapists, nil
}

func (f *fakeTherapistRepository) Describe() string {
	return "fake"
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleTherapists() []entity.Therapist {
	return []entity.Therapist{
		{Name: "A", City: "X", ExperienceYears: 6, FeeAmount: decimal.NewFromInt(1500)},
		{Name: "B", City: "Y", ExperienceYears: 4, FeeAmount: decimal.NewFromInt(5000)},
		{Name: "C", City: "X", Modes: "online"},
	}
}

func loadedDirectory(t *testing.T, repo *fakeTherapistRepository) DirectoryUsecase {
	t.Helper()
	u := NewDirectoryUsecase(quietLogger(), repo, service.NewFixedRatingService(4.0))
	require.NoError(t, u.Load(context.Background()))
	return u
}

func cardNames(resp *dto.TherapistListResponse) []string {
	out := make([]string, len(resp.Therapists))
	for i, c := range resp.Therapists {
		out[i] = c.Name
	}
	return out
}

func TestDirectorySearch(t *testing.T) {
	u := loadedDirectory(t, &fakeTherapistRepository{therapists: sampleTherapists()})
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.SearchTherapistRequest
		want []string
	}{
		{"nil request returns all", nil, []string{"A", "B", "C"}},
		{"empty request returns all", &dto.SearchTherapistRequest{}, []string{"A", "B", "C"}},
		{"experience band", &dto.SearchTherapistRequest{Experience: "5-10"}, []string{"A"}},
		{"fee band", &dto.SearchTherapistRequest{Fee: "under-2000"}, []string{"A", "C"}},
		{"city", &dto.SearchTherapistRequest{City: "Y"}, []string{"B"}},
		{"mode", &dto.SearchTherapistRequest{Mode: "Online"}, []string{"C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := u.Search(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cardNames(resp))
			assert.Equal(t, len(tt.want), resp.Total)
		})
	}
}

func TestDirectorySearchNoResults(t *testing.T) {
	u := loadedDirectory(t, &fakeTherapistRepository{therapists: sampleTherapists()})

	resp, err := u.Search(context.Background(), &dto.SearchTherapistRequest{Search: "nobody"})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Equal(t, converter.NoResultsMessage, resp.Message)
}

func TestDirectoryLoadFailureIsTerminal(t *testing.T) {
	cause := errors.New("disk on fire")
	repo := &fakeTherapistRepository{err: cause}
	u := NewDirectoryUsecase(quietLogger(), repo, nil)
	ctx := context.Background()

	err := u.Load(ctx)
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
	assert.ErrorIs(t, err, cause)

	_, err = u.Search(ctx, &dto.SearchTherapistRequest{})
	assert.ErrorIs(t, err, ErrDatasetUnavailable)

	_, err = u.GetCities(ctx)
	assert.ErrorIs(t, err, ErrDatasetUnavailable)

	// retrying does not hit the source again
	assert.ErrorIs(t, u.Load(ctx), ErrDatasetUnavailable)
	assert.Equal(t, 1, repo.calls)
}

func TestDirectoryNotLoaded(t *testing.T) {
	u := NewDirectoryUsecase(quietLogger(), &fakeTherapistRepository{}, nil)

	_, err := u.Search(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDirectoryNotLoaded)
}

func TestDirectoryLoadOnce(t *testing.T) {
	repo := &fakeTherapistRepository{therapists: sampleTherapists()}
	u := loadedDirectory(t, repo)

	assert.ErrorIs(t, u.Load(context.Background()), ErrAlreadyLoaded)
	assert.Equal(t, 1, repo.calls)
}

func TestDirectoryCitiesAndInfo(t *testing.T) {
	u := loadedDirectory(t, &fakeTherapistRepository{therapists: sampleTherapists()})
	ctx := context.Background()

	cities, err := u.GetCities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, cities.Cities)
	assert.Equal(t, 2, cities.Total)

	info, err := u.GetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fake", info.Source)
	assert.Equal(t, 3, info.Total)
	assert.False(t, info.LoadedAt.IsZero())
}

func TestDirectoryConcurrentSearch(t *testing.T) {
	u := loadedDirectory(t, &fakeTherapistRepository{therapists: sampleTherapists()})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := u.Search(context.Background(), &dto.SearchTherapistRequest{City: "X"})
			assert.NoError(t, err)
			assert.Equal(t, 2, resp.Total)
		}()
	}
	wg.Wait()
}
