package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"therapist-directory/internal/converter"
	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/domain/entity"
	"therapist-directory/internal/domain/filter"
	"therapist-directory/internal/domain/repository"
	"therapist-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	ErrDirectoryNotLoaded = errors.New("directory not loaded yet")
	ErrAlreadyLoaded      = errors.New("directory already loaded")
)

// DatasetError reports why the dataset could not be loaded. It matches
// ErrDatasetUnavailable under errors.Is.
type DatasetError struct {
	Cause error
}

func (e *DatasetError) Error() string {
	return ErrDatasetUnavailable.Error() + ": " + e.Cause.Error()
}

// Message is the text shown in place of results for the rest of the session.
func (e *DatasetError) Message() string {
	return "Error loading dataset: " + e.Cause.Error()
}

func (e *DatasetError) Unwrap() error {
	return e.Cause
}

func (e *DatasetError) Is(target error) bool {
	return target == ErrDatasetUnavailable
}

type DirectoryUsecase interface {
	Load(ctx context.Context) error
	Search(ctx context.Context, req *dto.SearchTherapistRequest) (*dto.TherapistListResponse, error)
	GetCities(ctx context.Context) (*dto.CityListResponse, error)
	GetInfo(ctx context.Context) (*dto.DirectoryInfoResponse, error)
	Snapshot() (*entity.Directory, error)
}

type directoryUsecase struct {
	log    *logrus.Logger
	source repository.TherapistRepository
	rating service.RatingService

	// written once by Load, read-only afterwards
	once      sync.Once
	loaded    chan struct{}
	directory *entity.Directory
	loadErr   error
}

func NewDirectoryUsecase(
	log *logrus.Logger,
	source repository.TherapistRepository,
	rating service.RatingService,
) DirectoryUsecase {
	return &directoryUsecase{
		log:    log,
		source: source,
		rating: rating,
		loaded: make(chan struct{}),
	}
}

// Load fetches the full dataset once. A failed load is final: every later
// call reports the same error and the filter never runs.
func (u *directoryUsecase) Load(ctx context.Context) error {
	ran := false
	u.once.Do(func() {
		ran = true
		defer close(u.loaded)

		therapists, err := u.source.FindAll(ctx)
		if err != nil {
			u.log.Warnf("Failed to load dataset from %s: %+v", u.source.Describe(), err)
			u.loadErr = &DatasetError{Cause: err}
			return
		}

		u.directory = entity.NewDirectory(therapists, u.source.Describe(), time.Now())
		u.log.Infof("Loaded %d therapists from %s", u.directory.Len(), u.directory.Source())
	})

	if !ran {
		if u.loadErr != nil {
			return u.loadErr
		}
		return ErrAlreadyLoaded
	}
	return u.loadErr
}

func (u *directoryUsecase) Snapshot() (*entity.Directory, error) {
	select {
	case <-u.loaded:
	default:
		return nil, ErrDirectoryNotLoaded
	}
	if u.loadErr != nil {
		return nil, u.loadErr
	}
	return u.directory, nil
}

func (u *directoryUsecase) Search(ctx context.Context, req *dto.SearchTherapistRequest) (*dto.TherapistListResponse, error) {
	directory, err := u.Snapshot()
	if err != nil {
		return nil, err
	}

	criteria := converter.SearchRequestToCriteria(req)
	matches := filter.Apply(directory.Records(), criteria)
	u.log.Debugf("Search %+v matched %d of %d therapists", criteria, len(matches), directory.Len())

	return converter.TherapistsToListResponse(matches, u.rating), nil
}

func (u *directoryUsecase) GetCities(ctx context.Context) (*dto.CityListResponse, error) {
	directory, err := u.Snapshot()
	if err != nil {
		return nil, err
	}

	cities := directory.Cities()
	return &dto.CityListResponse{
		Cities: cities,
		Total:  len(cities),
	}, nil
}

func (u *directoryUsecase) GetInfo(ctx context.Context) (*dto.DirectoryInfoResponse, error) {
	directory, err := u.Snapshot()
	if err != nil {
		return nil, err
	}

	return &dto.DirectoryInfoResponse{
		Source:   directory.Source(),
		Total:    directory.Len(),
		LoadedAt: directory.LoadedAt(),
	}, nil
}
