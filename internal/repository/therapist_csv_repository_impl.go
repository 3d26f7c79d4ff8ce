package repository

import (
	"context"
	"fmt"

	"therapist-directory/internal/domain/entity"
	domainRepo "therapist-directory/internal/domain/repository"
	"therapist-directory/internal/infrastructure/dataset"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type therapistCSVRepository struct {
	fs   afero.Fs
	path string
	log  *logrus.Logger
}

func NewTherapistCSVRepository(fs afero.Fs, path string, log *logrus.Logger) domainRepo.TherapistRepository {
	return &therapistCSVRepository{
		fs:   fs,
		path: path,
		log:  log,
	}
}

func (r *therapistCSVRepository) FindAll(ctx context.Context) ([]entity.Therapist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := dataset.LoadCSV(r.fs, r.path)
	if err != nil {
		return nil, err
	}

	if result.Dropped > 0 {
		r.log.Debugf("Dropped %d rows without a name from %s", result.Dropped, r.path)
	}

	return result.Therapists, nil
}

func (r *therapistCSVRepository) Describe() string {
	return fmt.Sprintf("csv:%s", r.path)
}
