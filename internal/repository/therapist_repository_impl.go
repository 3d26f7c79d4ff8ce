package repository

import (
	"context"

	"therapist-directory/internal/domain/entity"
	domainRepo "therapist-directory/internal/domain/repository"

	"gorm.io/gorm"
)

const insertBatchSize = 500

type therapistRepository struct {
	db *gorm.DB
}

func NewTherapistRepository(db *gorm.DB) domainRepo.TherapistStore {
	return &therapistRepository{db: db}
}

func (r *therapistRepository) FindAll(ctx context.Context) ([]entity.Therapist, error) {
	var therapists []entity.Therapist
	err := r.db.WithContext(ctx).Order("id").Find(&therapists).Error
	if err != nil {
		return nil, err
	}
	return therapists, nil
}

// ReplaceAll swaps the table contents for therapists inside one transaction.
func (r *therapistRepository) ReplaceAll(ctx context.Context, therapists []entity.Therapist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Therapist{}).Error; err != nil {
			return err
		}
		if len(therapists) == 0 {
			return nil
		}

		rows := make([]entity.Therapist, len(therapists))
		copy(rows, therapists)
		for i := range rows {
			rows[i].ID = 0
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
}

func (r *therapistRepository) Describe() string {
	return "postgres:therapists"
}
