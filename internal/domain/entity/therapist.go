package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Therapist represents one provider entry of the directory dataset.
// ExperienceText and FeeText hold the cells as written; the numeric fields are
// only used for banding.
type Therapist struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	Name            string          `gorm:"type:varchar(255);not null;index" json:"name"`
	City            string          `gorm:"type:varchar(100);index" json:"city,omitempty"`
	Gender          string          `gorm:"type:varchar(50)" json:"gender,omitempty"`
	ExperienceYears float64         `gorm:"not null;default:0" json:"experience_years"`
	ExperienceText  string          `gorm:"type:text" json:"-"`
	FeeAmount       decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"fee_amount"`
	FeeText         string          `gorm:"type:text" json:"-"`
	Modes           string          `gorm:"type:varchar(100)" json:"modes,omitempty"`
	Expertise       string          `gorm:"type:text" json:"expertise,omitempty"`
	Education       string          `gorm:"type:text" json:"education,omitempty"`
	ProfileURL      string          `gorm:"column:profile_url;type:text" json:"profile_url,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"-"`
}

func (Therapist) TableName() string {
	return "therapists"
}
