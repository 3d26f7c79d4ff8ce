package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExperienceBand buckets years of practice. Each band includes its upper bound.
type ExperienceBand string

const (
	ExperienceUpTo5  ExperienceBand = "0-5"
	Experience5To10  ExperienceBand = "5-10"
	Experience10To15 ExperienceBand = "10-15"
	ExperienceOver15 ExperienceBand = "15+"
)

// ExperienceBands lists the bands in ascending order.
var ExperienceBands = []ExperienceBand{ExperienceUpTo5, Experience5To10, Experience10To15, ExperienceOver15}

// Contains reports whether years falls into the band. Unknown bands contain nothing.
func (b ExperienceBand) Contains(years float64) bool {
	switch b {
	case ExperienceUpTo5:
		return years <= 5
	case Experience5To10:
		return years > 5 && years <= 10
	case Experience10To15:
		return years > 10 && years <= 15
	case ExperienceOver15:
		return years > 15
	}
	return false
}

// FeeBand buckets the session fee.
type FeeBand string

const (
	FeeUnder2000  FeeBand = "under-2000"
	Fee2000To4000 FeeBand = "2000-4000"
	Fee4000To6000 FeeBand = "4000-6000"
	FeeAbove6000  FeeBand = "above-6000"
)

// FeeBands lists the bands in ascending order.
var FeeBands = []FeeBand{FeeUnder2000, Fee2000To4000, Fee4000To6000, FeeAbove6000}

var (
	fee2000 = decimal.NewFromInt(2000)
	fee4000 = decimal.NewFromInt(4000)
	fee6000 = decimal.NewFromInt(6000)
)

// Contains reports whether fee falls into the band. 2000 belongs to 2000-4000,
// 4000 to 2000-4000 and 6000 to 4000-6000.
func (b FeeBand) Contains(fee decimal.Decimal) bool {
	switch b {
	case FeeUnder2000:
		return fee.LessThan(fee2000)
	case Fee2000To4000:
		return fee.GreaterThanOrEqual(fee2000) && fee.LessThanOrEqual(fee4000)
	case Fee4000To6000:
		return fee.GreaterThan(fee4000) && fee.LessThanOrEqual(fee6000)
	case FeeAbove6000:
		return fee.GreaterThan(fee6000)
	}
	return false
}

// Mode is the consultation mode a therapist offers.
type Mode string

const (
	ModeInPerson Mode = "In-person"
	ModeOnline   Mode = "Online"
	ModeBoth     Mode = "Both"
)

var Modes = []Mode{ModeInPerson, ModeOnline, ModeBoth}

const (
	modeInPersonToken = "in-person"
	modeOnlineToken   = "online"
)

// Offered checks the free-form modes text of a therapist, case-insensitively.
func (m Mode) Offered(modes string) bool {
	modes = strings.ToLower(modes)
	inPerson := strings.Contains(modes, modeInPersonToken)
	online := strings.Contains(modes, modeOnlineToken)

	switch m {
	case ModeInPerson:
		return inPerson
	case ModeOnline:
		return online
	case ModeBoth:
		return inPerson && online
	}
	return false
}

// Criteria is the set of active filter selections for one query.
// Zero-valued fields impose no constraint.
type Criteria struct {
	SearchText string
	City       string
	Gender     string
	Experience ExperienceBand
	Fee        FeeBand
	Mode       Mode
}

// NormalizedSearch returns the lowercased, trimmed search term.
func (c Criteria) NormalizedSearch() string {
	return strings.ToLower(strings.TrimSpace(c.SearchText))
}

func (c Criteria) IsEmpty() bool {
	return c.NormalizedSearch() == "" &&
		c.City == "" &&
		c.Gender == "" &&
		c.Experience == "" &&
		c.Fee == "" &&
		c.Mode == ""
}
