package entity

import (
	"sort"
	"time"
)

// Directory is the immutable snapshot of the loaded dataset.
// It is built once at startup and only read afterwards.
type Directory struct {
	records  []Therapist
	source   string
	loadedAt time.Time
}

// NewDirectory copies records so later changes to the caller's slice are not observed.
func NewDirectory(records []Therapist, source string, loadedAt time.Time) *Directory {
	owned := make([]Therapist, len(records))
	copy(owned, records)
	return &Directory{
		records:  owned,
		source:   source,
		loadedAt: loadedAt,
	}
}

// Records returns a copy of the therapists in dataset order.
func (d *Directory) Records() []Therapist {
	out := make([]Therapist, len(d.records))
	copy(out, d.records)
	return out
}

func (d *Directory) Len() int {
	return len(d.records)
}

func (d *Directory) Source() string {
	return d.source
}

func (d *Directory) LoadedAt() time.Time {
	return d.loadedAt
}

// Cities returns the distinct non-empty cities, sorted.
func (d *Directory) Cities() []string {
	return d.distinct(func(t Therapist) string { return t.City })
}

// Genders returns the distinct non-empty genders, sorted.
func (d *Directory) Genders() []string {
	return d.distinct(func(t Therapist) string { return t.Gender })
}

func (d *Directory) distinct(field func(Therapist) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, t := range d.records {
		v := field(t)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
