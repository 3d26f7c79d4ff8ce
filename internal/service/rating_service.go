package service

import (
	"math"
	"math/rand/v2"
	"strings"
)

const (
	minRating  = 3.5
	ratingSpan = 1.5
	ratingStar = "⭐"
)

// Rating is a cosmetic star score shown on a therapist card.
// It is not derived from the dataset and never affects filtering.
type Rating struct {
	Value float64
	Stars string
}

type RatingService interface {
	Next() Rating
}

type randomRatingService struct {
	rnd *rand.Rand
}

// NewRandomRatingService draws ratings uniformly from [3.5, 5.0).
// A nil source falls back to the global generator.
func NewRandomRatingService(src rand.Source) RatingService {
	var rnd *rand.Rand
	if src != nil {
		rnd = rand.New(src)
	}
	return &randomRatingService{rnd: rnd}
}

func (s *randomRatingService) Next() Rating {
	var f float64
	if s.rnd != nil {
		f = s.rnd.Float64()
	} else {
		f = rand.Float64()
	}
	return NewRating(minRating + f*ratingSpan)
}

// NewRating rounds value to one decimal and derives the star string.
func NewRating(value float64) Rating {
	rounded := math.Round(value*10) / 10
	return Rating{
		Value: rounded,
		Stars: strings.Repeat(ratingStar, int(math.Round(rounded))),
	}
}

type fixedRatingService struct {
	rating Rating
}

// NewFixedRatingService always returns the same rating.
func NewFixedRatingService(value float64) RatingService {
	return &fixedRatingService{rating: NewRating(value)}
}

func (s *fixedRatingService) Next() Rating {
	return s.rating
}
