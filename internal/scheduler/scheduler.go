// Package scheduler computes spaced-repetition scheduling state. It is pure
// and holds no clock of its own. Callers sample now once and pass it in,
// which keeps results deterministic and testable.
package scheduler

import (
	"math"
	"time"

	"studymentor/internal/model"
)

// Rating is the learner's self-assessment for one review, 1 (worst) to 4.
type Rating int

const (
	Again Rating = 1
	Hard  Rating = 2
	Good  Rating = 3
	Easy  Rating = 4
)

// Valid reports whether r is inside the accepted 1..4 range.
func (r Rating) Valid() bool {
	return r >= Again && r <= Easy
}

// successThreshold splits failures from successes. Ratings 1 and 2 both
// reset repetitions; only 3 and 4 advance the schedule.
const successThreshold = Good

// Ease factors are integers scaled by 100 (250 means 2.50).
const (
	DefaultEaseFactor = 250
	MinEaseFactor     = 130
)

// Fixed intervals for the first two successful repetitions, in days.
const (
	firstInterval  = 1
	secondInterval = 6
)

// State is the scheduling state produced by one review.
type State struct {
	EaseFactor     int
	IntervalDays   int
	Repetitions    int
	NextReviewDate time.Time
}

// Next returns the state following a review with the given rating. prev is
// nil for a card that has never been studied. now is used only to derive
// NextReviewDate via calendar-day arithmetic.
func Next(rating Rating, prev *State, now time.Time) State {
	ease := DefaultEaseFactor
	interval := 0
	repetitions := 0
	if prev != nil {
		ease = prev.EaseFactor
		interval = prev.IntervalDays
		repetitions = prev.Repetitions
	}

	ease = nextEase(ease, rating)

	if rating < successThreshold {
		repetitions = 0
		interval = firstInterval
	} else {
		repetitions++
		switch repetitions {
		case 1:
			interval = firstInterval
		case 2:
			interval = secondInterval
		default:
			interval = int(math.Round(float64(interval) * float64(ease) / 100.0))
		}
	}

	if interval < 1 {
		interval = 1
	}

	return State{
		EaseFactor:     ease,
		IntervalDays:   interval,
		Repetitions:    repetitions,
		NextReviewDate: now.AddDate(0, 0, interval),
	}
}

// nextEase applies the ease-factor update for both paths:
// ef' = ef + (10 - (4-r) * (8 + (4-r)*2)), floored at MinEaseFactor.
// Rating 4 gains +10, rating 3 is neutral, ratings 2 and 1 lose 14 and 32.
func nextEase(ease int, rating Rating) int {
	q := int(Easy - rating)
	ease += 10 - q*(8+q*2)
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	return ease
}

// FromAttempt converts a persisted attempt into the state the next review
// starts from.
func FromAttempt(a *model.Attempt) *State {
	if a == nil {
		return nil
	}
	return &State{
		EaseFactor:     a.EaseFactor,
		IntervalDays:   a.IntervalDays,
		Repetitions:    a.Repetitions,
		NextReviewDate: a.NextReviewDate,
	}
}
