package model

import (
	"time"

	"github.com/google/uuid"
)

// CardState is the scheduling state resolved for a card's base identity.
// Cards never studied carry the New variant; the due/not-due branch is
// exhaustive over these two cases.
type CardState struct {
	New            bool      `json:"new"`
	EaseFactor     int       `json:"ease_factor"`
	IntervalDays   int       `json:"interval_days"`
	Repetitions    int       `json:"repetitions"`
	NextReviewDate time.Time `json:"next_review_date"`
}

// Due reports whether the state is reviewable at the given instant. The
// boundary is inclusive: a card whose next review date equals now is due.
func (s CardState) Due(now time.Time) bool {
	return s.New || !s.NextReviewDate.After(now)
}

// CardView is one flashcard enriched with the scheduling state of its base.
// Language variants of the same base appear as separate views sharing an
// identical state.
type CardView struct {
	Flashcard       Flashcard `json:"flashcard"`
	BaseFlashcardID uuid.UUID `json:"base_flashcard_id"`
	State           CardState `json:"state"`
}

// Bundle is the full set of a topic's flashcards for one user, regardless of
// due status. HasEverStudied lets callers tell an empty topic apart from one
// whose cards were all just answered.
type Bundle struct {
	TopicID        uuid.UUID  `json:"topic_id"`
	UserID         uuid.UUID  `json:"user_id"`
	Cards          []CardView `json:"cards"`
	HasEverStudied bool       `json:"has_ever_studied"`
}

// DueSet is the reviewable slice of a bundle at a point in time.
type DueSet struct {
	Due             []CardView `json:"due"`
	NextAvailableAt *time.Time `json:"next_available_at,omitempty"`
}

// DueAt partitions the bundle at the given instant. NextAvailableAt is the
// soonest future unlock among cards that are not yet due; nil when every
// card is due or the bundle is empty.
func (b *Bundle) DueAt(now time.Time) DueSet {
	set := DueSet{Due: make([]CardView, 0, len(b.Cards))}

	// Distinct bases only: several language variants share one unlock time.
	seenBase := make(map[uuid.UUID]bool)
	for _, card := range b.Cards {
		if card.State.Due(now) {
			set.Due = append(set.Due, card)
			continue
		}
		if seenBase[card.BaseFlashcardID] {
			continue
		}
		seenBase[card.BaseFlashcardID] = true
		next := card.State.NextReviewDate
		if set.NextAvailableAt == nil || next.Before(*set.NextAvailableAt) {
			set.NextAvailableAt = &next
		}
	}
	return set
}
