package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt is an immutable review event. FlashcardID is always a base
// identifier; attempts are never recorded against a translated variant, which
// is what lets progress be shared across language variants. Rows are
// append-only: the latest attempt per base defines the current scheduling
// state.
type Attempt struct {
	AttemptID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_flashcard" json:"-"`
	FlashcardID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_flashcard" json:"flashcard_id"`
	Rating         int       `gorm:"not null" json:"rating"`
	AttemptDate    time.Time `gorm:"not null;index" json:"attempt_date"`
	EaseFactor     int       `gorm:"not null" json:"ease_factor"`
	IntervalDays   int       `gorm:"not null" json:"interval_days"`
	Repetitions    int       `gorm:"not null" json:"repetitions"`
	NextReviewDate time.Time `gorm:"not null" json:"next_review_date"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// SubmitAttemptRequest is the DTO for rating a flashcard.
type SubmitAttemptRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=4"`
}

// AttemptResponse is returned after an attempt is recorded.
type AttemptResponse struct {
	NextReviewDate time.Time `json:"next_review_date"`
	IntervalDays   int       `json:"interval_days"`
	EaseFactor     int       `json:"ease_factor"`
	Repetitions    int       `json:"repetitions"`
}
