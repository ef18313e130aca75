package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flashcard is a question/answer pair in exactly one language. It belongs to
// a topic directly, to a summary (whose topic it inherits), or both.
type Flashcard struct {
	FlashcardID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"flashcard_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	TopicID     *uuid.UUID     `gorm:"type:uuid;index" json:"topic_id,omitempty"`
	SummaryID   *uuid.UUID     `gorm:"type:uuid;index" json:"summary_id,omitempty"`
	Question    string         `gorm:"not null" json:"question"`
	Answer      string         `gorm:"not null" json:"answer"`
	Language    string         `gorm:"not null" json:"language"`
	IsManual    bool           `gorm:"not null;default:false" json:"is_manual"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// Summary groups flashcards under a topic; cards may hang off a summary
// instead of the topic itself.
type Summary struct {
	SummaryID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"summary_id"`
	TopicID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title     string         `gorm:"not null" json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Summary) TableName() string {
	return "summaries"
}

// CreateFlashcardRequest is the DTO for manual flashcard authoring.
type CreateFlashcardRequest struct {
	Question  string     `json:"question" validate:"required,min=1"`
	Answer    string     `json:"answer" validate:"required,min=1"`
	Language  string     `json:"language" validate:"required,min=2,max=8"`
	SummaryID *uuid.UUID `json:"summary_id,omitempty"`
}

// CreateTranslationRequest is the DTO for producing a language variant of an
// existing flashcard.
type CreateTranslationRequest struct {
	Language string `json:"language" validate:"required,min=2,max=8"`
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer" validate:"required,min=1"`
}
