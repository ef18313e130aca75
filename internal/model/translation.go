package model

import (
	"time"

	"github.com/google/uuid"
)

// TranslationLink maps a translated flashcard back to the base flashcard all
// scheduling state is recorded against. TranslatedFlashcardID is unique: a
// card has at most one inbound link, and a base is never itself a link
// target (the write path resolves to the base before creating a link).
type TranslationLink struct {
	LinkID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	BaseFlashcardID       uuid.UUID `gorm:"type:uuid;not null;index:idx_base_language,unique"`
	TargetLanguage        string    `gorm:"not null;index:idx_base_language,unique"`
	TranslatedFlashcardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt             time.Time
}

func (TranslationLink) TableName() string {
	return "translation_links"
}
