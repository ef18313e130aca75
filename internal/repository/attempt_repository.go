//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"studymentor/internal/middleware"
	"studymentor/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.Attempt) error
	FindLatestByFlashcard(ctx context.Context, db *gorm.DB, userID, flashcardID uuid.UUID) (*model.Attempt, error)
	FindLatestByFlashcards(ctx context.Context, db *gorm.DB, userID uuid.UUID, flashcardIDs []uuid.UUID) (map[uuid.UUID]*model.Attempt, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.Attempt) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		logger.Error("Error creating attempt in DB",
			"error", result.Error,
			"flashcard_id", attempt.FlashcardID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAttemptRepository) FindLatestByFlashcard(ctx context.Context, db *gorm.DB, userID, flashcardID uuid.UUID) (*model.Attempt, error) {
	logger := middleware.GetLogger(ctx)
	var attempt model.Attempt
	result := db.WithContext(ctx).
		Where("user_id = ? AND flashcard_id = ?", userID, flashcardID).
		Order("attempt_date DESC").
		First(&attempt)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding latest attempt in DB",
			"error", result.Error,
			"flashcard_id", flashcardID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.FindLatestByFlashcard: %w", result.Error)
	}
	return &attempt, nil
}

func (r *gormAttemptRepository) FindLatestByFlashcards(ctx context.Context, db *gorm.DB, userID uuid.UUID, flashcardIDs []uuid.UUID) (map[uuid.UUID]*model.Attempt, error) {
	latest := make(map[uuid.UUID]*model.Attempt, len(flashcardIDs))
	if len(flashcardIDs) == 0 {
		return latest, nil
	}

	logger := middleware.GetLogger(ctx)
	var attempts []*model.Attempt
	result := db.WithContext(ctx).
		Where("user_id = ? AND flashcard_id IN ?", userID, flashcardIDs).
		Order("attempt_date DESC").
		Find(&attempts)
	if result.Error != nil {
		logger.Error("Error finding latest attempts in DB",
			"error", result.Error,
			"flashcard_count", len(flashcardIDs),
		)
		return nil, fmt.Errorf("gormAttemptRepository.FindLatestByFlashcards: %w", result.Error)
	}

	// Rows arrive newest first; the first row per flashcard wins.
	for _, a := range attempts {
		if _, ok := latest[a.FlashcardID]; !ok {
			latest[a.FlashcardID] = a
		}
	}
	return latest, nil
}
