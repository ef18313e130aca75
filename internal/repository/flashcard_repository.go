//go:generate mockery --name FlashcardRepository --output ./mocks --outpkg mocks --case=underscore
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

type FlashcardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, userID, flashcardID uuid.UUID) (*model.Flashcard, error)
	FindByTopic(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) ([]*model.Flashcard, error)
	FindBySummaryIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, summaryIDs []uuid.UUID) ([]*model.Flashcard, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, flashcardID uuid.UUID) error
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating flashcard in DB",
			"error", result.Error,
			"user_id", card.UserID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, userID, flashcardID uuid.UUID) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Flashcard
	result := db.WithContext(ctx).Where("user_id = ? AND flashcard_id = ?", userID, flashcardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard by ID in DB",
			"error", result.Error,
			"flashcard_id", flashcardID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormFlashcardRepository) FindByTopic(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard
	result := db.WithContext(ctx).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Order("created_at ASC, flashcard_id ASC").
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding flashcards by topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByTopic: %w", result.Error)
	}
	return cards, nil
}

func (r *gormFlashcardRepository) FindBySummaryIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, summaryIDs []uuid.UUID) ([]*model.Flashcard, error) {
	if len(summaryIDs) == 0 {
		return nil, nil
	}
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard
	result := db.WithContext(ctx).
		Where("user_id = ? AND summary_id IN ?", userID, summaryIDs).
		Order("created_at ASC, flashcard_id ASC").
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding flashcards by summaries in DB",
			"error", result.Error,
			"summary_count", len(summaryIDs),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindBySummaryIDs: %w", result.Error)
	}
	return cards, nil
}

func (r *gormFlashcardRepository) Delete(ctx context.Context, tx *gorm.DB, userID, flashcardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Flashcard{}, flashcardID)
	if result.Error != nil {
		logger.Error("Error deleting flashcard in DB",
			"error", result.Error,
			"flashcard_id", flashcardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
