//go:generate mockery --name SummaryRepository --output ./mocks --outpkg mocks --case=underscore
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

type SummaryRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, userID, summaryID uuid.UUID) (*model.Summary, error)
	FindIDsByTopic(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) ([]uuid.UUID, error)
}

type gormSummaryRepository struct{}

func NewGormSummaryRepository() SummaryRepository {
	return &gormSummaryRepository{}
}

func (r *gormSummaryRepository) FindByID(ctx context.Context, db *gorm.DB, userID, summaryID uuid.UUID) (*model.Summary, error) {
	logger := middleware.GetLogger(ctx)
	var summary model.Summary
	result := db.WithContext(ctx).Where("user_id = ? AND summary_id = ?", userID, summaryID).First(&summary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding summary by ID in DB",
			"error", result.Error,
			"summary_id", summaryID.String(),
		)
		return nil, fmt.Errorf("gormSummaryRepository.FindByID: %w", result.Error)
	}
	return &summary, nil
}

func (r *gormSummaryRepository) FindIDsByTopic(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)
	var ids []uuid.UUID
	result := db.WithContext(ctx).
		Model(&model.Summary{}).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Pluck("summary_id", &ids)
	if result.Error != nil {
		logger.Error("Error finding summary IDs by topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormSummaryRepository.FindIDsByTopic: %w", result.Error)
	}
	return ids, nil
}
