//go:generate mockery --name TranslationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"studymentor/internal/middleware"
	"studymentor/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type TranslationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, link *model.TranslationLink) error
	FindByTranslatedID(ctx context.Context, db *gorm.DB, translatedID uuid.UUID) (*model.TranslationLink, error)
	DeleteByTranslatedID(ctx context.Context, tx *gorm.DB, translatedID uuid.UUID) error
}

type gormTranslationRepository struct{}

func NewGormTranslationRepository() TranslationRepository {
	return &gormTranslationRepository{}
}

// uniqueViolation detects duplicate-key failures from both the postgres
// driver and gorm's translated error, so racing link creations surface as
// ErrConflict instead of silently overwriting.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (r *gormTranslationRepository) Create(ctx context.Context, tx *gorm.DB, link *model.TranslationLink) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(link)
	if result.Error != nil {
		if uniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating translation link in DB",
			"error", result.Error,
			"base_flashcard_id", link.BaseFlashcardID.String(),
			"target_language", link.TargetLanguage,
		)
		return fmt.Errorf("gormTranslationRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTranslationRepository) FindByTranslatedID(ctx context.Context, db *gorm.DB, translatedID uuid.UUID) (*model.TranslationLink, error) {
	logger := middleware.GetLogger(ctx)
	var link model.TranslationLink
	result := db.WithContext(ctx).Where("translated_flashcard_id = ?", translatedID).First(&link)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding translation link in DB",
			"error", result.Error,
			"translated_flashcard_id", translatedID.String(),
		)
		return nil, fmt.Errorf("gormTranslationRepository.FindByTranslatedID: %w", result.Error)
	}
	return &link, nil
}

func (r *gormTranslationRepository) DeleteByTranslatedID(ctx context.Context, tx *gorm.DB, translatedID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("translated_flashcard_id = ?", translatedID).Delete(&model.TranslationLink{})
	if result.Error != nil {
		logger.Error("Error deleting translation link in DB",
			"error", result.Error,
			"translated_flashcard_id", translatedID.String(),
		)
		return fmt.Errorf("gormTranslationRepository.DeleteByTranslatedID: %w", result.Error)
	}
	// Zero rows is fine: most cards are not translation targets.
	return nil
}
