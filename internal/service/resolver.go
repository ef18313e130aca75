//go:generate mockery --name IdentityResolver --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"studymentor/internal/model"
	"studymentor/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityResolver maps any flashcard identifier to the canonical base
// identifier scheduling state is recorded against.
type IdentityResolver interface {
	ResolveBase(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (uuid.UUID, error)
}

type translationResolver struct {
	linkRepo repository.TranslationRepository
}

func NewIdentityResolver(linkRepo repository.TranslationRepository) IdentityResolver {
	return &translationResolver{linkRepo: linkRepo}
}

// ResolveBase returns the base identifier for the given flashcard. A card
// with no inbound translation link is itself a base, so the input comes back
// unchanged. That fallback applies only to the documented no-link case:
// store failures propagate. Because the write path never points a link at a
// card that is itself a translation target, a single lookup suffices and
// resolution is idempotent.
func (r *translationResolver) ResolveBase(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (uuid.UUID, error) {
	link, err := r.linkRepo.FindByTranslatedID(ctx, db, flashcardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return flashcardID, nil
		}
		return uuid.Nil, err
	}
	return link.BaseFlashcardID, nil
}
