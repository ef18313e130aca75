//go:generate mockery --name StudyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"studymentor/internal/cache"
	"studymentor/internal/middleware"
	"studymentor/internal/model"
	"studymentor/internal/repository"
	"studymentor/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyService exposes the scheduling core: cached bundle reads, due-set
// derivation, attempt recording, and the write paths that must invalidate
// the cache.
type StudyService interface {
	GetBundle(ctx context.Context, topicID, userID uuid.UUID) (*model.Bundle, error)
	GetDue(ctx context.Context, topicID, userID uuid.UUID) (*model.DueSet, error)
	RecordAttempt(ctx context.Context, userID, flashcardID uuid.UUID, rating int) (*model.AttemptResponse, error)
	CreateFlashcard(ctx context.Context, userID, topicID uuid.UUID, req *model.CreateFlashcardRequest) (*model.Flashcard, error)
	CreateTranslation(ctx context.Context, userID, flashcardID uuid.UUID, req *model.CreateTranslationRequest) (*model.Flashcard, error)
	DeleteFlashcard(ctx context.Context, userID, flashcardID uuid.UUID) error
}

type studyService struct {
	db          *gorm.DB
	cardRepo    repository.FlashcardRepository
	summaryRepo repository.SummaryRepository
	linkRepo    repository.TranslationRepository
	attemptRepo repository.AttemptRepository
	resolver    IdentityResolver
	cache       *cache.BundleCache
	clock       func() time.Time
}

// NewStudyService wires the aggregation pipeline behind a bundle cache with
// the given TTL. clock defaults to time.Now and is injectable for tests.
func NewStudyService(
	db *gorm.DB,
	cardRepo repository.FlashcardRepository,
	summaryRepo repository.SummaryRepository,
	linkRepo repository.TranslationRepository,
	attemptRepo repository.AttemptRepository,
	resolver IdentityResolver,
	bundleTTL time.Duration,
	clock func() time.Time,
) StudyService {
	if clock == nil {
		clock = time.Now
	}
	s := &studyService{
		db:          db,
		cardRepo:    cardRepo,
		summaryRepo: summaryRepo,
		linkRepo:    linkRepo,
		attemptRepo: attemptRepo,
		resolver:    resolver,
		clock:       clock,
	}
	s.cache = cache.NewBundleCache(s, bundleTTL, clock)
	return s
}

func (s *studyService) GetBundle(ctx context.Context, topicID, userID uuid.UUID) (*model.Bundle, error) {
	bundle, err := s.cache.Get(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

func (s *studyService) GetDue(ctx context.Context, topicID, userID uuid.UUID) (*model.DueSet, error) {
	bundle, err := s.GetBundle(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}
	due := bundle.DueAt(s.clock())
	return &due, nil
}

// LoadBundle implements cache.Loader. It collects the topic's flashcards
// (direct and via summaries), resolves each to its base identity, joins the
// latest attempt per base, and produces the superset bundle the due subset
// is derived from at read time.
func (s *studyService) LoadBundle(ctx context.Context, topicID, userID uuid.UUID) (*model.Bundle, error) {
	logger := middleware.GetLogger(ctx).With("topic_id", topicID, "user_id", userID)

	direct, err := s.cardRepo.FindByTopic(ctx, s.db, userID, topicID)
	if err != nil {
		logger.Error("Failed to load topic flashcards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load flashcards for topic.", "", err)
	}

	summaryIDs, err := s.summaryRepo.FindIDsByTopic(ctx, s.db, userID, topicID)
	if err != nil {
		logger.Error("Failed to load topic summaries", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load summaries for topic.", "", err)
	}

	viaSummaries, err := s.cardRepo.FindBySummaryIDs(ctx, s.db, userID, summaryIDs)
	if err != nil {
		logger.Error("Failed to load summary flashcards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load flashcards for summaries.", "", err)
	}

	// A card can be reachable through both paths; keep the first sighting.
	seen := make(map[uuid.UUID]bool, len(direct)+len(viaSummaries))
	cards := make([]*model.Flashcard, 0, len(direct)+len(viaSummaries))
	for _, c := range append(direct, viaSummaries...) {
		if seen[c.FlashcardID] {
			continue
		}
		seen[c.FlashcardID] = true
		cards = append(cards, c)
	}

	// Deterministic output: creation order, identifier as tiebreak.
	sort.Slice(cards, func(i, j int) bool {
		if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].CreatedAt.Before(cards[j].CreatedAt)
		}
		return cards[i].FlashcardID.String() < cards[j].FlashcardID.String()
	})

	// Resolve every card to its base; variants of one base share the lookup.
	baseOf := make(map[uuid.UUID]uuid.UUID, len(cards))
	baseIDs := make([]uuid.UUID, 0, len(cards))
	for _, c := range cards {
		baseID, err := s.resolver.ResolveBase(ctx, s.db, c.FlashcardID)
		if err != nil {
			logger.Error("Failed to resolve base identity", "error", err, "flashcard_id", c.FlashcardID)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to resolve flashcard identity.", "", err)
		}
		if _, ok := baseOf[c.FlashcardID]; !ok {
			baseOf[c.FlashcardID] = baseID
		}
		if !containsID(baseIDs, baseID) {
			baseIDs = append(baseIDs, baseID)
		}
	}

	latest, err := s.attemptRepo.FindLatestByFlashcards(ctx, s.db, userID, baseIDs)
	if err != nil {
		logger.Error("Failed to load latest attempts", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load attempt history.", "", err)
	}

	views := make([]model.CardView, 0, len(cards))
	for _, c := range cards {
		baseID := baseOf[c.FlashcardID]
		views = append(views, model.CardView{
			Flashcard:       *c,
			BaseFlashcardID: baseID,
			State:           stateFromAttempt(latest[baseID]),
		})
	}

	return &model.Bundle{
		TopicID:        topicID,
		UserID:         userID,
		Cards:          views,
		HasEverStudied: len(latest) > 0,
	}, nil
}

func (s *studyService) RecordAttempt(ctx context.Context, userID, flashcardID uuid.UUID, rating int) (*model.AttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "flashcard_id", flashcardID)

	r := scheduler.Rating(rating)
	if !r.Valid() {
		return nil, model.NewAppError("INVALID_RATING", "Rating must be between 1 and 4.", "rating", model.ErrInvalidInput)
	}

	card, err := s.cardRepo.FindByID(ctx, s.db, userID, flashcardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
		}
		logger.Error("Failed to load flashcard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load flashcard.", "", err)
	}

	baseID, err := s.resolver.ResolveBase(ctx, s.db, flashcardID)
	if err != nil {
		logger.Error("Failed to resolve base identity", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to resolve flashcard identity.", "", err)
	}

	// One instant per attempt: the scheduler and the stored row must agree.
	now := s.clock()
	var next scheduler.State

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prevAttempt, err := s.attemptRepo.FindLatestByFlashcard(ctx, tx, userID, baseID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load previous attempt in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load attempt history.", "", err)
		}

		next = scheduler.Next(r, scheduler.FromAttempt(prevAttempt), now)

		attempt := &model.Attempt{
			AttemptID:      uuid.New(),
			UserID:         userID,
			FlashcardID:    baseID,
			Rating:         rating,
			AttemptDate:    now,
			EaseFactor:     next.EaseFactor,
			IntervalDays:   next.IntervalDays,
			Repetitions:    next.Repetitions,
			NextReviewDate: next.NextReviewDate,
		}
		if err := s.attemptRepo.Create(ctx, tx, attempt); err != nil {
			logger.Error("Failed to insert attempt in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record attempt.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateTopicOf(ctx, userID, card)

	logger.Info("Attempt recorded",
		"base_flashcard_id", baseID,
		"rating", rating,
		"interval_days", next.IntervalDays,
	)
	return &model.AttemptResponse{
		NextReviewDate: next.NextReviewDate,
		IntervalDays:   next.IntervalDays,
		EaseFactor:     next.EaseFactor,
		Repetitions:    next.Repetitions,
	}, nil
}

func (s *studyService) CreateFlashcard(ctx context.Context, userID, topicID uuid.UUID, req *model.CreateFlashcardRequest) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "topic_id", topicID)

	card := &model.Flashcard{
		FlashcardID: uuid.New(),
		UserID:      userID,
		TopicID:     &topicID,
		SummaryID:   req.SummaryID,
		Question:    req.Question,
		Answer:      req.Answer,
		Language:    req.Language,
		IsManual:    true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.SummaryID != nil {
			if _, err := s.summaryRepo.FindByID(ctx, tx, userID, *req.SummaryID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("SUMMARY_NOT_FOUND", "Summary not found.", "summary_id", model.ErrNotFound)
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to verify summary.", "", err)
			}
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			logger.Error("Failed to create flashcard in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create flashcard.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(topicID)
	logger.Info("Flashcard created", "flashcard_id", card.FlashcardID)
	return card, nil
}

func (s *studyService) CreateTranslation(ctx context.Context, userID, flashcardID uuid.UUID, req *model.CreateTranslationRequest) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "flashcard_id", flashcardID)

	source, err := s.cardRepo.FindByID(ctx, s.db, userID, flashcardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load flashcard.", "", err)
	}

	// Links always point at the true base, even when the caller passes a
	// translated variant. That keeps resolution a single idempotent lookup.
	baseID, err := s.resolver.ResolveBase(ctx, s.db, flashcardID)
	if err != nil {
		logger.Error("Failed to resolve base identity", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to resolve flashcard identity.", "", err)
	}

	base := source
	if baseID != source.FlashcardID {
		base, err = s.cardRepo.FindByID(ctx, s.db, userID, baseID)
		if err != nil {
			logger.Error("Failed to load base flashcard", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load base flashcard.", "", err)
		}
	}

	translated := &model.Flashcard{
		FlashcardID: uuid.New(),
		UserID:      userID,
		TopicID:     base.TopicID,
		SummaryID:   base.SummaryID,
		Question:    req.Question,
		Answer:      req.Answer,
		Language:    req.Language,
		IsManual:    false,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.Create(ctx, tx, translated); err != nil {
			logger.Error("Failed to create translated flashcard in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create translation.", "", err)
		}
		link := &model.TranslationLink{
			LinkID:                uuid.New(),
			BaseFlashcardID:       baseID,
			TargetLanguage:        req.Language,
			TranslatedFlashcardID: translated.FlashcardID,
		}
		if err := s.linkRepo.Create(ctx, tx, link); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("TRANSLATION_EXISTS", "A translation for this language already exists.", "language", model.ErrConflict)
			}
			logger.Error("Failed to create translation link in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create translation link.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateTopicOf(ctx, userID, base)
	logger.Info("Translation created",
		"base_flashcard_id", baseID,
		"translated_flashcard_id", translated.FlashcardID,
		"language", req.Language,
	)
	return translated, nil
}

func (s *studyService) DeleteFlashcard(ctx context.Context, userID, flashcardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "flashcard_id", flashcardID)

	card, err := s.cardRepo.FindByID(ctx, s.db, userID, flashcardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load flashcard.", "", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A deleted translation target must not keep redirecting lookups.
		if err := s.linkRepo.DeleteByTranslatedID(ctx, tx, flashcardID); err != nil {
			logger.Error("Failed to delete translation link in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete translation link.", "", err)
		}
		if err := s.cardRepo.Delete(ctx, tx, userID, flashcardID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete flashcard in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete flashcard.", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateTopicOf(ctx, userID, card)
	logger.Info("Flashcard deleted")
	return nil
}

// invalidateTopicOf evicts the cached bundles for the topic the card belongs
// to, following the summary indirection when the card has no direct topic.
// Invalidation is best effort: an unresolvable topic is logged, not fatal,
// because the TTL bounds staleness anyway.
func (s *studyService) invalidateTopicOf(ctx context.Context, userID uuid.UUID, card *model.Flashcard) {
	if card.TopicID != nil {
		s.cache.Invalidate(*card.TopicID)
		return
	}
	if card.SummaryID == nil {
		return
	}
	summary, err := s.summaryRepo.FindByID(ctx, s.db, userID, *card.SummaryID)
	if err != nil {
		middleware.GetLogger(ctx).Warn("Could not resolve topic for cache invalidation",
			"error", err,
			"flashcard_id", card.FlashcardID,
		)
		return
	}
	s.cache.Invalidate(summary.TopicID)
}

func stateFromAttempt(a *model.Attempt) model.CardState {
	if a == nil {
		return model.CardState{New: true}
	}
	return model.CardState{
		EaseFactor:     a.EaseFactor,
		IntervalDays:   a.IntervalDays,
		Repetitions:    a.Repetitions,
		NextReviewDate: a.NextReviewDate,
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
