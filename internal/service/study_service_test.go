package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"studymentor/internal/model"
	"studymentor/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.Run()
}

// testClock mirrors the injectable clock the service takes, advancing only
// when told to.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Flashcard{},
		&model.Summary{},
		&model.TranslationLink{},
		&model.Attempt{},
	))
	return db
}

type serviceFixture struct {
	svc     StudyService
	db      *gorm.DB
	clock   *testClock
	userID  uuid.UUID
	topicID uuid.UUID
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	db := setupTestDB(t)
	clock := newTestClock()
	linkRepo := repository.NewGormTranslationRepository()
	svc := NewStudyService(
		db,
		repository.NewGormFlashcardRepository(),
		repository.NewGormSummaryRepository(),
		linkRepo,
		repository.NewGormAttemptRepository(),
		NewIdentityResolver(linkRepo),
		60*time.Second,
		clock.Now,
	)
	return &serviceFixture{
		svc:     svc,
		db:      db,
		clock:   clock,
		userID:  uuid.New(),
		topicID: uuid.New(),
	}
}

func (f *serviceFixture) seedCard(t *testing.T, question, language string) *model.Flashcard {
	t.Helper()
	card := &model.Flashcard{
		FlashcardID: uuid.New(),
		UserID:      f.userID,
		TopicID:     &f.topicID,
		Question:    question,
		Answer:      "answer for " + question,
		Language:    language,
	}
	require.NoError(t, f.db.Create(card).Error)
	return card
}

func (f *serviceFixture) seedSummary(t *testing.T) *model.Summary {
	t.Helper()
	summary := &model.Summary{
		SummaryID: uuid.New(),
		TopicID:   f.topicID,
		UserID:    f.userID,
		Title:     "chapter summary",
	}
	require.NoError(t, f.db.Create(summary).Error)
	return summary
}

func TestStudyService_EmptyTopic(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	bundle, err := f.svc.GetBundle(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	assert.Empty(t, bundle.Cards)
	assert.False(t, bundle.HasEverStudied)

	due, err := f.svc.GetDue(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	assert.Empty(t, due.Due)
	assert.Nil(t, due.NextAvailableAt)
}

func TestStudyService_NewCardsAreDue(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.seedCard(t, "What is osmosis?", "en")
	f.seedCard(t, "What is diffusion?", "en")

	due, err := f.svc.GetDue(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	assert.Len(t, due.Due, 2)
	assert.Nil(t, due.NextAvailableAt)
	for _, card := range due.Due {
		assert.True(t, card.State.New)
	}
}

func TestStudyService_SummaryCardsIncludedAndDeduplicated(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	direct := f.seedCard(t, "direct card", "en")
	summary := f.seedSummary(t)

	viaSummary := &model.Flashcard{
		FlashcardID: uuid.New(),
		UserID:      f.userID,
		SummaryID:   &summary.SummaryID,
		Question:    "summary card",
		Answer:      "a",
		Language:    "en",
	}
	require.NoError(t, f.db.Create(viaSummary).Error)

	// Attached both directly and through the summary; must appear once.
	both := &model.Flashcard{
		FlashcardID: uuid.New(),
		UserID:      f.userID,
		TopicID:     &f.topicID,
		SummaryID:   &summary.SummaryID,
		Question:    "doubly linked card",
		Answer:      "a",
		Language:    "en",
	}
	require.NoError(t, f.db.Create(both).Error)

	bundle, err := f.svc.GetBundle(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	require.Len(t, bundle.Cards, 3)

	ids := make(map[uuid.UUID]int)
	for _, card := range bundle.Cards {
		ids[card.Flashcard.FlashcardID]++
	}
	assert.Equal(t, 1, ids[direct.FlashcardID])
	assert.Equal(t, 1, ids[viaSummary.FlashcardID])
	assert.Equal(t, 1, ids[both.FlashcardID])
}

func TestStudyService_OtherUsersCardsExcluded(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.seedCard(t, "mine", "en")

	other := &model.Flashcard{
		FlashcardID: uuid.New(),
		UserID:      uuid.New(),
		TopicID:     &f.topicID,
		Question:    "not mine",
		Answer:      "a",
		Language:    "en",
	}
	require.NoError(t, f.db.Create(other).Error)

	bundle, err := f.svc.GetBundle(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	require.Len(t, bundle.Cards, 1)
	assert.Equal(t, "mine", bundle.Cards[0].Flashcard.Question)
}

func TestStudyService_RecordAttempt_Validation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	card := f.seedCard(t, "q", "en")

	for _, rating := range []int{0, 5, -1} {
		_, err := f.svc.RecordAttempt(ctx, f.userID, card.FlashcardID, rating)
		require.Error(t, err, "rating %d", rating)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	}

	// No attempt row may exist after rejected ratings.
	var count int64
	require.NoError(t, f.db.Model(&model.Attempt{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStudyService_RecordAttempt_UnknownCard(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.RecordAttempt(ctx, f.userID, uuid.New(), 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestStudyService_SharedProgressAcrossLanguageVariants(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	base := f.seedCard(t, "What is mitosis?", "en")

	translated, err := f.svc.CreateTranslation(ctx, f.userID, base.FlashcardID, &model.CreateTranslationRequest{
		Language: "de",
		Question: "Was ist Mitose?",
		Answer:   "Zellteilung",
	})
	require.NoError(t, err)
	require.NotEqual(t, base.FlashcardID, translated.FlashcardID)

	// Rating the translated variant records against the base.
	resp, err := f.svc.RecordAttempt(ctx, f.userID, translated.FlashcardID, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Repetitions)
	assert.Equal(t, 1, resp.IntervalDays)

	var attempts []model.Attempt
	require.NoError(t, f.db.Find(&attempts).Error)
	require.Len(t, attempts, 1)
	assert.Equal(t, base.FlashcardID, attempts[0].FlashcardID)

	// Both variants surface the same scheduling state.
	bundle, err := f.svc.GetBundle(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	require.Len(t, bundle.Cards, 2)
	assert.True(t, bundle.HasEverStudied)
	for _, card := range bundle.Cards {
		assert.Equal(t, base.FlashcardID, card.BaseFlashcardID)
		assert.False(t, card.State.New)
		assert.WithinDuration(t, resp.NextReviewDate, card.State.NextReviewDate, time.Second)
	}

	// With every base beyond its review date, nothing is due and the unlock
	// time is reported once despite two variants.
	due, err := f.svc.GetDue(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	assert.Empty(t, due.Due)
	require.NotNil(t, due.NextAvailableAt)
	assert.WithinDuration(t, resp.NextReviewDate, *due.NextAvailableAt, time.Second)
}

func TestStudyService_DueBoundaryInclusive(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	card := f.seedCard(t, "q", "en")

	resp, err := f.svc.RecordAttempt(ctx, f.userID, card.FlashcardID, 3)
	require.NoError(t, err)

	// Just before the review date: locked.
	f.clock.Advance(resp.NextReviewDate.Sub(f.clock.Now()) - time.Second)
	due, err := f.svc.GetDue(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	assert.Empty(t, due.Due)

	// Exactly at the review date: due again.
	f.clock.Advance(time.Second)
	due, err = f.svc.GetDue(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	require.Len(t, due.Due, 1)
	assert.Nil(t, due.NextAvailableAt)
}

func TestStudyService_ReviewProgression(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	card := f.seedCard(t, "q", "en")

	// A failed first attempt keeps repetitions at zero and locks for a day.
	resp, err := f.svc.RecordAttempt(ctx, f.userID, card.FlashcardID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Repetitions)
	assert.Equal(t, 1, resp.IntervalDays)

	due, err := f.svc.GetDue(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	assert.Empty(t, due.Due)
	require.NotNil(t, due.NextAvailableAt)

	// A day later the card unlocks; two successes walk the 1 then 6 day steps.
	f.clock.Advance(24 * time.Hour)
	resp, err = f.svc.RecordAttempt(ctx, f.userID, card.FlashcardID, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Repetitions)
	assert.Equal(t, 1, resp.IntervalDays)

	f.clock.Advance(24 * time.Hour)
	resp, err = f.svc.RecordAttempt(ctx, f.userID, card.FlashcardID, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Repetitions)
	assert.Equal(t, 6, resp.IntervalDays)
}

func TestStudyService_AttemptsAreAppendOnly(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	card := f.seedCard(t, "q", "en")

	for i, rating := range []int{3, 1, 4} {
		_, err := f.svc.RecordAttempt(ctx, f.userID, card.FlashcardID, rating)
		require.NoError(t, err)
		f.clock.Advance(time.Duration(i+1) * 24 * time.Hour)
	}

	var count int64
	require.NoError(t, f.db.Model(&model.Attempt{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestStudyService_CreateTranslation_DuplicateLanguageConflicts(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	base := f.seedCard(t, "q", "en")

	req := &model.CreateTranslationRequest{Language: "fr", Question: "q?", Answer: "a"}
	_, err := f.svc.CreateTranslation(ctx, f.userID, base.FlashcardID, req)
	require.NoError(t, err)

	_, err = f.svc.CreateTranslation(ctx, f.userID, base.FlashcardID, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrConflict))

	// The conflicting card must not survive the rolled-back transaction.
	var count int64
	require.NoError(t, f.db.Model(&model.Flashcard{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestStudyService_TranslationOfTranslationPointsAtBase(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	base := f.seedCard(t, "q", "en")

	de, err := f.svc.CreateTranslation(ctx, f.userID, base.FlashcardID, &model.CreateTranslationRequest{
		Language: "de", Question: "q de", Answer: "a de",
	})
	require.NoError(t, err)

	// Translating the German variant must still link the new card to the
	// English base, keeping resolution a single hop.
	fr, err := f.svc.CreateTranslation(ctx, f.userID, de.FlashcardID, &model.CreateTranslationRequest{
		Language: "fr", Question: "q fr", Answer: "a fr",
	})
	require.NoError(t, err)

	var link model.TranslationLink
	require.NoError(t, f.db.Where("translated_flashcard_id = ?", fr.FlashcardID).First(&link).Error)
	assert.Equal(t, base.FlashcardID, link.BaseFlashcardID)
}

func TestStudyService_CreateFlashcard_UnknownSummary(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	missing := uuid.New()
	_, err := f.svc.CreateFlashcard(ctx, f.userID, f.topicID, &model.CreateFlashcardRequest{
		Question:  "q",
		Answer:    "a",
		Language:  "en",
		SummaryID: &missing,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestStudyService_DeleteFlashcard_RemovesLink(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	base := f.seedCard(t, "q", "en")

	de, err := f.svc.CreateTranslation(ctx, f.userID, base.FlashcardID, &model.CreateTranslationRequest{
		Language: "de", Question: "q de", Answer: "a de",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteFlashcard(ctx, f.userID, de.FlashcardID))

	var linkCount int64
	require.NoError(t, f.db.Model(&model.TranslationLink{}).Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	bundle, err := f.svc.GetBundle(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	require.Len(t, bundle.Cards, 1)
	assert.Equal(t, base.FlashcardID, bundle.Cards[0].Flashcard.FlashcardID)
}

func TestStudyService_WriteInvalidatesCachedBundle(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	card := f.seedCard(t, "q", "en")

	// Prime the cache, then record an attempt; the next read must reflect it
	// without waiting for the TTL.
	bundle, err := f.svc.GetBundle(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	require.True(t, bundle.Cards[0].State.New)

	_, err = f.svc.RecordAttempt(ctx, f.userID, card.FlashcardID, 3)
	require.NoError(t, err)

	bundle, err = f.svc.GetBundle(ctx, f.topicID, f.userID)
	require.NoError(t, err)
	assert.False(t, bundle.Cards[0].State.New)
	assert.True(t, bundle.HasEverStudied)
}
