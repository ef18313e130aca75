package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studymentor/internal/handlers"
	"studymentor/internal/middleware"
	"studymentor/internal/model"
	"studymentor/internal/service/mocks"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.Run()
}

// newRouter builds the route layout the handlers are mounted under in
// production, with the user context middleware in front.
func newRouter(svc *mocks.StudyService) *chi.Mux {
	studyHandler := handlers.NewStudyHandler(svc, nil)
	cardHandler := handlers.NewFlashcardHandler(svc, nil)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.UserContextMiddleware)
		r.Get("/topics/{topic_id}/flashcards/bundle", studyHandler.GetBundle)
		r.Get("/topics/{topic_id}/flashcards/due", studyHandler.GetDue)
		r.Post("/topics/{topic_id}/flashcards", cardHandler.PostFlashcard)
		r.Post("/flashcards/{flashcard_id}/attempts", studyHandler.SubmitAttempt)
		r.Post("/flashcards/{flashcard_id}/translations", cardHandler.PostTranslation)
		r.Delete("/flashcards/{flashcard_id}", cardHandler.DeleteFlashcard)
	})
	return r
}

func createRequest(t *testing.T, method, target string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

func TestStudyHandler_GetBundle(t *testing.T) {
	userID := uuid.New()
	topicID := uuid.New()
	bundle := &model.Bundle{
		TopicID: topicID,
		UserID:  userID,
		Cards: []model.CardView{
			{
				Flashcard:       model.Flashcard{FlashcardID: uuid.New(), Question: "q", Answer: "a", Language: "en"},
				BaseFlashcardID: uuid.New(),
				State:           model.CardState{New: true},
			},
		},
	}

	tests := []struct {
		name           string
		target         string
		userID         *uuid.UUID
		setupMock      func(m *mocks.StudyService)
		expectedStatus int
	}{
		{
			name:   "success",
			target: "/api/v1/topics/" + topicID.String() + "/flashcards/bundle",
			userID: &userID,
			setupMock: func(m *mocks.StudyService) {
				m.On("GetBundle", mock.Anything, topicID, userID).Return(bundle, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing user header",
			target:         "/api/v1/topics/" + topicID.String() + "/flashcards/bundle",
			userID:         nil,
			setupMock:      func(m *mocks.StudyService) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed topic id",
			target:         "/api/v1/topics/not-a-uuid/flashcards/bundle",
			userID:         &userID,
			setupMock:      func(m *mocks.StudyService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "service failure",
			target: "/api/v1/topics/" + topicID.String() + "/flashcards/bundle",
			userID: &userID,
			setupMock: func(m *mocks.StudyService) {
				m.On("GetBundle", mock.Anything, topicID, userID).Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.StudyService)
			tc.setupMock(mockService)
			router := newRouter(mockService)

			req := createRequest(t, "GET", tc.target, nil, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var got model.Bundle
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, bundle.TopicID, got.TopicID)
				assert.Len(t, got.Cards, 1)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestStudyHandler_GetDue(t *testing.T) {
	userID := uuid.New()
	topicID := uuid.New()
	unlock := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	due := &model.DueSet{
		Due:             []model.CardView{},
		NextAvailableAt: &unlock,
	}

	mockService := new(mocks.StudyService)
	mockService.On("GetDue", mock.Anything, topicID, userID).Return(due, nil).Once()
	router := newRouter(mockService)

	req := createRequest(t, "GET", "/api/v1/topics/"+topicID.String()+"/flashcards/due", nil, &userID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got model.DueSet
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Empty(t, got.Due)
	require.NotNil(t, got.NextAvailableAt)
	assert.True(t, unlock.Equal(*got.NextAvailableAt))
	mockService.AssertExpectations(t)
}

func TestStudyHandler_SubmitAttempt(t *testing.T) {
	userID := uuid.New()
	flashcardID := uuid.New()
	resp := &model.AttemptResponse{
		NextReviewDate: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		IntervalDays:   1,
		EaseFactor:     250,
		Repetitions:    1,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.StudyService)
		expectedStatus int
	}{
		{
			name: "success",
			body: model.SubmitAttemptRequest{Rating: 3},
			setupMock: func(m *mocks.StudyService) {
				m.On("RecordAttempt", mock.Anything, userID, flashcardID, 3).Return(resp, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rating out of range rejected before the service",
			body:           model.SubmitAttemptRequest{Rating: 5},
			setupMock:      func(m *mocks.StudyService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           map[string]interface{}{"rating": "three"},
			setupMock:      func(m *mocks.StudyService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown flashcard",
			body: model.SubmitAttemptRequest{Rating: 3},
			setupMock: func(m *mocks.StudyService) {
				m.On("RecordAttempt", mock.Anything, userID, flashcardID, 3).
					Return(nil, model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.StudyService)
			tc.setupMock(mockService)
			router := newRouter(mockService)

			req := createRequest(t, "POST", "/api/v1/flashcards/"+flashcardID.String()+"/attempts", tc.body, &userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				var got model.AttemptResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, resp.IntervalDays, got.IntervalDays)
				assert.Equal(t, resp.Repetitions, got.Repetitions)
			}
			mockService.AssertExpectations(t)
		})
	}
}
