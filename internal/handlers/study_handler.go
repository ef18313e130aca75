package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"studymentor/internal/middleware"
	"studymentor/internal/model"
	"studymentor/internal/service"
	"studymentor/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StudyHandler serves the read side: topic bundles and their due subsets.
type StudyHandler struct {
	service service.StudyService
	logger  *slog.Logger
}

func NewStudyHandler(s service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		service: s,
		logger:  logger,
	}
}

// GetBundle returns every flashcard in the topic with its scheduling state,
// due or not.
func (h *StudyHandler) GetBundle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBundle"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("User identity missing from context", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	topicID, appErr := parseUUIDParam(r, "topic_id")
	if appErr != nil {
		logger.Warn("Invalid topic ID in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	bundle, err := h.service.GetBundle(r.Context(), topicID, userID)
	if err != nil {
		logger.Error("Error getting bundle from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bundle retrieved successfully", slog.Int("count", len(bundle.Cards)))
	webutil.RespondWithJSON(w, http.StatusOK, bundle, logger)
}

// GetDue returns the reviewable slice of the topic's bundle at request time.
func (h *StudyHandler) GetDue(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDue"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("User identity missing from context", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	topicID, appErr := parseUUIDParam(r, "topic_id")
	if appErr != nil {
		logger.Warn("Invalid topic ID in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	due, err := h.service.GetDue(r.Context(), topicID, userID)
	if err != nil {
		logger.Error("Error getting due set from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Due set retrieved successfully", slog.Int("count", len(due.Due)))
	webutil.RespondWithJSON(w, http.StatusOK, due, logger)
}

// SubmitAttempt records a review rating against the card's base identity and
// returns the updated scheduling state.
func (h *StudyHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAttempt"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("User identity missing from context", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	flashcardID, appErr := parseUUIDParam(r, "flashcard_id")
	if appErr != nil {
		logger.Warn("Invalid flashcard ID in URL", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("flashcard_id", flashcardID.String()))

	var req model.SubmitAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.RecordAttempt(r.Context(), userID, flashcardID, req.Rating)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Flashcard not found", slog.Any("error", err))
		} else {
			logger.Error("Error recording attempt in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Attempt recorded successfully", slog.Int("rating", req.Rating))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// parseUUIDParam reads a UUID path parameter or produces the client-facing
// error for a malformed one.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, *model.AppError) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "Path parameter "+name+" is not a valid UUID.", name, model.ErrInvalidInput)
	}
	return id, nil
}
