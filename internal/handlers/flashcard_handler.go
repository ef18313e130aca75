package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"studymentor/internal/middleware"
	"studymentor/internal/model"
	"studymentor/internal/service"
	"studymentor/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// FlashcardHandler serves the write side: authoring cards, adding language
// variants, and deleting cards.
type FlashcardHandler struct {
	service service.StudyService
	logger  *slog.Logger
}

func NewFlashcardHandler(s service.StudyService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{
		service: s,
		logger:  logger,
	}
}

// PostFlashcard creates a manually authored flashcard under a topic.
func (h *FlashcardHandler) PostFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostFlashcard"))

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

	var req model.CreateFlashcardRequest
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

	card, err := h.service.CreateFlashcard(r.Context(), userID, topicID, &req)
	if err != nil {
		logger.Error("Error creating flashcard in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard created successfully", slog.String("flashcard_id", card.FlashcardID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// PostTranslation creates a language variant of an existing flashcard. The
// variant shares the original card's scheduling state.
func (h *FlashcardHandler) PostTranslation(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTranslation"))

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

	var req model.CreateTranslationRequest
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

	card, err := h.service.CreateTranslation(r.Context(), userID, flashcardID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			logger.Info("Flashcard not found", slog.Any("error", err))
		case errors.Is(err, model.ErrConflict):
			logger.Info("Translation already exists", slog.String("language", req.Language))
		default:
			logger.Error("Error creating translation in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Translation created successfully",
		slog.String("translated_flashcard_id", card.FlashcardID.String()),
		slog.String("language", req.Language),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// DeleteFlashcard removes a flashcard and any translation link pointing at it.
func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteFlashcard"))

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

	if err := h.service.DeleteFlashcard(r.Context(), userID, flashcardID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Flashcard not found", slog.Any("error", err))
		} else {
			logger.Error("Error deleting flashcard in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
