package middleware

import (
	"context"
	"net/http"

	"studymentor/internal/model"
	"studymentor/internal/webutil"

	"github.com/google/uuid"
)

// UserContextMiddleware extracts the caller's user ID from the X-User-ID
// header and stores it in the request context. Authentication itself happens
// upstream; this service only scopes data by the identity it is handed.
func UserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("Missing X-User-ID header")
			appErr := model.NewAppError("UNAUTHORIZED", "Missing X-User-ID header.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("Invalid X-User-ID header", "value", userIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "Invalid X-User-ID header format.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the user ID stored by UserContextMiddleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "User identity missing from request context.", "", model.ErrInternalServer)
	}
	return value, nil
}
