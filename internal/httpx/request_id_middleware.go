package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware propagates the caller's X-Request-Id or assigns a new one.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), requestID)))
	})
}
