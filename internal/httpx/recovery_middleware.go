package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns a handler panic into a 500 envelope, unless the
// handler already started its response.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr, ok := w.(*statusRecorder)
		if !ok {
			sr = &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.Printf("panic recovered request_id=%s error=%v stack=%s", RequestIDFrom(r), rec, debug.Stack())
			if sr.wroteHeader {
				return
			}
			JSONError(sr, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}()
		next.ServeHTTP(sr, r)
	})
}
