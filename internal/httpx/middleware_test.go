package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.Header.Set(RequestIDHeader, "abc")
		handler.ServeHTTP(w, r)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Run("panic before write", func(t *testing.T) {
		handler := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	})

	t.Run("panic after write keeps status", func(t *testing.T) {
		handler := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			panic("boom")
		}))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestAccessLogMiddleware_PassesThrough(t *testing.T) {
	handler := AccessLogMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hi"))
	}))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "hi", w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	handler := CORSMiddleware([]string{"http://localhost:5173"})(okHandler())

	t.Run("allowed origin", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/books", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(1024)(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/books", bytes.NewBuffer(make([]byte, 512))))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/books", bytes.NewBuffer(make([]byte, 2048))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	Chain(okHandler(), mw("outer"), mw("inner")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}
