package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookshelf/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r)
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-Id"))
	})

	t.Run("propagates a caller-supplied id", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r)
		}))

		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.Header.Set("X-Request-Id", "abc-123")
		h.ServeHTTP(httptest.NewRecorder(), r)

		assert.Equal(t, "abc-123", seen)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestAuthenticate(t *testing.T) {
	secret := "test-secret"

	capture := func(userID *int64, staff *bool, ok *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*userID, *staff, *ok = ActorFrom(r)
		})
	}

	t.Run("valid token attaches the actor", func(t *testing.T) {
		token, _, err := auth.GenerateToken(secret, 7, true, time.Hour)
		require.NoError(t, err)

		var userID int64
		var staff, ok bool
		h := Authenticate(secret)(capture(&userID, &staff, &ok))

		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), r)

		require.True(t, ok)
		assert.Equal(t, int64(7), userID)
		assert.True(t, staff)
	})

	t.Run("missing token passes through anonymously", func(t *testing.T) {
		var userID int64
		var staff, ok bool
		h := Authenticate(secret)(capture(&userID, &staff, &ok))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.False(t, ok)
	})

	t.Run("garbage token passes through anonymously", func(t *testing.T) {
		var userID int64
		var staff, ok bool
		h := Authenticate(secret)(capture(&userID, &staff, &ok))

		r := httptest.NewRequest(http.MethodGet, "/books", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		h.ServeHTTP(httptest.NewRecorder(), r)

		assert.False(t, ok)
	})
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodPost, "/books", nil)
	r.ContentLength = 100
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
