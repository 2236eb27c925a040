package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"time"

	"bookshelf/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// TestSecret signs tokens in handler tests.
const TestSecret = "test-secret"

// GenerateTestToken generates a JWT token for testing.
func GenerateTestToken(secret string, userID int64, staff bool) string {
	token, _, _ := auth.GenerateToken(secret, userID, staff, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing.
func GenerateExpiredToken(secret string, userID int64) string {
	c := auth.Claims{
		Sub: strconv.FormatInt(userID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var r *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// DecodeBody decodes a recorded JSON response body into a generic map.
func DecodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
