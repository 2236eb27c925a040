package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/auth"
	"bookshelf/internal/httpx"
	"bookshelf/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_RegisterUser(t *testing.T) {
	validBody := map[string]any{
		"username":   "ivan_p",
		"first_name": "Ivan",
		"last_name":  "Petrov",
		"email":      "ivan@example.com",
		"password":   "Password123!",
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		handler := NewHTTPHandler(NewService(mockRepo), testutil.TestSecret)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *User) error {
				assert.Equal(t, "ivan_p", u.Username)
				assert.NotEqual(t, "Password123!", u.Password) // stored hashed
				u.ID = 1
				return nil
			})

		w := httptest.NewRecorder()
		handler.RegisterUser(w, testutil.NewRequest(http.MethodPost, "/users/register", validBody))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := testutil.DecodeBody(w)
		data, _ := body["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["id"])
		assert.Equal(t, false, data["is_staff"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		handler := NewHTTPHandler(NewService(mockRepo), testutil.TestSecret)

		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ErrAlreadyExists)

		w := httptest.NewRecorder()
		handler.RegisterUser(w, testutil.NewRequest(http.MethodPost, "/users/register", validBody))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler := NewHTTPHandler(NewService(NewMockRepository(ctrl)), testutil.TestSecret)

		body := map[string]any{"username": "ivan_p", "email": "ivan@example.com", "password": "short"}
		w := httptest.NewRecorder()
		handler.RegisterUser(w, testutil.NewRequest(http.MethodPost, "/users/register", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_LoginUser(t *testing.T) {
	hash, err := auth.HashPassword("Password123!")
	require.NoError(t, err)
	stored := User{ID: 3, Username: "ivan_p", Password: hash, IsStaff: true}

	t.Run("success returns a parseable token with staff flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		handler := NewHTTPHandler(NewService(mockRepo), testutil.TestSecret)

		mockRepo.EXPECT().GetByUsername(gomock.Any(), "ivan_p").Return(stored, nil)

		w := httptest.NewRecorder()
		body := map[string]any{"username": "ivan_p", "password": "Password123!"}
		handler.LoginUser(w, testutil.NewRequest(http.MethodPost, "/users/login", body))

		require.Equal(t, http.StatusOK, w.Code)
		respBody := testutil.DecodeBody(w)
		data, _ := respBody["data"].(map[string]interface{})
		token, _ := data["access_token"].(string)
		require.NotEmpty(t, token)

		claims, err := auth.ParseToken(testutil.TestSecret, token)
		require.NoError(t, err)
		userID, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, int64(3), userID)
		assert.True(t, claims.Staff)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		handler := NewHTTPHandler(NewService(mockRepo), testutil.TestSecret)

		mockRepo.EXPECT().GetByUsername(gomock.Any(), "ivan_p").Return(stored, nil)

		w := httptest.NewRecorder()
		body := map[string]any{"username": "ivan_p", "password": "nope"}
		handler.LoginUser(w, testutil.NewRequest(http.MethodPost, "/users/login", body))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		handler := NewHTTPHandler(NewService(mockRepo), testutil.TestSecret)

		mockRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(User{}, ErrNotFound)

		w := httptest.NewRecorder()
		body := map[string]any{"username": "ghost", "password": "whatever"}
		handler.LoginUser(w, testutil.NewRequest(http.MethodPost, "/users/login", body))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHTTPHandler_GetCurrentUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		handler := NewHTTPHandler(NewService(mockRepo), testutil.TestSecret)

		mockRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(User{ID: 3, Username: "ivan_p"}, nil)

		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r = r.WithContext(httpx.ContextWithActor(r.Context(), 3, false))
		w := httptest.NewRecorder()
		handler.GetCurrentUser(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler := NewHTTPHandler(NewService(NewMockRepository(ctrl)), testutil.TestSecret)

		w := httptest.NewRecorder()
		handler.GetCurrentUser(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
