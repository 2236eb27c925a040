package relation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type patchReq struct {
	Like        *bool `json:"like"`
	InBookmarks *bool `json:"in_bookmarks"`
	Rate        *int  `json:"rate" validate:"omitempty,min=1,max=5"`
}

// Patch handles PATCH /relations/{book_id}: upserts the caller's
// relation to the book and returns its current state. The book's
// rating is already recomputed by the time the response is written.
func (h *HTTPHandler) Patch(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := httpx.ActorFrom(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusForbidden, "permission_denied", "You do not have permission to perform this action.", nil)
		return
	}

	bookID, err := strconv.ParseInt(r.PathValue("book_id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	var req patchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	rel, err := h.service.Apply(r.Context(), userID, bookID, Patch{
		Like:        req.Like,
		InBookmarks: req.InBookmarks,
		Rate:        req.Rate,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrInvalidRate):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
				{Field: "rate", Message: "rate must be between 1 and 5"},
			})
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, rel, nil)
}
