package book

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

type bookReq struct {
	Name       string `json:"name" validate:"required,max=255"`
	Price      string `json:"price" validate:"required,price"`
	AuthorName string `json:"author_name" validate:"required,max=255"`
}

func permissionDenied(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, r, http.StatusForbidden, "permission_denied", "You do not have permission to perform this action.", nil)
}

// List handles GET /books with price/search/ordering query params.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q := Query{
		Price:    r.URL.Query().Get("price"),
		Search:   r.URL.Query().Get("search"),
		Ordering: r.URL.Query().Get("ordering"),
	}

	if q.Price != "" {
		if _, err := strconv.ParseFloat(q.Price, 64); err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
				{Field: "price", Message: "price must be a number"},
			})
			return
		}
	}

	books, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, books, map[string]any{"count": len(books)})
}

// Get handles GET /books/{id}.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, b, nil)
}

// Create handles POST /books. The caller becomes the owner.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		permissionDenied(w, r)
		return
	}

	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	b, err := h.service.Create(r.Context(), actor, Input{Name: req.Name, Price: req.Price, AuthorName: req.AuthorName})
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, b)
}

// Update handles PUT /books/{id}, a full replace of the writable fields.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		permissionDenied(w, r)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	b, err := h.service.Update(r.Context(), actor, id, Input{Name: req.Name, Price: req.Price, AuthorName: req.AuthorName})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrForbidden):
			permissionDenied(w, r)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, b, nil)
}

// Delete handles DELETE /books/{id}.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		permissionDenied(w, r)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrForbidden):
			permissionDenied(w, r)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessNoContent(w)
}

func actorFrom(r *http.Request) (Actor, bool) {
	id, staff, ok := httpx.ActorFrom(r)
	if !ok {
		return Actor{}, false
	}
	return Actor{ID: id, Staff: staff}, true
}
