package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/blogforge/apiserver/internal/services"
	"github.com/blogforge/apiserver/internal/store"
	"github.com/blogforge/apiserver/types"
	"github.com/go-chi/chi/v5"
)

const (
	authorRole = "author"
	adminRole  = "admin"
)

// CategoryHandler provides HTTP handlers for categories.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRouter registers category routes on the given router. Writes
// are gated on role claims carried by the session token.
func CategoryRouter(r chi.Router, categoryService *services.CategoryService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewCategoryHandler(categoryService)

	r.Get("/", handler.ListCategories)
	r.With(authMiddleware, RequireRole(authorRole)).Post("/", handler.CreateCategory)
	r.Route("/{categoryID}", func(r chi.Router) {
		r.Get("/", handler.GetCategory)
		r.With(authMiddleware, RequireRole(authorRole)).Put("/", handler.UpdateCategory)
		r.With(authMiddleware, RequireRole(adminRole)).Delete("/", handler.DeleteCategory)
	})
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []types.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseCategoryID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, err := parseCategoryBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.categoryService.Create(r.Context(), types.Category{Name: req.Name, Slug: req.Slug})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "category slug already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseCategoryID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := parseCategoryBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.categoryService.Update(r.Context(), types.Category{ID: id, Name: req.Name, Slug: req.Slug})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "category not found")
		case errors.Is(err, store.ErrConflict):
			writeError(w, http.StatusConflict, "category slug already exists")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update category")
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseCategoryID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type CategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func parseCategoryBody(r *http.Request) (CategoryRequest, error) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return CategoryRequest{}, errors.New("invalid request")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	if req.Name == "" || req.Slug == "" {
		return CategoryRequest{}, errors.New("name and slug are required")
	}
	return req, nil
}

func parseCategoryID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "categoryID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid category id")
	}
	return id, nil
}
