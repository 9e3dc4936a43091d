package handlers

import (
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
	defaultPage  = 1
	defaultLimit = 25
	maxLimit     = 100
)

// PostHandler provides the read-only HTTP surface for posts.
type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRouter registers post routes on the given router.
func PostRouter(r chi.Router, postService *services.PostService) {
	handler := NewPostHandler(postService)

	r.Get("/", handler.ListPosts)
	r.Get("/{postID}", handler.GetPost)
	r.Get("/category/{categorySlug}", handler.ListPostsByCategory)
}

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, total, err := h.postService.List(r.Context(), offset, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	writeJSON(w, http.StatusOK, newPostListResponse(items, page, limit, total))
}

func (h *PostHandler) ListPostsByCategory(w http.ResponseWriter, r *http.Request) {
	categorySlug := strings.TrimSpace(chi.URLParam(r, "categorySlug"))
	if categorySlug == "" {
		writeError(w, http.StatusBadRequest, "invalid category slug")
		return
	}

	page, limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, total, err := h.postService.ListByCategory(r.Context(), categorySlug, offset, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	writeJSON(w, http.StatusOK, newPostListResponse(items, page, limit, total))
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "postID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// PostListResponse is the paginated list response payload.
type PostListResponse struct {
	Items []types.PostSummary `json:"items"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
	Total int                 `json:"total"`
}

func newPostListResponse(items []types.PostSummary, page, limit, total int) PostListResponse {
	if items == nil {
		items = []types.PostSummary{}
	}
	return PostListResponse{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}
}

func parsePagination(r *http.Request) (page, limit, offset int, err error) {
	page = defaultPage
	limit = defaultLimit

	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, 0, errors.New("invalid page")
		}
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, 0, errors.New("invalid limit")
		}
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	offset = (page - 1) * limit
	return page, limit, offset, nil
}
