// Package api exposes the post store over HTTP.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/mathildeew/posts-api/internal/store"
)

// Handler holds the store the routes operate on.
type Handler struct {
	store store.Store
}

// NewRouter mounts the posts routes on a chi router.
func NewRouter(s store.Store) *chi.Mux {
	h := &Handler{store: s}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Post("/", h.CreatePost)
		r.Get("/{id}", h.GetPost)
		r.Put("/{id}", h.UpdatePost)
		r.Patch("/{id}", h.UpdatePost)
		r.Delete("/{id}", h.DeletePost)
	})

	return r
}

// postRequest is the body of create and update requests.
type postRequest struct {
	Title string `json:"title"`
}

// errResponse is the JSON error body written for every failure.
type errResponse struct {
	Msg string `json:"msg"`
}

// ListPosts handles GET /api/posts. A positive ?limit=N truncates the list;
// an absent, non-numeric or non-positive limit returns the full collection.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	posts, err := h.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Server error")
		return
	}
	render.JSON(w, r, posts)
}

// GetPost handles GET /api/posts/{id}.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	post, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			writeError(w, r, http.StatusNotFound, fmt.Sprintf("A post with the id of %d was not found", id))
			return
		}
		writeError(w, r, http.StatusInternalServerError, "Server error")
		return
	}
	render.JSON(w, r, post)
}

// CreatePost handles POST /api/posts. On success it responds 201 with the
// full updated collection, not just the created entry.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Please include a title")
		return
	}
	if _, err := h.store.Create(r.Context(), req.Title); err != nil {
		if errors.Is(err, store.ErrTitleRequired) {
			writeError(w, r, http.StatusBadRequest, "Please include a title")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "Server error")
		return
	}
	posts, err := h.store.List(r.Context(), 0)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Server error")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, posts)
}

// UpdatePost handles PUT and PATCH /api/posts/{id}.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	var req postRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Please include a title")
		return
	}
	post, err := h.store.Update(r.Context(), id, req.Title)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			writeError(w, r, http.StatusNotFound, fmt.Sprintf("Post with %d is not found", id))
			return
		}
		writeError(w, r, http.StatusInternalServerError, "Server error")
		return
	}
	render.JSON(w, r, post)
}

// DeletePost handles DELETE /api/posts/{id}. The removed post is echoed back.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	post, err := h.store.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			writeError(w, r, http.StatusNotFound, fmt.Sprintf("Post with %d is not found", id))
			return
		}
		writeError(w, r, http.StatusInternalServerError, "Server error")
		return
	}
	render.JSON(w, r, post)
}

// postID parses the {id} route parameter, writing a 400 on failure.
func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid post id")
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errResponse{Msg: msg})
}
