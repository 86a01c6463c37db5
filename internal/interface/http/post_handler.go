package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hybridge/blog-api/internal/domain/entity"
	repo "github.com/hybridge/blog-api/internal/domain/repository"
	"github.com/hybridge/blog-api/pkg/response"
	"github.com/hybridge/blog-api/pkg/validation"
)

// PostHandler exposes plain CRUD over the post resource repository.
type PostHandler struct {
	Repo   repo.PostRepository
	Logger *logrus.Logger
}

func NewPostHandler(r repo.PostRepository, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Repo: r, Logger: logger}
}

type createPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	AuthorID *int64 `json:"author_id"`
}

type patchPostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	AuthorID *int64  `json:"author_id"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p := &entity.Post{Title: req.Title, Content: req.Content, AuthorID: req.AuthorID}
	if err := h.Repo.Create(c.Request.Context(), p); err != nil {
		h.Logger.WithError(err).Error("create post failed")
		response.Err(c, http.StatusInternalServerError, "could not create post")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Err(c, http.StatusInternalServerError, "could not list posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "post not found")
			return
		}
		h.Logger.WithError(err).Error("get post failed")
		response.Err(c, http.StatusInternalServerError, "could not fetch post")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PostHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req patchPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Repo.Update(c.Request.Context(), id, repo.PostPatch{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "post not found")
			return
		}
		h.Logger.WithError(err).Error("update post failed")
		response.Err(c, http.StatusInternalServerError, "could not update post")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "post not found")
			return
		}
		h.Logger.WithError(err).Error("delete post failed")
		response.Err(c, http.StatusInternalServerError, "could not delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
