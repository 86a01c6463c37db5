package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hybridge/blog-api/internal/domain/entity"
	repo "github.com/hybridge/blog-api/internal/domain/repository"
	"github.com/hybridge/blog-api/pkg/response"
	"github.com/hybridge/blog-api/pkg/validation"
)

// AuthorHandler exposes plain CRUD over the author resource repository.
type AuthorHandler struct {
	Repo   repo.AuthorRepository
	Logger *logrus.Logger
}

func NewAuthorHandler(r repo.AuthorRepository, logger *logrus.Logger) *AuthorHandler {
	return &AuthorHandler{Repo: r, Logger: logger}
}

type createAuthorRequest struct {
	Name string `json:"name" binding:"required"`
}

type patchAuthorRequest struct {
	Name *string `json:"name"`
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req createAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a := &entity.Author{Name: req.Name}
	if err := h.Repo.Create(c.Request.Context(), a); err != nil {
		h.Logger.WithError(err).Error("create author failed")
		response.Err(c, http.StatusInternalServerError, "could not create author")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list authors failed")
		response.Err(c, http.StatusInternalServerError, "could not list authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}

func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "author not found")
			return
		}
		h.Logger.WithError(err).Error("get author failed")
		response.Err(c, http.StatusInternalServerError, "could not fetch author")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AuthorHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req patchAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Repo.Update(c.Request.Context(), id, repo.AuthorPatch{Name: req.Name})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "author not found")
			return
		}
		h.Logger.WithError(err).Error("update author failed")
		response.Err(c, http.StatusInternalServerError, "could not update author")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "author not found")
			return
		}
		h.Logger.WithError(err).Error("delete author failed")
		response.Err(c, http.StatusInternalServerError, "could not delete author")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "author deleted"})
}
