package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// GetCommentsByArticle handles GET /api/articles/:article_id/comments
func (h *CommentHandler) GetCommentsByArticle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comments, err := h.services.Comment.ListByArticle(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostComment handles POST /api/articles/:article_id/comments
// Responds with the bare created comment, including generated fields.
func (h *CommentHandler) PostComment(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	// Absent fields bind to nil and are left for the store's NOT NULL
	// constraints rather than being checked here.
	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, h.log, apperr.ErrBadRequest)
		return
	}

	comment, err := h.services.Comment.Add(ctx, id, input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c, "comment_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Comment.Remove(ctx, id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
