package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/service"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// GetArticles handles GET /api/articles
// Optional query params: sort_by, order, topic
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	ctx := c.Request.Context()

	articles, err := h.services.Article.List(ctx,
		c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.services.Article.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// patchArticleRequest carries the vote delta. inc_votes stays untyped so
// the service owns the numeric check.
type patchArticleRequest struct {
	IncVotes interface{} `json:"inc_votes"`
}

// PatchArticleByID handles PATCH /api/articles/:article_id
// Responds with the bare updated article, not an envelope.
func (h *ArticleHandler) PatchArticleByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req patchArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, apperr.ErrBadRequest)
		return
	}

	article, err := h.services.Article.IncrementVotes(ctx, id, req.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, article)
}
