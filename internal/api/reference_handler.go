package api

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/service"
)

// ReferenceHandler serves topic and user reference data plus the API's
// self-description, health and metrics endpoints.
type ReferenceHandler struct {
	services  *service.Services
	endpoints map[string]interface{}
	log       zerolog.Logger
}

// NewReferenceHandler creates a new ReferenceHandler. The endpoint
// descriptor file is loaded once at startup.
func NewReferenceHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ReferenceHandler {
	h := &ReferenceHandler{
		services:  services,
		endpoints: map[string]interface{}{},
		log:       log.With().Str("handler", "reference").Logger(),
	}

	data, err := os.ReadFile(cfg.API.EndpointsFile)
	if err != nil {
		h.log.Warn().Err(err).Str("path", cfg.API.EndpointsFile).Msg("Endpoint descriptor not loaded")
		return h
	}
	if err := json.Unmarshal(data, &h.endpoints); err != nil {
		h.log.Warn().Err(err).Str("path", cfg.API.EndpointsFile).Msg("Endpoint descriptor is not valid JSON")
	}
	return h
}

// GetTopics handles GET /api/topics
func (h *ReferenceHandler) GetTopics(c *gin.Context) {
	topics, err := h.services.Topic.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// GetUsers handles GET /api/users
func (h *ReferenceHandler) GetUsers(c *gin.Context) {
	users, err := h.services.User.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetEndpoints handles GET /api with the static endpoint descriptor
func (h *ReferenceHandler) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": h.endpoints})
}

// HealthCheck returns the health status
func (h *ReferenceHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "news-api",
	})
}

// Metrics reports table counts
func (h *ReferenceHandler) Metrics(c *gin.Context) {
	articles, comments, err := h.services.Article.Counts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"database": gin.H{
			"articles": articles,
			"comments": comments,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
