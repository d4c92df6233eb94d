package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperr"
)

// respondError writes the error body for a failed request. Tagged errors
// carry their own status and message; anything else is a 500 and is logged
// without leaking its text to the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString("request_id")).
			Msg("Request failed")
	}
	c.JSON(status, gin.H{"msg": apperr.Message(err)})
}

// pathID parses an integer path parameter. A non-numeric id is a Bad
// Request, matching what the store's type coercion would report.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.ErrBadRequest
	}
	return id, nil
}
