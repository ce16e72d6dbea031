package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jamstream/server/internal/service"
	"github.com/jamstream/server/pkg/httputil"
	"github.com/jamstream/server/pkg/logger"
)

// SearchHandler serves the cross-entity search endpoint.
type SearchHandler struct {
	service *service.SearchService
	log     logger.Logger
}

func NewSearchHandler(service *service.SearchService, log logger.Logger) *SearchHandler {
	return &SearchHandler{service: service, log: log}
}

type searchRequest struct {
	Query string `json:"q"`
}

// Search runs a substring search across all entity kinds. Queries shorter
// than the minimum length are rejected without touching storage; the
// rejection is a 200 so clients can surface the detail message as-is.
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"detail": "Minimum length must be 2 characters"})
		return
	}

	result, err := h.service.Search(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, service.ErrQueryTooShort) {
			c.JSON(http.StatusOK, gin.H{"detail": "Minimum length must be 2 characters"})
			return
		}
		h.log.Error("search failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.Err(err),
		)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
