package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jamstream/server/internal/domain"
	apperrors "github.com/jamstream/server/pkg/errors"
	"github.com/jamstream/server/pkg/httputil"
)

// handleError maps unexpected service errors to HTTP responses. Expected
// outcomes (soft statuses, in-payload errors) are produced by the
// individual handlers; anything reaching here is either a request-shape
// problem or an infrastructure failure.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredential):
		httputil.ErrorResponse(c, apperrors.ErrInvalidCredentials)

	case errors.Is(err, domain.ErrInvalidPlaylistName),
		errors.Is(err, domain.ErrPlaylistNameTooLong),
		errors.Is(err, domain.ErrPlaylistDescriptionTooLong),
		errors.Is(err, domain.ErrInvalidAction):
		httputil.ErrorResponse(c, apperrors.ErrValidationFailed.WithDetails(err.Error()))

	default:
		httputil.ErrorResponse(c, err)
	}
}
