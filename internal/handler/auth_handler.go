package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jamstream/server/internal/service"
	"github.com/jamstream/server/pkg/httputil"
	"github.com/jamstream/server/pkg/logger"
)

// AuthHandler issues tokens for registered profiles.
type AuthHandler struct {
	service *service.AuthService
	log     logger.Logger
}

func NewAuthHandler(service *service.AuthService, log logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges a username/password pair for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.log.Warn("login failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.String("username", req.Username),
			logger.Err(err),
		)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
