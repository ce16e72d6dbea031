package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jamstream/server/internal/domain"
	"github.com/jamstream/server/internal/service"
	"github.com/jamstream/server/pkg/httputil"
	"github.com/jamstream/server/pkg/logger"
)

// DisallowedCountryRoute is where gated requests are redirected.
const DisallowedCountryRoute = "/disallowed-country"

// RegisterHandler serves the signup pages behind the country gate.
type RegisterHandler struct {
	service      *service.RegistrationService
	successRoute string
	log          logger.Logger
}

// NewRegisterHandler creates a register handler. successRoute may be a
// bare route or a route with trailing arguments (see redirect).
func NewRegisterHandler(service *service.RegistrationService, successRoute string, log logger.Logger) *RegisterHandler {
	return &RegisterHandler{
		service:      service,
		successRoute: successRoute,
		log:          log,
	}
}

// gate resolves the requester's country before any form processing and
// reports whether dispatch may continue. Denied requests are redirected
// with no side effects.
func (h *RegisterHandler) gate(c *gin.Context) bool {
	ip := httputil.ClientIP(c)
	if h.service.CountryAllowed(ip) {
		return true
	}

	h.log.Info("registration denied by country gate",
		logger.String("request_id", httputil.GetRequestID(c)),
		logger.String("ip", ip),
	)
	c.Redirect(http.StatusFound, DisallowedCountryRoute)
	c.Abort()
	return false
}

// ShowForm renders the signup form.
func (h *RegisterHandler) ShowForm(c *gin.Context) {
	if !h.gate(c) {
		return
	}
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// Submit validates the signup form and creates the profile.
func (h *RegisterHandler) Submit(c *gin.Context) {
	if !h.gate(c) {
		return
	}

	form := &domain.RegistrationForm{
		Username:  c.PostForm("username"),
		Email:     c.PostForm("email"),
		Password1: c.PostForm("password1"),
		Password2: c.PostForm("password2"),
	}

	profile, fieldErrs, err := h.service.Register(c.Request.Context(), form)
	if err != nil {
		h.log.Error("registration failed",
			logger.String("request_id", httputil.GetRequestID(c)),
			logger.Err(err),
		)
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"errors": map[string]string{"form": "something went wrong, please try again"},
			"form":   form,
		})
		return
	}
	if len(fieldErrs) > 0 {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"errors": fieldErrs,
			"form":   form,
		})
		return
	}

	h.log.Info("profile registered",
		logger.String("request_id", httputil.GetRequestID(c)),
		logger.String("username", profile.Username),
	)
	redirect(c, h.successRoute)
}

// Disallowed renders the disallowed-country page.
func (h *RegisterHandler) Disallowed(c *gin.Context) {
	c.HTML(http.StatusOK, "disallowed_country.html", gin.H{})
}

// Index renders the landing page used as the default success route.
func (h *RegisterHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// redirect dispatches to a bare route ("/") or a route with arguments
// ("/profiles", 42 -> "/profiles/42").
func redirect(c *gin.Context, route string, args ...interface{}) {
	target := route
	for _, arg := range args {
		target = strings.TrimRight(target, "/") + fmt.Sprintf("/%v", arg)
	}
	c.Redirect(http.StatusFound, target)
}
