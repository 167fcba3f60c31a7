package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahathirrr/portfolio/internal/application/usecase/auth"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	loginUseCase      *auth.LoginUseCase
	logoutUseCase     *auth.LogoutUseCase
	getSessionUseCase *auth.GetSessionUseCase
	cookie            CookieOptions
	logger            logger.Logger
}

func NewAuthHandler(
	loginUC *auth.LoginUseCase,
	logoutUC *auth.LogoutUseCase,
	getSessionUC *auth.GetSessionUseCase,
	cookie CookieOptions,
	log logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:      loginUC,
		logoutUseCase:     logoutUC,
		getSessionUseCase: getSessionUC,
		cookie:            cookie,
		logger:            log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidLogin(err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	maxAge := int(output.Session.ExpiresAt.Sub(output.Session.CreatedAt).Seconds())
	h.setCookie(c, output.AccessToken, maxAge)
	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
		"token_type":   "Bearer",
		"expires_at":   output.Session.ExpiresAt,
		"session":      output.Session,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}
	if err := h.logoutUseCase.Execute(c.Request.Context(), s.ID); err != nil {
		c.Error(err)
		return
	}
	h.setCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Session(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}
	output, err := h.getSessionUseCase.Execute(c.Request.Context(), s.ID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":   output.State,
		"session": output.Session,
	})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	if h.cookie.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
