package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/application/session"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/auth"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

const (
	GinContextKeySession = "session"

	AdminLoginPath = "/admin/login"
)

// SessionResolver is the part of session.Manager the middleware needs.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (session.State, *session.Session)
}

// PageInvalidator drops cached pages after an admin write.
type PageInvalidator interface {
	Invalidate(ctx context.Context) error
}

// tokenFromRequest prefers the Authorization header over the session cookie.
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookieName == "" {
		return ""
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

func resolveSession(c *gin.Context, jwtSvc *auth.JWTService, sessions SessionResolver, cookieName string) (*session.Session, error) {
	tokenString := tokenFromRequest(c, cookieName)
	if tokenString == "" {
		return nil, apperror.NewUnauthorized("authorization token is required", nil)
	}
	claims, err := jwtSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token", err)
	}
	state, s := sessions.Resolve(c.Request.Context(), claims.SessionID)
	if state != session.StateAuthenticated {
		return nil, apperror.NewUnauthorized("session expired or revoked", nil)
	}
	return s, nil
}

func AuthMiddleware(jwtSvc *auth.JWTService, sessions SessionResolver, cookieName string, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := resolveSession(c, jwtSvc, sessions, cookieName)
		if err != nil {
			log.Debug("Rejected unauthenticated request", zap.String("path", c.Request.URL.Path))
			c.Error(err)
			c.Abort()
			return
		}
		c.Set(GinContextKeySession, s)
		c.Next()
	}
}

// WebAuthGate guards the /admin page and redirects anonymous visitors to the login page.
func WebAuthGate(jwtSvc *auth.JWTService, sessions SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := resolveSession(c, jwtSvc, sessions, cookieName)
		if err != nil {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}
		c.Set(GinContextKeySession, s)
		c.Next()
	}
}

func GetSessionFromGinContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(GinContextKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok && s != nil
}

func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Skip if a handler or an inner ErrorMiddleware already wrote the response.
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		} else {
			log.Warn("Request rejected",
				zap.Int("status", status),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		c.JSON(status, apperror.ToJSON(err))
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// InvalidatePages runs after every successful admin write.
func InvalidatePages(pages PageInvalidator, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := pages.Invalidate(c.Request.Context()); err != nil {
			log.Warn("Failed to invalidate page cache", zap.Error(err))
		}
	}
}
