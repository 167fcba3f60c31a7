package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mahathirrr/portfolio/internal/application/session"
	authUC "github.com/mahathirrr/portfolio/internal/application/usecase/auth"
	"github.com/mahathirrr/portfolio/internal/domain/profile"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/auth"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type memoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]*profile.Profile
}

func (r *memoryProfileRepo) FindByEmail(_ context.Context, email string) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[email]
	if !ok {
		return nil, apperror.NewNotFound("profile", email)
	}
	return p, nil
}

func (r *memoryProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("profile", id.String())
}

func (r *memoryProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.Email] = p
	return nil
}

const testCookieName = "portfolio_session"

type AuthE2ETestSuite struct {
	suite.Suite
	Router    *gin.Engine
	testEmail string
	testPass  string
}

func (s *AuthE2ETestSuite) SetupTest() {
	appLogger := logger.NewNop()

	s.testEmail = "owner@example.com"
	s.testPass = "e2e_test_password_123"
	hash, err := auth.HashPassword(s.testPass)
	s.Require().NoError(err)

	repo := &memoryProfileRepo{profiles: map[string]*profile.Profile{}}
	s.Require().NoError(repo.Upsert(context.Background(), &profile.Profile{
		ID:           uuid.New(),
		Email:        s.testEmail,
		Role:         profile.RoleAdmin,
		PasswordHash: hash,
	}))

	sessions := session.NewManager(session.NewMemoryStore(time.Minute), time.Hour, appLogger)
	jwtSvc := auth.NewJWTService("e2e-secret", time.Hour)

	authHandler := NewAuthHandler(
		authUC.NewLoginUseCase(repo, sessions, jwtSvc, appLogger),
		authUC.NewLogoutUseCase(sessions, appLogger),
		authUC.NewGetSessionUseCase(sessions),
		CookieOptions{Name: testCookieName},
		appLogger,
	)
	authMiddleware := AuthMiddleware(jwtSvc, sessions, testCookieName, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)
			admin.POST("/auth/logout", authMiddleware, authHandler.Logout)
			admin.GET("/auth/session", authMiddleware, authHandler.Session)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.GET("/health-auth", func(c *gin.Context) {
					c.JSON(http.StatusOK, gin.H{"status": "OK"})
				})
			}
		}
	}
	router.GET("/admin", WebAuthGate(jwtSvc, sessions, testCookieName), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	s.Router = router
}

func (s *AuthE2ETestSuite) login(email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"email": email, "password": password})
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *AuthE2ETestSuite) loginToken() string {
	w := s.login(s.testEmail, s.testPass)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	token, ok := resp["access_token"].(string)
	s.Require().True(ok)
	s.Require().NotEmpty(token)
	return token
}

func (s *AuthE2ETestSuite) get(path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *AuthE2ETestSuite) TestLogin_Success_SetsCookie() {
	w := s.login(s.testEmail, s.testPass)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "Bearer", resp["token_type"])
	assert.NotEmpty(s.T(), resp["access_token"])

	cookies := w.Result().Cookies()
	s.Require().Len(cookies, 1)
	assert.Equal(s.T(), testCookieName, cookies[0].Name)
	assert.True(s.T(), cookies[0].HttpOnly)
	assert.Equal(s.T(), resp["access_token"], cookies[0].Value)
}

func (s *AuthE2ETestSuite) TestLogin_FailuresLookIdentical() {
	wrongPass := s.login(s.testEmail, "wrong_password")
	unknownEmail := s.login("nobody@example.com", s.testPass)
	empty := s.login("", "")

	assert.Equal(s.T(), http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(s.T(), http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(s.T(), http.StatusUnauthorized, empty.Code)
	assert.JSONEq(s.T(), wrongPass.Body.String(), unknownEmail.Body.String())
	assert.JSONEq(s.T(), wrongPass.Body.String(), empty.Body.String())
	assert.Contains(s.T(), wrongPass.Body.String(), apperror.InvalidLoginMessage)
}

func (s *AuthE2ETestSuite) TestProtectedRoute_NoToken() {
	w := s.get("/api/admin/health-auth", "")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *AuthE2ETestSuite) TestProtectedRoute_InvalidToken() {
	w := s.get("/api/admin/health-auth", "this.is.a.bad.token")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *AuthE2ETestSuite) TestProtectedRoute_BearerToken() {
	token := s.loginToken()

	w := s.get("/api/admin/health-auth", token)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Contains(s.T(), w.Body.String(), `"status":"OK"`)
}

func (s *AuthE2ETestSuite) TestProtectedRoute_Cookie() {
	token := s.loginToken()

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/health-auth", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *AuthE2ETestSuite) TestSession_ReportsAuthenticated() {
	token := s.loginToken()

	w := s.get("/api/admin/auth/session", token)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), string(session.StateAuthenticated), resp["state"])
	sess, ok := resp["session"].(map[string]any)
	s.Require().True(ok)
	assert.Equal(s.T(), s.testEmail, sess["email"])
}

func (s *AuthE2ETestSuite) TestLogout_RevokesToken() {
	token := s.loginToken()

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusNoContent, w.Code)

	after := s.get("/api/admin/health-auth", token)
	assert.Equal(s.T(), http.StatusUnauthorized, after.Code)
}

func (s *AuthE2ETestSuite) TestAdminPage_RedirectsWhenSignedOut() {
	w := s.get("/admin", "")
	assert.Equal(s.T(), http.StatusFound, w.Code)
	assert.Equal(s.T(), AdminLoginPath, w.Header().Get("Location"))

	token := s.loginToken()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	ok := httptest.NewRecorder()
	s.Router.ServeHTTP(ok, req)
	assert.Equal(s.T(), http.StatusOK, ok.Code)
}

func TestAuthE2E(t *testing.T) {
	suite.Run(t, new(AuthE2ETestSuite))
}
