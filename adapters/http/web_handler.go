package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mahathirrr/portfolio/pkg/apperror"
)

// WebHandler serves the built SPA shell.
type WebHandler struct {
	distDir string
}

func NewWebHandler(distDir string) *WebHandler {
	return &WebHandler{distDir: distDir}
}

func (h *WebHandler) Index(c *gin.Context) {
	index := filepath.Join(h.distDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.String(http.StatusServiceUnavailable, "web client has not been built")
		return
	}
	c.File(index)
}

func (h *WebHandler) AssetsDir() string {
	return filepath.Join(h.distDir, "assets")
}

// NotFound answers JSON under /api and the 404 page elsewhere.
func (h *WebHandler) NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		c.Error(apperror.NewNotFound("route", path))
		return
	}
	page := filepath.Join(h.distDir, "404.html")
	if data, err := os.ReadFile(page); err == nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", data)
		return
	}
	c.String(http.StatusNotFound, "404 page not found")
}
