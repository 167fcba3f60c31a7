package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type CacheHandler struct {
	pages  PageInvalidator
	logger logger.Logger
}

func NewCacheHandler(pages PageInvalidator, log logger.Logger) *CacheHandler {
	return &CacheHandler{pages: pages, logger: log}
}

func (h *CacheHandler) ClearCache(c *gin.Context) {
	if err := h.pages.Invalidate(c.Request.Context()); err != nil {
		c.Error(apperror.NewInternal("failed to clear page cache", err))
		return
	}
	h.logger.Info("Page cache cleared")
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
