package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pageUC "github.com/mahathirrr/portfolio/internal/application/usecase/page"
)

type PageHandler struct {
	pageUseCase *pageUC.PageUseCase
}

func NewPageHandler(uc *pageUC.PageUseCase) *PageHandler {
	return &PageHandler{pageUseCase: uc}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.pageUseCase.Home(c.Request.Context()))
}

func (h *PageHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.pageUseCase.Services(c.Request.Context()))
}

func (h *PageHandler) References(c *gin.Context) {
	c.JSON(http.StatusOK, h.pageUseCase.References(c.Request.Context(), c.Query("category")))
}

func (h *PageHandler) Experience(c *gin.Context) {
	c.JSON(http.StatusOK, h.pageUseCase.Experience(c.Request.Context()))
}
