package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardUC "github.com/mahathirrr/portfolio/internal/application/usecase/dashboard"
)

type DashboardHandler struct {
	dashboardUseCase *dashboardUC.DashboardUseCase
}

func NewDashboardHandler(uc *dashboardUC.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: uc}
}

// GetDashboard always answers 200; read failures are reported in the "error" field.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardUseCase.Execute(c.Request.Context()))
}
