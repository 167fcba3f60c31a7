package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	serviceUC "github.com/mahathirrr/portfolio/internal/application/usecase/service"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type ServiceHandler struct {
	serviceUseCase *serviceUC.ServiceUseCase
	logger         logger.Logger
}

func NewServiceHandler(uc *serviceUC.ServiceUseCase, log logger.Logger) *ServiceHandler {
	return &ServiceHandler{serviceUseCase: uc, logger: log}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	s, err := h.serviceUseCase.CreateService(c.Request.Context(), serviceUC.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Features:    req.Features,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid service ID", err))
		return
	}
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	s, err := h.serviceUseCase.UpdateService(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid service ID", err))
		return
	}
	if err := h.serviceUseCase.DeleteService(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid service ID", err))
		return
	}
	s, err := h.serviceUseCase.GetService(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.serviceUseCase.ListServices(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, services)
}
