package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	educationUC "github.com/mahathirrr/portfolio/internal/application/usecase/education"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type EducationHandler struct {
	educationUseCase *educationUC.EducationUseCase
	logger           logger.Logger
}

func NewEducationHandler(uc *educationUC.EducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{educationUseCase: uc, logger: log}
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	e, err := h.educationUseCase.CreateEducation(c.Request.Context(), educationUC.CreateEducationInput{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate.Value(),
		EndDate:      req.EndDate.Time,
		IsCurrent:    req.IsCurrent,
		Grade:        req.Grade,
		Activities:   req.Activities,
		Description:  req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}
	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	e, err := h.educationUseCase.UpdateEducation(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}
	if err := h.educationUseCase.DeleteEducation(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EducationHandler) GetEducation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}
	e, err := h.educationUseCase.GetEducation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EducationHandler) ListEducation(c *gin.Context) {
	list, err := h.educationUseCase.ListEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}
