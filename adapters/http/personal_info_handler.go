package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	personalinfoUC "github.com/mahathirrr/portfolio/internal/application/usecase/personalinfo"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type PersonalInfoHandler struct {
	personalInfoUseCase *personalinfoUC.PersonalInfoUseCase
	logger              logger.Logger
}

func NewPersonalInfoHandler(uc *personalinfoUC.PersonalInfoUseCase, log logger.Logger) *PersonalInfoHandler {
	return &PersonalInfoHandler{personalInfoUseCase: uc, logger: log}
}

func (h *PersonalInfoHandler) GetPersonalInfo(c *gin.Context) {
	output, err := h.personalInfoUseCase.ExecuteGet(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Info)
}

func (h *PersonalInfoHandler) UpdatePersonalInfo(c *gin.Context) {
	var req UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	output, err := h.personalInfoUseCase.ExecuteUpdate(c.Request.Context(), personalinfoUC.UpdatePersonalInfoInput{
		Patch: req.ToPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Info)
}
