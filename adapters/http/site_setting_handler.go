package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sitesettingUC "github.com/mahathirrr/portfolio/internal/application/usecase/sitesetting"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type SiteSettingHandler struct {
	settingUseCase *sitesettingUC.SiteSettingUseCase
	logger         logger.Logger
}

func NewSiteSettingHandler(uc *sitesettingUC.SiteSettingUseCase, log logger.Logger) *SiteSettingHandler {
	return &SiteSettingHandler{settingUseCase: uc, logger: log}
}

func (h *SiteSettingHandler) ListSettings(c *gin.Context) {
	list, err := h.settingUseCase.ListSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetSetting answers true for a key missing from the table.
func (h *SiteSettingHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	value, err := h.settingUseCase.GetSetting(c.Request.Context(), key)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SettingValueDTO{Key: key, Value: value})
}

func (h *SiteSettingHandler) UpsertSetting(c *gin.Context) {
	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if req.Value == nil {
		c.Error(apperror.NewInvalidInput("setting_value is required", nil))
		return
	}
	s, err := h.settingUseCase.UpsertSetting(c.Request.Context(), sitesettingUC.UpsertSettingInput{
		Key:         c.Param("key"),
		Value:       *req.Value,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}
