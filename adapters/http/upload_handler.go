package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	uploadUC "github.com/mahathirrr/portfolio/internal/application/usecase/upload"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type UploadHandler struct {
	uploadImageUseCase *uploadUC.UploadImageUseCase
	logger             logger.Logger
}

func NewUploadHandler(uc *uploadUC.UploadImageUseCase, log logger.Logger) *UploadHandler {
	return &UploadHandler{uploadImageUseCase: uc, logger: log}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadImageUseCase.Execute(c.Request.Context(), uploadUC.UploadImageInput{
		File:     file,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output)
}
