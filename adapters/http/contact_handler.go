package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	contactUC "github.com/mahathirrr/portfolio/internal/application/usecase/contact"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type ContactHandler struct {
	submitMessageUseCase *contactUC.SubmitMessageUseCase
	listMessagesUseCase  *contactUC.ListMessagesUseCase
	logger               logger.Logger
}

func NewContactHandler(submitUC *contactUC.SubmitMessageUseCase, listUC *contactUC.ListMessagesUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		submitMessageUseCase: submitUC,
		listMessagesUseCase:  listUC,
		logger:               log,
	}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	output, err := h.submitMessageUseCase.Execute(c.Request.Context(), contactUC.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": output.Message.ID, "status": "received"})
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	output, err := h.listMessagesUseCase.Execute(c.Request.Context(), contactUC.ListMessagesInput{Page: page, Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages": output.Messages,
		"page":     output.Page,
		"limit":    output.Limit,
	})
}
