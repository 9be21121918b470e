package handlers

import (
	"net/http"

	"cryoflow/models"
	"cryoflow/services/faq"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const faqFailureText = "I'm sorry, I'm having trouble looking that up right now. Please try again shortly."

// FAQHandler serves the FAQ/booking-link webhook.
type FAQHandler struct {
	Svc faq.FAQService
}

func NewFAQHandler(svc faq.FAQService) *FAQHandler {
	return &FAQHandler{Svc: svc}
}

// HandleWebhook dispatches on the matched intent's display name. A malformed
// body dispatches with an empty intent, which lands on the fallback reply.
func (h *FAQHandler) HandleWebhook(c *gin.Context) {
	logger := getLogger(c)

	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Malformed FAQ payload, using fallback", zap.Error(err))
	}

	text, err := h.Svc.Dispatch(c.Request.Context(), req.QueryResult.Intent.DisplayName, req.QueryResult.Parameters)
	if err != nil {
		logger.Error("FAQ dispatch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.WebhookResponse{FulfillmentText: faqFailureText})
		return
	}

	c.JSON(http.StatusOK, models.WebhookResponse{FulfillmentText: text})
}
