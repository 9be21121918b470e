package handlers

import (
	"net/http"

	"cryoflow/models"
	"cryoflow/services/intake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// Follow-up events as configured on the conversational platform.
	collectDetailsEvent = "collect_user_details"
	detailsSavedEvent   = "user_details_confirmed"
	eventLanguageCode   = "en"

	intakeFailureText = "I'm really sorry, something went wrong on our end while saving your details. Please try again in a moment."
)

// IntakeHandler serves the contact-intake webhook.
type IntakeHandler struct {
	Svc intake.IntakeService
}

func NewIntakeHandler(svc intake.IntakeService) *IntakeHandler {
	return &IntakeHandler{Svc: svc}
}

// HandleWebhook maps the intake outcome to the platform response shape.
// Malformed bodies are treated as an empty parameter bag, which routes back
// into the collection step rather than an HTTP error.
func (h *IntakeHandler) HandleWebhook(c *gin.Context) {
	logger := getLogger(c)

	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Malformed intake payload, re-collecting", zap.Error(err))
	}

	result := h.Svc.Process(c.Request.Context(), req.QueryResult.Parameters)

	switch result.Kind {
	case intake.ResultAccepted:
		c.JSON(http.StatusOK, models.WebhookResponse{
			FollowupEventInput: &models.FollowupEvent{Name: detailsSavedEvent, LanguageCode: eventLanguageCode},
		})
	case intake.ResultFailed:
		c.JSON(http.StatusInternalServerError, models.WebhookResponse{
			FulfillmentText: intakeFailureText,
		})
	default: // missing or invalid fields: re-invoke the collection step
		c.JSON(http.StatusOK, models.WebhookResponse{
			FulfillmentText:    result.Message,
			FollowupEventInput: &models.FollowupEvent{Name: collectDetailsEvent, LanguageCode: eventLanguageCode},
		})
	}
}
