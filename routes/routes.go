package routes

import (
	"net/http"
	"time"

	"cryoflow/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects everything the router needs.
type HandlerBundle struct {
	Intake     *handlers.IntakeHandler
	FAQ        *handlers.FAQHandler
	Health     *handlers.HealthHandler
	FAQLimiter gin.HandlerFunc
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// Liveness probe for the hosting platform.
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Cryoflow webhook server is running")
	})

	// Contact-intake flow.
	r.POST("/api/webhook", hb.Intake.HandleWebhook)

	// FAQ/booking flow, capped per client.
	faqGroup := r.Group("/webhook")
	if hb.FAQLimiter != nil {
		faqGroup.Use(hb.FAQLimiter)
	}
	faqGroup.POST("", hb.FAQ.HandleWebhook)

	r.GET("/health", hb.Health.HandleHealth)
}
