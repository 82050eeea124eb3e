package routes

import (
	"github.com/gin-gonic/gin"

	"mvz_quote/internal/adapter/http/handlers"
)

const (
	PathQuoteSessions = "/quote-sessions"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteSessionHandler) {
	sessions := rg.Group(PathQuoteSessions)
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DiscardSession)
		sessions.GET("/:id/events", h.Events)

		// Step 1
		sessions.PUT("/:id/contact/:field", h.SetContactField)

		// Step 2
		sessions.POST("/:id/items", h.AddItem)
		sessions.PATCH("/:id/items/:item_id", h.UpdateItem)
		sessions.DELETE("/:id/items/:item_id", h.RemoveItem)
		sessions.GET("/:id/summary", h.GetSummary)

		// Navigation
		sessions.POST("/:id/steps/next", h.NextStep)
		sessions.POST("/:id/steps/prev", h.PrevStep)
		sessions.PUT("/:id/steps/:step", h.GoToStep)
		sessions.GET("/:id/steps/:step", h.CanNavigate)

		// Step 3
		sessions.POST("/:id/submit", h.Submit)

		sessions.DELETE("/:id/notifications/:notification_id", h.DismissNotification)
	}
}
