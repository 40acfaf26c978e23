package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/engine"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// PostChat answers a free-text message using the keyword responder,
// contextualized with the user's stored vitals and food log when present.
func PostChat(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		var body ChatRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON: message required")
			return
		}

		ctx, err := service.ChatContextFor(c.Request.Context(), app.Journal(), user.Username, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load chat context")
			return
		}

		HandleSuccess(c, app.Logger(), ChatResponse{Reply: engine.Reply(body.Message, ctx)}, nil)
	}
}

// GetChatWelcome returns the personalized session greeting.
func GetChatWelcome(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		ctx, err := service.ChatContextFor(c.Request.Context(), app.Journal(), user.Username, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load chat context")
			return
		}

		HandleSuccess(c, app.Logger(), ChatResponse{Reply: engine.Welcome(ctx)}, nil)
	}
}
