package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
)

// GetActiveWellness lists everything the user has joined or quick-logged.
func GetActiveWellness(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)
		ctx := c.Request.Context()

		challenges, err := app.Journal().LoadActiveChallenges(ctx, user.Username)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load active challenges")
			return
		}
		programs, err := app.Journal().LoadActivePrograms(ctx, user.Username)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load active programs")
			return
		}
		quickLog, err := app.Journal().LoadQuickLog(ctx, user.Username)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load quick log")
			return
		}

		HandleSuccess(c, app.Logger(), gin.H{
			"challenges": challenges,
			"programs":   programs,
			"quick_log":  quickLog,
		}, nil)
	}
}

type JoinRequest struct {
	Type string `json:"type" binding:"required,oneof=challenge program"`
	ID   int    `json:"id" binding:"required"`
}

// JoinWellness enrolls the user in a challenge or meal program.
func JoinWellness(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		var body JoinRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid join request")
			return
		}

		join := service.JoinChallenge
		if body.Type == "program" {
			join = service.JoinProgram
		}
		items, err := join(c.Request.Context(), app.Journal(), user.Username, body.ID, app.Now())
		if err != nil {
			if errors.Is(err, service.ErrAlreadyJoined) {
				HandleError(c, app.Logger(), err, 400, "Already joined")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to join")
			return
		}

		HandleSuccess(c, app.Logger(), items, nil)
	}
}
