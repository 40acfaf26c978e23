package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
)

func GetStreaks(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		prev, _, err := app.Journal().LoadStreaks(c.Request.Context(), user.Username)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load streaks")
			return
		}

		// Rollover is applied on read so a stale record never shows
		// yesterday's counters as today's.
		HandleSuccess(c, app.Logger(), service.RolloverStreaks(prev, app.Now()), nil)
	}
}

type StreakBumpRequest struct {
	Habit string `json:"habit" binding:"required,oneof=health_inputs workouts meditation nutrition"`
}

func PostStreak(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		var body StreakBumpRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid habit")
			return
		}

		streaks, err := service.BumpStreak(c.Request.Context(), app.Journal(), user.Username, service.Habit(body.Habit), app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to update streak")
			return
		}
		if _, err := service.EvaluateBadges(c.Request.Context(), app.Journal(), user.Username, app.Now()); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to update badges")
			return
		}

		HandleSuccess(c, app.Logger(), streaks, nil)
	}
}

func GetBadges(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		badges, err := service.LoadBadges(c.Request.Context(), app.Journal(), user.Username)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load badges")
			return
		}

		HandleSuccess(c, app.Logger(), badges, nil)
	}
}
