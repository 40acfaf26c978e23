package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
)

func GetFoodLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		entries, err := app.Journal().LoadFoodLog(c.Request.Context(), user.Username)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load food log")
			return
		}

		totals := service.DailyTotals(entries, app.Now())
		HandleSuccess(c, app.Logger(), entries, map[string]any{"daily_totals": totals})
	}
}

func PostFoodLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		var body service.FoodLogRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateFoodLogRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.AddFood(c.Request.Context(), app.Journal(), user.Username, &body, app.Now())
		if err != nil {
			if errors.Is(err, service.ErrUnknownFood) {
				HandleError(c, app.Logger(), err, 400, "Unknown food")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to log food")
			return
		}

		if _, err := service.BumpStreak(c.Request.Context(), app.Journal(), user.Username, service.HabitNutrition, app.Now()); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to update streaks")
			return
		}
		if _, err := service.EvaluateBadges(c.Request.Context(), app.Journal(), user.Username, app.Now()); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to update badges")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func DeleteFoodLogEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		err := service.RemoveFood(c.Request.Context(), app.Journal(), user.Username, c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrEntryNotFound) {
				HandleError(c, app.Logger(), err, 404, "Entry not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to delete entry")
			return
		}

		HandleSuccess(c, app.Logger(), nil, map[string]any{"deleted": c.Param("id")})
	}
}

func GetFoodCatalog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		matches := service.SearchCatalog(c.Query("q"))
		HandleSuccess(c, app.Logger(), matches, nil)
	}
}
