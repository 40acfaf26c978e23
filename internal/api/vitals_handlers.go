package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/engine"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
)

func PostVitals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		var body service.CheckInRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateCheckInRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		result, err := service.RecordCheckIn(c.Request.Context(), app.Journal(), user.Username, &body, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to record check-in")
			return
		}

		HandleSuccess(c, app.Logger(), result, nil)
	}
}

func GetVitals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		snapshot, found, err := app.Journal().LoadVitals(c.Request.Context(), user.Username)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load vitals")
			return
		}
		if !found {
			HandleError(c, app.Logger(), service.ErrNoCheckIn, 404, "No check-in recorded")
			return
		}

		result := service.CheckInResult{
			Snapshot:   *snapshot,
			Assessment: engine.Assess(*snapshot),
		}
		HandleSuccess(c, app.Logger(), result, nil)
	}
}
