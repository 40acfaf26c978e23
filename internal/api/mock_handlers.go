package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
)

// Handlers in this file serve the synthetic dashboard resources. Their
// response shapes are the wire contract the SPA was built against, so they
// use the original camelCase field names and a top-level success flag
// rather than the data/meta envelope.

func GetHealth(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := app.Mock()
		c.JSON(http.StatusOK, gin.H{
			"current":    svc.Current(),
			"history":    svc.History(),
			"generation": svc.Generation(),
			"success":    true,
		})
	}
}

func PostHealth(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		data := map[string]any{"id": app.Now().UnixMilli()}
		for k, v := range body {
			data[k] = v
		}
		data["timestamp"] = app.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Health data logged successfully",
			"data":    data,
		})
	}
}

func GetInsights(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := app.Mock()
		c.JSON(http.StatusOK, gin.H{
			"insights":       svc.Insights(),
			"predictiveData": svc.Predictive(),
			"riskAssessment": svc.Risk(),
			"success":        true,
		})
	}
}

func GetUserProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":    app.Mock().Profile(),
			"success": true,
		})
	}
}

func PutUserProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		// Overlay submitted fields on a freshly generated profile, matching
		// the original echo semantics.
		raw, err := json.Marshal(app.Mock().Profile())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build profile")
			return
		}
		var merged map[string]any
		if err := json.Unmarshal(raw, &merged); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build profile")
			return
		}
		for k, v := range body {
			merged[k] = v
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "User data updated successfully",
			"user":    merged,
		})
	}
}

func GetAppointments(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"appointments": app.Mock().Appointments(),
			"success":      true,
		})
	}
}

func PostAppointment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		appt := map[string]any{"id": app.Now().UnixMilli()}
		for k, v := range body {
			appt[k] = v
		}
		appt["status"] = "pending"
		appt["createdAt"] = app.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Appointment scheduled successfully",
			"appointment": appt,
		})
	}
}

func PutAppointment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Appointment updated successfully",
			"appointment": body,
		})
	}
}

func GetWellness(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := app.Mock()
		switch c.Query("type") {
		case "challenges":
			c.JSON(http.StatusOK, gin.H{"challenges": svc.Challenges(), "success": true})
		case "meals":
			c.JSON(http.StatusOK, gin.H{"mealPlans": svc.MealPlans(), "success": true})
		default:
			c.JSON(http.StatusOK, gin.H{
				"challenges": svc.Challenges(),
				"mealPlans":  svc.MealPlans(),
				"success":    true,
			})
		}
	}
}

func PostWellnessActivity(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.UserFrom(c)

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if activity, ok := body["activity"].(string); ok && activity != "" {
			if _, err := service.AppendQuickLog(c.Request.Context(), app.Journal(), user.Username, activity, app.Now()); err != nil {
				HandleError(c, app.Logger(), err, 500, "Failed to record activity")
				return
			}
		}
		data := map[string]any{"id": app.Now().UnixMilli()}
		for k, v := range body {
			data[k] = v
		}
		data["timestamp"] = app.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Activity logged successfully",
			"data":    data,
		})
	}
}
