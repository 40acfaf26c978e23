package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/config"
)

// NewRouter builds the gin engine with all middleware and routes. The mock
// resources carry per-route artificial delays so the dashboard behaves like
// it is talking to a remote backend; cfg.MockLatency turns them off.
func NewRouter(app App, cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(RequestIDMiddleware())
	r.Use(auth.IdentityMiddleware(app.Auth()))

	lat := cfg.MockLatency
	delay := func(min, max time.Duration) gin.HandlerFunc {
		return SimulateLatency(app.Mock(), lat, min, max)
	}

	api := r.Group("/api")

	api.POST("/auth/login", Login(app))
	api.POST("/auth/register", Register(app))

	// Mock dashboard resources.
	api.GET("/health", delay(200*time.Millisecond, 700*time.Millisecond), GetHealth(app))
	api.POST("/health", delay(800*time.Millisecond, 0), PostHealth(app))
	api.GET("/insights", delay(300*time.Millisecond, 700*time.Millisecond), GetInsights(app))
	api.GET("/user", delay(200*time.Millisecond, 0), GetUserProfile(app))
	api.PUT("/user", delay(500*time.Millisecond, 0), PutUserProfile(app))
	api.GET("/appointments", delay(300*time.Millisecond, 0), GetAppointments(app))
	api.POST("/appointments", delay(600*time.Millisecond, 0), PostAppointment(app))
	api.PUT("/appointments", delay(400*time.Millisecond, 0), PutAppointment(app))
	api.GET("/wellness", delay(250*time.Millisecond, 0), GetWellness(app))
	api.POST("/wellness", delay(700*time.Millisecond, 0), PostWellnessActivity(app))

	// Assessment, logs and gamification.
	api.POST("/vitals", PostVitals(app))
	api.GET("/vitals", GetVitals(app))
	api.GET("/food-log", GetFoodLog(app))
	api.POST("/food-log", PostFoodLog(app))
	api.DELETE("/food-log/:id", DeleteFoodLogEntry(app))
	api.GET("/food-catalog", GetFoodCatalog(app))
	api.GET("/wellness/active", GetActiveWellness(app))
	api.POST("/wellness/active", JoinWellness(app))
	api.GET("/streaks", GetStreaks(app))
	api.PUT("/streaks", PostStreak(app))
	api.GET("/badges", GetBadges(app))
	api.POST("/chat", PostChat(app))
	api.GET("/chat/welcome", GetChatWelcome(app))

	return r
}
