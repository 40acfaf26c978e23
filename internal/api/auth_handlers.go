package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthResponse struct {
	Token string         `json:"token"`
	User  *internal.User `json:"user"`
}

// Login accepts any non-empty credentials and issues a signed token.
// There is no account database behind it.
func Login(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body LoginRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid credentials")
			return
		}

		user := &internal.User{
			ID:       "user-" + uuid.NewString(),
			Username: body.Username,
			Email:    body.Username + "@fitos.com",
		}
		token, err := app.Auth().Issue(user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to issue token")
			return
		}

		HandleSuccess(c, app.Logger(), AuthResponse{Token: token, User: user}, nil)
	}
}

func Register(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body RegisterRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid registration")
			return
		}
		if strings.TrimSpace(body.Username) == "" {
			HandleError(c, app.Logger(), errors.New("username is blank"), 400, "Invalid registration")
			return
		}

		user := &internal.User{
			ID:       "user-" + uuid.NewString(),
			Username: body.Username,
			Email:    body.Email,
		}
		token, err := app.Auth().Issue(user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to issue token")
			return
		}

		HandleSuccess(c, app.Logger(), AuthResponse{Token: token, User: user}, nil)
	}
}
