package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

const tokenTTL = 72 * time.Hour

type JWTProvider struct {
	secret []byte
	logger internal.Logger
}

func NewJWTProvider(secret string, logger internal.Logger) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), logger: logger}
}

func (p *JWTProvider) Issue(user *internal.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(p.secret)
}

func (p *JWTProvider) Verify(tokenString string) (*internal.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		p.logger.Warnf("invalid token: %v", err)
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	username, _ := claims["username"].(string)
	if username == "" {
		return nil, errors.New("token missing username")
	}
	id, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	return &internal.User{ID: id, Username: username, Email: email}, nil
}

var _ Provider = (*JWTProvider)(nil)
