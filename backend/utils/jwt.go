package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"wellness/backend/config"
	"wellness/backend/models"
	"wellness/backend/router"
)

// GenerateToken issues the bearer token returned by login. The token is opaque
// to the view layer but carries the verified identity for the session
// resolver: handlers derive "current user" from these signed claims, never
// from client-side state.
func GenerateToken(user models.User, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  user.Role,
		"name":  user.Name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken verifies a bearer token and returns the session profile embedded
// in its claims.
func ParseToken(tokenString string, cfg *config.Config) (*models.SessionProfile, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("invalid email in token")
	}
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)

	return &models.SessionProfile{Email: email, Role: role, Name: name}, nil
}

// ExtractUserFromToken resolves the current user from the request's
// Authorization header.
func ExtractUserFromToken(c *router.Ctx, cfg *config.Config) (*models.SessionProfile, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return nil, errors.New("missing authorization token")
	}
	return ParseToken(tokenString, cfg)
}
