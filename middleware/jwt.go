package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"cms-backend/config"
)

// GenerateJWT issues a signed token for the user. The API itself does not
// require it on any endpoint; it is returned at login for clients that want
// to carry an identity assertion.
func GenerateJWT(userID uint, username, email string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"email":    email,
		"isAdmin":  isAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}
