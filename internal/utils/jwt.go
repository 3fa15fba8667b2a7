package utils

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"scorequest/user/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var parseJWT = func(tokenStr string, claims jwt.Claims, keyFunc jwt.Keyfunc) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenStr, claims, keyFunc)
}

var (
	ErrMissingAuthHeader = errors.New("no token provided")
	ErrInvalidToken      = errors.New("invalid token")
)

// TokenClaims is the payload signed into a bearer token. Only ID is
// trusted at verification time; the rest is informational and re-read
// from storage by the authenticate middleware.
type TokenClaims struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Points   int         `json:"points"`
	jwt.RegisteredClaims
}

// IssueToken signs the user's identity with HS256. A zero ttl issues a
// token without an expiry claim.
func IssueToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	claims := TokenClaims{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Role:     user.Role,
		Points:   user.Points,
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// BearerToken fetches the token literal from the Authorization header.
// The literal string "undefined" is rejected up front; buggy clients
// send it when their stored token is unset.
func BearerToken(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", ErrMissingAuthHeader
	}
	tokenStr := strings.TrimPrefix(authz, "Bearer ")
	if tokenStr == "" || tokenStr == "undefined" {
		return "", ErrMissingAuthHeader
	}
	return tokenStr, nil
}

// VerifyToken fetches the Authorization header, validates the JWT,
// and returns the claims if everything is valid.
func VerifyToken(r *http.Request, secret string) (*TokenClaims, error) {
	tokenStr, err := BearerToken(r)
	if err != nil {
		return nil, err
	}

	claims := &TokenClaims{}
	token, err := parseJWT(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
