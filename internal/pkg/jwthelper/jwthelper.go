package jwthelper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusfest/fest-api/internal/domain"
)

const tokenLifetime = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated subject and a snapshot of its role.
// The role is frozen at issuance: a role change in storage is only picked
// up when the user logs in again.
type Claims struct {
	UserID    string      `json:"uid"`
	Role      domain.Role `json:"role"`
	UserAgent string      `json:"user_agent"`
	jwt.RegisteredClaims
}

func GenerateToken(signingKey []byte, userID string, role domain.Role, userAgent string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		UserAgent: userAgent,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(signingKey)
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(signingKey []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
