// Package auth mints and checks the HS256 access tokens handed to residents.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
)

// Claims carries the standard claims plus the resident's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken validates tokenString and returns its user id. Expired
// tokens yield common.ErrTokenExpired; every other failure yields
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
