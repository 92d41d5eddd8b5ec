package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wkdev/pacelular-backend/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

//go:generate mockgen -source=jwt.go -destination=mocks/mock.go -package=mockjwt
type TokenManager interface {
	GenerateToken(username string) (string, error)
	ParseToken(tokenStr string) (string, error)
}

type tokenManager struct {
	jwtConfig config.JWT
}

func NewTokenManager(jwtConfig config.JWT) TokenManager {
	return &tokenManager{
		jwtConfig: jwtConfig,
	}
}

type customClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

func (tm *tokenManager) GenerateToken(username string) (string, error) {
	claims := customClaims{
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.jwtConfig.AccessTokenTTL)),
		},
		username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(tm.jwtConfig.Secret))
}

func (tm *tokenManager) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &customClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tm.jwtConfig.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}
