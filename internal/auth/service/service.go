package service

import (
	"strings"

	"github.com/wkdev/pacelular-backend/internal/apperror"
	jwtauth "github.com/wkdev/pacelular-backend/internal/auth/jwt"
	"github.com/wkdev/pacelular-backend/internal/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials maps to 401 so a failed login and a missing token
// read the same to the admin console.
var ErrInvalidCredentials = apperror.ErrUnauthorized

type service struct {
	username     string
	passwordHash []byte
	tokenManager jwtauth.TokenManager
	logger       *zap.Logger
}

// New hashes the configured admin password once at startup so only the hash
// stays resident for comparisons.
func New(
	cfg config.Admin,
	tokenManager jwtauth.TokenManager,
	logger *zap.Logger,
) (*service, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("unexpected error when hashing admin password", zap.Error(err))
		return nil, err
	}

	return &service{
		username:     cfg.Username,
		passwordHash: passwordHash,
		tokenManager: tokenManager,
		logger:       logger,
	}, nil
}

// Login checks the credentials and issues an access token. The username
// comparison is case-insensitive and whitespace-tolerant.
func (s *service) Login(username, password string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(username), s.username) {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(strings.TrimSpace(password))); err != nil {
		return "", ErrInvalidCredentials
	}

	accessToken, err := s.tokenManager.GenerateToken(s.username)
	if err != nil {
		s.logger.Error("unexpected error when generating token", zap.Error(err))
		return "", err
	}

	return accessToken, nil
}
