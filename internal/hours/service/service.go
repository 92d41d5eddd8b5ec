package service

import (
	"context"
	"errors"
	"time"

	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/schedule"
	"github.com/wkdev/pacelular-backend/internal/storefront"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockhours
type Repository interface {
	BusinessHours() schedule.BusinessHours
	UpdateBusinessHours(ctx context.Context, hours schedule.BusinessHours) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
	now        func() time.Time
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *service) Hours() schedule.BusinessHours {
	return s.repository.BusinessHours()
}

// IsOpenNow evaluates the current schedule against the local clock. The
// storefront indicator polls this at least once a minute to stay accurate at
// minute boundaries.
func (s *service) IsOpenNow() bool {
	return schedule.IsOpenAt(s.repository.BusinessHours(), s.now())
}

// Update replaces the whole weekly schedule.
func (s *service) Update(ctx context.Context, hours schedule.BusinessHours) (*schedule.BusinessHours, error) {
	if err := s.repository.UpdateBusinessHours(ctx, hours); err != nil {
		if errors.Is(err, storefront.ErrNotReady) {
			return nil, apperror.ErrStoreNotReady
		}

		s.logger.Error("unexpected error when updating business hours", zap.Error(err))

		return nil, err
	}

	return &hours, nil
}
