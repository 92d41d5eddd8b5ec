package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/hero"
	"github.com/wkdev/pacelular-backend/internal/storefront"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockhero
type Repository interface {
	HeroImages() []hero.Image
	AddHeroImage(ctx context.Context, img hero.Image) error
	DeleteHeroImage(ctx context.Context, id string) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) Images() []hero.Image {
	return s.repository.HeroImages()
}

// Create appends a new carousel slide with a fresh id.
func (s *service) Create(ctx context.Context, url string) (*hero.Image, error) {
	img := hero.Image{
		ID:  uuid.NewString(),
		URL: url,
	}

	if err := s.repository.AddHeroImage(ctx, img); err != nil {
		if errors.Is(err, storefront.ErrNotReady) {
			return nil, apperror.ErrStoreNotReady
		}

		s.logger.Error("unexpected error when adding hero image", zap.Error(err))

		return nil, err
	}

	return &img, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repository.DeleteHeroImage(ctx, id); err != nil {
		if errors.Is(err, storefront.ErrNotReady) {
			return apperror.ErrStoreNotReady
		}

		s.logger.Error("unexpected error when deleting hero image", zap.Error(err))

		return err
	}

	return nil
}
