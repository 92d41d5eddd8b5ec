package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/catalog"
	"github.com/wkdev/pacelular-backend/internal/storefront"
	"go.uber.org/zap"
)

var (
	ErrUnknownBrand    = apperror.NewAppError("unknown brand")
	ErrUnknownCategory = apperror.NewAppError("unknown category")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockcatalog
type Repository interface {
	Products() []catalog.Product
	AddProduct(ctx context.Context, p catalog.Product) error
	UpdateProduct(ctx context.Context, p catalog.Product) error
	DeleteProduct(ctx context.Context, id string) error
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

func (s *service) Products() []catalog.Product {
	return s.repository.Products()
}

// Create assigns a fresh id and appends the product to the catalog. Ids are
// millisecond timestamps.
func (s *service) Create(ctx context.Context, data catalog.Product) (*catalog.Product, error) {
	if err := validateProduct(data); err != nil {
		return nil, err
	}

	data.ID = strconv.FormatInt(s.now().UnixMilli(), 10)

	if err := s.repository.AddProduct(ctx, data); err != nil {
		return nil, s.wrapStoreErr("unexpected error when adding product", err)
	}

	return &data, nil
}

// Update replaces the catalog entry matching data.ID. A miss leaves the
// catalog unchanged and still reports success.
func (s *service) Update(ctx context.Context, data catalog.Product) (*catalog.Product, error) {
	if err := validateProduct(data); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateProduct(ctx, data); err != nil {
		return nil, s.wrapStoreErr("unexpected error when updating product", err)
	}

	return &data, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repository.DeleteProduct(ctx, id); err != nil {
		return s.wrapStoreErr("unexpected error when deleting product", err)
	}

	return nil
}

func validateProduct(data catalog.Product) error {
	if !data.Brand.Valid() {
		return ErrUnknownBrand
	}

	if !data.Category.Valid() {
		return ErrUnknownCategory
	}

	return nil
}

func (s *service) wrapStoreErr(msg string, err error) error {
	if errors.Is(err, storefront.ErrNotReady) {
		return apperror.ErrStoreNotReady
	}

	s.logger.Error(msg, zap.Error(err))

	return err
}
