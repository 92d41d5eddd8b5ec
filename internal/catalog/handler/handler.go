package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/catalog"
	"github.com/wkdev/pacelular-backend/internal/handlers"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcataloghandler
type Service interface {
	Products() []catalog.Product
	Create(ctx context.Context, data catalog.Product) (*catalog.Product, error)
	Update(ctx context.Context, data catalog.Product) (*catalog.Product, error)
	Delete(ctx context.Context, id string) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/products", func(productRouter chi.Router) {
		productRouter.Get("/", apperror.Middleware(h.listHandler))

		productRouter.Group(func(adminRouter chi.Router) {
			adminRouter.Use(h.authMiddleware)
			adminRouter.Post("/", apperror.Middleware(h.createHandler))
			adminRouter.Put("/{id}", apperror.Middleware(h.updateHandler))
			adminRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
		})
	})
}

func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, ProductsResponse{Products: h.service.Products()})

	return nil
}

func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ProductRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdProduct, err := h.service.Create(r.Context(), *dto.ToDomain(""))
	if err != nil {
		return err
	}

	render.JSON(w, r, ProductResponse{Product: *createdProduct})

	return nil
}

func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ProductRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	updatedProduct, err := h.service.Update(r.Context(), *dto.ToDomain(chi.URLParam(r, "id")))
	if err != nil {
		return err
	}

	render.JSON(w, r, ProductResponse{Product: *updatedProduct})

	return nil
}

func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, ProductsResponse{Products: h.service.Products()})

	return nil
}
