package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/handlers"
	"github.com/wkdev/pacelular-backend/internal/hero"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Images() []hero.Image
	Create(ctx context.Context, url string) (*hero.Image, error)
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
	router.Route("/hero-images", func(heroRouter chi.Router) {
		heroRouter.Get("/", apperror.Middleware(h.listHandler))

		heroRouter.Group(func(adminRouter chi.Router) {
			adminRouter.Use(h.authMiddleware)
			adminRouter.Post("/", apperror.Middleware(h.createHandler))
			adminRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
		})
	})
}

func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, ImagesResponse{Images: h.service.Images()})

	return nil
}

func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ImageRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdImage, err := h.service.Create(r.Context(), dto.URL)
	if err != nil {
		return err
	}

	render.JSON(w, r, ImageResponse{Image: *createdImage})

	return nil
}

func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, ImagesResponse{Images: h.service.Images()})

	return nil
}
