package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/handlers"
	"github.com/wkdev/pacelular-backend/internal/schedule"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Hours() schedule.BusinessHours
	IsOpenNow() bool
	Update(ctx context.Context, hours schedule.BusinessHours) (*schedule.BusinessHours, error)
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
	router.Route("/hours", func(hoursRouter chi.Router) {
		hoursRouter.Get("/", apperror.Middleware(h.getHandler))
		hoursRouter.Get("/status", apperror.Middleware(h.statusHandler))

		hoursRouter.Group(func(adminRouter chi.Router) {
			adminRouter.Use(h.authMiddleware)
			adminRouter.Put("/", apperror.Middleware(h.updateHandler))
		})
	})
}

func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, HoursResponse{Hours: h.service.Hours()})

	return nil
}

func (h *handler) statusHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, StatusResponse{IsOpen: h.service.IsOpenNow()})

	return nil
}

func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto HoursRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	updatedHours, err := h.service.Update(r.Context(), *dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, HoursResponse{Hours: *updatedHours})

	return nil
}
