package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/handlers"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Login(username, password string) (string, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/auth", func(authRouter chi.Router) {
		authRouter.Post("/login", apperror.Middleware(h.loginHandler))
	})
}

func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var dto LoginRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	accessToken, err := h.service.Login(dto.Username, dto.Password)
	if err != nil {
		return err
	}

	render.JSON(w, r, LoginResponse{AccessToken: accessToken})

	return nil
}
