package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/handlers"
	"github.com/wkdev/pacelular-backend/internal/repairs"
)

type handler struct{}

func New() handlers.Handler {
	return &handler{}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/repairs", apperror.Middleware(h.listHandler))
}

type ServicesResponse struct {
	Services []repairs.Service `json:"services"`
}

func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, ServicesResponse{Services: repairs.All()})

	return nil
}
