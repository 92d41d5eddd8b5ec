package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/wkdev/pacelular-backend/internal/apperror"
	"github.com/wkdev/pacelular-backend/internal/handlers"
	"go.uber.org/zap"
)

// maxUploadSize bounds a single image upload.
const maxUploadSize = 10 << 20

type Service interface {
	Ingest(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
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
	router.Group(func(adminRouter chi.Router) {
		adminRouter.Use(h.authMiddleware)
		adminRouter.Post("/upload", apperror.Middleware(h.uploadHandler))
	})
}

type UploadResponse struct {
	URL string `json:"url"`
}

func (h *handler) uploadHandler(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		return apperror.NewAppError(fmt.Sprintf("failed to retrieve file: %s", err.Error()))
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h.logger.Info("uploaded file info",
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size),
		zap.String("content_type", contentType),
	)

	url, err := h.service.Ingest(r.Context(), file, header.Size, contentType)
	if err != nil {
		return err
	}

	render.JSON(w, r, UploadResponse{URL: url})

	return nil
}
