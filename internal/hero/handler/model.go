package handler

import "github.com/wkdev/pacelular-backend/internal/hero"

type ImageRequest struct {
	URL string `json:"url" validate:"required"`
}

type ImageResponse struct {
	Image hero.Image `json:"image"`
}

type ImagesResponse struct {
	Images []hero.Image `json:"images"`
}
