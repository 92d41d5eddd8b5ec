package handler

import "github.com/wkdev/pacelular-backend/internal/catalog"

type ProductRequest struct {
	Name          string            `json:"name" validate:"required"`
	Brand         string            `json:"brand" validate:"required"`
	Category      string            `json:"category" validate:"required"`
	Price         float64           `json:"price" validate:"gte=0"`
	OriginalPrice *float64          `json:"originalPrice" validate:"omitempty,gte=0"`
	Image         string            `json:"image" validate:"required"`
	Specs         catalog.PhoneSpec `json:"specs"`
	Description   string            `json:"description"`
	IsNew         bool              `json:"isNew"`
	Featured      bool              `json:"featured"`
}

func (pr *ProductRequest) ToDomain(id string) *catalog.Product {
	return &catalog.Product{
		ID:            id,
		Name:          pr.Name,
		Brand:         catalog.Brand(pr.Brand),
		Category:      catalog.Category(pr.Category),
		Price:         pr.Price,
		OriginalPrice: pr.OriginalPrice,
		Image:         pr.Image,
		Specs:         pr.Specs,
		Description:   pr.Description,
		IsNew:         pr.IsNew,
		Featured:      pr.Featured,
	}
}

type ProductResponse struct {
	Product catalog.Product `json:"product"`
}

type ProductsResponse struct {
	Products []catalog.Product `json:"products"`
}
