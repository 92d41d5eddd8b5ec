package storefront

import (
	"github.com/wkdev/pacelular-backend/internal/catalog"
	"github.com/wkdev/pacelular-backend/internal/hero"
	"github.com/wkdev/pacelular-backend/internal/schedule"
)

// Seed data shown until the admin saves anything. It is not written to the
// durable medium on load; it becomes durable with the first mutation.

func defaultProducts() []catalog.Product {
	originalPrice := 9500.00

	return []catalog.Product{
		{
			ID:            "1",
			Name:          "iPhone 15 Pro Max 256GB",
			Brand:         catalog.BrandApple,
			Category:      catalog.CategorySmartphones,
			Price:         8490.00,
			OriginalPrice: &originalPrice,
			Image:         "https://images.unsplash.com/photo-1696446701796-da61225697cc?q=80&w=500&auto=format&fit=crop",
			IsNew:         true,
			Featured:      true,
			Description:   "O iPhone definitivo com acabamento em titânio aeroespacial. Performance insuperável para fotos e vídeos profissionais com o chip A17 Pro.",
			Specs: catalog.PhoneSpec{
				Screen:    `6.7" Super Retina XDR OLED`,
				Processor: "A17 Pro (3nm)",
				RAM:       "8GB LPDDR5X",
				Storage:   "256GB NVMe",
				Camera:    "48MP Main + 12MP Telephoto 5x",
				Battery:   "4441 mAh (Longa Duração)",
				OS:        "iOS 17 (Atualizável)",
			},
		},
		{
			ID:          "2",
			Name:        "Galaxy S24 Ultra 512GB",
			Brand:       catalog.BrandSamsung,
			Category:    catalog.CategorySmartphones,
			Price:       7290.00,
			Image:       "https://images.unsplash.com/photo-1707248554227-28562725e197?q=80&w=500&auto=format&fit=crop",
			IsNew:       true,
			Featured:    true,
			Description: "A revolução da Inteligência Artificial. Galaxy AI integrada para tradução em tempo real e edição de fotos profissional.",
			Specs: catalog.PhoneSpec{
				Screen:    `6.8" Dynamic AMOLED 2x 120Hz`,
				Processor: "Snapdragon 8 Gen 3 for Galaxy",
				RAM:       "12GB",
				Storage:   "512GB",
				Camera:    "200MP + 50MP + 12MP + 10MP",
				Battery:   "5000 mAh (45W Fast Charge)",
				OS:        "Android 14 (One UI 6.1)",
			},
		},
	}
}

func defaultHeroImages() []hero.Image {
	return []hero.Image{
		{ID: "h1", URL: "https://images.unsplash.com/photo-1616348436168-de43ad0db179?q=80&w=1200&auto=format&fit=crop"},
		{ID: "h2", URL: "https://images.unsplash.com/photo-1605464315542-bda3e2f4e605?q=80&w=1200&auto=format&fit=crop"},
		{ID: "h3", URL: "https://images.unsplash.com/photo-1592899677977-9c10ca588bbd?q=80&w=1200&auto=format&fit=crop"},
	}
}

func defaultBusinessHours() schedule.BusinessHours {
	weekday := schedule.BusinessDay{IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}

	return schedule.BusinessHours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  schedule.BusinessDay{IsOpen: true, OpenTime: "09:00", CloseTime: "15:00"},
		Sunday:    schedule.BusinessDay{IsOpen: false, OpenTime: "00:00", CloseTime: "00:00"},
	}
}
