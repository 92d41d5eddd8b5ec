package catalog

type Brand string

const (
	BrandApple    Brand = "Apple"
	BrandSamsung  Brand = "Samsung"
	BrandXiaomi   Brand = "Xiaomi"
	BrandMotorola Brand = "Motorola"
)

func (b Brand) Valid() bool {
	switch b {
	case BrandApple, BrandSamsung, BrandXiaomi, BrandMotorola:
		return true
	}

	return false
}

type Category string

const (
	CategorySmartphones Category = "Smartphones"
	CategoryAccessories Category = "Acessórios"
	CategoryTablets     Category = "Tablets"
	CategoryOther       Category = "Outros"
)

func (c Category) Valid() bool {
	switch c {
	case CategorySmartphones, CategoryAccessories, CategoryTablets, CategoryOther:
		return true
	}

	return false
}

// PhoneSpec is the fixed technical record shown on a product card. All
// fields are free text.
type PhoneSpec struct {
	Screen    string `json:"screen"`
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	Camera    string `json:"camera"`
	Battery   string `json:"battery"`
	OS        string `json:"os"`
}

// Product is a catalog entry. Image is a self-contained payload (usually a
// data URI) so the catalog survives without any remote asset host.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         Brand     `json:"brand"`
	Category      Category  `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Image         string    `json:"image"`
	Specs         PhoneSpec `json:"specs"`
	Description   string    `json:"description"`
	IsNew         bool      `json:"isNew"`
	Featured      bool      `json:"featured,omitempty"`
}
