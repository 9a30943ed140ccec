package app

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store is the tenant boundary. Every other resource belongs to one store.
type Store struct {
	// Unique store ID.
	ID string `json:"id"`

	// Display name shown in the dashboard.
	Name string `json:"name"`

	// Identity of the owner as reported by the identity provider.
	UserID string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Billboard is a labelled hero image shown on category pages.
type Billboard struct {
	ID      string `json:"id"`
	StoreID string `json:"storeId"`
	Label   string `json:"label"`

	// URL of the image in the asset store.
	ImageURL string `json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Category struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"storeId"`
	BillboardID string    `json:"billboardId"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Attribute is the shared shape of colors and sizes.
type Attribute struct {
	ID      string `json:"id"`
	StoreID string `json:"storeId"`
	Name    string `json:"name"`

	// Hex code for colors, short label for sizes.
	Value string `json:"value"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type (
	Color = Attribute
	Size  = Attribute
)

// Image is a product picture. It lives and dies with its product.
type Image struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Product struct {
	ID         string          `json:"id"`
	StoreID    string          `json:"storeId"`
	CategoryID string          `json:"categoryId"`
	ColorID    string          `json:"colorId"`
	SizeID     string          `json:"sizeId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`

	// Joined relations. Images is always loaded by the repository; the
	// others are filled on reads and left nil on writes.
	Images   []Image   `json:"images"`
	Category *Category `json:"category,omitempty"`
	Color    *Color    `json:"color,omitempty"`
	Size     *Size     `json:"size,omitempty"`
}

// ImageURLs returns the URLs of the product images in stored order.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, image := range p.Images {
		urls = append(urls, image.URL)
	}
	return urls
}

// ProductFilter narrows a product listing. Empty fields match anything.
type ProductFilter struct {
	CategoryID string
	ColorID    string
	SizeID     string

	// Nil matches both featured and non featured products.
	IsFeatured *bool

	// Archived products are hidden unless this is set.
	IncludeArchived bool
}
