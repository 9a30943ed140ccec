package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ImageInput struct {
	URL string `json:"url"`
}

// ProductInput is the writable part of a product.
type ProductInput struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"categoryId"`
	ColorID    string          `json:"colorId"`
	SizeID     string          `json:"sizeId"`
	Images     []ImageInput    `json:"images"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
}

// validate checks required fields in a fixed order so the first missing
// one decides the message.
func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("Name is required")
	}
	if len(in.Images) == 0 {
		return invalid("Images are required")
	}
	for _, image := range in.Images {
		if strings.TrimSpace(image.URL) == "" {
			return invalid("Image url is required")
		}
	}
	if in.Price.IsZero() {
		return invalid("Price is required")
	}
	if in.CategoryID == "" {
		return invalid("Category id is required")
	}
	if in.ColorID == "" {
		return invalid("Color id is required")
	}
	if in.SizeID == "" {
		return invalid("Size id is required")
	}
	if in.Price.IsNegative() {
		return invalid("Price must be positive")
	}
	return nil
}

type ProductService struct {
	products   ProductRepository
	categories CategoryRepository
	attributes AttributeRepository
	owners     *StoreOwnership
	assets     *AssetCleaner
}

func NewProductService(repo Repository, owners *StoreOwnership, assets *AssetCleaner) *ProductService {
	return &ProductService{
		products:   repo,
		categories: repo,
		attributes: repo,
		owners:     owners,
		assets:     assets,
	}
}

// Get is public and returns the product with its relations.
func (s *ProductService) Get(ctx context.Context, productID string) (*Product, error) {
	if productID == "" {
		return nil, invalid("Product id is required")
	}
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, notFound("Product", err)
	}
	return product, nil
}

// List is public. Archived products are excluded unless the filter asks
// for them.
func (s *ProductService) List(ctx context.Context, storeID string, filter ProductFilter) ([]Product, error) {
	if storeID == "" {
		return nil, invalid("Store id is required")
	}
	return s.products.ListProducts(ctx, storeID, filter)
}

func (s *ProductService) Create(ctx context.Context, userID, storeID string, in ProductInput) (*Product, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, storeID, in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &Product{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		CreatedAt: now,
	}
	in.apply(product, now)
	if err := s.products.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("can not create product: %w", err)
	}
	return s.Get(ctx, product.ID)
}

// Update overwrites the product and replaces its image set. Images whose
// public id is dropped from the set are removed from the asset store first.
func (s *ProductService) Update(ctx context.Context, userID, storeID, productID string, in ProductInput) (*Product, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if productID == "" {
		return nil, invalid("Product id is required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	product, err := s.find(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, storeID, in); err != nil {
		return nil, err
	}

	current := make([]string, 0, len(in.Images))
	for _, image := range in.Images {
		current = append(current, image.URL)
	}
	s.assets.RemoveReplaced(ctx, product.ImageURLs(), current)
	ctx = context.WithoutCancel(ctx)

	in.apply(product, time.Now().UTC())
	if err := s.products.UpdateProduct(ctx, product); err != nil {
		return nil, notFound("Product", err)
	}
	return s.Get(ctx, product.ID)
}

// Delete removes the product and its images and returns what was deleted.
func (s *ProductService) Delete(ctx context.Context, userID, storeID, productID string) (*Product, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if productID == "" {
		return nil, invalid("Product id is required")
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	product, err := s.find(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	s.assets.RemoveAll(ctx, product.ImageURLs())
	ctx = context.WithoutCancel(ctx)

	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return nil, notFound("Product", err)
	}
	return product, nil
}

func (s *ProductService) find(ctx context.Context, storeID, productID string) (*Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, notFound("Product", err)
	}
	if product.StoreID != storeID {
		return nil, &NotFoundError{Resource: "Product"}
	}
	return product, nil
}

// checkReferences makes sure category, color and size exist in storeID.
func (s *ProductService) checkReferences(ctx context.Context, storeID string, in ProductInput) error {
	category, err := s.categories.GetCategory(ctx, in.CategoryID)
	if err := referenceError("Category", err, category == nil || category.StoreID != storeID); err != nil {
		return err
	}
	color, err := s.attributes.GetAttribute(ctx, AttributeColor, in.ColorID)
	if err := referenceError("Color", err, color == nil || color.StoreID != storeID); err != nil {
		return err
	}
	size, err := s.attributes.GetAttribute(ctx, AttributeSize, in.SizeID)
	if err := referenceError("Size", err, size == nil || size.StoreID != storeID); err != nil {
		return err
	}
	return nil
}

func referenceError(resource string, err error, foreign bool) error {
	if errors.Is(err, ErrNoRecord) || (err == nil && foreign) {
		return invalid(fmt.Sprintf("%s id is invalid", resource))
	}
	if err != nil {
		return fmt.Errorf("can not load %s: %w", strings.ToLower(resource), err)
	}
	return nil
}

func (in ProductInput) apply(product *Product, now time.Time) {
	product.Name = in.Name
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	product.ColorID = in.ColorID
	product.SizeID = in.SizeID
	product.IsFeatured = in.IsFeatured
	product.IsArchived = in.IsArchived
	product.UpdatedAt = now
	product.Category, product.Color, product.Size = nil, nil, nil

	images := make([]Image, 0, len(in.Images))
	for _, image := range in.Images {
		images = append(images, Image{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			URL:       image.URL,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	product.Images = images
}
