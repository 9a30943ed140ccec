package app

import "context"

type (
	StoreRepository interface {
		CreateStore(ctx context.Context, store *Store) error
		GetStore(ctx context.Context, id string) (*Store, error)
		// FindStoreByOwner returns ErrNoRecord unless the store exists and
		// belongs to userID.
		FindStoreByOwner(ctx context.Context, storeID, userID string) (*Store, error)
		ListStores(ctx context.Context, userID string) ([]Store, error)
		UpdateStore(ctx context.Context, store *Store) error
		// DeleteStore removes the store and, by cascade, all of its children.
		DeleteStore(ctx context.Context, id string) error
	}

	BillboardRepository interface {
		ListBillboards(ctx context.Context, storeID string) ([]Billboard, error)
		GetBillboard(ctx context.Context, id string) (*Billboard, error)
		CreateBillboard(ctx context.Context, billboard *Billboard) error
		UpdateBillboard(ctx context.Context, billboard *Billboard) error
		DeleteBillboard(ctx context.Context, id string) error
	}

	CategoryRepository interface {
		ListCategories(ctx context.Context, storeID string) ([]Category, error)
		GetCategory(ctx context.Context, id string) (*Category, error)
		CreateCategory(ctx context.Context, category *Category) error
		UpdateCategory(ctx context.Context, category *Category) error
		DeleteCategory(ctx context.Context, id string) error
	}

	AttributeRepository interface {
		ListAttributes(ctx context.Context, kind AttributeKind, storeID string) ([]Attribute, error)
		GetAttribute(ctx context.Context, kind AttributeKind, id string) (*Attribute, error)
		CreateAttribute(ctx context.Context, kind AttributeKind, attribute *Attribute) error
		UpdateAttribute(ctx context.Context, kind AttributeKind, attribute *Attribute) error
		DeleteAttribute(ctx context.Context, kind AttributeKind, id string) error
	}

	ProductRepository interface {
		ListProducts(ctx context.Context, storeID string, filter ProductFilter) ([]Product, error)
		// GetProduct loads the product with its images, category, color
		// and size.
		GetProduct(ctx context.Context, id string) (*Product, error)
		// CreateProduct inserts the product and its images.
		CreateProduct(ctx context.Context, product *Product) error
		// UpdateProduct writes the scalar fields and replaces the stored
		// image set with product.Images in one transaction.
		UpdateProduct(ctx context.Context, product *Product) error
		// DeleteProduct removes the product; images go with it.
		DeleteProduct(ctx context.Context, id string) error
		// ListStoreImageURLs returns every product image URL of a store.
		ListStoreImageURLs(ctx context.Context, storeID string) ([]string, error)
	}

	// Repository is the full relational store used by the services.
	Repository interface {
		StoreRepository
		BillboardRepository
		CategoryRepository
		AttributeRepository
		ProductRepository
	}
)

// AttributeKind selects the table behind an AttributeRepository call.
type AttributeKind string

const (
	AttributeColor AttributeKind = "color"
	AttributeSize  AttributeKind = "size"
)

// Resource returns the capitalised resource name used in messages.
func (k AttributeKind) Resource() string {
	switch k {
	case AttributeColor:
		return "Color"
	case AttributeSize:
		return "Size"
	}
	return string(k)
}
