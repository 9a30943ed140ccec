package app

// Services bundles every resource service over one repository and one
// asset cleaner.
type Services struct {
	Stores     *StoreService
	Billboards *BillboardService
	Categories *CategoryService
	Colors     *AttributeService
	Sizes      *AttributeService
	Products   *ProductService
}

func NewServices(repo Repository, assets *AssetCleaner) *Services {
	owners := NewStoreOwnership(repo)
	return &Services{
		Stores:     NewStoreService(repo, owners, assets),
		Billboards: NewBillboardService(repo, owners, assets),
		Categories: NewCategoryService(repo, owners),
		Colors:     NewAttributeService(AttributeColor, repo, owners),
		Sizes:      NewAttributeService(AttributeSize, repo, owners),
		Products:   NewProductService(repo, owners, assets),
	}
}
