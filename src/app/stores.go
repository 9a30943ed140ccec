package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type StoreInput struct {
	Name string `json:"name"`
}

type StoreService struct {
	stores     StoreRepository
	billboards BillboardRepository
	products   ProductRepository
	owners     *StoreOwnership
	assets     *AssetCleaner
}

func NewStoreService(repo Repository, owners *StoreOwnership, assets *AssetCleaner) *StoreService {
	return &StoreService{
		stores:     repo,
		billboards: repo,
		products:   repo,
		owners:     owners,
		assets:     assets,
	}
}

func (s *StoreService) Create(ctx context.Context, userID string, in StoreInput) (*Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("Name is required")
	}
	now := time.Now().UTC()
	store := &Store{
		ID:        uuid.NewString(),
		Name:      in.Name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.stores.CreateStore(ctx, store); err != nil {
		return nil, fmt.Errorf("can not create store: %w", err)
	}
	return store, nil
}

// List returns the caller's stores.
func (s *StoreService) List(ctx context.Context, userID string) ([]Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.stores.ListStores(ctx, userID)
}

func (s *StoreService) Get(ctx context.Context, userID, storeID string) (*Store, error) {
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	store, err := s.stores.GetStore(ctx, storeID)
	if err != nil {
		return nil, notFound("Store", err)
	}
	return store, nil
}

func (s *StoreService) Rename(ctx context.Context, userID, storeID string, in StoreInput) (*Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("Name is required")
	}
	store, err := s.Get(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	store.Name = in.Name
	store.UpdatedAt = time.Now().UTC()
	if err := s.stores.UpdateStore(ctx, store); err != nil {
		return nil, notFound("Store", err)
	}
	return store, nil
}

// Delete removes the store with everything in it. Billboard and product
// images are removed from the asset store first.
func (s *StoreService) Delete(ctx context.Context, userID, storeID string) (*Store, error) {
	store, err := s.Get(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	billboards, err := s.billboards.ListBillboards(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("can not list billboards: %w", err)
	}
	imageURLs, err := s.products.ListStoreImageURLs(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("can not list product images: %w", err)
	}
	for _, billboard := range billboards {
		s.assets.Remove(ctx, billboard.ImageURL)
	}
	s.assets.RemoveAll(ctx, imageURLs)
	ctx = context.WithoutCancel(ctx)

	if err := s.stores.DeleteStore(ctx, storeID); err != nil {
		return nil, notFound("Store", err)
	}
	return store, nil
}
