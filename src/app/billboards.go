package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BillboardInput is the writable part of a billboard.
type BillboardInput struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

func (in BillboardInput) validate() error {
	if strings.TrimSpace(in.Label) == "" {
		return invalid("Label is required")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return invalid("Image URL is required")
	}
	return nil
}

type BillboardService struct {
	billboards BillboardRepository
	owners     *StoreOwnership
	assets     *AssetCleaner
}

func NewBillboardService(billboards BillboardRepository, owners *StoreOwnership, assets *AssetCleaner) *BillboardService {
	return &BillboardService{billboards: billboards, owners: owners, assets: assets}
}

// Get is public.
func (s *BillboardService) Get(ctx context.Context, billboardID string) (*Billboard, error) {
	if billboardID == "" {
		return nil, invalid("Billboard id is required")
	}
	billboard, err := s.billboards.GetBillboard(ctx, billboardID)
	if err != nil {
		return nil, notFound("Billboard", err)
	}
	return billboard, nil
}

// List is public.
func (s *BillboardService) List(ctx context.Context, storeID string) ([]Billboard, error) {
	if storeID == "" {
		return nil, invalid("Store id is required")
	}
	return s.billboards.ListBillboards(ctx, storeID)
}

func (s *BillboardService) Create(ctx context.Context, userID, storeID string, in BillboardInput) (*Billboard, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	billboard := &Billboard{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Label:     in.Label,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.billboards.CreateBillboard(ctx, billboard); err != nil {
		return nil, fmt.Errorf("can not create billboard: %w", err)
	}
	return billboard, nil
}

// Update replaces label and image. The previous image is removed from the
// asset store unless the new URL points at the same public id. The write
// runs even when the caller goes away during asset cleanup.
func (s *BillboardService) Update(ctx context.Context, userID, storeID, billboardID string, in BillboardInput) (*Billboard, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if billboardID == "" {
		return nil, invalid("Billboard id is required")
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	billboard, err := s.find(ctx, storeID, billboardID)
	if err != nil {
		return nil, err
	}

	s.assets.RemoveReplaced(ctx, []string{billboard.ImageURL}, []string{in.ImageURL})
	ctx = context.WithoutCancel(ctx)

	billboard.Label = in.Label
	billboard.ImageURL = in.ImageURL
	billboard.UpdatedAt = time.Now().UTC()
	if err := s.billboards.UpdateBillboard(ctx, billboard); err != nil {
		return nil, notFound("Billboard", err)
	}
	return billboard, nil
}

// Delete removes the billboard and, best-effort, its image.
func (s *BillboardService) Delete(ctx context.Context, userID, storeID, billboardID string) (*Billboard, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if billboardID == "" {
		return nil, invalid("Billboard id is required")
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	billboard, err := s.find(ctx, storeID, billboardID)
	if err != nil {
		return nil, err
	}

	s.assets.Remove(ctx, billboard.ImageURL)
	ctx = context.WithoutCancel(ctx)

	if err := s.billboards.DeleteBillboard(ctx, billboardID); err != nil {
		return nil, notFound("Billboard", err)
	}
	return billboard, nil
}

// find loads a billboard of storeID. Billboards of other stores are
// reported as missing.
func (s *BillboardService) find(ctx context.Context, storeID, billboardID string) (*Billboard, error) {
	billboard, err := s.billboards.GetBillboard(ctx, billboardID)
	if err != nil {
		return nil, notFound("Billboard", err)
	}
	if billboard.StoreID != storeID {
		return nil, &NotFoundError{Resource: "Billboard"}
	}
	return billboard, nil
}
