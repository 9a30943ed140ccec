package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CategoryInput struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId"`
}

func (in CategoryInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("Name is required")
	}
	if in.BillboardID == "" {
		return invalid("Billboard id is required")
	}
	return nil
}

type CategoryService struct {
	categories CategoryRepository
	billboards BillboardRepository
	owners     *StoreOwnership
}

func NewCategoryService(repo Repository, owners *StoreOwnership) *CategoryService {
	return &CategoryService{categories: repo, billboards: repo, owners: owners}
}

func (s *CategoryService) Get(ctx context.Context, categoryID string) (*Category, error) {
	if categoryID == "" {
		return nil, invalid("Category id is required")
	}
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, notFound("Category", err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, storeID string) ([]Category, error) {
	if storeID == "" {
		return nil, invalid("Store id is required")
	}
	return s.categories.ListCategories(ctx, storeID)
}

func (s *CategoryService) Create(ctx context.Context, userID, storeID string, in CategoryInput) (*Category, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	if err := s.checkBillboard(ctx, storeID, in.BillboardID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	category := &Category{
		ID:          uuid.NewString(),
		StoreID:     storeID,
		BillboardID: in.BillboardID,
		Name:        in.Name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("can not create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, storeID, categoryID string, in CategoryInput) (*Category, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if categoryID == "" {
		return nil, invalid("Category id is required")
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	category, err := s.find(ctx, storeID, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.checkBillboard(ctx, storeID, in.BillboardID); err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.BillboardID = in.BillboardID
	category.UpdatedAt = time.Now().UTC()
	if err := s.categories.UpdateCategory(ctx, category); err != nil {
		return nil, notFound("Category", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID, storeID, categoryID string) (*Category, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if categoryID == "" {
		return nil, invalid("Category id is required")
	}
	if err := s.owners.RequireStoreOwnership(ctx, userID, storeID); err != nil {
		return nil, err
	}
	category, err := s.find(ctx, storeID, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.categories.DeleteCategory(ctx, categoryID); err != nil {
		return nil, notFound("Category", err)
	}
	return category, nil
}

func (s *CategoryService) find(ctx context.Context, storeID, categoryID string) (*Category, error) {
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, notFound("Category", err)
	}
	if category.StoreID != storeID {
		return nil, &NotFoundError{Resource: "Category"}
	}
	return category, nil
}

func (s *CategoryService) checkBillboard(ctx context.Context, storeID, billboardID string) error {
	billboard, err := s.billboards.GetBillboard(ctx, billboardID)
	return referenceError("Billboard", err, billboard == nil || billboard.StoreID != storeID)
}
