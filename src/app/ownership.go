package app

import (
	"context"
	"errors"
	"fmt"
)

// StoreOwnership answers whether a caller may mutate a store's resources.
type StoreOwnership struct {
	stores StoreRepository
}

func NewStoreOwnership(stores StoreRepository) *StoreOwnership {
	return &StoreOwnership{stores: stores}
}

// RequireStoreOwnership returns ErrUnauthenticated for an anonymous caller
// and ErrUnauthorized when userID does not own storeID. A store that does
// not exist is reported as ErrUnauthorized so callers cannot discover which ids exist.
func (o *StoreOwnership) RequireStoreOwnership(ctx context.Context, userID, storeID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if storeID == "" {
		return invalid("Store id is required")
	}
	if _, err := o.stores.FindStoreByOwner(ctx, storeID, userID); err != nil {
		if errors.Is(err, ErrNoRecord) {
			return ErrUnauthorized
		}
		return fmt.Errorf("can not check store ownership: %w", err)
	}
	return nil
}
