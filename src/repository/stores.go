package repository

import (
	"context"
	"fmt"

	"storeadmin/src/app"
)

const storeColumns = `id, name, user_id, created_at, updated_at`

func scanStore(row scanner) (*app.Store, error) {
	var (
		store            app.Store
		created, updated int64
	)
	if err := row.Scan(&store.ID, &store.Name, &store.UserID, &created, &updated); err != nil {
		return nil, err
	}
	store.CreatedAt, store.UpdatedAt = fromMillis(created), fromMillis(updated)
	return &store, nil
}

func (s *SQLDB) CreateStore(ctx context.Context, store *app.Store) error {
	_, err := s.db.ExecContext(ctx, s.q(`INSERT INTO stores (`+storeColumns+`) VALUES (?, ?, ?, ?, ?)`),
		store.ID, store.Name, store.UserID, toMillis(store.CreatedAt), toMillis(store.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

func (s *SQLDB) GetStore(ctx context.Context, id string) (*app.Store, error) {
	row := s.db.QueryRowContext(ctx, s.q(`SELECT `+storeColumns+` FROM stores WHERE id = ?`), id)
	store, err := scanStore(row)
	if err != nil {
		return nil, fmt.Errorf("get store %s: %w", id, noRecord(err))
	}
	return store, nil
}

func (s *SQLDB) FindStoreByOwner(ctx context.Context, storeID, userID string) (*app.Store, error) {
	row := s.db.QueryRowContext(ctx, s.q(`SELECT `+storeColumns+` FROM stores WHERE id = ? AND user_id = ?`), storeID, userID)
	store, err := scanStore(row)
	if err != nil {
		return nil, fmt.Errorf("find store %s: %w", storeID, noRecord(err))
	}
	return store, nil
}

func (s *SQLDB) ListStores(ctx context.Context, userID string) ([]app.Store, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`SELECT `+storeColumns+` FROM stores WHERE user_id = ? ORDER BY created_at, id`), userID)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	stores := make([]app.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, *store)
	}
	return stores, rows.Err()
}

func (s *SQLDB) UpdateStore(ctx context.Context, store *app.Store) error {
	err := affectedOne(s.db.ExecContext(ctx, s.q(`UPDATE stores SET name = ?, updated_at = ? WHERE id = ?`),
		store.Name, toMillis(store.UpdatedAt), store.ID))
	if err != nil {
		return fmt.Errorf("update store %s: %w", store.ID, err)
	}
	return nil
}

func (s *SQLDB) DeleteStore(ctx context.Context, id string) error {
	if err := affectedOne(s.db.ExecContext(ctx, s.q(`DELETE FROM stores WHERE id = ?`), id)); err != nil {
		return fmt.Errorf("delete store %s: %w", id, err)
	}
	return nil
}
