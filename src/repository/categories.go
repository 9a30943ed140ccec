package repository

import (
	"context"
	"fmt"

	"storeadmin/src/app"
)

const categoryColumns = `id, store_id, billboard_id, name, created_at, updated_at`

func scanCategory(row scanner) (*app.Category, error) {
	var (
		category         app.Category
		created, updated int64
	)
	err := row.Scan(&category.ID, &category.StoreID, &category.BillboardID, &category.Name, &created, &updated)
	if err != nil {
		return nil, err
	}
	category.CreatedAt, category.UpdatedAt = fromMillis(created), fromMillis(updated)
	return &category, nil
}

func (s *SQLDB) ListCategories(ctx context.Context, storeID string) ([]app.Category, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`SELECT `+categoryColumns+` FROM categories WHERE store_id = ? ORDER BY created_at DESC, id`), storeID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]app.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

func (s *SQLDB) GetCategory(ctx context.Context, id string) (*app.Category, error) {
	row := s.db.QueryRowContext(ctx, s.q(`SELECT `+categoryColumns+` FROM categories WHERE id = ?`), id)
	category, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, noRecord(err))
	}
	return category, nil
}

func (s *SQLDB) CreateCategory(ctx context.Context, category *app.Category) error {
	_, err := s.db.ExecContext(ctx, s.q(`INSERT INTO categories (`+categoryColumns+`) VALUES (?, ?, ?, ?, ?, ?)`),
		category.ID, category.StoreID, category.BillboardID, category.Name,
		toMillis(category.CreatedAt), toMillis(category.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *SQLDB) UpdateCategory(ctx context.Context, category *app.Category) error {
	err := affectedOne(s.db.ExecContext(ctx, s.q(`UPDATE categories SET name = ?, billboard_id = ?, updated_at = ? WHERE id = ?`),
		category.Name, category.BillboardID, toMillis(category.UpdatedAt), category.ID))
	if err != nil {
		return fmt.Errorf("update category %s: %w", category.ID, err)
	}
	return nil
}

func (s *SQLDB) DeleteCategory(ctx context.Context, id string) error {
	if err := affectedOne(s.db.ExecContext(ctx, s.q(`DELETE FROM categories WHERE id = ?`), id)); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}
