package repository

import (
	"context"
	"fmt"

	"storeadmin/src/app"
)

const billboardColumns = `id, store_id, label, image_url, created_at, updated_at`

func scanBillboard(row scanner) (*app.Billboard, error) {
	var (
		billboard        app.Billboard
		created, updated int64
	)
	err := row.Scan(&billboard.ID, &billboard.StoreID, &billboard.Label, &billboard.ImageURL, &created, &updated)
	if err != nil {
		return nil, err
	}
	billboard.CreatedAt, billboard.UpdatedAt = fromMillis(created), fromMillis(updated)
	return &billboard, nil
}

func (s *SQLDB) ListBillboards(ctx context.Context, storeID string) ([]app.Billboard, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`SELECT `+billboardColumns+` FROM billboards WHERE store_id = ? ORDER BY created_at DESC, id`), storeID)
	if err != nil {
		return nil, fmt.Errorf("list billboards: %w", err)
	}
	defer rows.Close()

	billboards := make([]app.Billboard, 0)
	for rows.Next() {
		billboard, err := scanBillboard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan billboard: %w", err)
		}
		billboards = append(billboards, *billboard)
	}
	return billboards, rows.Err()
}

func (s *SQLDB) GetBillboard(ctx context.Context, id string) (*app.Billboard, error) {
	row := s.db.QueryRowContext(ctx, s.q(`SELECT `+billboardColumns+` FROM billboards WHERE id = ?`), id)
	billboard, err := scanBillboard(row)
	if err != nil {
		return nil, fmt.Errorf("get billboard %s: %w", id, noRecord(err))
	}
	return billboard, nil
}

func (s *SQLDB) CreateBillboard(ctx context.Context, billboard *app.Billboard) error {
	_, err := s.db.ExecContext(ctx, s.q(`INSERT INTO billboards (`+billboardColumns+`) VALUES (?, ?, ?, ?, ?, ?)`),
		billboard.ID, billboard.StoreID, billboard.Label, billboard.ImageURL,
		toMillis(billboard.CreatedAt), toMillis(billboard.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert billboard: %w", err)
	}
	return nil
}

func (s *SQLDB) UpdateBillboard(ctx context.Context, billboard *app.Billboard) error {
	err := affectedOne(s.db.ExecContext(ctx, s.q(`UPDATE billboards SET label = ?, image_url = ?, updated_at = ? WHERE id = ?`),
		billboard.Label, billboard.ImageURL, toMillis(billboard.UpdatedAt), billboard.ID))
	if err != nil {
		return fmt.Errorf("update billboard %s: %w", billboard.ID, err)
	}
	return nil
}

func (s *SQLDB) DeleteBillboard(ctx context.Context, id string) error {
	if err := affectedOne(s.db.ExecContext(ctx, s.q(`DELETE FROM billboards WHERE id = ?`), id)); err != nil {
		return fmt.Errorf("delete billboard %s: %w", id, err)
	}
	return nil
}
