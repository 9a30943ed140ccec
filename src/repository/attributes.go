package repository

import (
	"context"
	"fmt"

	"storeadmin/src/app"
)

const attributeColumns = `id, store_id, name, value, created_at, updated_at`

var attributeTables = map[app.AttributeKind]string{
	app.AttributeColor: "colors",
	app.AttributeSize:  "sizes",
}

func attributeTable(kind app.AttributeKind) (string, error) {
	table, ok := attributeTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown attribute kind %q", kind)
	}
	return table, nil
}

func scanAttribute(row scanner) (*app.Attribute, error) {
	var (
		attribute        app.Attribute
		created, updated int64
	)
	err := row.Scan(&attribute.ID, &attribute.StoreID, &attribute.Name, &attribute.Value, &created, &updated)
	if err != nil {
		return nil, err
	}
	attribute.CreatedAt, attribute.UpdatedAt = fromMillis(created), fromMillis(updated)
	return &attribute, nil
}

func (s *SQLDB) ListAttributes(ctx context.Context, kind app.AttributeKind, storeID string) ([]app.Attribute, error) {
	table, err := attributeTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, s.q(`SELECT `+attributeColumns+` FROM `+table+` WHERE store_id = ? ORDER BY created_at DESC, id`), storeID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	attributes := make([]app.Attribute, 0)
	for rows.Next() {
		attribute, err := scanAttribute(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		attributes = append(attributes, *attribute)
	}
	return attributes, rows.Err()
}

func (s *SQLDB) GetAttribute(ctx context.Context, kind app.AttributeKind, id string) (*app.Attribute, error) {
	table, err := attributeTable(kind)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, s.q(`SELECT `+attributeColumns+` FROM `+table+` WHERE id = ?`), id)
	attribute, err := scanAttribute(row)
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", kind, id, noRecord(err))
	}
	return attribute, nil
}

func (s *SQLDB) CreateAttribute(ctx context.Context, kind app.AttributeKind, attribute *app.Attribute) error {
	table, err := attributeTable(kind)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, s.q(`INSERT INTO `+table+` (`+attributeColumns+`) VALUES (?, ?, ?, ?, ?, ?)`),
		attribute.ID, attribute.StoreID, attribute.Name, attribute.Value,
		toMillis(attribute.CreatedAt), toMillis(attribute.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert %s: %w", kind, err)
	}
	return nil
}

func (s *SQLDB) UpdateAttribute(ctx context.Context, kind app.AttributeKind, attribute *app.Attribute) error {
	table, err := attributeTable(kind)
	if err != nil {
		return err
	}
	err = affectedOne(s.db.ExecContext(ctx, s.q(`UPDATE `+table+` SET name = ?, value = ?, updated_at = ? WHERE id = ?`),
		attribute.Name, attribute.Value, toMillis(attribute.UpdatedAt), attribute.ID))
	if err != nil {
		return fmt.Errorf("update %s %s: %w", kind, attribute.ID, err)
	}
	return nil
}

func (s *SQLDB) DeleteAttribute(ctx context.Context, kind app.AttributeKind, id string) error {
	table, err := attributeTable(kind)
	if err != nil {
		return err
	}
	if err := affectedOne(s.db.ExecContext(ctx, s.q(`DELETE FROM `+table+` WHERE id = ?`), id)); err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	return nil
}
