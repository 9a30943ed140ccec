package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"storeadmin/src/app"
)

const productSelect = `SELECT
	p.id, p.store_id, p.category_id, p.color_id, p.size_id, p.name, p.price,
	p.is_featured, p.is_archived, p.created_at, p.updated_at,
	c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
	co.id, co.store_id, co.name, co.value, co.created_at, co.updated_at,
	sz.id, sz.store_id, sz.name, sz.value, sz.created_at, sz.updated_at
FROM products p
JOIN categories c ON c.id = p.category_id
JOIN colors co ON co.id = p.color_id
JOIN sizes sz ON sz.id = p.size_id`

const imageColumns = `i.id, i.product_id, i.url, i.created_at, i.updated_at`

func scanProduct(row scanner) (*app.Product, error) {
	var (
		product  app.Product
		category app.Category
		color    app.Color
		size     app.Size
		times    [8]int64
	)
	err := row.Scan(
		&product.ID, &product.StoreID, &product.CategoryID, &product.ColorID, &product.SizeID,
		&product.Name, &product.Price, &product.IsFeatured, &product.IsArchived, &times[0], &times[1],
		&category.ID, &category.StoreID, &category.BillboardID, &category.Name, &times[2], &times[3],
		&color.ID, &color.StoreID, &color.Name, &color.Value, &times[4], &times[5],
		&size.ID, &size.StoreID, &size.Name, &size.Value, &times[6], &times[7],
	)
	if err != nil {
		return nil, err
	}
	product.CreatedAt, product.UpdatedAt = fromMillis(times[0]), fromMillis(times[1])
	category.CreatedAt, category.UpdatedAt = fromMillis(times[2]), fromMillis(times[3])
	color.CreatedAt, color.UpdatedAt = fromMillis(times[4]), fromMillis(times[5])
	size.CreatedAt, size.UpdatedAt = fromMillis(times[6]), fromMillis(times[7])
	product.Category, product.Color, product.Size = &category, &color, &size
	product.Images = make([]app.Image, 0)
	return &product, nil
}

func (s *SQLDB) GetProduct(ctx context.Context, id string) (*app.Product, error) {
	row := s.db.QueryRowContext(ctx, s.q(productSelect+` WHERE p.id = ?`), id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, noRecord(err))
	}
	images, err := s.queryImages(ctx, `SELECT `+imageColumns+` FROM images i WHERE i.product_id = ? ORDER BY i.position`, id)
	if err != nil {
		return nil, err
	}
	product.Images = append(product.Images, images[id]...)
	return product, nil
}

func (s *SQLDB) ListProducts(ctx context.Context, storeID string, filter app.ProductFilter) ([]app.Product, error) {
	conditions := []string{"p.store_id = ?"}
	args := []any{storeID}
	if filter.CategoryID != "" {
		conditions = append(conditions, "p.category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.ColorID != "" {
		conditions = append(conditions, "p.color_id = ?")
		args = append(args, filter.ColorID)
	}
	if filter.SizeID != "" {
		conditions = append(conditions, "p.size_id = ?")
		args = append(args, filter.SizeID)
	}
	if filter.IsFeatured != nil {
		conditions = append(conditions, "p.is_featured = ?")
		args = append(args, *filter.IsFeatured)
	}
	if !filter.IncludeArchived {
		conditions = append(conditions, "p.is_archived = ?")
		args = append(args, false)
	}

	query := productSelect + ` WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY p.created_at DESC, p.id`
	rows, err := s.db.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]app.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *product)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if len(products) == 0 {
		return products, nil
	}

	images, err := s.queryImages(ctx, `SELECT `+imageColumns+` FROM images i
		JOIN products p ON p.id = i.product_id
		WHERE p.store_id = ? ORDER BY i.product_id, i.position`, storeID)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Images = append(products[i].Images, images[products[i].ID]...)
	}
	return products, nil
}

// queryImages runs an image query and groups the rows by product.
func (s *SQLDB) queryImages(ctx context.Context, query string, args ...any) (map[string][]app.Image, error) {
	rows, err := s.db.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	images := make(map[string][]app.Image)
	for rows.Next() {
		var (
			image            app.Image
			created, updated int64
		)
		if err := rows.Scan(&image.ID, &image.ProductID, &image.URL, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		image.CreatedAt, image.UpdatedAt = fromMillis(created), fromMillis(updated)
		images[image.ProductID] = append(images[image.ProductID], image)
	}
	return images, rows.Err()
}

func (s *SQLDB) CreateProduct(ctx context.Context, product *app.Product) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, s.q(`INSERT INTO products
			(id, store_id, category_id, color_id, size_id, name, price, is_featured, is_archived, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			product.ID, product.StoreID, product.CategoryID, product.ColorID, product.SizeID,
			product.Name, product.Price, product.IsFeatured, product.IsArchived,
			toMillis(product.CreatedAt), toMillis(product.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return s.insertImages(ctx, tx, product.Images)
	})
}

func (s *SQLDB) UpdateProduct(ctx context.Context, product *app.Product) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		err := affectedOne(tx.ExecContext(ctx, s.q(`UPDATE products SET
			category_id = ?, color_id = ?, size_id = ?, name = ?, price = ?,
			is_featured = ?, is_archived = ?, updated_at = ?
			WHERE id = ?`),
			product.CategoryID, product.ColorID, product.SizeID, product.Name, product.Price,
			product.IsFeatured, product.IsArchived, toMillis(product.UpdatedAt), product.ID))
		if err != nil {
			return fmt.Errorf("update product %s: %w", product.ID, err)
		}
		if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM images WHERE product_id = ?`), product.ID); err != nil {
			return fmt.Errorf("delete images of %s: %w", product.ID, err)
		}
		return s.insertImages(ctx, tx, product.Images)
	})
}

func (s *SQLDB) insertImages(ctx context.Context, tx *sql.Tx, images []app.Image) error {
	for position, image := range images {
		_, err := tx.ExecContext(ctx, s.q(`INSERT INTO images (id, product_id, url, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`),
			image.ID, image.ProductID, image.URL, position, toMillis(image.CreatedAt), toMillis(image.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert image: %w", err)
		}
	}
	return nil
}

func (s *SQLDB) DeleteProduct(ctx context.Context, id string) error {
	if err := affectedOne(s.db.ExecContext(ctx, s.q(`DELETE FROM products WHERE id = ?`), id)); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func (s *SQLDB) ListStoreImageURLs(ctx context.Context, storeID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`SELECT i.url FROM images i
		JOIN products p ON p.id = i.product_id
		WHERE p.store_id = ? ORDER BY i.product_id, i.position`), storeID)
	if err != nil {
		return nil, fmt.Errorf("list image urls: %w", err)
	}
	defer rows.Close()

	urls := make([]string, 0)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scan image url: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}
