package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rizkyfachril/backoffice/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetBySlug(ctx context.Context, slug string) (*model.ProductEntity, error)
	Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error)
	Update(ctx context.Context, data *model.ProductEntity) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)

	ListVariants(ctx context.Context, productID uint64) ([]model.ProductVariant, error)
	GetVariantByID(ctx context.Context, id uint64) (*model.ProductVariant, error)
	GetVariantBySKU(ctx context.Context, sku string) (*model.ProductVariant, error)
	CreateVariant(ctx context.Context, data *model.ProductVariant) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, data *model.ProductVariant) error
	DeleteVariant(ctx context.Context, id uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = `id, name, slug, description, price, category_id, image_url, status, created_at, updated_at`

	listProductsBase = `SELECT p.id, p.name, p.slug, p.price, c.name AS category_name
FROM product p
LEFT JOIN category c ON p.category_id = c.id`

	countProductsQuery = `SELECT COUNT(*) FROM product`

	insertProductQuery = `INSERT INTO product (name, slug, description, price, category_id, image_url, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

	updateProductQuery = `UPDATE product SET name = ?, slug = ?, description = ?, price = ?, category_id = ?, image_url = ?, status = ?, updated_at = NOW() WHERE id = ?`

	deleteProductQuery = `DELETE FROM product WHERE id = ?`

	variantColumns = `id, product_id, title, sku, price, created_at, updated_at`

	insertVariantQuery = `INSERT INTO product_variant (product_id, title, sku, price, created_at) VALUES (?, ?, ?, ?, NOW())`

	updateVariantQuery = `UPDATE product_variant SET title = ?, sku = ?, price = ?, updated_at = NOW() WHERE id = ?`

	deleteVariantQuery = `DELETE FROM product_variant WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE id = ?`

	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetBySlug(ctx context.Context, slug string) (*model.ProductEntity, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE slug = ?`

	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, query, slug).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery,
		data.Name, data.Slug, data.Description, data.Price, data.CategoryID, data.ImageURL, data.Status)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ProductEntity) error {
	_, err := s.conn.ExecContext(ctx, updateProductQuery,
		data.Name, data.Slug, data.Description, data.Price, data.CategoryID, data.ImageURL, data.Status, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, countProductsQuery); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQL) ListVariants(ctx context.Context, productID uint64) ([]model.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variant WHERE product_id = ? ORDER BY id`

	rows, err := s.conn.QueryxContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variants := make([]model.ProductVariant, 0)
	for rows.Next() {
		var v model.ProductVariant
		if err := rows.StructScan(&v); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

func (s *SQL) GetVariantByID(ctx context.Context, id uint64) (*model.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variant WHERE id = ?`

	var v model.ProductVariant
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *SQL) GetVariantBySKU(ctx context.Context, sku string) (*model.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variant WHERE sku = ?`

	var v model.ProductVariant
	if err := s.conn.QueryRowxContext(ctx, query, sku).StructScan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *SQL) CreateVariant(ctx context.Context, data *model.ProductVariant) (*model.ProductVariant, error) {
	result, err := s.conn.ExecContext(ctx, insertVariantQuery, data.ProductID, data.Title, data.SKU, data.Price)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) UpdateVariant(ctx context.Context, data *model.ProductVariant) error {
	_, err := s.conn.ExecContext(ctx, updateVariantQuery, data.Title, data.SKU, data.Price, data.ID)
	return err
}

func (s *SQL) DeleteVariant(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteVariantQuery, id)
	return err
}
