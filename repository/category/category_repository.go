package category

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rizkyfachril/backoffice/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.CategoryEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	GetBySlug(ctx context.Context, slug string) (*model.CategoryEntity, error)
	Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error)
	Update(ctx context.Context, data *model.CategoryEntity) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const (
	categoryColumns = `id, name, slug, description, parent_id, created_at, updated_at`

	insertCategoryQuery = `INSERT INTO category (name, slug, description, parent_id, created_at) VALUES (?, ?, ?, ?, NOW())`

	updateCategoryQuery = `UPDATE category SET name = ?, slug = ?, description = ?, parent_id = ?, updated_at = NOW() WHERE id = ?`

	deleteCategoryQuery = `DELETE FROM category WHERE id = ?`

	countCategoriesQuery = `SELECT COUNT(*) FROM category`
)

func (s *SQL) List(ctx context.Context) ([]model.CategoryEntity, error) {
	query := `SELECT ` + categoryColumns + ` FROM category ORDER BY id`

	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.CategoryEntity, 0)
	for rows.Next() {
		var c model.CategoryEntity
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	query := `SELECT ` + categoryColumns + ` FROM category WHERE id = ?`

	var entity model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetBySlug(ctx context.Context, slug string) (*model.CategoryEntity, error) {
	query := `SELECT ` + categoryColumns + ` FROM category WHERE slug = ?`

	var entity model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, query, slug).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCategoryQuery, data.Name, data.Slug, data.Description, data.ParentID)
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

func (s *SQL) Update(ctx context.Context, data *model.CategoryEntity) error {
	_, err := s.conn.ExecContext(ctx, updateCategoryQuery, data.Name, data.Slug, data.Description, data.ParentID, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteCategoryQuery, id)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, countCategoriesQuery); err != nil {
		return 0, err
	}
	return count, nil
}
