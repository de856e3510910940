package repository

import (
	"context"

	"penlink/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryColumns = `id, name, slug, description, created_at, updated_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
}

func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
}

func (r *CategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name, slug, description) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Slug, c.Description,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return mapErr(err)
}

func (r *CategoryRepo) Update(ctx context.Context, c *models.Category) error {
	err := r.db.QueryRow(ctx,
		`UPDATE categories SET name = $1, slug = $2, description = $3, updated_at = now()
		 WHERE id = $4 RETURNING updated_at`,
		c.Name, c.Slug, c.Description, c.ID,
	).Scan(&c.UpdatedAt)
	return mapErr(err)
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountPosts: kategoriye bağlı yazı sayısı (silme öncesi kontrol).
func (r *CategoryRepo) CountPosts(ctx context.Context, id int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE category_id = $1`, id).Scan(&n)
	return n, err
}
