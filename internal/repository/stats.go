package repository

import (
	"context"

	"penlink/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepo(db *pgxpool.Pool) *StatsRepo { return &StatsRepo{db: db} }

// PostsPerCategory yazıları kategoriye göre gruplar, kategori adını ekler
// ve sayıya göre azalan sıralar. Yazısı olmayan kategoriler listede yer almaz.
func (r *StatsRepo) PostsPerCategory(ctx context.Context) ([]models.CategoryPostCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, g.cnt
		FROM (SELECT category_id, COUNT(*) AS cnt FROM posts GROUP BY category_id) g
		JOIN categories c ON c.id = g.category_id
		ORDER BY g.cnt DESC, c.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CategoryPostCount{}
	for rows.Next() {
		var s models.CategoryPostCount
		if err := rows.Scan(&s.CategoryID, &s.CategoryName, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StatsRepo) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var s models.DashboardStats
	err := r.db.QueryRow(ctx, `
		SELECT
		  (SELECT COUNT(*) FROM posts),
		  (SELECT COUNT(*) FROM categories),
		  (SELECT COUNT(*) FROM users),
		  (SELECT COUNT(*) FROM comments),
		  (SELECT COUNT(*) FROM contact_messages)`,
	).Scan(&s.TotalPosts, &s.TotalCategories, &s.TotalUsers, &s.TotalComments, &s.TotalContactMessages)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
