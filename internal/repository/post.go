package repository

import (
	"context"
	"fmt"
	"strings"

	"penlink/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepo struct {
	db *pgxpool.Pool
}

func NewPostRepo(db *pgxpool.Pool) *PostRepo { return &PostRepo{db: db} }

const postSelect = `
	SELECT p.id, p.title, p.content, p.excerpt,
	       p.author_id, u.username, u.email,
	       p.category_id, c.name, c.slug,
	       p.tags, p.image, p.created_at, p.updated_at,
	       COALESCE(l.likes, '{}') AS likes
	FROM posts p
	LEFT JOIN users u ON u.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN LATERAL (
	    SELECT array_agg(pl.user_id ORDER BY pl.created_at) AS likes
	    FROM post_likes pl WHERE pl.post_id = p.id
	) l ON true
`

// Sıralanabilir alanlar: JSON adı -> SQL ifadesi.
var postSortColumns = map[string]string{
	"createdAt": "p.created_at",
	"updatedAt": "p.updated_at",
	"title":     "p.title",
	"likes":     "COALESCE(cardinality(l.likes), 0)",
	"comments":  "(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id)",
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var (
		p            models.Post
		authorName   *string
		authorEmail  *string
		categoryName *string
		categorySlug *string
	)
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Excerpt,
		&p.AuthorID, &authorName, &authorEmail,
		&p.CategoryID, &categoryName, &categorySlug,
		&p.Tags, &p.Image, &p.CreatedAt, &p.UpdatedAt,
		&p.Likes,
	); err != nil {
		return nil, mapErr(err)
	}

	if p.AuthorID != nil && authorName != nil {
		p.Author = &models.UserRef{ID: *p.AuthorID, Username: *authorName, Email: deref(authorEmail)}
	}
	if categoryName != nil {
		p.Category = &models.CategoryRef{ID: p.CategoryID, Name: *categoryName, Slug: deref(categorySlug)}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Likes == nil {
		p.Likes = []int64{}
	}
	p.LikesCount = len(p.Likes)
	return &p, nil
}

func (r *PostRepo) List(ctx context.Context, q models.PostListQuery) ([]*models.Post, int, error) {
	var (
		where []string
		args  []any
	)
	if q.CategoryID != nil {
		args = append(args, *q.CategoryID)
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts p`+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := postSortColumns[q.SortBy]
	if !ok {
		col = postSortColumns["createdAt"]
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}

	sql := postSelect + whereSQL +
		fmt.Sprintf(" ORDER BY %s %s, p.id %s LIMIT $%d OFFSET $%d", col, dir, dir, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return scanPost(r.db.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id))
}

func (r *PostRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *PostRepo) Create(ctx context.Context, p *models.Post) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO posts (title, content, excerpt, author_id, category_id, tags, image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Content, p.Excerpt, p.AuthorID, p.CategoryID, p.Tags, p.Image,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return mapErr(err)
}

func (r *PostRepo) Update(ctx context.Context, p *models.Post) error {
	err := r.db.QueryRow(ctx,
		`UPDATE posts
		 SET title = $1, content = $2, excerpt = $3, category_id = $4, tags = $5, image = $6, updated_at = now()
		 WHERE id = $7
		 RETURNING updated_at`,
		p.Title, p.Content, p.Excerpt, p.CategoryID, p.Tags, p.Image, p.ID,
	).Scan(&p.UpdatedAt)
	return mapErr(err)
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike kullanıcının beğenisini tek transaction içinde ekler ya da kaldırır.
// Beğeniler (post_id, user_id) birincil anahtarlı ayrı tabloda durduğu için
// farklı kullanıcıların eşzamanlı beğenileri birbirini ezmez.
func (r *PostRepo) ToggleLike(ctx context.Context, postID, userID int64) (liked bool, count int, err error) {
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		liked, err = toggleEdge(ctx, tx, "post_likes", "post_id", postID, userID)
		if err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM post_likes WHERE post_id = $1`, postID).Scan(&count)
	})
	return liked, count, mapErr(err)
}

// toggleEdge: satır varsa siler, yoksa ekler. Eklendiyse true döner.
func toggleEdge(ctx context.Context, tx pgx.Tx, table, column string, targetID, userID int64) (bool, error) {
	tag, err := tx.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND user_id = $2`, table, column),
		targetID, userID,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (%s, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table, column),
		targetID, userID,
	)
	return err == nil, err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
