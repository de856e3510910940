package repository

import (
	"context"

	"penlink/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepo struct {
	db *pgxpool.Pool
}

func NewCommentRepo(db *pgxpool.Pool) *CommentRepo { return &CommentRepo{db: db} }

const commentSelect = `
	SELECT cm.id, cm.post_id, cm.author_id, u.username, u.email, cm.author_name, cm.text, cm.submission_date,
	       COALESCE((SELECT array_agg(cl.user_id ORDER BY cl.created_at)
	                 FROM comment_likes cl WHERE cl.comment_id = cm.id), '{}') AS likes
	FROM comments cm
	LEFT JOIN users u ON u.id = cm.author_id
`

func scanComment(row pgx.Row) (*models.Comment, error) {
	var (
		c           models.Comment
		authorName  *string
		authorEmail *string
	)
	if err := row.Scan(
		&c.ID, &c.PostID, &c.AuthorID, &authorName, &authorEmail,
		&c.AuthorName, &c.Text, &c.SubmissionDate, &c.Likes,
	); err != nil {
		return nil, mapErr(err)
	}
	if c.AuthorID != nil && authorName != nil {
		c.Author = &models.UserRef{ID: *c.AuthorID, Username: *authorName, Email: deref(authorEmail)}
	}
	if c.Likes == nil {
		c.Likes = []int64{}
	}
	return &c, nil
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	rows, err := r.db.Query(ctx,
		commentSelect+` WHERE cm.post_id = $1 ORDER BY cm.submission_date DESC, cm.id DESC`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	return scanComment(r.db.QueryRow(ctx, commentSelect+` WHERE cm.id = $1`, id))
}

func (r *CommentRepo) Create(ctx context.Context, c *models.Comment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO comments (post_id, author_id, author_name, text) VALUES ($1, $2, $3, $4)
		 RETURNING id, submission_date`,
		c.PostID, c.AuthorID, c.AuthorName, c.Text,
	).Scan(&c.ID, &c.SubmissionDate)
	return mapErr(err)
}

func (r *CommentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepo) ToggleLike(ctx context.Context, commentID, userID int64) (bool, error) {
	var liked bool
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		liked, err = toggleEdge(ctx, tx, "comment_likes", "comment_id", commentID, userID)
		return err
	})
	return liked, mapErr(err)
}

// CountByPosts: verilen yazılar için yorum sayıları (tek gruplu sorgu).
func (r *CommentRepo) CountByPosts(ctx context.Context, postIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT post_id, COUNT(*) FROM comments WHERE post_id = ANY($1) GROUP BY post_id`, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  int64
			cnt int
		)
		if err := rows.Scan(&id, &cnt); err != nil {
			return nil, err
		}
		counts[id] = cnt
	}
	return counts, rows.Err()
}
