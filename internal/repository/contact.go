package repository

import (
	"context"

	"penlink/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepo(db *pgxpool.Pool) *ContactRepo { return &ContactRepo{db: db} }

func scanContact(row pgx.Row) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.SubmissionDate); err != nil {
		return nil, mapErr(err)
	}
	return &m, nil
}

func (r *ContactRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, message) VALUES ($1, $2, $3)
		 RETURNING id, submission_date`,
		m.Name, m.Email, m.Message,
	).Scan(&m.ID, &m.SubmissionDate)
	return mapErr(err)
}

func (r *ContactRepo) List(ctx context.Context) ([]*models.ContactMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, message, submission_date FROM contact_messages
		 ORDER BY submission_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.ContactMessage{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	return scanContact(r.db.QueryRow(ctx,
		`SELECT id, name, email, message, submission_date FROM contact_messages WHERE id = $1`, id))
}

func (r *ContactRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
