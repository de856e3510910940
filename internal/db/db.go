package db

import (
	"context"
	_ "embed"
	"fmt"

	"penlink/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

func NewPostgresConnection(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Migrate şemayı idempotent olarak uygular.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("şema uygulanamadı: %w", err)
	}
	return nil
}

// Reset tüm tabloları boşaltır; sadece seed komutu kullanır.
func Reset(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `TRUNCATE comment_likes, comments, post_likes, posts, categories, contact_messages, users RESTART IDENTITY CASCADE`)
	return err
}
