package app

import (
	"context"
	"fmt"

	"penlink/internal/config"
	"penlink/internal/db"
	"penlink/internal/logger"
	"penlink/internal/repository"
	"penlink/internal/repository/memory"
	"penlink/internal/services"

	"go.uber.org/zap"
)

type CommentStore interface {
	services.CommentRepo
	services.CommentCounter
}

// Stores: servislerin ihtiyaç duyduğu depoların tek elden seçimi (postgres | memory).
type Stores struct {
	Users      services.UserRepo
	Categories services.CategoryRepo
	Posts      services.PostRepo
	Comments   CommentStore
	Contacts   services.ContactRepo
	Stats      services.StatsRepo

	// Reset tüm verileri siler (seed komutu).
	Reset func(ctx context.Context) error
	Close func()
}

func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Log.Warn("Bellek içi depo kullanılıyor, veriler yeniden başlatmada kaybolur")
		return MemoryStores(memory.NewStore()), nil
	case config.StoragePostgres:
		return postgresStores(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func MemoryStores(st *memory.Store) *Stores {
	return &Stores{
		Users:      st.Users(),
		Categories: st.Categories(),
		Posts:      st.Posts(),
		Comments:   st.Comments(),
		Contacts:   st.Contacts(),
		Stats:      st.Stats(),
		Reset: func(context.Context) error {
			st.Reset()
			return nil
		},
		Close: func() {},
	}
}

func postgresStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	logger.Log.Info("PostgreSQL'e bağlanılıyor", zap.String("dsn", cfg.GetDSNSafe()))
	pool, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres bağlantısı: %w", err)
	}
	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Stores{
		Users:      repository.NewUserRepository(pool),
		Categories: repository.NewCategoryRepo(pool),
		Posts:      repository.NewPostRepo(pool),
		Comments:   repository.NewCommentRepo(pool),
		Contacts:   repository.NewContactRepo(pool),
		Stats:      repository.NewStatsRepo(pool),
		Reset: func(ctx context.Context) error {
			return db.Reset(ctx, pool)
		},
		Close: pool.Close,
	}, nil
}
