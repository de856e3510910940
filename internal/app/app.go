package app

import (
	"context"

	"penlink/internal/config"
	"penlink/internal/handlers"
	"penlink/internal/logger"
	"penlink/internal/repository/redisrepo"
	"penlink/internal/routes"
	"penlink/internal/services"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const emailWorkers = 3

// Services: HTTP katmanı ve seed komutunun ortak kullandığı servis grafiği.
type Services struct {
	Auth       *services.AuthService
	Categories *services.CategoryService
	Posts      *services.PostService
	Comments   *services.CommentService
	Contacts   *services.ContactService
	Stats      *services.StatsService
}

func NewServices(cfg *config.Config, st *Stores, cache redisrepo.Cache) *Services {
	notifyTo := ""
	if cfg.SMTPHost != "" {
		notifyTo = cfg.ContactNotifyEmail
	}
	return &Services{
		Auth:       services.NewAuthService(st.Users, cfg.JWTSecret, cfg.AccessTokenTTL),
		Categories: services.NewCategoryService(st.Categories, cache),
		Posts:      services.NewPostService(st.Posts, st.Categories, st.Comments, cache),
		Comments:   services.NewCommentService(st.Comments, st.Posts),
		Contacts:   services.NewContactService(st.Contacts, notifyTo),
		Stats:      services.NewStatsService(st.Stats, cache),
	}
}

// NewRouter tüm uçları kayıtlı router'ı döner.
func NewRouter(cfg *config.Config, svc *Services) *mux.Router {
	router := mux.NewRouter()
	routes.InitRoutes(router, routes.Handlers{
		Auth:       handlers.NewAuthHandler(svc.Auth),
		Categories: handlers.NewCategoryHandler(svc.Categories),
		Posts:      handlers.NewPostHandler(svc.Posts, svc.Comments),
		Comments:   handlers.NewCommentHandler(svc.Comments),
		Contact:    handlers.NewContactHandler(svc.Contacts),
		Stats:      handlers.NewStatsHandler(svc.Stats),
	}, routes.Options{
		JWTSecret:      cfg.JWTSecret,
		PostCreateRole: cfg.PostCreateRole,
	})
	return router
}

// NewCache REDIS_ADDR boşsa önbelleği kapatır; Redis'e ulaşılamazsa uyarı verip yine kapatır.
func NewCache(ctx context.Context, cfg *config.Config) (redisrepo.Cache, func()) {
	if cfg.RedisAddr == "" {
		return redisrepo.Nop(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("Redis'e ulaşılamadı, önbellek kapalı", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = rdb.Close()
		return redisrepo.Nop(), func() {}
	}

	logger.Log.Info("Redis önbelleği etkin", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	return redisrepo.New(rdb, cfg.CacheTTL), func() { _ = rdb.Close() }
}

// InitApp depoları, önbelleği, e-posta işçilerini ve router'ı hazırlar.
// Dönen cleanup bağlantıları kapatır.
func InitApp(ctx context.Context, cfg *config.Config) (*mux.Router, func(), error) {
	st, err := OpenStores(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	cache, closeCache := NewCache(ctx, cfg)

	if cfg.SMTPHost != "" {
		emailService := services.NewEmailService(cfg)
		for i := 0; i < emailWorkers; i++ {
			services.StartEmailWorker(emailService)
		}
	}

	router := NewRouter(cfg, NewServices(cfg, st, cache))

	cleanup := func() {
		closeCache()
		st.Close()
	}
	return router, cleanup, nil
}
