package main

import (
	"context"

	"penlink/internal/app"
	"penlink/internal/config"
	"penlink/internal/logger"
	"penlink/internal/repository/redisrepo"
	"penlink/internal/seed"

	"go.uber.org/zap"
)

// seed: depoyu boşaltır ve örnek verileri yükler.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("config yüklenemedi: " + err.Error())
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	if _, err := cfg.Validate(); err != nil {
		logger.Log.Fatal("Geçersiz yapılandırma", zap.Error(err))
	}

	ctx := context.Background()
	st, err := app.OpenStores(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Depo açılamadı", zap.Error(err))
	}
	defer st.Close()

	logger.Log.Info("Mevcut veriler temizleniyor")
	if err := st.Reset(ctx); err != nil {
		logger.Log.Fatal("Veriler temizlenemedi", zap.Error(err))
	}

	cache, closeCache := app.NewCache(ctx, cfg)
	defer closeCache()
	if err := cache.Del(ctx, redisrepo.CATEGORIES_KEY, redisrepo.POSTS_PER_CATEGORY_KEY); err != nil {
		logger.Log.Warn("Önbellek temizlenemedi", zap.Error(err))
	}

	svc := app.NewServices(cfg, st, cache)
	sum, err := seed.Run(ctx, seed.Deps{Users: st.Users, Categories: svc.Categories, Posts: svc.Posts})
	if err != nil {
		logger.Log.Fatal("Seed başarısız", zap.Error(err))
	}

	logger.Log.Info("Veritabanı dolduruldu",
		zap.Int("users", sum.Users),
		zap.Int("categories", sum.Categories),
		zap.Int("posts", sum.Posts),
	)
	logger.Log.Info("Giriş bilgileri: admin@penlink.com / admin123, user@example.com / user123")
}
