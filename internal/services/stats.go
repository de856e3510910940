package services

import (
	"context"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/repository/redisrepo"

	"go.uber.org/zap"
)

type StatsRepo interface {
	PostsPerCategory(ctx context.Context) ([]models.CategoryPostCount, error)
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

type StatsService struct {
	repo  StatsRepo
	cache redisrepo.Cache
}

func NewStatsService(repo StatsRepo, cache redisrepo.Cache) *StatsService {
	if cache == nil {
		cache = redisrepo.Nop()
	}
	return &StatsService{repo: repo, cache: cache}
}

// PostsPerCategory: yazısı olan kategoriler, sayıya göre azalan.
func (s *StatsService) PostsPerCategory(ctx context.Context) ([]models.CategoryPostCount, error) {
	var cached []models.CategoryPostCount
	if ok, err := s.cache.GetJSON(ctx, redisrepo.POSTS_PER_CATEGORY_KEY, &cached); err != nil {
		logger.Log.Warn("İstatistik önbelleği okunamadı", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	stats, err := s.repo.PostsPerCategory(ctx)
	if err != nil {
		logger.Log.Error("Kategori istatistikleri alınamadı (service)", zap.Error(err))
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, redisrepo.POSTS_PER_CATEGORY_KEY, stats); err != nil {
		logger.Log.Warn("İstatistik önbelleği yazılamadı", zap.Error(err))
	}
	return stats, nil
}

func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	return s.repo.Dashboard(ctx)
}
