package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/repository"
	"penlink/internal/repository/redisrepo"

	"go.uber.org/zap"
)

type CategoryRepo interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) error
	CountPosts(ctx context.Context, id int64) (int, error)
}

type CategoryService struct {
	repo  CategoryRepo
	cache redisrepo.Cache
}

func NewCategoryService(repo CategoryRepo, cache redisrepo.Cache) *CategoryService {
	if cache == nil {
		cache = redisrepo.Nop()
	}
	return &CategoryService{repo: repo, cache: cache}
}

// List kategorileri ada göre artan sırada döner; sonuç önbelleklenir.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	var cached []*models.Category
	if ok, err := s.cache.GetJSON(ctx, redisrepo.CATEGORIES_KEY, &cached); err != nil {
		logger.Log.Warn("Kategori önbelleği okunamadı", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Error("Kategoriler alınamadı (service)", zap.Error(err))
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, redisrepo.CATEGORIES_KEY, list); err != nil {
		logger.Log.Warn("Kategori önbelleği yazılamadı", zap.Error(err))
	}
	return list, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFoundError(msgCategoryNotFound)
	}
	return c, err
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := s.repo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFoundError(msgCategoryNotFound)
	}
	return c, err
}

func (s *CategoryService) Create(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, ValidationError("Kategori adı zorunludur")
	}

	c := &models.Category{Name: strings.TrimSpace(*req.Name)}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}
	if c.Slug = Slugify(c.Name); c.Slug == "" {
		return nil, ValidationError("Kategori adı harf veya rakam içermelidir")
	}

	logger.Log.Info("Kategori oluşturuluyor (service)", zap.String("name", c.Name), zap.String("slug", c.Slug))
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ValidationError(msgCategoryExists)
		}
		logger.Log.Error("Kategori oluşturulamadı (service)", zap.Error(err))
		return nil, err
	}

	s.invalidate(ctx)
	return c, nil
}

// Update yalnızca gövdede bulunan alanların üzerine yazar. Ad değişirse slug yeniden üretilir.
func (s *CategoryService) Update(ctx context.Context, id int64, req *models.CategoryRequest) (*models.Category, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ValidationError("Kategori adı boş olamaz")
		}
		c.Name = name
		if c.Slug = Slugify(name); c.Slug == "" {
			return nil, ValidationError("Kategori adı harf veya rakam içermelidir")
		}
	}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, NotFoundError(msgCategoryNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ValidationError(msgCategoryExists)
		}
		logger.Log.Error("Kategori güncellenemedi (service)", zap.Error(err), zap.Int64("id", id))
		return nil, err
	}

	logger.Log.Info("Kategori güncellendi (service)", zap.Int64("id", id))
	s.invalidate(ctx)
	return c, nil
}

// Delete kategoriye bağlı yazı varsa reddeder.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if ok, err := s.repo.Exists(ctx, id); err != nil {
		return err
	} else if !ok {
		return NotFoundError(msgCategoryNotFound)
	}

	n, err := s.repo.CountPosts(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ValidationError("Cannot delete category with %d posts", n)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFoundError(msgCategoryNotFound)
		}
		return err
	}

	logger.Log.Info("Kategori silindi (service)", zap.Int64("id", id))
	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, redisrepo.CATEGORIES_KEY, redisrepo.POSTS_PER_CATEGORY_KEY); err != nil {
		logger.Log.Warn("Önbellek temizlenemedi", zap.Error(fmt.Errorf("categories: %w", err)))
	}
}
