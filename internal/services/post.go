package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/repository"
	"penlink/internal/repository/redisrepo"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PostRepo interface {
	List(ctx context.Context, q models.PostListQuery) ([]*models.Post, int, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, p *models.Post) error
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, postID, userID int64) (bool, int, error)
}

// CommentCounter: liste yanıtındaki commentsCount için gruplanmış sayım.
type CommentCounter interface {
	CountByPosts(ctx context.Context, postIDs []int64) (map[int64]int, error)
}

type CategoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type PostService struct {
	repo       PostRepo
	categories CategoryChecker
	comments   CommentCounter
	cache      redisrepo.Cache
	policy     *bluemonday.Policy
}

func NewPostService(repo PostRepo, categories CategoryChecker, comments CommentCounter, cache redisrepo.Cache) *PostService {
	if cache == nil {
		cache = redisrepo.Nop()
	}
	return &PostService{
		repo:       repo,
		categories: categories,
		comments:   comments,
		cache:      cache,
		policy:     bluemonday.UGCPolicy(),
	}
}

// NormalizeListQuery eksik veya geçersiz sayfalama değerlerini varsayılanlara çeker.
func NormalizeListQuery(q models.PostListQuery) models.PostListQuery {
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	// (Page-1)*Limit taşmamalı.
	if maxPage := math.MaxInt / q.Limit; q.Page > maxPage {
		q.Page = maxPage
	}
	return q
}

func (s *PostService) List(ctx context.Context, q models.PostListQuery) (*models.PostPage, error) {
	q = NormalizeListQuery(q)

	posts, total, err := s.repo.List(ctx, q)
	if err != nil {
		logger.Log.Error("Yazılar alınamadı (service)", zap.Error(err))
		return nil, err
	}
	if err := s.attachCommentCounts(ctx, posts...); err != nil {
		logger.Log.Error("Yorum sayıları alınamadı (service)", zap.Error(err))
		return nil, err
	}

	return &models.PostPage{
		Posts:       posts,
		TotalPages:  (total + q.Limit - 1) / q.Limit,
		CurrentPage: q.Page,
		Total:       total,
	}, nil
}

func (s *PostService) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFoundError(msgPostNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := s.attachCommentCounts(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, authorID int64, req *models.PostRequest) (*models.Post, error) {
	title, content := trimmed(req.Title), trimmed(req.Content)
	switch {
	case title == "":
		return nil, ValidationError("Başlık zorunludur")
	case content == "":
		return nil, ValidationError("İçerik zorunludur")
	case req.Category == nil:
		return nil, ValidationError("Kategori zorunludur")
	}
	if err := s.checkCategory(ctx, *req.Category); err != nil {
		return nil, err
	}

	p := &models.Post{
		Title:      title,
		Content:    s.policy.Sanitize(content),
		Excerpt:    s.policy.Sanitize(trimmed(req.Excerpt)),
		AuthorID:   &authorID,
		CategoryID: *req.Category,
		Tags:       cleanTags(req.Tags),
		Image:      cleanImage(req.Image),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		logger.Log.Error("Yazı oluşturulamadı (service)", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Yazı oluşturuldu (service)", zap.Int64("id", p.ID), zap.Int64("author_id", authorID))
	s.invalidate(ctx)

	return s.GetByID(ctx, p.ID)
}

// Update gövdede bulunan alanların üzerine yazar; kategori değişiyorsa yeniden doğrulanır.
func (s *PostService) Update(ctx context.Context, id int64, req *models.PostRequest) (*models.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFoundError(msgPostNotFound)
	}
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if p.Title = trimmed(req.Title); p.Title == "" {
			return nil, ValidationError("Başlık boş olamaz")
		}
	}
	if req.Content != nil {
		content := trimmed(req.Content)
		if content == "" {
			return nil, ValidationError("İçerik boş olamaz")
		}
		p.Content = s.policy.Sanitize(content)
	}
	if req.Excerpt != nil {
		p.Excerpt = s.policy.Sanitize(trimmed(req.Excerpt))
	}
	if req.Category != nil && *req.Category != p.CategoryID {
		if err := s.checkCategory(ctx, *req.Category); err != nil {
			return nil, err
		}
		p.CategoryID = *req.Category
	}
	if req.Tags != nil {
		p.Tags = cleanTags(req.Tags)
	}
	if req.Image != nil {
		p.Image = cleanImage(req.Image)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFoundError(msgPostNotFound)
		}
		logger.Log.Error("Yazı güncellenemedi (service)", zap.Error(err), zap.Int64("id", id))
		return nil, err
	}
	logger.Log.Info("Yazı güncellendi (service)", zap.Int64("id", id))
	s.invalidate(ctx)

	return s.GetByID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFoundError(msgPostNotFound)
		}
		logger.Log.Error("Yazı silinemedi (service)", zap.Error(err), zap.Int64("id", id))
		return err
	}
	logger.Log.Info("Yazı silindi (service)", zap.Int64("id", id))
	s.invalidate(ctx)
	return nil
}

// ToggleLike kullanıcının beğenisini tek depo işlemiyle ekler ya da kaldırır.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID int64) (*models.LikeResult, error) {
	ok, err := s.repo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFoundError(msgPostNotFound)
	}

	liked, count, err := s.repo.ToggleLike(ctx, postID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFoundError(msgPostNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &models.LikeResult{Likes: count, IsLiked: liked}, nil
}

func (s *PostService) checkCategory(ctx context.Context, id int64) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ValidationError(msgCategoryNotFound)
	}
	return nil
}

func (s *PostService) attachCommentCounts(ctx context.Context, posts ...*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	counts, err := s.comments.CountByPosts(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		p.CommentsCount = counts[p.ID]
	}
	return nil
}

func (s *PostService) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, redisrepo.POSTS_PER_CATEGORY_KEY); err != nil {
		logger.Log.Warn("Önbellek temizlenemedi", zap.Error(err))
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func cleanImage(in *string) *string {
	img := trimmed(in)
	if img == "" {
		return nil
	}
	return &img
}
