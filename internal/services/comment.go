package services

import (
	"context"
	"errors"
	"strings"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/repository"
	"penlink/internal/reqctx"

	"go.uber.org/zap"
)

// AnonymousAuthor: ne oturum ne de authorName varsa yoruma yazılan ad.
const AnonymousAuthor = "Anonymous"

type CommentRepo interface {
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Create(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, commentID, userID int64) (bool, error)
}

type PostChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CommentService struct {
	repo  CommentRepo
	posts PostChecker
}

func NewCommentService(repo CommentRepo, posts PostChecker) *CommentService {
	return &CommentService{repo: repo, posts: posts}
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

// Create yorumu bağımsız koleksiyona yazar. caller nil ise yorum anonimdir.
func (s *CommentService) Create(ctx context.Context, postID int64, caller *reqctx.Identity, req *models.CommentRequest) (*models.Comment, error) {
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFoundError(msgPostNotFound)
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ValidationError("Yorum metni zorunludur")
	}

	c := &models.Comment{PostID: postID, Text: text, AuthorName: strings.TrimSpace(req.AuthorName)}
	if caller != nil {
		uid := caller.UserID
		c.AuthorID = &uid
		if c.AuthorName == "" {
			c.AuthorName = caller.Username
		}
	}
	if c.AuthorName == "" {
		c.AuthorName = AnonymousAuthor
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFoundError(msgPostNotFound)
		}
		logger.Log.Error("Yorum oluşturulamadı (service)", zap.Error(err), zap.Int64("post_id", postID))
		return nil, err
	}
	logger.Log.Info("Yorum oluşturuldu (service)", zap.Int64("id", c.ID), zap.Int64("post_id", postID))

	return s.get(ctx, c.ID)
}

// ToggleLike beğeniyi çevirir ve yorumun güncel halini döner.
func (s *CommentService) ToggleLike(ctx context.Context, commentID, userID int64) (*models.Comment, error) {
	if _, err := s.get(ctx, commentID); err != nil {
		return nil, err
	}
	if _, err := s.repo.ToggleLike(ctx, commentID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFoundError(msgCommentNotFound)
		}
		return nil, err
	}
	return s.get(ctx, commentID)
}

// Delete yalnızca yorumun sahibi ya da admin tarafından yapılabilir.
func (s *CommentService) Delete(ctx context.Context, commentID int64, caller reqctx.Identity) error {
	c, err := s.get(ctx, commentID)
	if err != nil {
		return err
	}

	owner := c.AuthorID != nil && *c.AuthorID == caller.UserID
	if !owner && !caller.IsAdmin() {
		logger.Log.Warn("Yorum silme yetkisi yok (service)",
			zap.Int64("comment_id", commentID), zap.Int64("user_id", caller.UserID))
		return ForbiddenError(msgNotAuthorized)
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFoundError(msgCommentNotFound)
		}
		return err
	}
	logger.Log.Info("Yorum silindi (service)", zap.Int64("id", commentID))
	return nil
}

func (s *CommentService) get(ctx context.Context, id int64) (*models.Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFoundError(msgCommentNotFound)
	}
	return c, err
}
