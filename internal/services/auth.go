package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/repository"
	"penlink/internal/utils"

	"go.uber.org/zap"
)

const (
	minPasswordLen   = 6
	// bcrypt 72 bayttan uzun girdiyi reddeder.
	maxPasswordBytes = 72
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type AuthService struct {
	repo      UserRepo
	jwtSecret string
	accessTTL time.Duration
}

func NewAuthService(repo UserRepo, jwtSecret string, accessTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, accessTTL: accessTTL}
}

// RegisterUser her zaman "user" rolüyle kayıt açar ve oturum token'ı döner.
func (s *AuthService) RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    normalizeEmail(req.Email),
		Role:     models.RoleUser,
	}
	logger.Log.Info("Kullanıcı kaydı (service)", zap.String("username", user.Username), zap.String("email", user.Email))

	switch {
	case user.Username == "" || user.Email == "" || req.Password == "":
		return nil, ValidationError(msgAllFields)
	case !validEmail(user.Email):
		return nil, ValidationError("Geçerli bir e-posta adresi giriniz")
	case len(req.Password) < minPasswordLen:
		return nil, ValidationError("Şifre en az %d karakter olmalıdır", minPasswordLen)
	case len(req.Password) > maxPasswordBytes:
		return nil, ValidationError("Şifre en fazla %d bayt olabilir", maxPasswordBytes)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Log.Error("Şifre hash'lenemedi", zap.Error(err))
		return nil, err
	}
	user.PasswordHash = hashed

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ValidationError("User already exists")
		}
		logger.Log.Error("Kullanıcı oluşturulamadı", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Kullanıcı kaydedildi (service)", zap.Int64("user_id", user.ID))
	return s.issue(user)
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = normalizeEmail(email)
	logger.Log.Info("Giriş denemesi (service)", zap.String("email", email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		logger.Log.Warn("Kullanıcı bulunamadı (service)", zap.String("email", email))
		return nil, UnauthorizedError("Invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.Warn("Hatalı şifre (service)", zap.String("email", email))
		return nil, UnauthorizedError("Invalid credentials")
	}

	logger.Log.Info("Giriş başarılı (service)", zap.Int64("user_id", user.ID))
	return s.issue(user)
}

func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		logger.Log.Warn("ID ile kullanıcı bulunamadı (service)", zap.Int64("user_id", id))
		return nil, NotFoundError("User not found")
	}
	return user, err
}

func (s *AuthService) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Username, user.Role, s.accessTTL)
	if err != nil {
		logger.Log.Error("Access token üretilemedi", zap.Error(err))
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
