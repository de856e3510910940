package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/repository"
	"penlink/internal/utils/helpers"

	"go.uber.org/zap"
)

type ContactRepo interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	List(ctx context.Context) ([]*models.ContactMessage, error)
	GetByID(ctx context.Context, id int64) (*models.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

type ContactService struct {
	repo     ContactRepo
	notifyTo string
}

// NewContactService: notifyTo boş değilse her yeni mesaj bu adrese e-postayla bildirilir.
func NewContactService(repo ContactRepo, notifyTo string) *ContactService {
	return &ContactService{repo: repo, notifyTo: strings.TrimSpace(notifyTo)}
}

func (s *ContactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error) {
	m := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: strings.TrimSpace(req.Message),
	}
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return nil, ValidationError(msgAllFields)
	}
	if strings.ContainsAny(m.Name, "\r\n") {
		return nil, ValidationError("İsim satır sonu içeremez")
	}
	if !validEmail(m.Email) {
		return nil, ValidationError("Geçerli bir e-posta adresi giriniz")
	}

	if err := s.repo.Create(ctx, m); err != nil {
		logger.Log.Error("İletişim mesajı kaydedilemedi (service)", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("İletişim mesajı alındı (service)", zap.Int64("id", m.ID), zap.String("email", m.Email))

	if s.notifyTo != "" {
		EnqueueEmail(EmailJob{
			To:      []string{s.notifyTo},
			Subject: "PenLink: yeni iletişim mesajı (" + m.Name + ")",
			Body:    helpers.BuildContactNotificationHTML(m.Name, m.Email, m.Message, m.SubmissionDate),
			IsHTML:  true,
		})
	}
	return m, nil
}

func (s *ContactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	m, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFoundError(msgMessageNotFound)
	}
	return m, err
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFoundError(msgMessageNotFound)
	}
	if err == nil {
		logger.Log.Info("İletişim mesajı silindi (service)", zap.Int64("id", id))
	}
	return err
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}
