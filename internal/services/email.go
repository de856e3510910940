package services

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"penlink/internal/config"
	"penlink/internal/logger"

	"go.uber.org/zap"
)

type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	return &EmailService{
		auth: auth,
		from: cfg.SMTPUser,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
	}
}

func (s *EmailService) Send(to []string, subject, body string) error {
	return s.send(to, subject, "text/plain", body)
}

func (s *EmailService) SendHTML(to []string, subject, body string) error {
	return s.send(to, subject, "text/html", body)
}

func (s *EmailService) send(to []string, subject, contentType, body string) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, to, buildMessage(s.from, subject, contentType, body))
}

// buildMessage başlıkları yazar. Konu RFC 2047 ile kodlanır; CR/LF başlığa taşınmaz.
func buildMessage(from, subject, contentType, body string) []byte {
	subject = strings.NewReplacer("\r", " ", "\n", " ").Replace(subject)
	return []byte("From: " + from + "\r\n" +
		"Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"utf-8\"\r\n\r\n" +
		body)
}

type EmailJob struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// EmailQueue: arka plan gönderimi için ortak kuyruk (100 e-posta).
var EmailQueue = make(chan EmailJob, 100)

// EnqueueEmail isteği bloklamadan kuyruğa ekler. Kuyruk doluysa iş atılır ve false döner.
func EnqueueEmail(job EmailJob) bool {
	select {
	case EmailQueue <- job:
		return true
	default:
		logger.Log.Warn("E-posta kuyruğu dolu, mesaj atlandı", zap.Strings("to", job.To))
		return false
	}
}

func StartEmailWorker(emailService *EmailService) {
	go func() {
		for job := range EmailQueue {
			var err error
			if job.IsHTML {
				err = emailService.SendHTML(job.To, job.Subject, job.Body)
			} else {
				err = emailService.Send(job.To, job.Subject, job.Body)
			}
			if err != nil {
				logger.Log.Error("E-posta gönderilemedi", zap.Error(err), zap.Strings("to", job.To))
			}
		}
	}()
}
