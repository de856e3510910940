package models

import "time"

type ContactMessage struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Message        string    `json:"message"`
	SubmissionDate time.Time `json:"submissionDate"`
}

// swagger:model ContactRequest
type ContactRequest struct {
	Name    string `json:"name"    example:"Ahmet Yılmaz"`
	Email   string `json:"email"   example:"ahmet@example.com"`
	Message string `json:"message" example:"Merhaba, bir proje için görüşmek istiyorum."`
}
