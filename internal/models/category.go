package models

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryRef: yazı içinde çözülmüş kategori alanları.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// swagger:model CategoryRequest
type CategoryRequest struct {
	Name        *string `json:"name,omitempty"        example:"Teknoloji"`
	Description *string `json:"description,omitempty" example:"En son teknoloji haberleri ve incelemeleri"`
}
