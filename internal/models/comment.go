package models

import "time"

type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"post"`
	AuthorID       *int64    `json:"-"`
	Author         *UserRef  `json:"author"`
	AuthorName     string    `json:"authorName"`
	Text           string    `json:"text"`
	Likes          []int64   `json:"likes"`
	SubmissionDate time.Time `json:"submissionDate"`
}

// swagger:model CommentRequest
type CommentRequest struct {
	Text       string `json:"text"       example:"Çok faydalı bir yazı olmuş, teşekkürler!"`
	AuthorName string `json:"authorName" example:"Ayşe Yılmaz"`
}
