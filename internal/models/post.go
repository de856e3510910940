package models

import "time"

type Post struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Excerpt       string       `json:"excerpt"`
	AuthorID      *int64       `json:"-"`
	Author        *UserRef     `json:"author"`
	CategoryID    int64        `json:"-"`
	Category      *CategoryRef `json:"category"`
	Tags          []string     `json:"tags"`
	Image         *string      `json:"image"`
	Likes         []int64      `json:"likes"`
	LikesCount    int          `json:"likesCount"`
	CommentsCount int          `json:"commentsCount"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// swagger:model PostRequest
type PostRequest struct {
	Title    *string  `json:"title,omitempty"    example:"Modern Web Geliştirmede En İyi Pratikler"`
	Content  *string  `json:"content,omitempty"  example:"Web geliştirme sürekli gelişen bir alan."`
	Excerpt  *string  `json:"excerpt,omitempty"`
	Category *int64   `json:"category,omitempty" example:"1"`
	Tags     []string `json:"tags,omitempty"     example:"React,JavaScript"`
	Image    *string  `json:"image,omitempty"`
}

// PostListQuery: GET /posts sorgu parametreleri (normalize edilmiş).
type PostListQuery struct {
	CategoryID *int64
	SortBy     string
	Desc       bool
	Page       int
	Limit      int
}

func (q PostListQuery) Offset() int { return (q.Page - 1) * q.Limit }

type PostPage struct {
	Posts       []*Post `json:"posts"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	Total       int     `json:"total"`
}

type LikeResult struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}
