package models

type CategoryPostCount struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

type DashboardStats struct {
	TotalPosts           int `json:"totalPosts"`
	TotalCategories      int `json:"totalCategories"`
	TotalUsers           int `json:"totalUsers"`
	TotalComments        int `json:"totalComments"`
	TotalContactMessages int `json:"totalContactMessages"`
}
