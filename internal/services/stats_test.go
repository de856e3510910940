package services

import (
	"context"
	"testing"

	"penlink/internal/models"
	"penlink/internal/repository/redisrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsPerCategory(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "admin", models.RoleAdmin)
	tech := f.category(t, "Teknoloji")
	design := f.category(t, "Tasarım")
	f.category(t, "Boş")
	f.post(t, u.ID, design.ID, "d1")
	f.post(t, u.ID, tech.ID, "t1")
	f.post(t, u.ID, tech.ID, "t2")

	stats, err := f.stats.PostsPerCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryPostCount{
		{CategoryID: tech.ID, CategoryName: "Teknoloji", Count: 2},
		{CategoryID: design.ID, CategoryName: "Tasarım", Count: 1},
	}, stats)
	assert.True(t, f.cache.has(redisrepo.POSTS_PER_CATEGORY_KEY))

	f.post(t, u.ID, design.ID, "d2")
	assert.False(t, f.cache.has(redisrepo.POSTS_PER_CATEGORY_KEY))
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "admin", models.RoleAdmin)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Yazı")
	_, err := f.comments.Create(context.Background(), p.ID, nil, &models.CommentRequest{Text: "x"})
	require.NoError(t, err)
	_, err = f.contacts.Submit(context.Background(), &models.ContactRequest{Name: "a", Email: "a@example.com", Message: "m"})
	require.NoError(t, err)

	d, err := f.stats.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{
		TotalPosts:           1,
		TotalCategories:      1,
		TotalUsers:           1,
		TotalComments:        1,
		TotalContactMessages: 1,
	}, d)
}
