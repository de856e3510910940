package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"penlink/internal/models"
	"penlink/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *memory.Store
	categories *CategoryService
	posts      *PostService
	comments   *CommentService
	contacts   *ContactService
	stats      *StatsService
	cache      *mapCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.NewStore()
	cache := newMapCache()
	return &fixture{
		store:      st,
		categories: NewCategoryService(st.Categories(), cache),
		posts:      NewPostService(st.Posts(), st.Categories(), st.Comments(), cache),
		comments:   NewCommentService(st.Comments(), st.Posts()),
		contacts:   NewContactService(st.Contacts(), ""),
		stats:      NewStatsService(st.Stats(), cache),
		cache:      cache,
	}
}

func (f *fixture) user(t *testing.T, username, role string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", Role: role, PasswordHash: "x"}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	return u
}

func (f *fixture) category(t *testing.T, name string) *models.Category {
	t.Helper()
	c, err := f.categories.Create(context.Background(), &models.CategoryRequest{Name: &name})
	require.NoError(t, err)
	return c
}

func (f *fixture) post(t *testing.T, authorID, categoryID int64, title string) *models.Post {
	t.Helper()
	content := "içerik"
	p, err := f.posts.Create(context.Background(), authorID, &models.PostRequest{
		Title:    &title,
		Content:  &content,
		Category: &categoryID,
	})
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string { return &s }

// mapCache: Redis yerine geçen süreç içi önbellek.
type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *mapCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *mapCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}
