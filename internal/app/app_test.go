package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"penlink/internal/config"
	"penlink/internal/models"
	"penlink/internal/repository/memory"
	"penlink/internal/repository/redisrepo"
	"penlink/internal/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testServer struct {
	t      *testing.T
	router *mux.Router
	store  *memory.Store
	svc    *Services
	admin  string
	user   string
	userID int64
}

func newTestServer(t *testing.T, postCreateRole string) *testServer {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      testSecret,
		AccessTokenTTL: time.Hour,
		PostCreateRole: postCreateRole,
	}
	st := memory.NewStore()
	svc := NewServices(cfg, MemoryStores(st), redisrepo.Nop())
	ts := &testServer{t: t, router: NewRouter(cfg, svc), store: st, svc: svc}

	admin := &models.User{Username: "admin", Email: "admin@penlink.com", PasswordHash: "x", Role: models.RoleAdmin}
	user := &models.User{Username: "testuser", Email: "user@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, st.Users().CreateUser(context.Background(), admin))
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	ts.admin = ts.token(admin)
	ts.user = ts.token(user)
	ts.userID = user.ID
	return ts
}

func (ts *testServer) token(u *models.User) string {
	tok, err := utils.GenerateToken(testSecret, u.ID, u.Username, u.Role, time.Hour)
	require.NoError(ts.t, err)
	return tok
}

func (ts *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func (ts *testServer) category(name string) int64 {
	rr := ts.do(http.MethodPost, "/api/categories", ts.admin, map[string]string{"name": name})
	require.Equal(ts.t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[models.Category](ts.t, rr).ID
}

func (ts *testServer) post(categoryID int64, title string) int64 {
	rr := ts.do(http.MethodPost, "/api/posts", ts.admin, map[string]any{
		"title": title, "content": "içerik", "category": categoryID,
	})
	require.Equal(ts.t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[models.Post](ts.t, rr).ID
}

func TestDashboardGate(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)

	rr := ts.do(http.MethodGet, "/api/statistics/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, rr.Body.String(), "totalPosts")

	rr = ts.do(http.MethodGet, "/api/statistics/dashboard", ts.user, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.NotContains(t, rr.Body.String(), "totalPosts")

	rr = ts.do(http.MethodGet, "/api/statistics/dashboard", ts.admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decode[models.DashboardStats](t, rr)
	assert.Equal(t, 2, stats.TotalUsers)
}

func TestPostListEnvelope(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)
	c := ts.category("Teknoloji")
	for i := 0; i < 15; i++ {
		ts.post(c, fmt.Sprintf("Yazı %d", i))
	}

	rr := ts.do(http.MethodGet, "/api/posts?page=2&limit=10", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.JSONEq(t, "2", string(body["totalPages"]))
	assert.JSONEq(t, "2", string(body["currentPage"]))
	assert.JSONEq(t, "15", string(body["total"]))

	var posts []map[string]any
	require.NoError(t, json.Unmarshal(body["posts"], &posts))
	assert.Len(t, posts, 5)
	assert.Contains(t, posts[0], "likesCount")
	assert.Contains(t, posts[0], "commentsCount")

	rr = ts.do(http.MethodGet, "/api/posts?categoryId=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPostCreateRole(t *testing.T) {
	body := map[string]any{"title": "Başlık", "content": "içerik"}

	open := newTestServer(t, models.RoleUser)
	body["category"] = open.category("Teknoloji")
	assert.Equal(t, http.StatusCreated, open.do(http.MethodPost, "/api/posts", open.user, body).Code)
	assert.Equal(t, http.StatusUnauthorized, open.do(http.MethodPost, "/api/posts", "", body).Code)

	locked := newTestServer(t, models.RoleAdmin)
	body["category"] = locked.category("Teknoloji")
	assert.Equal(t, http.StatusForbidden, locked.do(http.MethodPost, "/api/posts", locked.user, body).Code)
	assert.Equal(t, http.StatusCreated, locked.do(http.MethodPost, "/api/posts", locked.admin, body).Code)
}

func TestPostNotFound(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)

	rr := ts.do(http.MethodGet, "/api/posts/404", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, rr.Body.String())
}

func TestLikeToggleOverHTTP(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)
	p := ts.post(ts.category("Teknoloji"), "Beğeni")
	path := fmt.Sprintf("/api/posts/%d/like", p)

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodPost, path, "", nil).Code)

	rr := ts.do(http.MethodPost, path, ts.user, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"likes":1,"isLiked":true}`, rr.Body.String())

	rr = ts.do(http.MethodPost, path, ts.user, nil)
	assert.JSONEq(t, `{"likes":0,"isLiked":false}`, rr.Body.String())
}

func TestAnonymousCommentAndDelete(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)
	p := ts.post(ts.category("Teknoloji"), "Yorumlar")

	rr := ts.do(http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", p), "", map[string]string{"text": "merhaba"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	anon := decode[models.Comment](t, rr)
	assert.Equal(t, "Anonymous", anon.AuthorName)

	rr = ts.do(http.MethodPost, fmt.Sprintf("/api/comments/post/%d", p), ts.user, map[string]string{"text": "benden"})
	require.Equal(t, http.StatusCreated, rr.Code)
	own := decode[models.Comment](t, rr)
	assert.Equal(t, "testuser", own.AuthorName)

	// anonim yorumu normal kullanıcı silemez
	rr = ts.do(http.MethodDelete, fmt.Sprintf("/api/comments/%d", anon.ID), ts.user, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = ts.do(http.MethodGet, fmt.Sprintf("/api/comments/post/%d", p), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.Comment](t, rr), 2)

	rr = ts.do(http.MethodDelete, fmt.Sprintf("/api/comments/%d", own.ID), ts.user, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = ts.do(http.MethodDelete, fmt.Sprintf("/api/comments/%d", anon.ID), ts.admin, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.do(http.MethodPost, "/api/posts/999/comments", "", map[string]string{"text": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCategoryEndpoints(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)
	id := ts.category("İş Dünyası")

	rr := ts.do(http.MethodPost, "/api/categories", ts.admin, map[string]string{"name": "İş Dünyası"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Category already exists"}`, rr.Body.String())

	rr = ts.do(http.MethodPost, "/api/categories", ts.user, map[string]string{"name": "Başka"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = ts.do(http.MethodGet, "/api/categories/slug/is-dunyasi", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, id, decode[models.Category](t, rr).ID)

	ts.post(id, "Bağlı yazı")
	rr = ts.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), ts.admin, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Cannot delete category with 1 posts"}`, rr.Body.String())

	rr = ts.do(http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.Category](t, rr), 1)
}

func TestContactEndpoints(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)

	rr := ts.do(http.MethodPost, "/api/contact", "", map[string]string{"name": "Ali", "email": "", "message": "Selam"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"All fields are required"}`, rr.Body.String())

	rr = ts.do(http.MethodGet, "/api/contact", ts.admin, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[[]models.ContactMessage](t, rr))

	rr = ts.do(http.MethodPost, "/api/contact", "", map[string]string{"name": "Ali", "email": "ali@example.com", "message": "Selam"})
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[map[string]any](t, rr)
	assert.Equal(t, "Contact message submitted successfully", created["message"])

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/contact", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, ts.do(http.MethodGet, "/api/contact", ts.user, nil).Code)

	path := fmt.Sprintf("/api/contact/%v", created["id"])
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, path, ts.admin, nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodDelete, path, ts.admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, path, ts.admin, nil).Code)
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)

	rr := ts.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "ayse", "email": "ayse@example.com", "password": "gizli123",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = ts.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "AYSE@example.com", "password": "gizli123"})
	require.Equal(t, http.StatusOK, rr.Code)
	auth := decode[models.AuthResponse](t, rr)
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, models.RoleUser, auth.User.Role)

	rr = ts.do(http.MethodGet, "/api/auth/me", auth.Token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ayse", decode[models.User](t, rr).Username)

	rr = ts.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ayse@example.com", "password": "yanlis"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, models.RoleUser)

	rr := ts.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}
