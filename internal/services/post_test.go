package services

import (
	"context"
	"fmt"
	"math"
	"testing"

	"penlink/internal/models"
	"penlink/internal/reqctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostList_SecondPage(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "admin", models.RoleAdmin)
	c := f.category(t, "Teknoloji")
	for i := 0; i < 15; i++ {
		f.post(t, u.ID, c.ID, fmt.Sprintf("Yazı %02d", i))
	}

	page, err := f.posts.List(context.Background(), models.PostListQuery{Page: 2, Limit: 10, Desc: true})
	require.NoError(t, err)
	assert.Len(t, page.Posts, 5)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 15, page.Total)
}

func TestPostList_DefaultsAndSort(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "admin", models.RoleAdmin)
	tech := f.category(t, "Teknoloji")
	design := f.category(t, "Tasarım")
	f.post(t, u.ID, tech.ID, "B")
	f.post(t, u.ID, design.ID, "A")
	f.post(t, u.ID, tech.ID, "C")

	page, err := f.posts.List(context.Background(), models.PostListQuery{SortBy: "title"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{page.Posts[0].Title, page.Posts[1].Title, page.Posts[2].Title})

	page, err = f.posts.List(context.Background(), models.PostListQuery{CategoryID: &tech.ID, SortBy: "bogus", Desc: true})
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, "C", page.Posts[0].Title)
	assert.Equal(t, "Teknoloji", page.Posts[0].Category.Name)
	assert.Equal(t, "admin", page.Posts[0].Author.Username)
}

func TestPostList_Empty(t *testing.T) {
	f := newFixture(t)

	page, err := f.posts.List(context.Background(), models.PostListQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.Total)
}

func TestPostCreate_Validation(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "yazar", models.RoleUser)
	c := f.category(t, "Teknoloji")

	_, err := f.posts.Create(context.Background(), u.ID, &models.PostRequest{Content: strPtr("x"), Category: &c.ID})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = f.posts.Create(context.Background(), u.ID, &models.PostRequest{Title: strPtr("x"), Content: strPtr(" "), Category: &c.ID})
	assert.Equal(t, KindValidation, KindOf(err))

	missing := int64(999)
	_, err = f.posts.Create(context.Background(), u.ID, &models.PostRequest{Title: strPtr("x"), Content: strPtr("y"), Category: &missing})
	assert.Equal(t, KindValidation, KindOf(err))
	assert.EqualError(t, err, "Category not found")
}

func TestPostCreate_CleansInput(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "yazar", models.RoleUser)
	c := f.category(t, "Teknoloji")

	p, err := f.posts.Create(context.Background(), u.ID, &models.PostRequest{
		Title:    strPtr("  Başlık  "),
		Content:  strPtr(`<p>Merhaba</p><script>alert(1)</script>`),
		Category: &c.ID,
		Tags:     []string{" Go ", "", "  ", "React"},
		Image:    strPtr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Başlık", p.Title)
	assert.Equal(t, "<p>Merhaba</p>", p.Content)
	assert.Equal(t, []string{"Go", "React"}, p.Tags)
	assert.Nil(t, p.Image)
	assert.Equal(t, u.ID, p.Author.ID)
	assert.Equal(t, "teknoloji", p.Category.Slug)
	assert.Empty(t, p.Likes)
}

func TestPostUpdate(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "admin", models.RoleAdmin)
	tech := f.category(t, "Teknoloji")
	design := f.category(t, "Tasarım")
	p := f.post(t, u.ID, tech.ID, "Eski")

	updated, err := f.posts.Update(context.Background(), p.ID, &models.PostRequest{
		Title:    strPtr("Yeni"),
		Category: &design.ID,
		Tags:     []string{"css"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Yeni", updated.Title)
	assert.Equal(t, "içerik", updated.Content)
	assert.Equal(t, design.ID, updated.Category.ID)
	assert.Equal(t, []string{"css"}, updated.Tags)

	missing := int64(999)
	_, err = f.posts.Update(context.Background(), p.ID, &models.PostRequest{Category: &missing})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = f.posts.Update(context.Background(), 999, &models.PostRequest{Title: strPtr("x")})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestPostToggleLike_Twice(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "okur", models.RoleUser)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Beğenilecek")

	res, err := f.posts.ToggleLike(context.Background(), p.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.LikeResult{Likes: 1, IsLiked: true}, res)

	got, err := f.posts.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{u.ID}, got.Likes)
	assert.Equal(t, 1, got.LikesCount)

	res, err = f.posts.ToggleLike(context.Background(), p.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.LikeResult{Likes: 0, IsLiked: false}, res)

	_, err = f.posts.ToggleLike(context.Background(), 999, u.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestPostToggleLike_Concurrent(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Teknoloji")
	author := f.user(t, "yazar", models.RoleUser)
	p := f.post(t, author.ID, c.ID, "Popüler")

	const n = 20
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		u := f.user(t, fmt.Sprintf("okur%d", i), models.RoleUser)
		go func(uid int64) {
			defer func() { done <- struct{}{} }()
			_, _ = f.posts.ToggleLike(context.Background(), p.ID, uid)
		}(u.ID)
	}
	for i := 0; i < n; i++ {
		<-done
	}

	got, err := f.posts.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.LikesCount)
}

func TestPostCommentsCount(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "yazar", models.RoleUser)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Yorumlu")
	f.post(t, u.ID, c.ID, "Yorumsuz")

	caller := &reqctx.Identity{UserID: u.ID, Username: u.Username, Role: u.Role}
	for i := 0; i < 3; i++ {
		_, err := f.comments.Create(context.Background(), p.ID, caller, &models.CommentRequest{Text: "güzel"})
		require.NoError(t, err)
	}

	page, err := f.posts.List(context.Background(), models.PostListQuery{SortBy: "comments", Desc: true})
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, p.ID, page.Posts[0].ID)
	assert.Equal(t, 3, page.Posts[0].CommentsCount)
	assert.Equal(t, 0, page.Posts[1].CommentsCount)
}

func TestPostDelete_RemovesComments(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "admin", models.RoleAdmin)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Silinecek")
	cm, err := f.comments.Create(context.Background(), p.ID, nil, &models.CommentRequest{Text: "ilk"})
	require.NoError(t, err)

	require.NoError(t, f.posts.Delete(context.Background(), p.ID))

	_, err = f.posts.GetByID(context.Background(), p.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
	_, err = f.comments.ToggleLike(context.Background(), cm.ID, u.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindNotFound, KindOf(f.posts.Delete(context.Background(), p.ID)))
}

// missingPostRepo: yazı yok; beğeni depoya hiç ulaşmamalı.
type missingPostRepo struct {
	PostRepo
	t *testing.T
}

func (missingPostRepo) Exists(context.Context, int64) (bool, error) { return false, nil }

func (r missingPostRepo) ToggleLike(context.Context, int64, int64) (bool, int, error) {
	r.t.Fatal("ToggleLike bilinmeyen yazı için çağrıldı")
	return false, 0, nil
}

func TestPostToggleLike_UnknownPostSkipsStore(t *testing.T) {
	svc := NewPostService(missingPostRepo{t: t}, nil, nil, nil)

	_, err := svc.ToggleLike(context.Background(), 999, 1)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, "Post not found")
}

func TestPostList_HugePage(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "yazar", models.RoleUser)
	c := f.category(t, "Teknoloji")
	f.post(t, u.ID, c.ID, "Tek yazı")

	page, err := f.posts.List(context.Background(), models.PostListQuery{Page: math.MaxInt, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Total)

	q := NormalizeListQuery(models.PostListQuery{Page: math.MaxInt, Limit: 7})
	assert.GreaterOrEqual(t, q.Offset(), 0)
}
