package services

import (
	"context"
	"testing"

	"penlink/internal/models"
	"penlink/internal/reqctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(u *models.User) reqctx.Identity {
	return reqctx.Identity{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func TestCommentCreate_AuthorName(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "mehmet", models.RoleUser)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Yazı")

	anon, err := f.comments.Create(context.Background(), p.ID, nil, &models.CommentRequest{Text: "anonim yorum"})
	require.NoError(t, err)
	assert.Equal(t, AnonymousAuthor, anon.AuthorName)
	assert.Nil(t, anon.Author)

	named, err := f.comments.Create(context.Background(), p.ID, nil, &models.CommentRequest{Text: "yorum", AuthorName: " Ayşe "})
	require.NoError(t, err)
	assert.Equal(t, "Ayşe", named.AuthorName)

	id := identity(u)
	own, err := f.comments.Create(context.Background(), p.ID, &id, &models.CommentRequest{Text: "benim yorumum"})
	require.NoError(t, err)
	assert.Equal(t, "mehmet", own.AuthorName)
	require.NotNil(t, own.Author)
	assert.Equal(t, u.ID, own.Author.ID)
	assert.Equal(t, p.ID, own.PostID)
}

func TestCommentCreate_Errors(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "mehmet", models.RoleUser)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Yazı")

	_, err := f.comments.Create(context.Background(), 999, nil, &models.CommentRequest{Text: "x"})
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, "Post not found")

	_, err = f.comments.Create(context.Background(), p.ID, nil, &models.CommentRequest{Text: "   "})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestCommentList_NewestFirst(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "mehmet", models.RoleUser)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Yazı")
	for _, text := range []string{"bir", "iki", "üç"} {
		_, err := f.comments.Create(context.Background(), p.ID, nil, &models.CommentRequest{Text: text})
		require.NoError(t, err)
	}

	list, err := f.comments.ListByPost(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "üç", list[0].Text)
	assert.Equal(t, "bir", list[2].Text)

	empty, err := f.comments.ListByPost(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCommentToggleLike(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "mehmet", models.RoleUser)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Yazı")
	cm, err := f.comments.Create(context.Background(), p.ID, nil, &models.CommentRequest{Text: "x"})
	require.NoError(t, err)

	liked, err := f.comments.ToggleLike(context.Background(), cm.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{u.ID}, liked.Likes)

	unliked, err := f.comments.ToggleLike(context.Background(), cm.ID, u.ID)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)

	_, err = f.comments.ToggleLike(context.Background(), 999, u.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCommentDelete_Authorization(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "sahip", models.RoleUser)
	other := f.user(t, "baska", models.RoleUser)
	admin := f.user(t, "admin", models.RoleAdmin)
	c := f.category(t, "Teknoloji")
	p := f.post(t, owner.ID, c.ID, "Yazı")

	ownerID := identity(owner)
	first, err := f.comments.Create(context.Background(), p.ID, &ownerID, &models.CommentRequest{Text: "bir"})
	require.NoError(t, err)
	second, err := f.comments.Create(context.Background(), p.ID, &ownerID, &models.CommentRequest{Text: "iki"})
	require.NoError(t, err)

	err = f.comments.Delete(context.Background(), first.ID, identity(other))
	assert.Equal(t, KindForbidden, KindOf(err))
	assert.EqualError(t, err, "Not authorized")

	list, err := f.comments.ListByPost(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, f.comments.Delete(context.Background(), first.ID, identity(owner)))
	require.NoError(t, f.comments.Delete(context.Background(), second.ID, identity(admin)))

	list, err = f.comments.ListByPost(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.Equal(t, KindNotFound, KindOf(f.comments.Delete(context.Background(), first.ID, identity(admin))))
}

func TestCommentDelete_AnonymousOnlyAdmin(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "okur", models.RoleUser)
	c := f.category(t, "Teknoloji")
	p := f.post(t, u.ID, c.ID, "Yazı")
	cm, err := f.comments.Create(context.Background(), p.ID, nil, &models.CommentRequest{Text: "anonim"})
	require.NoError(t, err)

	assert.Equal(t, KindForbidden, KindOf(f.comments.Delete(context.Background(), cm.ID, identity(u))))
}
