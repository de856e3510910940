package seed

import (
	"context"
	"testing"

	"penlink/internal/models"
	"penlink/internal/repository/memory"
	"penlink/internal/services"
	"penlink/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	st := memory.NewStore()
	categories := services.NewCategoryService(st.Categories(), nil)
	posts := services.NewPostService(st.Posts(), st.Categories(), st.Comments(), nil)

	sum, err := Run(context.Background(), Deps{Users: st.Users(), Categories: categories, Posts: posts})
	require.NoError(t, err)
	assert.Equal(t, &Summary{Users: 2, Categories: 4, Posts: 5}, sum)

	admin, err := st.Users().GetUserByEmail(context.Background(), "admin@penlink.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPasswordHash("admin123", admin.PasswordHash))

	biz, err := categories.GetBySlug(context.Background(), "is-dunyasi")
	require.NoError(t, err)
	assert.Equal(t, "İş Dünyası", biz.Name)

	stats, err := st.Stats().PostsPerCategory(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, stats)
	assert.Equal(t, "Geliştirme", stats[0].CategoryName)
	assert.Equal(t, 2, stats[0].Count)
}
