// Package seed boş bir depoyu örnek kullanıcı, kategori ve yazılarla doldurur.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/services"
	"penlink/internal/utils"

	"go.uber.org/zap"
)

//go:embed data.json
var rawData []byte

type dataset struct {
	Users []struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	} `json:"users"`
	Categories []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"categories"`
	Posts []struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Excerpt  string   `json:"excerpt"`
		Tags     []string `json:"tags"`
		Image    string   `json:"image"`
		Category string   `json:"category"`
	} `json:"posts"`
}

type Deps struct {
	Users      services.UserRepo
	Categories *services.CategoryService
	Posts      *services.PostService
}

type Summary struct {
	Users      int
	Categories int
	Posts      int
}

// Run veri setini yükler. Depo önceden boşaltılmış olmalıdır; yazılar ilk admin adına yazılır.
func Run(ctx context.Context, d Deps) (*Summary, error) {
	var data dataset
	if err := json.Unmarshal(rawData, &data); err != nil {
		return nil, fmt.Errorf("seed verisi okunamadı: %w", err)
	}

	var (
		sum     Summary
		adminID int64
	)
	for _, u := range data.Users {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return nil, err
		}
		user := &models.User{Username: u.Username, Email: u.Email, PasswordHash: hash, Role: u.Role}
		if err := d.Users.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("kullanıcı %s: %w", u.Email, err)
		}
		if adminID == 0 && user.Role == models.RoleAdmin {
			adminID = user.ID
		}
		logger.Log.Info("Kullanıcı oluşturuldu", zap.String("email", u.Email), zap.String("role", u.Role))
		sum.Users++
	}
	if adminID == 0 {
		return nil, fmt.Errorf("seed verisinde admin yok")
	}

	categoryIDs := map[string]int64{}
	for _, c := range data.Categories {
		name, desc := c.Name, c.Description
		created, err := d.Categories.Create(ctx, &models.CategoryRequest{Name: &name, Description: &desc})
		if err != nil {
			return nil, fmt.Errorf("kategori %s: %w", c.Name, err)
		}
		categoryIDs[c.Name] = created.ID
		logger.Log.Info("Kategori oluşturuldu", zap.String("name", c.Name), zap.String("slug", created.Slug))
		sum.Categories++
	}

	for _, p := range data.Posts {
		categoryID, ok := categoryIDs[p.Category]
		if !ok {
			return nil, fmt.Errorf("yazı %q: bilinmeyen kategori %q", p.Title, p.Category)
		}
		title, content, excerpt, image := p.Title, p.Content, p.Excerpt, p.Image
		if _, err := d.Posts.Create(ctx, adminID, &models.PostRequest{
			Title:    &title,
			Content:  &content,
			Excerpt:  &excerpt,
			Category: &categoryID,
			Tags:     p.Tags,
			Image:    &image,
		}); err != nil {
			return nil, fmt.Errorf("yazı %q: %w", p.Title, err)
		}
		logger.Log.Info("Yazı oluşturuldu", zap.String("title", p.Title))
		sum.Posts++
	}

	return &sum, nil
}
