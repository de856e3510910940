package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/reqctx"
	"penlink/internal/services"
	"penlink/internal/utils/helpers"

	"go.uber.org/zap"
)

type PostHandler struct {
	svc      *services.PostService
	comments *services.CommentService
}

func NewPostHandler(s *services.PostService, comments *services.CommentService) *PostHandler {
	return &PostHandler{svc: s, comments: comments}
}

// List
// @Summary      Yazıları listele
// @Description  Kategoriye göre filtreleme, sıralama ve sayfalama
// @Tags         posts
// @Produce      json
// @Param        categoryId  query  int     false  "Kategori ID"
// @Param        sortBy      query  string  false  "createdAt|updatedAt|title|likes|comments"  default(createdAt)
// @Param        order       query  string  false  "asc|desc"  default(desc)
// @Param        page        query  int     false  "Sayfa"     default(1)
// @Param        limit       query  int     false  "Sayfa boyutu"  default(10)
// @Success      200 {object} models.PostPage
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      500 {object} helpers.ErrorResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	qs := r.URL.Query()

	q := models.PostListQuery{
		SortBy: qs.Get("sortBy"),
		Desc:   !strings.EqualFold(qs.Get("order"), "asc"),
		Page:   atoiOr(qs.Get("page"), services.DefaultPage),
		Limit:  atoiOr(qs.Get("limit"), services.DefaultLimit),
	}
	if raw := qs.Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			helpers.Error(w, http.StatusBadRequest, "invalid categoryId")
			return
		}
		q.CategoryID = &id
	}

	page, err := h.svc.List(r.Context(), q)
	if err != nil {
		writeError(w, log, err)
		return
	}
	log.Debug("posts: liste döndü", zap.Int("count", len(page.Posts)), zap.Int("total", page.Total))
	helpers.JSON(w, http.StatusOK, page)
}

// GetByID
// @Summary      Yazı getir
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Yazı ID"
// @Success      200 {object} models.Post
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// Create
// @Summary      Yazı oluştur
// @Description  Oturum gerekir; admin zorunluluğu POST_CREATE_ROLE ile açılır.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body  models.PostRequest  true  "Yazı"
// @Success      201 {object} models.Post
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      401 {object} helpers.ErrorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("posts: geçersiz JSON", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := h.svc.Create(r.Context(), userID, &req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("posts: yazı oluşturuldu", zap.Int64("id", p.ID))
	helpers.JSON(w, http.StatusCreated, p)
}

// Update
// @Summary      Yazı güncelle
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  int                 true  "Yazı ID"
// @Param        body  body  models.PostRequest  true  "Güncellenecek alanlar"
// @Success      200 {object} models.Post
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("posts: geçersiz JSON", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// Delete
// @Summary      Yazı sil
// @Tags         posts
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Yazı ID"
// @Success      200 {object} helpers.MessageResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("posts: yazı silindi", zap.Int64("id", id))
	helpers.Message(w, http.StatusOK, "Post deleted successfully")
}

// Like
// @Summary      Yazıyı beğen / beğeniyi geri al
// @Tags         posts
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Yazı ID"
// @Success      200 {object} models.LikeResult
// @Failure      401 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/posts/{id}/like [post]
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	res, err := h.svc.ToggleLike(r.Context(), id, userID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

// AddComment
// @Summary      Yazıya yorum ekle
// @Description  Oturum isteğe bağlıdır; anonim yorumlar authorName ya da "Anonymous" ile kaydedilir.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "Yazı ID"
// @Param        body  body  models.CommentRequest  true  "Yorum"
// @Success      201 {object} models.Comment
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/posts/{id}/comments [post]
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	createComment(w, r, h.comments, "id")
}

func atoiOr(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
