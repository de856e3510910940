package handlers

import (
	"encoding/json"
	"net/http"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/reqctx"
	"penlink/internal/services"
	"penlink/internal/utils/helpers"

	"go.uber.org/zap"
)

type CommentHandler struct{ svc *services.CommentService }

func NewCommentHandler(s *services.CommentService) *CommentHandler {
	return &CommentHandler{svc: s}
}

// ListByPost
// @Summary      Yazının yorumları
// @Description  En yeni yorum önce
// @Tags         comments
// @Produce      json
// @Param        postId  path  int  true  "Yazı ID"
// @Success      200 {array}  models.Comment
// @Router       /api/comments/post/{postId} [get]
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}

	list, err := h.svc.ListByPost(r.Context(), postID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Create
// @Summary      Yorum ekle
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        postId  path  int                    true  "Yazı ID"
// @Param        body    body  models.CommentRequest  true  "Yorum"
// @Success      201 {object} models.Comment
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/comments/post/{postId} [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	createComment(w, r, h.svc, "postId")
}

// Like
// @Summary      Yorumu beğen / beğeniyi geri al
// @Tags         comments
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Yorum ID"
// @Success      200 {object} models.Comment
// @Failure      401 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/comments/{id}/like [post]
func (h *CommentHandler) Like(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.svc.ToggleLike(r.Context(), id, userID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Delete
// @Summary      Yorum sil
// @Description  Yalnızca yorumun sahibi veya admin
// @Tags         comments
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Yorum ID"
// @Success      200 {object} helpers.MessageResponse
// @Failure      403 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	caller, ok := reqctx.GetIdentity(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.svc.Delete(r.Context(), id, caller); err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("comments: yorum silindi", zap.Int64("id", id))
	helpers.Message(w, http.StatusOK, "Comment deleted successfully")
}

// createComment iki yorum ucunun ortak gövdesi; yazı kimliği param rota değişkeninden okunur.
func createComment(w http.ResponseWriter, r *http.Request, svc *services.CommentService, param string) {
	log := logger.WithCtx(r.Context())
	postID, ok := pathID(w, r, param)
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("comments: geçersiz JSON", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var caller *reqctx.Identity
	if id, ok := reqctx.GetIdentity(r.Context()); ok {
		caller = &id
	}

	c, err := svc.Create(r.Context(), postID, caller, &req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("comments: yorum eklendi", zap.Int64("id", c.ID), zap.Int64("post_id", postID))
	helpers.JSON(w, http.StatusCreated, c)
}
