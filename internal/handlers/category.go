package handlers

import (
	"encoding/json"
	"net/http"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/services"
	"penlink/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CategoryHandler struct{ svc *services.CategoryService }

func NewCategoryHandler(s *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: s}
}

// List
// @Summary      Kategorileri listele
// @Description  Ada göre artan sırada tüm kategoriler
// @Tags         categories
// @Produce      json
// @Success      200 {array}  models.Category
// @Failure      500 {object} helpers.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID
// @Summary      Kategori getir
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "Kategori ID"
// @Success      200 {object} models.Category
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// GetBySlug
// @Summary      Slug ile kategori getir
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "Kategori slug"
// @Success      200 {object} models.Category
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/categories/slug/{slug} [get]
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	c, err := h.svc.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Create
// @Summary      Kategori oluştur
// @Description  Yalnızca admin. Slug addan üretilir.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body  models.CategoryRequest  true  "Kategori"
// @Success      201 {object} models.Category
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      401 {object} helpers.ErrorResponse
// @Failure      403 {object} helpers.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("categories: geçersiz JSON", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("categories: kategori oluşturuldu", zap.Int64("id", c.ID), zap.String("slug", c.Slug))
	helpers.JSON(w, http.StatusCreated, c)
}

// Update
// @Summary      Kategori güncelle
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  int                     true  "Kategori ID"
// @Param        body  body  models.CategoryRequest  true  "Güncellenecek alanlar"
// @Success      200 {object} models.Category
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("categories: geçersiz JSON", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Delete
// @Summary      Kategori sil
// @Description  Kategoriye bağlı yazı varsa 400 döner.
// @Tags         categories
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Kategori ID"
// @Success      200 {object} helpers.MessageResponse
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("categories: kategori silindi", zap.Int64("id", id))
	helpers.Message(w, http.StatusOK, "Category deleted successfully")
}
