package handlers

import (
	"net/http"

	"penlink/internal/logger"
	"penlink/internal/services"
	"penlink/internal/utils/helpers"
)

type StatsHandler struct{ svc *services.StatsService }

func NewStatsHandler(s *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: s}
}

// PostsPerCategory
// @Summary      Kategori başına yazı sayısı
// @Tags         statistics
// @Produce      json
// @Success      200 {array} models.CategoryPostCount
// @Router       /api/statistics/posts-per-category [get]
func (h *StatsHandler) PostsPerCategory(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.PostsPerCategory(r.Context())
	if err != nil {
		writeError(w, logger.WithCtx(r.Context()), err)
		return
	}
	helpers.JSON(w, http.StatusOK, stats)
}

// Dashboard
// @Summary      Yönetim paneli sayaçları
// @Tags         statistics
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} models.DashboardStats
// @Failure      401 {object} helpers.ErrorResponse
// @Failure      403 {object} helpers.ErrorResponse
// @Router       /api/statistics/dashboard [get]
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeError(w, logger.WithCtx(r.Context()), err)
		return
	}
	helpers.JSON(w, http.StatusOK, d)
}
