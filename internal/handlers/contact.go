package handlers

import (
	"encoding/json"
	"net/http"

	"penlink/internal/logger"
	"penlink/internal/models"
	"penlink/internal/services"
	"penlink/internal/utils/helpers"

	"go.uber.org/zap"
)

type ContactHandler struct{ svc *services.ContactService }

func NewContactHandler(s *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: s}
}

type contactSubmitResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// Submit
// @Summary      İletişim formu gönder
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  models.ContactRequest  true  "Mesaj"
// @Success      201 {object} contactSubmitResponse
// @Failure      400 {object} helpers.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("contact: geçersiz JSON", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	m, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, contactSubmitResponse{
		Message: "Contact message submitted successfully",
		ID:      m.ID,
	})
}

// List
// @Summary      İletişim mesajları
// @Tags         contact
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {array} models.ContactMessage
// @Router       /api/contact [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, logger.WithCtx(r.Context()), err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID
// @Summary      İletişim mesajı
// @Tags         contact
// @Security     ApiKeyAuth
// @Produce      json
// @Param        id  path  int  true  "Mesaj ID"
// @Success      200 {object} models.ContactMessage
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/contact/{id} [get]
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	m, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, logger.WithCtx(r.Context()), err)
		return
	}
	helpers.JSON(w, http.StatusOK, m)
}

// Delete
// @Summary      İletişim mesajını sil
// @Tags         contact
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Mesaj ID"
// @Success      200 {object} helpers.MessageResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /api/contact/{id} [delete]
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, logger.WithCtx(r.Context()), err)
		return
	}
	helpers.Message(w, http.StatusOK, "Contact message deleted successfully")
}
