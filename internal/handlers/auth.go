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

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary Yeni kullanıcı kaydı
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegisterRequest true "Kayıt bilgileri"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Register: JSON çözülemedi", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.authService.RegisterUser(r.Context(), &req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, res)
}

// Login godoc
// @Summary Giriş
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Giriş bilgileri"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Login: JSON çözülemedi", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.authService.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("Giriş yapıldı", zap.Int64("user_id", res.User.ID), zap.String("role", res.User.Role))
	helpers.JSON(w, http.StatusOK, res)
}

// Me godoc
// @Summary Oturumdaki kullanıcı
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} helpers.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}
