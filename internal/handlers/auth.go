package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"emmacms/internal/config"
	"emmacms/internal/logger"
	"emmacms/internal/middleware"
	"emmacms/internal/models"
	"emmacms/internal/services"
	helpers "emmacms/internal/utils/helpers"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// Login godoc
// @Summary Авторизация оператора CMS
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} loginResponse
// @Failure 401 {object} helpers.Response "Неверный логин или пароль"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Невалидный JSON")
		return
	}
	logger.WithCtx(r.Context()).Info("Попытка входа", zap.String("username", req.Username))

	accessTTL, err := time.ParseDuration(h.cfg.AccessTokenTTL)
	if err != nil {
		accessTTL = 12 * time.Hour
	}

	access, user, err := h.authService.Login(r.Context(), req.Username, req.Password, h.cfg.JWTSecret, accessTTL)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка входа пользователя", zap.String("username", req.Username), zap.Error(err))
		helpers.Fail(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("Вход выполнен", zap.String("username", user.Username), zap.String("role", user.Role))
	helpers.JSON(w, http.StatusOK, loginResponse{
		AccessToken: access,
		User:        user,
	})
}

// Me godoc
// @Summary Текущий оператор
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} helpers.Response
// @Router /api/admin/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextUserID).(int64)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized", "Не авторизован")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}
