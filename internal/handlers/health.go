package handlers

import (
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"emmacms/internal/apperrors"
	"emmacms/internal/logger"
	helpers "emmacms/internal/utils/helpers"
)

type HealthHandler struct {
	db *pgxpool.Pool
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz
// @Summary      Проверка работоспособности
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  helpers.Response
// @Router       /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logger.WithCtx(r.Context()).Error("healthz: БД недоступна", zap.Error(err))
		helpers.Fail(w, fmt.Errorf("%w: база данных не отвечает", apperrors.ErrStorage))
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
