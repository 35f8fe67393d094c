package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"emmacms/internal/logger"
	"emmacms/internal/models"
	"emmacms/internal/services"
	helpers "emmacms/internal/utils/helpers"
)

type SearchHandler struct {
	resources services.ResourceService
}

func NewSearchHandler(resources services.ResourceService) *SearchHandler {
	return &SearchHandler{resources: resources}
}

// GlobalSearch
// @Summary      Поиск по опубликованным ресурсам
// @Tags         search
// @Produce      json
// @Param        q      query  string  true   "Строка поиска"
// @Param        page   query  int     false  "Номер страницы"
// @Param        limit  query  int     false  "Размер страницы"
// @Success      200  {object}  models.ResourcePage
// @Failure      400  {object}  helpers.Response
// @Router       /api/search [get]
func (h *SearchHandler) GlobalSearch(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Пустой поисковый запрос")
		return
	}

	f := models.ResourceFilter{Search: q}
	var err error
	if f.Page, err = intQuery(r.URL.Query().Get("page"), "page"); err != nil {
		helpers.Fail(w, err)
		return
	}
	if f.Limit, err = intQuery(r.URL.Query().Get("limit"), "limit"); err != nil {
		helpers.Fail(w, err)
		return
	}

	page, err := h.resources.List(r.Context(), f, true)
	if err != nil {
		log.Error("ошибка поиска", zap.String("q", q), zap.Error(err))
		helpers.Fail(w, err)
		return
	}

	log.Debug("поиск выполнен", zap.String("q", q), zap.Int("found", page.Total))
	helpers.JSON(w, http.StatusOK, page)
}
