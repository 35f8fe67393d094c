package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"emmacms/internal/logger"
	"emmacms/internal/models"
	"emmacms/internal/services"
	helpers "emmacms/internal/utils/helpers"
)

type TaxonomyHandler struct{ svc *services.TaxonomyService }

func NewTaxonomyHandler(s *services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{svc: s}
}

// ListIndustries
// @Summary      Список отраслей
// @Tags         taxonomy
// @Produce      json
// @Success      200 {array} models.Industry
// @Failure      500 {object} helpers.Response
// @Router       /api/industries [get]
func (h *TaxonomyHandler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.ListIndustries(r.Context())
	if err != nil {
		log.Error("taxonomy: ошибка получения отраслей", zap.Error(err))
		helpers.Fail(w, err)
		return
	}

	log.Debug("taxonomy: отрасли получены", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// ListTags
// @Summary      Список тегов
// @Tags         taxonomy
// @Produce      json
// @Success      200 {array} models.Tag
// @Failure      500 {object} helpers.Response
// @Router       /api/tags [get]
func (h *TaxonomyHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.ListTags(r.Context())
	if err != nil {
		log.Error("taxonomy: ошибка получения тегов", zap.Error(err))
		helpers.Fail(w, err)
		return
	}

	log.Debug("taxonomy: теги получены", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// CreateIndustry
// @Summary      Создать отрасль
// @Tags         admin
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateIndustryRequest  true  "Данные отрасли"
// @Success      201  {object}  models.Industry
// @Failure      400  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Router       /api/admin/industries [post]
func (h *TaxonomyHandler) CreateIndustry(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CreateIndustryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("taxonomy: невалидный JSON при создании отрасли", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Невалидный JSON")
		return
	}

	ind, err := h.svc.CreateIndustry(r.Context(), req)
	if err != nil {
		log.Error("taxonomy: ошибка создания отрасли", zap.Error(err))
		helpers.Fail(w, err)
		return
	}

	log.Info("taxonomy: отрасль создана", zap.Int64("id", ind.ID), zap.String("slug", ind.Slug))
	helpers.JSON(w, http.StatusCreated, ind)
}

// CreateTag
// @Summary      Создать тег
// @Tags         admin
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateTagRequest  true  "Данные тега"
// @Success      201  {object}  models.Tag
// @Failure      400  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Router       /api/admin/tags [post]
func (h *TaxonomyHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("taxonomy: невалидный JSON при создании тега", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Невалидный JSON")
		return
	}

	tag, err := h.svc.CreateTag(r.Context(), req)
	if err != nil {
		log.Error("taxonomy: ошибка создания тега", zap.Error(err))
		helpers.Fail(w, err)
		return
	}

	log.Info("taxonomy: тег создан", zap.Int64("id", tag.ID), zap.String("slug", tag.Slug))
	helpers.JSON(w, http.StatusCreated, tag)
}
