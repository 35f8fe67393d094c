package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"emmacms/internal/apperrors"
	"emmacms/internal/logger"
	"emmacms/internal/models"
	"emmacms/internal/services"
	helpers "emmacms/internal/utils/helpers"
)

type ResourceHandler struct {
	svc services.ResourceService
}

func NewResourceHandler(svc services.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

func filterFromQuery(r *http.Request) (models.ResourceFilter, error) {
	q := r.URL.Query()
	f := models.ResourceFilter{
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Search: strings.TrimSpace(q.Get("search")),
	}
	if raw := q.Get("industry"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, apperrors.Validation("параметр industry должен быть числом")
		}
		f.IndustryID = &v
	}
	var err error
	if f.Page, err = intQuery(q.Get("page"), "page"); err != nil {
		return f, err
	}
	if f.Limit, err = intQuery(q.Get("limit"), "limit"); err != nil {
		return f, err
	}
	return f, nil
}

// intQuery разбирает числовой query-параметр: пусто — ноль, мусор — 400.
func intQuery(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validation("параметр " + name + " должен быть числом")
	}
	return v, nil
}

// List
// @Summary      Список опубликованных ресурсов
// @Description  Публичная выдача: только published, фильтры по типу, отрасли и тексту
// @Tags         resources
// @Produce      json
// @Param        type      query  string  false  "blog | case-study | use-case"
// @Param        industry  query  int     false  "ID отрасли"
// @Param        search    query  string  false  "Поиск по заголовку и анонсу"
// @Param        page      query  int     false  "Номер страницы (с 1)"
// @Param        limit     query  int     false  "Размер страницы (максимум 100)"
// @Success      200  {object}  models.ResourcePage
// @Failure      400  {object}  helpers.Response
// @Router       /api/resources [get]
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		helpers.Fail(w, err)
		return
	}

	page, err := h.svc.List(r.Context(), f, true)
	if err != nil {
		logger.WithCtx(r.Context()).Error("ошибка получения списка ресурсов", zap.Error(err))
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, page)
}

// AdminList
// @Summary      Список ресурсов для CMS (любой статус)
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Param        status    query  string  false  "draft | published | archived"
// @Param        type      query  string  false  "blog | case-study | use-case"
// @Param        industry  query  int     false  "ID отрасли"
// @Param        search    query  string  false  "Поиск по заголовку и анонсу"
// @Param        page      query  int     false  "Номер страницы (с 1)"
// @Param        limit     query  int     false  "Размер страницы (максимум 100)"
// @Success      200  {object}  models.ResourcePage
// @Failure      400  {object}  helpers.Response
// @Router       /api/admin/resources [get]
func (h *ResourceHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		helpers.Fail(w, err)
		return
	}

	page, err := h.svc.List(r.Context(), f, false)
	if err != nil {
		logger.WithCtx(r.Context()).Error("ошибка получения списка ресурсов (CMS)", zap.Error(err))
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, page)
}

// GetBySlug
// @Summary      Ресурс по slug
// @Description  Публичная карточка; каждый вызов атомарно увеличивает счётчик просмотров
// @Tags         resources
// @Produce      json
// @Param        slug  path  string  true  "Slug ресурса"
// @Success      200  {object}  models.Resource
// @Failure      404  {object}  helpers.Response
// @Router       /api/resources/{slug} [get]
func (h *ResourceHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	res, err := h.svc.GetBySlug(r.Context(), slug, true)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("ресурс не найден", zap.String("slug", slug), zap.Error(err))
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

// Create
// @Summary      Создать ресурс
// @Description  Slug, plain-text, количество слов и время чтения считаются автоматически
// @Tags         admin
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateResourceRequest  true  "Данные ресурса"
// @Success      201  {object}  models.Resource
// @Failure      400  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Router       /api/admin/resources [post]
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("невалидный JSON при создании ресурса", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Невалидный JSON")
		return
	}

	res, err := h.svc.Create(r.Context(), req)
	if err != nil {
		logger.WithCtx(r.Context()).Error("ошибка создания ресурса", zap.Error(err))
		helpers.Fail(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("ресурс создан",
		zap.Int64("id", res.ID),
		zap.String("slug", res.Slug),
	)
	helpers.JSON(w, http.StatusCreated, res)
}

// Update
// @Summary      Обновить ресурс
// @Description  Частичное обновление; производные поля пересчитываются при смене контента
// @Tags         admin
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID ресурса"
// @Param        body  body  models.UpdateResourceRequest  true  "Изменяемые поля"
// @Success      200  {object}  models.Resource
// @Failure      400  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/admin/resources/{id} [put]
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Некорректный ID")
		return
	}

	var req models.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("невалидный JSON при обновлении ресурса", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Невалидный JSON")
		return
	}

	res, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		logger.WithCtx(r.Context()).Error("ошибка обновления ресурса", zap.Int64("id", id), zap.Error(err))
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

type setStatusRequest struct {
	Status string `json:"status" example:"published"`
}

// SetStatus
// @Summary      Сменить статус ресурса
// @Description  published выставляет published_at один раз; повторная публикация дату не сдвигает
// @Tags         admin
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID ресурса"
// @Param        body  body  setStatusRequest  true  "Новый статус"
// @Success      200  {object}  models.Resource
// @Failure      400  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/admin/resources/{id}/status [patch]
func (h *ResourceHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Некорректный ID")
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Невалидный JSON")
		return
	}

	res, err := h.svc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		logger.WithCtx(r.Context()).Error("ошибка смены статуса", zap.Int64("id", id), zap.Error(err))
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

// Delete
// @Summary      Удалить ресурс
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Param        id  path  int  true  "ID ресурса"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  helpers.Response
// @Router       /api/admin/resources/{id} [delete]
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Некорректный ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		logger.WithCtx(r.Context()).Warn("ошибка удаления ресурса", zap.Int64("id", id), zap.Error(err))
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Preview
// @Summary      Предпросмотр контента
// @Description  Возвращает очищенный HTML без сохранения в БД
// @Tags         admin
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]string  true  "Сырой HTML"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  helpers.Response
// @Router       /api/admin/resources/preview [post]
func (h *ResourceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	type reqT struct {
		Content string `json:"content"`
	}
	var req reqT
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("невалидный JSON при предпросмотре", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Невалидный JSON")
		return
	}

	safe := h.svc.PreviewHTML(req.Content)
	helpers.JSON(w, http.StatusOK, map[string]string{"content": safe})
}
