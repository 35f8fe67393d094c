package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"emmacms/internal/logger"
	"emmacms/internal/middleware"
	"emmacms/internal/services"
	helpers "emmacms/internal/utils/helpers"
)

type UploadHandler struct {
	svc *services.UploadService
}

func NewUploadHandler(svc *services.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload godoc
// @Summary Загрузка файла (картинки и документы)
// @Tags admin
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл"
// @Success 201 {object} models.Upload
// @Failure 400 {object} helpers.Response "Недопустимый тип или размер"
// @Router /api/admin/uploads [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	log.Info("Запрос на загрузку файла")

	// Жёсткий предел на тело запроса, чтобы не читать гигабайты в память.
	r.Body = http.MaxBytesReader(w, r.Body, h.svc.MaxSize()+1<<20)
	if err := r.ParseMultipartForm(h.svc.MaxSize()); err != nil {
		log.Warn("Ошибка разбора формы при загрузке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Ошибка разбора формы или файл слишком большой")
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Warn("Файл не найден при загрузке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Файл не найден")
		return
	}
	defer file.Close()

	userID, _ := r.Context().Value(middleware.ContextUserID).(int64)

	up, err := h.svc.Save(r.Context(), file, handler.Filename, handler.Size, userID)
	if err != nil {
		log.Error("Ошибка при сохранении файла", zap.String("filename", handler.Filename), zap.Error(err))
		helpers.Fail(w, err)
		return
	}

	log.Info("Файл успешно загружен", zap.String("filename", up.Filename), zap.Int64("user_id", userID))
	helpers.JSON(w, http.StatusCreated, up)
}

// List godoc
// @Summary Список загруженных файлов
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Upload
// @Failure 500 {object} helpers.Response
// @Router /api/admin/uploads [get]
func (h *UploadHandler) List(w http.ResponseWriter, r *http.Request) {
	ups, err := h.svc.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка при получении списка файлов", zap.Error(err))
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, ups)
}

// Delete godoc
// @Summary Удаление файла
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID файла"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} helpers.Response
// @Router /api/admin/uploads/{id} [delete]
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "validation_error", "Некорректный ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка удаления файла", zap.Int64("id", id), zap.Error(err))
		helpers.Fail(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
