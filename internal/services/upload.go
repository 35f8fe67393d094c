package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"emmacms/internal/apperrors"
	"emmacms/internal/logger"
	"emmacms/internal/models"
	"emmacms/internal/repository"
)

// Разрешённые расширения: картинки и небольшой набор документов.
var allowedUploadExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type UploadService struct {
	repo    *repository.UploadRepository
	dir     string
	maxSize int64
	siteURL string
}

func NewUploadService(repo *repository.UploadRepository, dir string, maxSizeMB int, siteURL string) *UploadService {
	return &UploadService{
		repo:    repo,
		dir:     dir,
		maxSize: int64(maxSizeMB) << 20,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

func (s *UploadService) MaxSize() int64 { return s.maxSize }

// ValidateFile проверяет расширение и размер. Нарушение — ошибка валидации
// (400), а не серверная.
func (s *UploadService) ValidateFile(originalName string, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	mime, ok := allowedUploadExt[ext]
	if !ok {
		return "", apperrors.Validation("недопустимый тип файла: " + ext)
	}
	if size > s.maxSize {
		return "", apperrors.Validation(fmt.Sprintf("файл слишком большой (максимум %d МБ)", s.maxSize>>20))
	}
	return mime, nil
}

// Save сохраняет файл на диск и записывает его в БД.
func (s *UploadService) Save(ctx context.Context, src io.Reader, originalName string, size int64, userID int64) (*models.Upload, error) {
	log := logger.WithCtx(ctx)

	mime, err := s.ValidateFile(originalName, size)
	if err != nil {
		log.Warn("Файл не прошёл валидацию", zap.String("filename", originalName), zap.Error(err))
		return nil, err
	}

	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		log.Error("Не удалось создать каталог загрузок", zap.String("dir", s.dir), zap.Error(err))
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
	fullPath := filepath.Join(s.dir, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		log.Error("Ошибка при сохранении файла", zap.String("filepath", fullPath), zap.Error(err))
		return nil, err
	}
	written, err := io.Copy(dst, src)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(fullPath)
		log.Error("Ошибка записи файла", zap.String("filepath", fullPath), zap.Error(err))
		return nil, err
	}

	up := &models.Upload{
		UserID:       userID,
		Filename:     filename,
		OriginalName: originalName,
		Filepath:     fullPath,
		URL:          s.siteURL + "/uploads/" + filename,
		MimeType:     mime,
		Size:         written,
	}

	if err := s.repo.Create(ctx, up); err != nil {
		_ = os.Remove(fullPath)
		log.Error("Ошибка записи файла в базу", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	log.Info("Файл загружен",
		zap.Int64("id", up.ID),
		zap.String("filename", filename),
		zap.Int64("size", written),
	)
	return up, nil
}

func (s *UploadService) List(ctx context.Context) ([]*models.Upload, error) {
	return s.repo.List(ctx)
}

// Delete удаляет запись и файл с диска. Отсутствие файла на диске не ошибка.
func (s *UploadService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)

	up, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := os.Remove(up.Filepath); err != nil && !os.IsNotExist(err) {
		log.Warn("Файл не удалён с диска", zap.String("filepath", up.Filepath), zap.Error(err))
	}

	log.Info("Файл удалён", zap.Int64("id", id), zap.String("filename", up.Filename))
	return nil
}
