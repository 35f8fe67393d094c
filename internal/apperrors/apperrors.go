package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Базовые ошибки приложения. Сервисы оборачивают их через fmt.Errorf("%w"),
// хендлеры переводят в HTTP-статус и машинный код через Status/Code.
var (
	ErrValidation   = errors.New("ошибка валидации")
	ErrUnauthorized = errors.New("не авторизован")
	ErrForbidden    = errors.New("доступ запрещён")
	ErrNotFound     = errors.New("не найдено")
	ErrConflict     = errors.New("конфликт данных")
	ErrStorage      = errors.New("хранилище недоступно")
)

func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

// Status возвращает HTTP-статус для ошибки приложения.
// Неизвестные ошибки считаются внутренними (500).
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code возвращает машинный код ошибки для клиента.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrStorage):
		return "storage_unavailable"
	default:
		return "internal_error"
	}
}

// Known сообщает, относится ли ошибка к известной таксономии.
// Текст неизвестных ошибок (например, из БД) клиенту не показывается.
func Known(err error) bool {
	return Status(err) != http.StatusInternalServerError
}
