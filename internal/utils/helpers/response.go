package helpers

import (
	"encoding/json"
	"net/http"

	"emmacms/internal/apperrors"
)

type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
	Code  string      `json:"code,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{Data: data})
	if err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, code, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{Error: errMsg, Code: code})
	if err != nil {
		return
	}
}

// Fail переводит ошибку приложения в HTTP-ответ.
// Текст неизвестных ошибок клиенту не отдаём.
func Fail(w http.ResponseWriter, err error) {
	if apperrors.Known(err) {
		Error(w, apperrors.Status(err), apperrors.Code(err), err.Error())
		return
	}
	Error(w, http.StatusInternalServerError, apperrors.Code(err), "внутренняя ошибка сервера")
}
