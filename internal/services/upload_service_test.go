package services

import (
	"errors"
	"testing"

	"emmacms/internal/apperrors"
)

func TestValidateFile(t *testing.T) {
	svc := NewUploadService(nil, t.TempDir(), 10, "")

	cases := []struct {
		name     string
		filename string
		size     int64
		wantMime string
		wantErr  bool
	}{
		{"jpg в пределах лимита", "photo.jpg", 1 << 20, "image/jpeg", false},
		{"расширение в верхнем регистре", "SCAN.PDF", 1 << 20, "application/pdf", false},
		{"webp", "hero.webp", 500, "image/webp", false},
		{"запрещённое расширение", "payload.exe", 100, "", true},
		{"без расширения", "README", 100, "", true},
		{"слишком большой файл", "big.png", 11 << 20, "", true},
	}

	for _, c := range cases {
		mime, err := svc.ValidateFile(c.filename, c.size)
		if c.wantErr {
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("%s: ожидалась ошибка валидации, получено %v", c.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: неожиданная ошибка %v", c.name, err)
			continue
		}
		if mime != c.wantMime {
			t.Errorf("%s: mime = %q, ожидалось %q", c.name, mime, c.wantMime)
		}
	}
}

func TestValidateFile_ExactLimit(t *testing.T) {
	svc := NewUploadService(nil, t.TempDir(), 10, "")

	// Ровно на границе — проходит, на байт больше — нет.
	if _, err := svc.ValidateFile("border.png", 10<<20); err != nil {
		t.Errorf("файл ровно в лимит должен проходить: %v", err)
	}
	if _, err := svc.ValidateFile("border.png", 10<<20+1); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("файл на байт больше лимита: ожидалась ошибка валидации, получено %v", err)
	}
}
