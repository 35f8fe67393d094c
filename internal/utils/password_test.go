package utils

import (
	"os"
	"regexp"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Error("пароль не проходит проверку против собственного хеша")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("чужой пароль прошёл проверку")
	}
}

// Хеш в сиде обязан соответствовать паролю из комментария рядом с ним,
// иначе после миграций в систему никто не войдёт.
func TestSeedAdminPassword(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/002_seed.sql")
	if err != nil {
		t.Fatalf("не удалось прочитать сид: %v", err)
	}

	re := regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)
	hash := re.FindString(string(raw))
	if hash == "" {
		t.Fatal("в сиде не найден bcrypt-хеш администратора")
	}

	if !CheckPasswordHash("changeme", hash) {
		t.Errorf("хеш из сида не соответствует паролю changeme: %s", hash)
	}
}
