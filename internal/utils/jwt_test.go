package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	secret := "test-secret"
	tokenString, err := GenerateToken(secret, 7, "editor1", "editor", time.Minute)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("токен не прошёл проверку: %v", err)
	}

	if id, _ := claims["user_id"].(float64); int64(id) != 7 {
		t.Errorf("user_id = %v, ожидалось 7", claims["user_id"])
	}
	if claims["username"] != "editor1" {
		t.Errorf("username = %v, ожидалось editor1", claims["username"])
	}
	if claims["role"] != "editor" {
		t.Errorf("role = %v, ожидалось editor", claims["role"])
	}
}

func TestGenerateTokenExpired(t *testing.T) {
	secret := "test-secret"
	tokenString, err := GenerateToken(secret, 1, "admin", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err == nil && token.Valid {
		t.Fatal("просроченный токен не должен проходить проверку")
	}
}
