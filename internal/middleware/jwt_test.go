package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"emmacms/internal/apperrors"
	"emmacms/internal/models"
	"emmacms/internal/services"
	"emmacms/internal/utils"
)

type stubUserRepo struct {
	users map[int64]*models.User
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("пользователь")
}

func (s *stubUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("пользователь")
	}
	return u, nil
}

func (s *stubUserRepo) CreateUser(_ context.Context, user *models.User) error {
	s.users[user.ID] = user
	return nil
}

const testSecret = "test-secret"

func newGuardedHandler(t *testing.T, repo *stubUserRepo) http.Handler {
	t.Helper()
	auth := services.NewAuthService(repo)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return JWTAuth(testSecret, auth)(next)
}

func TestJWTAuth_StatusCodes(t *testing.T) {
	repo := &stubUserRepo{users: map[int64]*models.User{
		1: {ID: 1, Username: "editor", Role: models.RoleEditor, IsActive: true},
		2: {ID: 2, Username: "fired", Role: models.RoleEditor, IsActive: false},
	}}
	h := newGuardedHandler(t, repo)

	goodToken, err := utils.GenerateToken(testSecret, 1, "editor", models.RoleEditor, time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}
	expiredToken, err := utils.GenerateToken(testSecret, 1, "editor", models.RoleEditor, -time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации просроченного токена: %v", err)
	}
	foreignToken, err := utils.GenerateToken("other-secret", 1, "editor", models.RoleEditor, time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации чужого токена: %v", err)
	}
	inactiveToken, err := utils.GenerateToken(testSecret, 2, "fired", models.RoleEditor, time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена отключённого: %v", err)
	}
	ghostToken, err := utils.GenerateToken(testSecret, 99, "ghost", models.RoleEditor, time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена несуществующего: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"без заголовка — 401", "", http.StatusUnauthorized},
		{"не Bearer — 401", "Basic abc", http.StatusUnauthorized},
		{"мусорный токен — 403", "Bearer not-a-jwt", http.StatusForbidden},
		{"просроченный токен — 403", "Bearer " + expiredToken, http.StatusForbidden},
		{"чужая подпись — 403", "Bearer " + foreignToken, http.StatusForbidden},
		{"отключённый пользователь — 403", "Bearer " + inactiveToken, http.StatusForbidden},
		{"несуществующий пользователь — 403", "Bearer " + ghostToken, http.StatusForbidden},
		{"валидный токен — 200", "Bearer " + goodToken, http.StatusOK},
	}

	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/resources", nil)
		if c.header != "" {
			req.Header.Set("Authorization", c.header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != c.want {
			t.Errorf("%s: статус %d, ожидался %d", c.name, rec.Code, c.want)
		}
	}
}
