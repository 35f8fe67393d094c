package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"emmacms/internal/apperrors"
	"emmacms/internal/models"
	"emmacms/internal/utils"
)

type mockUserRepo struct {
	byName map[string]*models.User
	byID   map[int64]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byName: make(map[string]*models.User),
		byID:   make(map[int64]*models.User),
	}
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.byName[username]
	if !ok {
		return nil, apperrors.NotFound("пользователь")
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, apperrors.NotFound("пользователь")
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	cp := *user
	m.byName[cp.Username] = &cp
	m.byID[cp.ID] = &cp
	return nil
}

func seedUser(t *testing.T, repo *mockUserRepo, username, password string, active bool) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("ошибка хеширования пароля: %v", err)
	}
	u := &models.User{
		ID:           int64(len(repo.byID) + 1),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         models.RoleEditor,
		IsActive:     active,
	}
	if err := repo.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	return u
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "editor", "secret123", true)
	svc := NewAuthService(repo)

	token, user, err := svc.Login(context.Background(), "editor", "secret123", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("ошибка входа: %v", err)
	}
	if token == "" {
		t.Error("пустой access-токен")
	}
	if user == nil || user.Username != "editor" {
		t.Errorf("неверный пользователь в ответе: %+v", user)
	}
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "editor", "secret123", true)
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, _, errWrongPass := svc.Login(ctx, "editor", "wrong-password", "test-secret", time.Hour)
	_, _, errNoUser := svc.Login(ctx, "nobody", "secret123", "test-secret", time.Hour)

	if !errors.Is(errWrongPass, apperrors.ErrUnauthorized) {
		t.Errorf("неверный пароль: ожидался Unauthorized, получено %v", errWrongPass)
	}
	if !errors.Is(errNoUser, apperrors.ErrUnauthorized) {
		t.Errorf("неизвестный пользователь: ожидался Unauthorized, получено %v", errNoUser)
	}
	// Текст ошибки одинаковый: по ответу нельзя перебирать имена.
	if errWrongPass.Error() != errNoUser.Error() {
		t.Errorf("ошибки различимы: %q vs %q", errWrongPass.Error(), errNoUser.Error())
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "fired", "secret123", false)
	svc := NewAuthService(repo)

	_, _, err := svc.Login(context.Background(), "fired", "secret123", "test-secret", time.Hour)
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("отключённый пользователь: ожидался Forbidden, получено %v", err)
	}
}

func TestAuthenticate_DeactivatedLosesAccess(t *testing.T) {
	repo := newMockUserRepo()
	u := seedUser(t, repo, "editor", "secret123", true)
	svc := NewAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Authenticate(ctx, u.ID); err != nil {
		t.Fatalf("активный пользователь должен проходить: %v", err)
	}

	// Отключаем пользователя — токен ещё жив, но доступ пропадает.
	repo.byID[u.ID].IsActive = false
	if _, err := svc.Authenticate(ctx, u.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("отключённый пользователь: ожидался Forbidden, получено %v", err)
	}

	if _, err := svc.Authenticate(ctx, 999); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("несуществующий ID: ожидался Forbidden, получено %v", err)
	}
}
