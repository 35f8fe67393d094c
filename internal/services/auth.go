package services

import (
	"context"
	"fmt"
	"time"

	"emmacms/internal/apperrors"
	"emmacms/internal/logger"
	"emmacms/internal/models"
	"emmacms/internal/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	repo UserRepo
}

func NewAuthService(repo UserRepo) *AuthService {
	return &AuthService{repo: repo}
}

type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// Login проверяет логин/пароль и выдаёт access-токен.
// Для несуществующего пользователя и неверного пароля ошибка одна и та же,
// чтобы не дать перебирать имена.
func (s *AuthService) Login(
	ctx context.Context,
	username, password, jwtSecret string,
	accessTTL time.Duration,
) (string, *models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("username", username))

	badCredentials := fmt.Errorf("%w: неверный логин или пароль", apperrors.ErrUnauthorized)

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		log.Warn("Пользователь не найден (service)", zap.String("username", username), zap.Error(err))
		return "", nil, badCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("username", username))
		return "", nil, badCredentials
	}

	if !user.IsActive {
		log.Warn("Вход отключённого пользователя (service)", zap.String("username", username))
		return "", nil, fmt.Errorf("%w: учётная запись отключена", apperrors.ErrForbidden)
	}

	accessToken, err := utils.GenerateToken(jwtSecret, user.ID, user.Username, user.Role, accessTTL)
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", nil, err
	}

	log.Info("Вход выполнен (service)", zap.String("username", username), zap.String("role", user.Role))
	return accessToken, user, nil
}

// Authenticate перечитывает пользователя по ID из токена.
// Отключённый пользователь теряет доступ на следующем же запросе,
// даже если его токен ещё не истёк.
func (s *AuthService) Authenticate(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		logger.WithCtx(ctx).Warn("Пользователь из токена не найден (service)", zap.Int64("user_id", userID))
		return nil, fmt.Errorf("%w: пользователь не найден", apperrors.ErrForbidden)
	}
	if !user.IsActive {
		logger.WithCtx(ctx).Warn("Пользователь из токена отключён (service)", zap.Int64("user_id", userID))
		return nil, fmt.Errorf("%w: учётная запись отключена", apperrors.ErrForbidden)
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Пользователь не найден по ID (service)", zap.Int64("user_id", id), zap.Error(err))
	}
	return user, err
}
