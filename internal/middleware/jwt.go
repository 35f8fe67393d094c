package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"emmacms/internal/logger"
	"emmacms/internal/reqctx"
	"emmacms/internal/services"
	helpers "emmacms/internal/utils/helpers"
)

// JWTAuth проверяет bearer-токен и перечитывает пользователя из БД:
// валидная подпись не спасает отключённую учётную запись.
func JWTAuth(jwtSecret string, auth *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				helpers.Error(w, http.StatusUnauthorized, "unauthorized", "Отсутствует access token")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			})
			// Без токена — 401, предъявленный но негодный токен — 403.
			if err != nil || !token.Valid {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен",
					zap.Error(err))
				helpers.Error(w, http.StatusForbidden, "forbidden", "Неверный или просроченный токен")
				return
			}

			userID, ok := claims["user_id"].(float64)
			if !ok {
				logger.WithCtx(r.Context()).Warn("JWTAuth: недопустимый payload",
					zap.Any("claims", claims))
				helpers.Error(w, http.StatusForbidden, "forbidden", "Недопустимый payload")
				return
			}

			user, err := auth.Authenticate(r.Context(), int64(userID))
			if err != nil {
				helpers.Fail(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, user.ID)
			ctx = context.WithValue(ctx, ContextUsername, user.Username)
			ctx = context.WithValue(ctx, ContextRole, user.Role)
			ctx = reqctx.WithUserID(ctx, user.ID)

			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден",
				zap.Int64("user_id", user.ID), zap.String("role", user.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
