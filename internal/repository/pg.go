package repository

import (
	"errors"
	"fmt"

	"emmacms/internal/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapPgError переводит ошибки драйвера в таксономию приложения:
// отсутствие строк — NotFound, нарушение уникальности — Conflict.
// Остальные ошибки отдаются как есть (наружу их текст не уходит).
func mapPgError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound(what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		case "23503":
			return apperrors.Validation("ссылка на несуществующую запись")
		}
	}
	return err
}
