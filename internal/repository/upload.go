package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emmacms/internal/models"
)

type UploadRepository struct {
	db *pgxpool.Pool
}

func NewUploadRepository(db *pgxpool.Pool) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) Create(ctx context.Context, up *models.Upload) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO uploads (user_id, filename, original_name, filepath, url, mime_type, size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, uploaded_at
	`, up.UserID, up.Filename, up.OriginalName, up.Filepath, up.URL, up.MimeType, up.Size).
		Scan(&up.ID, &up.UploadedAt)
	return mapPgError(err, "файл")
}

func (r *UploadRepository) List(ctx context.Context) ([]*models.Upload, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, filename, original_name, filepath, url, mime_type, size, uploaded_at
		FROM uploads ORDER BY uploaded_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Upload
	for rows.Next() {
		var up models.Upload
		if err := rows.Scan(&up.ID, &up.UserID, &up.Filename, &up.OriginalName,
			&up.Filepath, &up.URL, &up.MimeType, &up.Size, &up.UploadedAt); err != nil {
			return nil, err
		}
		list = append(list, &up)
	}
	return list, rows.Err()
}

func (r *UploadRepository) GetByID(ctx context.Context, id int64) (*models.Upload, error) {
	var up models.Upload
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, filename, original_name, filepath, url, mime_type, size, uploaded_at
		FROM uploads WHERE id = $1
	`, id).Scan(&up.ID, &up.UserID, &up.Filename, &up.OriginalName,
		&up.Filepath, &up.URL, &up.MimeType, &up.Size, &up.UploadedAt)
	if err != nil {
		return nil, mapPgError(err, "файл")
	}
	return &up, nil
}

func (r *UploadRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM uploads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return mapPgError(pgx.ErrNoRows, "файл")
	}
	return nil
}
