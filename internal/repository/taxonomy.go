package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"emmacms/internal/models"
)

type TaxonomyRepo interface {
	ListIndustries(ctx context.Context) ([]*models.Industry, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)
	CreateIndustry(ctx context.Context, ind *models.Industry) (*models.Industry, error)
	CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error)
}

type taxonomyRepo struct{ db *pgxpool.Pool }

func NewTaxonomyRepo(db *pgxpool.Pool) TaxonomyRepo { return &taxonomyRepo{db: db} }

func (r *taxonomyRepo) ListIndustries(ctx context.Context) ([]*models.Industry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, color, icon, created_at
		FROM industries ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Industry
	for rows.Next() {
		var ind models.Industry
		if err := rows.Scan(&ind.ID, &ind.Name, &ind.Slug, &ind.Color, &ind.Icon, &ind.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &ind)
	}
	return list, rows.Err()
}

func (r *taxonomyRepo) ListTags(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, color, created_at
		FROM tags ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Color, &tag.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &tag)
	}
	return list, rows.Err()
}

func (r *taxonomyRepo) CreateIndustry(ctx context.Context, ind *models.Industry) (*models.Industry, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO industries (name, slug, color, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, ind.Name, ind.Slug, ind.Color, ind.Icon).Scan(&ind.ID, &ind.CreatedAt)
	if err != nil {
		return nil, mapPgError(err, "отрасль")
	}
	return ind, nil
}

func (r *taxonomyRepo) CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO tags (name, slug, color)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, tag.Name, tag.Slug, tag.Color).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		return nil, mapPgError(err, "тег")
	}
	return tag, nil
}
