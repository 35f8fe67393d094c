package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emmacms/internal/models"
	"emmacms/internal/utils"
)

type ResourceRepo interface {
	Create(ctx context.Context, res *models.Resource) (*models.Resource, error)
	List(ctx context.Context, f models.ResourceFilter) ([]*models.Resource, int, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	GetBySlug(ctx context.Context, slug string) (*models.Resource, error)
	Update(ctx context.Context, res *models.Resource) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	IncrementViews(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type resourceRepo struct{ db *pgxpool.Pool }

func NewResourceRepo(db *pgxpool.Pool) ResourceRepo { return &resourceRepo{db: db} }

// Колонки + агрегат тегов. Теги через join-таблицу, порядок стабильный.
const resourceColumns = `
	r.id, r.slug, r.type, r.status, r.title, r.excerpt, r.content, r.plain_text,
	r.word_count, r.read_time, r.industry_id, r.author_name, r.author_image_url,
	r.featured_image_url, r.gallery, r.view_count, r.meta_title,
	r.meta_description, r.meta_keywords, r.created_at, r.updated_at, r.published_at,
	COALESCE(array_agg(t.name ORDER BY t.name) FILTER (WHERE t.id IS NOT NULL), '{}')
`

const resourceFrom = `
	FROM resources r
	LEFT JOIN resource_tags rt ON rt.resource_id = r.id
	LEFT JOIN tags t ON t.id = rt.tag_id
`

func scanResource(row pgx.Row) (*models.Resource, error) {
	var res models.Resource
	var galleryRaw []byte
	if err := row.Scan(
		&res.ID, &res.Slug, &res.Type, &res.Status, &res.Title, &res.Excerpt,
		&res.Content, &res.PlainText, &res.WordCount, &res.ReadTime,
		&res.IndustryID, &res.AuthorName, &res.AuthorImageURL,
		&res.FeaturedImageURL, &galleryRaw, &res.ViewCount, &res.MetaTitle,
		&res.MetaDescription, &res.MetaKeywords, &res.CreatedAt, &res.UpdatedAt,
		&res.PublishedAt, &res.Tags,
	); err != nil {
		return nil, err
	}
	_ = json.Unmarshal(galleryRaw, &res.Gallery)
	return &res, nil
}

func (r *resourceRepo) Create(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	galleryJSON, _ := json.Marshal(res.Gallery)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
		INSERT INTO resources (slug, type, status, title, excerpt, content, plain_text,
			word_count, read_time, industry_id, author_name, author_image_url,
			featured_image_url, gallery, meta_title, meta_description, meta_keywords,
			published_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14::jsonb,$15,$16,$17,
			CASE WHEN $3 = 'published' THEN NOW() ELSE NULL END)
		RETURNING id, view_count, created_at, updated_at, published_at
	`
	err = tx.QueryRow(ctx, q,
		res.Slug, res.Type, res.Status, res.Title, res.Excerpt, res.Content,
		res.PlainText, res.WordCount, res.ReadTime, res.IndustryID,
		res.AuthorName, res.AuthorImageURL, res.FeaturedImageURL, galleryJSON,
		res.MetaTitle, res.MetaDescription, res.MetaKeywords,
	).Scan(&res.ID, &res.ViewCount, &res.CreatedAt, &res.UpdatedAt, &res.PublishedAt)
	if err != nil {
		return nil, mapPgError(err, "ресурс")
	}

	if err := replaceTags(ctx, tx, res.ID, res.Tags); err != nil {
		return nil, mapPgError(err, "теги ресурса")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepo) List(ctx context.Context, f models.ResourceFilter) ([]*models.Resource, int, error) {
	where := []string{}
	args := []interface{}{}
	i := 1

	if f.Status != "" {
		where = append(where, fmt.Sprintf("r.status = $%d", i))
		args = append(args, f.Status)
		i++
	}
	if f.Type != "" {
		where = append(where, fmt.Sprintf("r.type = $%d", i))
		args = append(args, f.Type)
		i++
	}
	if f.IndustryID != nil {
		where = append(where, fmt.Sprintf("r.industry_id = $%d", i))
		args = append(args, *f.IndustryID)
		i++
	}
	if f.Search != "" {
		where = append(where, fmt.Sprintf("(r.title ILIKE $%d OR COALESCE(r.excerpt,'') ILIKE $%d)", i, i))
		args = append(args, "%"+f.Search+"%")
		i++
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM resources r"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := "SELECT " + resourceColumns + resourceFrom + cond +
		fmt.Sprintf(` GROUP BY r.id
			ORDER BY r.published_at DESC NULLS LAST, r.created_at DESC
			LIMIT $%d OFFSET $%d`, i, i+1)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *resourceRepo) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	sql := "SELECT " + resourceColumns + resourceFrom + " WHERE r.id = $1 GROUP BY r.id"
	res, err := scanResource(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, mapPgError(err, "ресурс")
	}
	return res, nil
}

func (r *resourceRepo) GetBySlug(ctx context.Context, slug string) (*models.Resource, error) {
	sql := "SELECT " + resourceColumns + resourceFrom + " WHERE r.slug = $1 GROUP BY r.id"
	res, err := scanResource(r.db.QueryRow(ctx, sql, slug))
	if err != nil {
		return nil, mapPgError(err, "ресурс")
	}
	return res, nil
}

func (r *resourceRepo) Update(ctx context.Context, res *models.Resource) error {
	galleryJSON, _ := json.Marshal(res.Gallery)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// published_at выставляется один раз при первом переходе в published
	// и больше не сбрасывается (URL и даты публикации стабильны).
	const q = `
		UPDATE resources SET
			slug=$1, type=$2, status=$3, title=$4, excerpt=$5, content=$6,
			plain_text=$7, word_count=$8, read_time=$9, industry_id=$10,
			author_name=$11, author_image_url=$12, featured_image_url=$13,
			gallery=$14::jsonb, meta_title=$15, meta_description=$16, meta_keywords=$17,
			published_at = CASE WHEN $3 = 'published' THEN COALESCE(published_at, NOW()) ELSE published_at END,
			updated_at = NOW()
		WHERE id=$18
	`
	ct, err := tx.Exec(ctx, q,
		res.Slug, res.Type, res.Status, res.Title, res.Excerpt, res.Content,
		res.PlainText, res.WordCount, res.ReadTime, res.IndustryID,
		res.AuthorName, res.AuthorImageURL, res.FeaturedImageURL, galleryJSON,
		res.MetaTitle, res.MetaDescription, res.MetaKeywords, res.ID,
	)
	if err != nil {
		return mapPgError(err, "ресурс")
	}
	if ct.RowsAffected() == 0 {
		return mapPgError(pgx.ErrNoRows, "ресурс")
	}

	if err := replaceTags(ctx, tx, res.ID, res.Tags); err != nil {
		return mapPgError(err, "теги ресурса")
	}

	return tx.Commit(ctx)
}

func (r *resourceRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	const q = `
		UPDATE resources
		SET status = $2,
		    published_at = CASE WHEN $2 = 'published' THEN COALESCE(published_at, NOW()) ELSE published_at END,
		    updated_at = NOW()
		WHERE id = $1
	`
	ct, err := r.db.Exec(ctx, q, id, status)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return mapPgError(pgx.ErrNoRows, "ресурс")
	}
	return nil
}

// IncrementViews — атомарный инкремент на стороне БД.
// Никакого чтения-модификации-записи в приложении: конкурентные просмотры
// не должны терять обновления.
func (r *resourceRepo) IncrementViews(ctx context.Context, id int64) (int64, error) {
	const q = `UPDATE resources SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`
	var count int64
	if err := r.db.QueryRow(ctx, q, id).Scan(&count); err != nil {
		return 0, mapPgError(err, "ресурс")
	}
	return count, nil
}

func (r *resourceRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return mapPgError(pgx.ErrNoRows, "ресурс")
	}
	return nil
}

// replaceTags перезаписывает связи ресурса с тегами.
// Отсутствующие теги создаются по slug.
func replaceTags(ctx context.Context, tx pgx.Tx, resourceID int64, tags []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM resource_tags WHERE resource_id = $1`, resourceID); err != nil {
		return err
	}
	for _, name := range tags {
		var tagID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO tags (name, slug)
			VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = tags.name
			RETURNING id
		`, name, utils.Slugify(name)).Scan(&tagID)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO resource_tags (resource_id, tag_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, resourceID, tagID); err != nil {
			return err
		}
	}
	return nil
}
