package models

import "time"

// Типы ресурсов маркетингового сайта.
const (
	TypeBlog      = "blog"
	TypeCaseStudy = "case-study"
	TypeUseCase   = "use-case"
)

// Статусы жизненного цикла ресурса.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

func IsValidType(t string) bool {
	return t == TypeBlog || t == TypeCaseStudy || t == TypeUseCase
}

func IsValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

type Resource struct {
	ID               int64      `db:"id"                 json:"id"`
	Slug             string     `db:"slug"               json:"slug"`
	Type             string     `db:"type"               json:"type"`
	Status           string     `db:"status"             json:"status"`
	Title            string     `db:"title"              json:"title"`
	Excerpt          *string    `db:"excerpt"            json:"excerpt,omitempty"`
	Content          string     `db:"content"            json:"content"`
	PlainText        string     `db:"plain_text"         json:"-"`
	WordCount        int        `db:"word_count"         json:"word_count"`
	ReadTime         int        `db:"read_time"          json:"read_time"`
	IndustryID       *int64     `db:"industry_id"        json:"industry_id,omitempty"`
	Tags             []string   `db:"-"                  json:"tags"`
	AuthorName       *string    `db:"author_name"        json:"author_name,omitempty"`
	AuthorImageURL   *string    `db:"author_image_url"   json:"author_image_url,omitempty"`
	FeaturedImageURL *string    `db:"featured_image_url" json:"featured_image_url,omitempty"`
	Gallery          []string   `db:"-"                  json:"gallery,omitempty"`
	ViewCount        int64      `db:"view_count"         json:"view_count"`
	MetaTitle        *string    `db:"meta_title"         json:"meta_title,omitempty"`
	MetaDescription  *string    `db:"meta_description"   json:"meta_description,omitempty"`
	MetaKeywords     *string    `db:"meta_keywords"      json:"meta_keywords,omitempty"`
	CreatedAt        time.Time  `db:"created_at"         json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"         json:"updated_at"`
	PublishedAt      *time.Time `db:"published_at"       json:"published_at,omitempty"`
}

// swagger:model CreateResourceRequest
type CreateResourceRequest struct {
	Title            string   `json:"title"   example:"AI Trends in 2024"`
	Type             string   `json:"type"    example:"blog"`
	Excerpt          string   `json:"excerpt" example:"Короткое описание для превью"`
	Content          string   `json:"content" example:"<p>Контент</p>"`
	IndustryID       *int64   `json:"industry_id,omitempty"`
	Tags             []string `json:"tags"    example:"ai,automation"`
	AuthorName       string   `json:"author_name,omitempty"`
	AuthorImageURL   string   `json:"author_image_url,omitempty"`
	FeaturedImageURL string   `json:"featured_image_url,omitempty"`
	Gallery          []string `json:"gallery,omitempty"`
	MetaTitle        string   `json:"meta_title,omitempty"`
	MetaDescription  string   `json:"meta_description,omitempty"`
	MetaKeywords     string   `json:"meta_keywords,omitempty"`
	Publish          bool     `json:"publish"`
}

// swagger:model UpdateResourceRequest
// Все поля опциональны: обновляются только переданные.
type UpdateResourceRequest struct {
	Title            *string   `json:"title,omitempty"`
	Type             *string   `json:"type,omitempty"`
	Excerpt          *string   `json:"excerpt,omitempty"`
	Content          *string   `json:"content,omitempty"`
	Status           *string   `json:"status,omitempty"`
	IndustryID       *int64    `json:"industry_id,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	AuthorName       *string   `json:"author_name,omitempty"`
	AuthorImageURL   *string   `json:"author_image_url,omitempty"`
	FeaturedImageURL *string   `json:"featured_image_url,omitempty"`
	Gallery          *[]string `json:"gallery,omitempty"`
	MetaTitle        *string   `json:"meta_title,omitempty"`
	MetaDescription  *string   `json:"meta_description,omitempty"`
	MetaKeywords     *string   `json:"meta_keywords,omitempty"`
	// Пересчитать slug из нового заголовка. Работает только до первой
	// публикации — опубликованные URL не меняем.
	RegenerateSlug bool `json:"regenerate_slug,omitempty"`
}

// ResourceFilter — параметры выборки списка ресурсов.
type ResourceFilter struct {
	Status     string
	Type       string
	IndustryID *int64
	Search     string
	Page       int
	Limit      int
}

// ResourcePage — страница списка с общим количеством.
type ResourcePage struct {
	Items []*Resource `json:"data"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Pages int         `json:"pages"`
}
