package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"emmacms/internal/apperrors"
	"emmacms/internal/logger"
	"emmacms/internal/models"
	"emmacms/internal/repository"
	"emmacms/internal/utils"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// Сколько суффиксов (-2, -3, …) перебираем при коллизии slug,
	// прежде чем отдать Conflict. Источник истины — уникальный индекс в БД.
	slugAttempts = 10
)

type ResourceService interface {
	Create(ctx context.Context, req models.CreateResourceRequest) (*models.Resource, error)
	Update(ctx context.Context, id int64, req models.UpdateResourceRequest) (*models.Resource, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f models.ResourceFilter, publicOnly bool) (*models.ResourcePage, error)
	GetBySlug(ctx context.Context, slug string, public bool) (*models.Resource, error)
	SetStatus(ctx context.Context, id int64, status string) (*models.Resource, error)
	PreviewHTML(rawHTML string) string
}

type resourceService struct {
	repo   repository.ResourceRepo
	policy *bluemonday.Policy
}

func NewResourceService(repo repository.ResourceRepo) ResourceService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &resourceService{repo: repo, policy: p}
}

func (s *resourceService) PreviewHTML(rawHTML string) string {
	// безопасно логируем только длины
	log := logger.WithCtx(context.Background())
	clean := s.policy.Sanitize(rawHTML)
	log.Debug("Предпросмотр HTML (sanitize)",
		zap.Int("raw_len", len(rawHTML)),
		zap.Int("clean_len", len(clean)),
	)
	return clean
}

func (s *resourceService) Create(ctx context.Context, req models.CreateResourceRequest) (*models.Resource, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание ресурса",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.String("type", req.Type),
		zap.Bool("publish", req.Publish),
	)

	title := strings.TrimSpace(req.Title)
	if l := utf8.RuneCountInString(title); l < 3 || l > 255 {
		err := apperrors.Validation("длина заголовка должна быть от 3 до 255 символов")
		log.Warn("Валидация не пройдена: заголовок", zap.Int("runes", l), zap.Error(err))
		return nil, err
	}
	if !models.IsValidType(req.Type) {
		err := apperrors.Validation("недопустимый тип ресурса")
		log.Warn("Валидация не пройдена: тип", zap.String("type", req.Type), zap.Error(err))
		return nil, err
	}
	if strings.TrimSpace(req.Content) == "" {
		err := apperrors.Validation("контент не может быть пустым")
		log.Warn("Валидация не пройдена: контент", zap.Error(err))
		return nil, err
	}

	safe := s.policy.Sanitize(req.Content)
	plain := utils.PlainText(safe)
	words := utils.WordCount(plain)

	status := models.StatusDraft
	if req.Publish {
		status = models.StatusPublished
	}

	res := &models.Resource{
		Type:             req.Type,
		Status:           status,
		Title:            title,
		Excerpt:          strPtr(req.Excerpt),
		Content:          safe,
		PlainText:        plain,
		WordCount:        words,
		ReadTime:         utils.ReadTimeMinutes(words),
		IndustryID:       req.IndustryID,
		Tags:             normalizeTags(req.Tags),
		AuthorName:       strPtr(req.AuthorName),
		AuthorImageURL:   strPtr(req.AuthorImageURL),
		FeaturedImageURL: strPtr(req.FeaturedImageURL),
		Gallery:          req.Gallery,
		MetaTitle:        strPtr(req.MetaTitle),
		MetaDescription:  strPtr(req.MetaDescription),
		MetaKeywords:     strPtr(req.MetaKeywords),
	}

	base := utils.Slugify(title)
	if base == "" {
		return nil, apperrors.Validation("заголовок не содержит допустимых для slug символов")
	}

	// Вставляем и при нарушении уникальности пробуем следующий суффикс.
	// Предварительная проверка slug не делается: между проверкой и вставкой
	// есть гонка, а уникальный индекс — нет.
	for attempt := 1; attempt <= slugAttempts; attempt++ {
		res.Slug = base
		if attempt > 1 {
			res.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		created, err := s.repo.Create(ctx, res)
		if err == nil {
			log.Info("Ресурс создан",
				zap.Int64("id", created.ID),
				zap.String("slug", created.Slug),
				zap.String("status", created.Status),
			)
			return created, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			log.Debug("Коллизия slug, пробуем суффикс",
				zap.String("slug", res.Slug), zap.Int("attempt", attempt))
			continue
		}
		log.Error("Ошибка создания ресурса (repo)", zap.Error(err))
		return nil, err
	}

	log.Warn("Свободный slug не найден", zap.String("base", base), zap.Int("attempts", slugAttempts))
	return nil, apperrors.Conflict("не удалось подобрать свободный slug для " + base)
}

func (s *resourceService) List(ctx context.Context, f models.ResourceFilter, publicOnly bool) (*models.ResourcePage, error) {
	log := logger.WithCtx(ctx)

	if publicOnly {
		// Публичные вызовы видят только опубликованное, что бы ни попросили.
		f.Status = models.StatusPublished
	}
	if f.Status != "" && !models.IsValidStatus(f.Status) {
		return nil, apperrors.Validation("недопустимый статус")
	}
	if f.Type != "" && !models.IsValidType(f.Type) {
		return nil, apperrors.Validation("недопустимый тип ресурса")
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}

	log.Debug("Получение списка ресурсов",
		zap.String("status", f.Status),
		zap.String("type", f.Type),
		zap.String("search", f.Search),
		zap.Int("page", f.Page),
		zap.Int("limit", f.Limit),
	)

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		log.Error("Ошибка получения списка ресурсов (repo)", zap.Error(err))
		return nil, err
	}

	pages := (total + f.Limit - 1) / f.Limit
	log.Debug("Список ресурсов получен", zap.Int("count", len(items)), zap.Int("total", total))
	return &models.ResourcePage{
		Items: items,
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
		Pages: pages,
	}, nil
}

func (s *resourceService) GetBySlug(ctx context.Context, slug string, public bool) (*models.Resource, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение ресурса по slug", zap.String("slug", slug), zap.Bool("public", public))

	res, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		log.Warn("Ресурс не найден (repo)", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	if public && res.Status != models.StatusPublished {
		log.Warn("Неопубликованный ресурс запрошен публично", zap.String("slug", slug))
		return nil, apperrors.NotFound("ресурс")
	}

	if public {
		// Счётчик просмотров растёт только на публичных просмотрах.
		count, err := s.repo.IncrementViews(ctx, res.ID)
		if err != nil {
			log.Error("Ошибка инкремента просмотров", zap.Int64("id", res.ID), zap.Error(err))
		} else {
			res.ViewCount = count
		}
	}
	return res, nil
}

func (s *resourceService) Update(ctx context.Context, id int64, req models.UpdateResourceRequest) (*models.Resource, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление ресурса", zap.Int64("id", id))

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Ресурс для обновления не найден (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if l := utf8.RuneCountInString(title); l < 3 || l > 255 {
			return nil, apperrors.Validation("длина заголовка должна быть от 3 до 255 символов")
		}
		res.Title = title
	}
	if req.Type != nil {
		if !models.IsValidType(*req.Type) {
			return nil, apperrors.Validation("недопустимый тип ресурса")
		}
		res.Type = *req.Type
	}
	if req.Status != nil {
		if !models.IsValidStatus(*req.Status) {
			return nil, apperrors.Validation("недопустимый статус")
		}
		res.Status = *req.Status
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, apperrors.Validation("контент не может быть пустым")
		}
		// Контент изменился — пересчитываем производные поля.
		res.Content = s.policy.Sanitize(*req.Content)
		res.PlainText = utils.PlainText(res.Content)
		res.WordCount = utils.WordCount(res.PlainText)
		res.ReadTime = utils.ReadTimeMinutes(res.WordCount)
	}
	if req.Excerpt != nil {
		res.Excerpt = strPtr(*req.Excerpt)
	}
	if req.IndustryID != nil {
		res.IndustryID = req.IndustryID
	}
	if req.Tags != nil {
		res.Tags = normalizeTags(*req.Tags)
	}
	if req.AuthorName != nil {
		res.AuthorName = strPtr(*req.AuthorName)
	}
	if req.AuthorImageURL != nil {
		res.AuthorImageURL = strPtr(*req.AuthorImageURL)
	}
	if req.FeaturedImageURL != nil {
		res.FeaturedImageURL = strPtr(*req.FeaturedImageURL)
	}
	if req.Gallery != nil {
		res.Gallery = *req.Gallery
	}
	if req.MetaTitle != nil {
		res.MetaTitle = strPtr(*req.MetaTitle)
	}
	if req.MetaDescription != nil {
		res.MetaDescription = strPtr(*req.MetaDescription)
	}
	if req.MetaKeywords != nil {
		res.MetaKeywords = strPtr(*req.MetaKeywords)
	}

	// Смена заголовка slug не трогает: ссылки на опубликованные ресурсы
	// должны оставаться рабочими. Пересчёт — только по явному запросу
	// и только до первой публикации.
	if req.RegenerateSlug {
		if res.PublishedAt != nil {
			return nil, apperrors.Validation("slug опубликованного ресурса не меняется")
		}
		base := utils.Slugify(res.Title)
		if base == "" {
			return nil, apperrors.Validation("заголовок не содержит допустимых для slug символов")
		}
		for attempt := 1; attempt <= slugAttempts; attempt++ {
			res.Slug = base
			if attempt > 1 {
				res.Slug = fmt.Sprintf("%s-%d", base, attempt)
			}
			err = s.repo.Update(ctx, res)
			if err == nil {
				break
			}
			if errors.Is(err, apperrors.ErrConflict) {
				continue
			}
			log.Error("Ошибка обновления ресурса (repo)", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("не удалось подобрать свободный slug для " + base)
		}
	} else {
		if err := s.repo.Update(ctx, res); err != nil {
			log.Error("Ошибка обновления ресурса (repo)", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("Ошибка чтения ресурса после обновления (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Ресурс обновлён", zap.Int64("id", id), zap.String("status", updated.Status))
	return updated, nil
}

func (s *resourceService) SetStatus(ctx context.Context, id int64, status string) (*models.Resource, error) {
	log := logger.WithCtx(ctx)
	log.Info("Изменение статуса ресурса", zap.Int64("id", id), zap.String("status", status))

	if !models.IsValidStatus(status) {
		return nil, apperrors.Validation("недопустимый статус")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		log.Error("Ошибка обновления статуса (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("Ошибка получения ресурса после смены статуса (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Статус ресурса изменён", zap.Int64("id", id), zap.String("status", res.Status))
	return res, nil
}

func (s *resourceService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление ресурса", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("Ошибка удаления ресурса (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}

	log.Info("Ресурс удалён", zap.Int64("id", id))
	return nil
}

func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func normalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
