package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"emmacms/internal/apperrors"
	"emmacms/internal/logger"
	"emmacms/internal/models"
	"emmacms/internal/repository"
	"emmacms/internal/utils"
)

type TaxonomyService struct {
	repo repository.TaxonomyRepo
}

func NewTaxonomyService(repo repository.TaxonomyRepo) *TaxonomyService {
	return &TaxonomyService{repo: repo}
}

func (s *TaxonomyService) ListIndustries(ctx context.Context) ([]*models.Industry, error) {
	return s.repo.ListIndustries(ctx)
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *TaxonomyService) CreateIndustry(ctx context.Context, req models.CreateIndustryRequest) (*models.Industry, error) {
	log := logger.WithCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("название отрасли не может быть пустым")
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}

	log.Info("Создание отрасли", zap.String("name", name), zap.String("slug", slug))
	return s.repo.CreateIndustry(ctx, &models.Industry{
		Name:  name,
		Slug:  slug,
		Color: req.Color,
		Icon:  req.Icon,
	})
}

func (s *TaxonomyService) CreateTag(ctx context.Context, req models.CreateTagRequest) (*models.Tag, error) {
	log := logger.WithCtx(ctx)

	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == "" {
		return nil, apperrors.Validation("название тега не может быть пустым")
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}

	log.Info("Создание тега", zap.String("name", name), zap.String("slug", slug))
	return s.repo.CreateTag(ctx, &models.Tag{
		Name:  name,
		Slug:  slug,
		Color: req.Color,
	})
}
