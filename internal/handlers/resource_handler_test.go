package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"emmacms/internal/apperrors"
	"emmacms/internal/models"
)

type stubResourceService struct {
	listCalls int
}

func (s *stubResourceService) Create(context.Context, models.CreateResourceRequest) (*models.Resource, error) {
	return nil, errors.New("не используется")
}

func (s *stubResourceService) Update(context.Context, int64, models.UpdateResourceRequest) (*models.Resource, error) {
	return nil, errors.New("не используется")
}

func (s *stubResourceService) Delete(context.Context, int64) error {
	return errors.New("не используется")
}

func (s *stubResourceService) List(_ context.Context, f models.ResourceFilter, _ bool) (*models.ResourcePage, error) {
	s.listCalls++
	return &models.ResourcePage{Items: nil, Total: 0, Page: 1, Limit: 10, Pages: 0}, nil
}

func (s *stubResourceService) GetBySlug(context.Context, string, bool) (*models.Resource, error) {
	return nil, apperrors.NotFound("ресурс")
}

func (s *stubResourceService) SetStatus(context.Context, int64, string) (*models.Resource, error) {
	return nil, errors.New("не используется")
}

func (s *stubResourceService) PreviewHTML(raw string) string { return raw }

func TestFilterFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/api/resources?type=blog&industry=3&search=ai&page=2&limit=20", nil)

	f, err := filterFromQuery(req)
	if err != nil {
		t.Fatalf("корректный запрос не должен падать: %v", err)
	}
	if f.Type != "blog" || f.Search != "ai" || f.Page != 2 || f.Limit != 20 {
		t.Errorf("фильтр разобран неверно: %+v", f)
	}
	if f.IndustryID == nil || *f.IndustryID != 3 {
		t.Errorf("industry разобран неверно: %v", f.IndustryID)
	}
}

func TestFilterFromQuery_MalformedNumbers(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"industry не число", "/api/resources?industry=tech"},
		{"page не число", "/api/resources?page=abc"},
		{"limit не число", "/api/resources?limit=ten"},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, c.url, nil)
		if _, err := filterFromQuery(req); !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("%s: ожидалась ошибка валидации, получено %v", c.name, err)
		}
	}
}

func TestList_MalformedFilterIs400(t *testing.T) {
	svc := &stubResourceService{}
	h := NewResourceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/resources?page=abc", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("статус %d, ожидался 400", rec.Code)
	}
	if svc.listCalls != 0 {
		t.Error("сервис не должен вызываться при мусорном фильтре")
	}

	// Корректный запрос проходит до сервиса.
	req = httptest.NewRequest(http.MethodGet, "/api/resources?page=1", nil)
	rec = httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("статус %d, ожидался 200", rec.Code)
	}
	if svc.listCalls != 1 {
		t.Errorf("сервис вызван %d раз, ожидался 1", svc.listCalls)
	}
}
