package app

import (
	"github.com/gorilla/mux"

	"emmacms/internal/config"
	"emmacms/internal/db"
	"emmacms/internal/handlers"
	"emmacms/internal/repository"
	"emmacms/internal/routes"
	"emmacms/internal/services"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	resourceRepo := repository.NewResourceRepo(conn)
	taxonomyRepo := repository.NewTaxonomyRepo(conn)
	uploadRepo := repository.NewUploadRepository(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	resourceService := services.NewResourceService(resourceRepo)
	taxonomyService := services.NewTaxonomyService(taxonomyRepo)
	uploadService := services.NewUploadService(uploadRepo, cfg.UploadDir, cfg.MaxUploadMB, cfg.SiteURL)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	searchHandler := handlers.NewSearchHandler(resourceService)
	healthHandler := handlers.NewHealthHandler(conn)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, authService,
		authHandler, resourceHandler, taxonomyHandler,
		uploadHandler, searchHandler, healthHandler)

	return router, nil
}
