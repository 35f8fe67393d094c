package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"emmacms/internal/config"
	"emmacms/internal/handlers"
	"emmacms/internal/middleware"
	"emmacms/internal/models"
	"emmacms/internal/services"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	resourceHandler *handlers.ResourceHandler,
	taxonomyHandler *handlers.TaxonomyHandler,
	uploadHandler *handlers.UploadHandler,
	searchHandler *handlers.SearchHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	router.HandleFunc("/healthz", healthHandler.Healthz).Methods("GET")

	// Загруженные файлы отдаются статикой по ссылке из uploads.url
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))),
	)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/resources", resourceHandler.List).Methods("GET")
	api.HandleFunc("/resources/{slug}", resourceHandler.GetBySlug).Methods("GET")

	api.HandleFunc("/industries", taxonomyHandler.ListIndustries).Methods("GET")
	api.HandleFunc("/tags", taxonomyHandler.ListTags).Methods("GET")

	api.HandleFunc("/search", searchHandler.GlobalSearch).Methods("GET")

	// --- Защищённые JWT (операторы CMS) ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.JWTAuth(cfg.JWTSecret, authService))
	admin.Use(middleware.AdminFastLane)
	admin.Use(middleware.AnyRole(models.RoleAdmin, models.RoleEditor))

	admin.HandleFunc("/me", authHandler.Me).Methods("GET")

	admin.HandleFunc("/resources", resourceHandler.AdminList).Methods("GET")
	admin.HandleFunc("/resources", resourceHandler.Create).Methods("POST")
	admin.HandleFunc("/resources/preview", resourceHandler.Preview).Methods("POST")
	admin.HandleFunc("/resources/{id:[0-9]+}", resourceHandler.Update).Methods("PUT")
	admin.HandleFunc("/resources/{id:[0-9]+}/status", resourceHandler.SetStatus).Methods(http.MethodPatch, http.MethodOptions)

	admin.HandleFunc("/industries", taxonomyHandler.CreateIndustry).Methods("POST")
	admin.HandleFunc("/tags", taxonomyHandler.CreateTag).Methods("POST")

	admin.HandleFunc("/uploads", uploadHandler.Upload).Methods("POST")
	admin.HandleFunc("/uploads", uploadHandler.List).Methods("GET")

	// Удаление — только админ
	adminOnly := admin.PathPrefix("").Subrouter()
	adminOnly.Use(middleware.OnlyRole(models.RoleAdmin))
	adminOnly.HandleFunc("/resources/{id:[0-9]+}", resourceHandler.Delete).Methods("DELETE")
	adminOnly.HandleFunc("/uploads/{id:[0-9]+}", uploadHandler.Delete).Methods("DELETE")
}
