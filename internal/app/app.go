package app

import (
	"fmt"

	"placement_backend/internal/auth"
	"placement_backend/internal/config"
	"placement_backend/internal/email"
	"placement_backend/internal/handlers"
	"placement_backend/internal/logger"
	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/routes"
	"placement_backend/internal/services"
	"placement_backend/internal/storage"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the application: config, logging, database, storage, services,
// router. It blocks serving HTTP until the process exits.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.AcademicDetails{},
		&models.PersonalDetails{},
		&models.Job{},
		&models.Application{},
	); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	store, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		logger.Fatal("failed to initialize upload storage", "error", err)
	}
	for _, dir := range services.PurposeSubdirs() {
		if err := store.EnsureDir(dir); err != nil {
			logger.Fatal("failed to create upload directory", "dir", dir, "error", err)
		}
	}

	userRepo := repositories.NewUserRepository(db)
	detailsRepo := repositories.NewDetailsRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	seedFirstAdmin(cfg, userRepo)

	uploadService := services.NewUploadService(store)
	svcs := &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo),
		JobService:         services.NewJobService(jobRepo, uploadService),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, uploadService, newEmailProvider(cfg)),
		DetailsService:     services.NewDetailsService(detailsRepo, userRepo, uploadService),
		UploadService:      uploadService,
	}

	router := setupRouter(cfg, db, userRepo)
	routes.RegisterRoutes(router, handlers.NewAppHandlers(svcs))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

func setupRouter(cfg *config.Config, db *gorm.DB, userRepo repositories.UserRepository) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	// Sessions persist in the database so a restart keeps everyone logged in.
	sessionStore := gormsessions.NewStore(db, true, []byte(cfg.Session.Secret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
	})
	router.Use(sessions.Sessions(cfg.Session.CookieName, sessionStore))
	router.Use(middleware.SessionPrincipal(userRepo))

	return router
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		return &email.NoopProvider{}
	}
	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	})
}

// seedFirstAdmin creates the bootstrap admin account from the environment.
// Idempotent: an existing username leaves the account untouched.
func seedFirstAdmin(cfg *config.Config, userRepo repositories.UserRepository) {
	if cfg.FirstAdminUsername == "" || cfg.FirstAdminPassword == "" {
		return
	}

	if _, err := userRepo.FindByUsername(cfg.FirstAdminUsername); err == nil {
		return
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		logger.Fatal("failed to hash first admin password", "error", err)
	}

	admin := &models.User{
		Username:     cfg.FirstAdminUsername,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		FullName:     "Administrator",
	}
	if err := userRepo.Create(admin); err != nil {
		logger.Fatal("failed to create first admin", "error", err)
	}
	logger.Info("first admin account created", "username", admin.Username)
}
