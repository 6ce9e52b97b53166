package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MarloFC/ArchProj/internal/handler"
	"github.com/MarloFC/ArchProj/internal/middleware"
	"github.com/MarloFC/ArchProj/internal/model"
	"github.com/MarloFC/ArchProj/internal/web"
	"github.com/MarloFC/ArchProj/pkg/config"
	"github.com/MarloFC/ArchProj/pkg/database"
	"github.com/MarloFC/ArchProj/pkg/gemini"
	"github.com/MarloFC/ArchProj/pkg/jwtutil"
	"github.com/MarloFC/ArchProj/pkg/logger"
	"github.com/MarloFC/ArchProj/pkg/mailer"
	"github.com/MarloFC/ArchProj/pkg/pagecache"
	"github.com/MarloFC/ArchProj/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()
	log.Info("Starting site server...", cfg.LogConfig()...)

	// Initialize database
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(model.AllModels()...); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connection established")

	// Seed the initial admin account when none exists yet
	if err := seedAdmin(cfg, log); err != nil {
		log.Fatal("Failed to seed admin account", zap.Error(err))
	}

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)

	// Wire side channels: mail relay, copy suggestions, rendered-page cache
	cache := pagecache.New(cfg.Cache.TTL)
	handler.Init(mailer.New(&cfg.SMTP), gemini.New(&cfg.Gemini), cache)

	pages, err := web.New(cache)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.Middleware())

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	// Public pages
	pages.Register(e)

	// Public API
	api := e.Group("/api")
	api.POST("/auth/login", handler.Login)
	api.GET("/config", handler.GetConfig)
	api.GET("/services", handler.ListServices)
	api.GET("/projects", handler.ListProjects)
	api.GET("/team", handler.ListTeamMembers)
	api.POST("/leads", handler.CreateLead)

	// Admin API - every mutating content route sits behind the same gate
	admin := api.Group("", middleware.AdminRequired)
	admin.POST("/config", handler.SaveConfig)
	admin.POST("/services", handler.CreateService)
	admin.PUT("/services/:id", handler.UpdateService)
	admin.DELETE("/services/:id", handler.DeleteService)
	admin.POST("/projects", handler.CreateProject)
	admin.PUT("/projects/:id", handler.UpdateProject)
	admin.DELETE("/projects/:id", handler.DeleteProject)
	admin.POST("/team", handler.CreateTeamMember)
	admin.PUT("/team/:id", handler.UpdateTeamMember)
	admin.DELETE("/team/:id", handler.DeleteTeamMember)
	admin.POST("/generate-content", handler.GenerateContent)

	// Start server
	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

// seedAdmin creates the first administrator from the environment when the
// table is empty. Existing accounts are never touched.
func seedAdmin(cfg *config.Config, log *zap.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	db := database.GetDB()

	var count int64
	if err := db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.AdminUser{Email: cfg.Admin.Email, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("Seeded admin account", zap.String("email", cfg.Admin.Email))
	return nil
}
