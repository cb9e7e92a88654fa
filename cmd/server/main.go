package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/config"
	"github.com/newstalgia/backend/internal/handler"
	"github.com/newstalgia/backend/internal/model"
	"github.com/newstalgia/backend/internal/router"
	"github.com/newstalgia/backend/internal/service"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	// Database
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Post{},
		&model.Studio{},
		&model.ShopProduct{},
		&model.Order{},
		&model.Subscriber{},
	); err != nil {
		logrus.Fatalf("auto migrate: %v", err)
	}

	// Redis
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logrus.WithError(err).Warn("redis unreachable, running without list cache")
			rdb = nil
		}
	}

	// Services
	listCache := service.NewListCache(rdb)
	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	projectService := service.NewProjectService(db, listCache)
	postService := service.NewPostService(db)
	studioService := service.NewStudioService(db)
	shopService := service.NewShopService(db)
	newsletterService := service.NewNewsletterService(db)
	uploadService, err := service.NewUploadService(cfg.Upload.Dir, cfg.Upload.BaseURL, cfg.Upload.MaxSizeMB)
	if err != nil {
		logrus.Fatalf("init upload store: %v", err)
	}

	// Bootstrap admin account on an empty database
	if err := authService.EnsureAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logrus.Fatalf("ensure admin: %v", err)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Server.CookieDomain, cfg.Server.CookieSecure)
	projectHandler := handler.NewProjectHandler(projectService)
	postHandler := handler.NewPostHandler(postService)
	studioHandler := handler.NewStudioHandler(studioService)
	shopHandler := handler.NewShopHandler(shopService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Setup routes
	router.Setup(r, router.Deps{
		DB:                db,
		JWTSecret:         cfg.JWT.Secret,
		UploadsDir:        uploadService.Dir(),
		AuthHandler:       authHandler,
		ProjectHandler:    projectHandler,
		PostHandler:       postHandler,
		StudioHandler:     studioHandler,
		ShopHandler:       shopHandler,
		NewsletterHandler: newsletterHandler,
		UploadHandler:     uploadHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.Infof("server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server run: %v", err)
	}
}
