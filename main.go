// File: yachtmatch/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yachtmatch/catalog"
	"yachtmatch/config"
	"yachtmatch/cron"
	"yachtmatch/database"
	catalogRepo "yachtmatch/database/repository/catalog"
	"yachtmatch/handlers"
	"yachtmatch/middleware"
	"yachtmatch/routes"
	"yachtmatch/services/charter"
	ai "yachtmatch/services/intelligence"
	"yachtmatch/services/session"
	"yachtmatch/services/supervisor"
	"yachtmatch/services/tasks"
	"yachtmatch/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Build the immutable catalog once; the process cannot serve without it.
	cat, err := buildCatalog()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load catalogs: %v", err)
	}
	logger.Sugar().Infof("Loaded catalog: %d yachts, %d themes", len(cat.Yachts()), len(cat.Themes()))

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	engine := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)

	sessionStore := session.NewRedisStore(
		utils.GetSessionCacheClient(),
		config.AppConfig.AppName,
		config.AppConfig.CompanyName,
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)

	pipeline := &charter.DefaultPipelineService{
		Engine:      engine,
		Catalog:     cat,
		CompanyName: config.AppConfig.CompanyName,
		Logger:      logger,
	}

	followupClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFollowupQueueDB,
	})
	defer followupClient.Close()

	gate := &supervisor.DefaultGateService{
		Engine:        engine,
		Sessions:      sessionStore,
		Pipeline:      pipeline,
		Followups:     &tasks.AsynqFollowupScheduler{Client: followupClient},
		FollowupDelay: time.Duration(config.AppConfig.FollowupDelayMin) * time.Minute,
		CompanyName:   config.AppConfig.CompanyName,
		Logger:        logger,
	}

	cron.InitFollowupWorker(sessionStore)

	chatHandler := handlers.NewChatHandler(gate, logger)

	// Register routes.
	routes.RegisterRoutes(router, chatHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildCatalog loads the yacht fleet and theme templates from the configured
// source: the JSON seed files by default, or the seeded Mongo collections.
func buildCatalog() (*catalog.Catalog, error) {
	if config.AppConfig.CatalogSource == "mongo" {
		database.InitDB()
		repo := catalogRepo.NewMongoCatalogRepo()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		yachts, err := repo.FetchYachts(ctx)
		if err != nil {
			return nil, err
		}
		if len(yachts) == 0 {
			return nil, &catalog.CatalogError{Code: "catalogEmpty", Path: "yacht_catalog", Message: "catalog collection holds zero records"}
		}
		themes, err := repo.FetchThemes(ctx)
		if err != nil {
			return nil, err
		}
		if len(themes) == 0 {
			return nil, &catalog.CatalogError{Code: "catalogEmpty", Path: "theme_templates", Message: "catalog collection holds zero records"}
		}
		return catalog.New(yachts, themes), nil
	}

	yachts, err := catalog.LoadYachts(config.AppConfig.YachtSeedPath)
	if err != nil {
		return nil, err
	}
	themes, err := catalog.LoadThemes(config.AppConfig.ThemeSeedPath)
	if err != nil {
		return nil, err
	}
	return catalog.New(yachts, themes), nil
}
