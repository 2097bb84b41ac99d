package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/config"
	"github.com/pathlight-ai/pathlight-engine/pkg/database"
	"github.com/pathlight-ai/pathlight-engine/pkg/handlers"
	"github.com/pathlight-ai/pathlight-engine/pkg/llm"
	"github.com/pathlight-ai/pathlight-engine/pkg/logging"
	"github.com/pathlight-ai/pathlight-engine/pkg/middleware"
	"github.com/pathlight-ai/pathlight-engine/pkg/repositories"
	"github.com/pathlight-ai/pathlight-engine/pkg/search"
	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("database", cfg.Database.Database),
		zap.String("llm_base_url", cfg.LLM.BaseURL),
		zap.Bool("llm_configured", cfg.LLM.APIKey != ""))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Migrations run over a dedicated database/sql connection; RunMigrations
	// closes it.
	if err := database.RunMigrations(stdlib.OpenDBFromPool(db.Pool), cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	generator, err := llm.NewService(cfg.LLM, logger)
	if err != nil {
		logger.Fatal("Failed to build text-generation service", zap.Error(err))
	}

	profileRepo := repositories.NewProfileRepository(db)
	planRepo := repositories.NewPlanRepository(db)

	mapper := services.NewTemplateKnowledgeMapper()
	profileService := services.NewProfileService(profileRepo, generator, logger)
	planService := services.NewPlanService(planRepo, cfg.Lesson, logger)
	lessonService := services.NewLessonService(planService, generator, cfg.Lesson, logger)
	reviewService := services.NewReviewService(planService, services.NewLastUnitReviewPlanner())
	feedbackAnalyzer := services.NewTemplateFeedbackAnalyzer()
	locator := search.NewLocator(logger, search.DefaultSources()...)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewProfileHandler(profileService, logger).RegisterRoutes(mux)
	handlers.NewSearchHandler(locator, logger).RegisterRoutes(mux)
	handlers.NewKnowledgeHandler(mapper, logger).RegisterRoutes(mux)
	handlers.NewPlanHandler(mapper, planService, logger).RegisterRoutes(mux)
	handlers.NewLessonHandler(lessonService, logger).RegisterRoutes(mux)
	handlers.NewReviewHandler(reviewService, logger).RegisterRoutes(mux)
	handlers.NewFeedbackHandler(feedbackAnalyzer, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting pathlight-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
