package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Pocten/budget-planner-backend-sub000/internal/api"
	"github.com/Pocten/budget-planner-backend-sub000/internal/config"
	"github.com/Pocten/budget-planner-backend-sub000/internal/db"
	"github.com/Pocten/budget-planner-backend-sub000/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)

	accessService := services.NewAccessService(repos.Access, repos.Users, repos.Dashboards)
	authService := services.NewAuthService(repos.Users)
	dashboardService := services.NewDashboardService(repos.Dashboards, accessService)
	inviteService := services.NewInviteService(repos.InviteLinks, accessService, cfg.InviteLinkLifetime, cfg.InviteRefreshInterval)
	categoryService := services.NewCategoryService(repos.Categories, accessService)
	recordService := services.NewRecordService(repos.Records, repos.Categories, repos.Tags, accessService)
	budgetService := services.NewBudgetService(repos.Budgets, accessService)
	goalService := services.NewGoalService(repos.Goals, accessService)
	tagService := services.NewTagService(repos.Tags, accessService)
	priorityService := services.NewPriorityService(repos.Priorities, repos.Categories, repos.Records, accessService)

	handler := api.NewHandler(api.HandlerConfig{
		Auth:         authService,
		Dashboards:   dashboardService,
		Access:       accessService,
		Invites:      inviteService,
		Categories:   categoryService,
		Records:      recordService,
		Budgets:      budgetService,
		Goals:        goalService,
		Tags:         tagService,
		Priorities:   priorityService,
		SecretKey:    []byte(cfg.SecretKey),
		AuthTokenTTL: cfg.AuthTokenTTL,
	})

	app := fiber.New(fiber.Config{
		AppName:               "budget-planner",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	inviteService.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("budget-planner listening on http://0.0.0.0:%s (db: %s)", cfg.Port, cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
