package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hoangnv/visitgate-api/internal/application/auth"
	"github.com/hoangnv/visitgate-api/internal/application/usecase"
	"github.com/hoangnv/visitgate-api/internal/domain/access"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
	infraai "github.com/hoangnv/visitgate-api/internal/infrastructure/ai"
	"github.com/hoangnv/visitgate-api/internal/infrastructure/memory"
	infrapdf "github.com/hoangnv/visitgate-api/internal/infrastructure/pdf"
	"github.com/hoangnv/visitgate-api/internal/infrastructure/postgres"
	httpRouter "github.com/hoangnv/visitgate-api/internal/interfaces/http"
	"github.com/hoangnv/visitgate-api/pkg/config"
	"github.com/hoangnv/visitgate-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// Stores. Without a database the API runs on in-memory stores, which is
	// how the demo and the test suites run.
	var (
		accountRepo  repository.AccountRepository
		visitRepo    repository.VisitRequestRepository
		scheduleRepo repository.ScheduleRepository
	)
	if cfg.DB.DatabaseURL != "" || cfg.DB.Password != "" {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("PostgreSQL connection")
		}
		defer pool.Close()
		accountRepo = postgres.NewAccountRepository(pool)
		visitRepo = postgres.NewVisitRequestRepository(pool)
		scheduleRepo = postgres.NewScheduleRepository(pool)
		log.Info().Msg("using PostgreSQL stores")
	} else {
		accountRepo = memory.NewAccountRepository()
		visitRepo = memory.NewVisitRequestRepository()
		scheduleRepo = memory.NewScheduleRepository()
		log.Warn().Msg("no database configured, using in-memory stores")
	}

	if err := auth.EnsureRoot(accountRepo, auth.RootConfig{
		Username:    cfg.Auth.RootUsername,
		Password:    cfg.Auth.RootPassword,
		DisplayName: cfg.Auth.RootDisplayName,
		Unit:        cfg.Auth.RootUnit,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed root account")
	}

	policy := access.Policy{RootUsername: cfg.Auth.RootUsername}

	authUC := auth.NewAuthUseCase(accountRepo, auth.Config{
		JWTSecret:          cfg.JWT.Secret,
		JWTExpMinutes:      cfg.JWT.Expiration,
		JWTIssuer:          cfg.JWT.Issuer,
		VisitorMinPassword: cfg.Auth.VisitorMinPassword,
		StaffMinPassword:   cfg.Auth.StaffMinPassword,
		RootUsername:       cfg.Auth.RootUsername,
	})
	accountUC := usecase.NewAccountUseCase(accountRepo, policy, cfg.Auth.StaffMinPassword)
	visitUC := usecase.NewVisitUseCase(visitRepo, policy)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo)
	dashboardUC := usecase.NewDashboardUseCase(visitUC)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	adviceUC := usecase.NewAdviceUseCase(
		visitUC, scheduleRepo, geminiSvc,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second, log,
	)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(visitUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs. The middleware
	// panics when the spec file is missing, so deployments that strip the
	// docs directory run without the UI instead of crashing.
	if !registerSwagger(app, "./docs/swagger.json") {
		log.Warn().Msg("docs/swagger.json not found, swagger UI disabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AccountUC:   accountUC,
		VisitUC:     visitUC,
		AdviceUC:    adviceUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		ScheduleUC:  scheduleUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// registerSwagger mounts the swagger UI when the hand-maintained spec file
// exists and reports whether it did.
func registerSwagger(app *fiber.App, filePath string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "VisitGate API",
	}))
	return true
}
