package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hoangnv/visitgate-api/internal/application/auth"
	"github.com/hoangnv/visitgate-api/internal/application/usecase"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AccountUC   *usecase.AccountUseCase
	VisitUC     *usecase.VisitUseCase
	AdviceUC    *usecase.AdviceUseCase
	ReportUC    *usecase.ReportUseCase
	DashboardUC *usecase.DashboardUseCase
	ScheduleUC  *usecase.ScheduleUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	accountHandler := NewAccountHandler(deps.AccountUC)
	visitHandler := NewVisitHandler(deps.VisitUC, deps.AdviceUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	unitHandler := NewUnitHandler()

	// Auth (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Unit directory (public: feeds the registration form)
	api.Get("/units", unitHandler.Tree)
	api.Get("/units/sub", unitHandler.SubUnits)

	// Visit submission, tracking, arrival and the gate pass are public:
	// visitors and the gate hold a code, not a token.
	api.Post("/visits", visitHandler.Submit)
	api.Get("/visits/track", visitHandler.Track)
	api.Post("/visits/:id/arrival", visitHandler.ConfirmArrival)
	api.Get("/visits/:id/pass", reportHandler.GetPass)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/profile", authHandler.UpdateProfile)

	// Review surface (officers and admins)
	staff := protected.Group("/", RequireRole(entity.RoleOfficer, entity.RoleAdmin))
	staff.Get("/visits", visitHandler.List)
	staff.Post("/visits/:id/approve", visitHandler.Approve)
	staff.Post("/visits/:id/reject", visitHandler.Reject)
	staff.Post("/visits/:id/repropose", visitHandler.Repropose)
	staff.Get("/visits/:id/advice", visitHandler.Advice)
	staff.Get("/reports/visits", reportHandler.Get)
	staff.Get("/reports/visits/pdf", reportHandler.GetPDF)
	staff.Get("/dashboard/stats", dashboardHandler.Stats)
	staff.Get("/schedules", scheduleHandler.List)

	// Management surface (admins; account mutation is root-only in the use case)
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))
	admin.Post("/schedules", scheduleHandler.Create)
	admin.Get("/accounts", accountHandler.List)
	admin.Post("/accounts", accountHandler.Create)
	admin.Delete("/accounts/:username", accountHandler.Delete)
}
