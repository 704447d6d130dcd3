package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/artem13815/folio/api/http/handlers"
)

// Handlers: всё, что нужно Register. Admin равен nil, когда сервер
// работает без базы; маршруты админки тогда не монтируются.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Generate *handlers.GenerateHandler
	Resume   *handlers.ResumeHandler
	Admin    *handlers.AdminHandler

	// AuthMW и AdminMW ставятся перед /api/admin.
	AuthMW  fiber.Handler
	AdminMW fiber.Handler
}

// Register вешает все HTTP-маршруты на приложение Fiber.
func Register(app *fiber.App, h Handlers, log *zap.Logger) {
	app.Use(recover.New())
	app.Use(RequestLogger(log))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Пробы liveness и readiness для мониторинга
	api.Get("/health", h.Health.Health)
	api.Get("/ready", h.Health.Ready)

	rg := api.Group("/resume")
	rg.Post("/generate", h.Generate.Generate)
	rg.Get("/generate", h.Generate.Describe)
	rg.Post("/analyze", h.Resume.Analyze)

	if h.Auth != nil {
		a := api.Group("/auth")
		a.Post("/register", h.Auth.Register)
		a.Post("/login", h.Auth.Login)
	}

	if h.Admin == nil {
		return
	}
	adm := api.Group("/admin", h.AuthMW, h.AdminMW)
	adm.Get("/personal-info", h.Admin.GetPersonalInfo)
	adm.Put("/personal-info", h.Admin.PutPersonalInfo)
	adm.Get("/experience", h.Admin.ListExperience)
	adm.Post("/experience", h.Admin.CreateExperience)
	adm.Delete("/experience/:id", h.Admin.DeleteExperience)
	adm.Get("/education", h.Admin.ListEducation)
	adm.Post("/education", h.Admin.CreateEducation)
	adm.Delete("/education/:id", h.Admin.DeleteEducation)
	adm.Get("/skills", h.Admin.ListSkills)
	adm.Post("/skills", h.Admin.CreateSkill)
	adm.Delete("/skills/:id", h.Admin.DeleteSkill)
}
