package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	"github.com/jhoicas/onboarding-api/pkg/jwt"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	Generator   ContractGenerator
	Cleaner     ContractCleaner
	Query       ContractQuery
	Template    TemplateService
	JWTSecret   string
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	api := app.Group("/api")

	// Rutas protegidas (Bearer Token del dashboard + rol de staff)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin, jwt.RoleSales))

	// Contratos por cliente
	customers := protected.Group("/customers")
	contractHandler := NewContractHandler(deps.Generator, deps.Cleaner, deps.Query, deps.Logger)
	customers.Post("/:id/contract", contractHandler.Generate)
	customers.Post("/:id/contract/cleanup", contractHandler.Cleanup)
	customers.Get("/:id/contracts", contractHandler.List)
	customers.Get("/:id/contract/download", contractHandler.Download)

	// Plantilla (reemplazo solo admin)
	tpl := protected.Group("/contract-template")
	templateHandler := NewTemplateHandler(deps.Template, deps.Logger)
	tpl.Get("/", templateHandler.Info)
	tpl.Get("/content", templateHandler.Content)
	tpl.Put("/", RequireRole(jwt.RoleAdmin), templateHandler.Replace)
}
