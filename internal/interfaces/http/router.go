package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/karibu-groceries/kgl-api/internal/application/auth"
	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/application/usecase"
	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
)

// DefaultLoginRateLimit login attempts allowed per client IP per minute.
const DefaultLoginRateLimit = 20

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProcurementUC *usecase.ProcurementUseCase
	SaleUC        *usecase.SaleUseCase
	ReceiptUC     *usecase.ReceiptUseCase
	UserUC        *usecase.UserUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	// LoginRateLimit per IP per minute; zero means DefaultLoginRateLimit, negative disables it.
	LoginRateLimit int
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)
	managerOnly := RequireRole(entity.RoleManager)

	// Procurements: reads are public, writes are for managers.
	procurements := api.Group("/procurements")
	procurementHandler := NewProcurementHandler(deps.ProcurementUC)
	procurements.Get("/", procurementHandler.List)
	procurements.Get("/:id", procurementHandler.GetByID)
	procurements.Post("/", authn, managerOnly, procurementHandler.Create)
	procurements.Patch("/:id", authn, managerOnly, procurementHandler.Update)
	procurements.Delete("/:id", authn, managerOnly, procurementHandler.Delete)

	// Sales: agents record them; agents and managers correct them.
	sales := api.Group("/sales", authn)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	sales.Post("/", RequireRole(entity.RoleSalesAgent), saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	if deps.ReceiptUC != nil {
		sales.Get("/:id/receipt", saleHandler.Receipt)
	}
	agentOrManager := RequireRole(entity.RoleSalesAgent, entity.RoleManager)
	sales.Patch("/:id", agentOrManager, saleHandler.Update)
	sales.Delete("/:id", agentOrManager, saleHandler.Delete)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	users.Post("/register", userHandler.Register)
	users.Post("/login", loginLimiter(deps.LoginRateLimit), userHandler.Login)
	users.Get("/", authn, userHandler.List)
	users.Get("/:id", authn, userHandler.GetByID)
	users.Patch("/:id", authn, managerOnly, userHandler.Update)
	users.Delete("/:id", authn, managerOnly, userHandler.Delete)
}

func loginLimiter(max int) fiber.Handler {
	if max < 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if max == 0 {
		max = DefaultLoginRateLimit
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "too many login attempts, try again later",
			})
		},
	})
}
