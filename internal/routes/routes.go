package routes

import (
	"time"

	"github.com/3k2024/bodega-simple/internal/config"
	"github.com/3k2024/bodega-simple/internal/handlers"
	"github.com/3k2024/bodega-simple/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	guideHandler *handlers.GuideHandler,
	importHandler *handlers.ImportHandler,
	exportHandler *handlers.ExportHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", healthHandler.Check)

	// Login gets a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)

	// Protected (JWT required)
	jwt := middleware.JWTProtected(cfg)
	api.Post("/guias", jwt, guideHandler.Create)
	api.Get("/guias", jwt, guideHandler.List)
	api.Get("/guias/:id", jwt, guideHandler.Get)
	api.Post("/guias/:id/items", jwt, guideHandler.AddItem)
	api.Delete("/guias/:id", jwt, guideHandler.Delete)
	api.Get("/search", jwt, guideHandler.Search)

	api.Post("/import", jwt, importHandler.ImportFile)
	api.Post("/manual-import", jwt, importHandler.ImportRows)

	api.Get("/export/excel", jwt, exportHandler.Excel)
	api.Get("/export/pdf", jwt, exportHandler.PDF)

	api.Get("/stats", jwt, statsHandler.BySpecialty)
	api.Get("/especialidades", jwt, statsHandler.Specialties)

	// Admin (JWT + admin role)
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db))
	admin.Post("/users", authHandler.CreateUser)
	admin.Get("/imports", importHandler.ListLogs)
	admin.Post("/reset", guideHandler.Reset)
}
