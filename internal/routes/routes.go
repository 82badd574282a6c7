package routes

import (
	"time"

	"github.com/archivomural/murales-backend/internal/config"
	"github.com/archivomural/murales-backend/internal/handlers"
	"github.com/archivomural/murales-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	muralHandler *handlers.MuralHandler,
	salaHandler *handlers.SalaHandler,
	collectionHandler *handlers.CollectionHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	legalHandler *handlers.LegalHandler,
	configHandler *handlers.ViewerConfigHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and viewer config (public)
	api.Get("/health", healthHandler.Check)
	api.Get("/config", configHandler.GetConfig)

	// Legal pages
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/google", authHandler.GoogleSignIn)

	// Protected auth routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Put("/auth/profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Mural catalog — public reads. Static segments go before :id so
	// /murals/random is not swallowed by the param route.
	api.Get("/murals", muralHandler.ListMurals)
	api.Get("/murals/random", muralHandler.RandomMurals)
	api.Get("/murals/:id", muralHandler.GetMural)

	// Catalog mutations (curator only)
	curator := api.Group("/murals", middleware.JWTProtected(cfg), middleware.CuratorRequired(db))
	curator.Post("/", muralHandler.CreateMural)
	curator.Post("/upload", muralHandler.UploadImage)
	curator.Put("/:id", muralHandler.UpdateMural)
	curator.Delete("/:id", muralHandler.DeleteMural)

	// Salas — layout and proximity are public so the viewer can render
	// shared rooms; everything else needs a session.
	api.Get("/salas/:id/layout", salaHandler.GetLayout)
	api.Post("/salas/:id/proximity", salaHandler.PollProximity)
	api.Get("/salas/:id", salaHandler.GetSala)

	salas := api.Group("/salas", middleware.JWTProtected(cfg))
	salas.Get("/", salaHandler.ListSalas)
	salas.Post("/", salaHandler.CreateSala)
	salas.Put("/:id", salaHandler.UpdateSala)
	salas.Delete("/:id", salaHandler.DeleteSala)
	salas.Post("/:id/murals", salaHandler.AttachMurals)
	salas.Put("/:id/murals", salaHandler.ReplaceMurals)
	salas.Delete("/:id/murals", salaHandler.DetachMurals)
	salas.Post("/:id/collaborators", salaHandler.AddCollaborator)
	salas.Delete("/:id/collaborators/:user_id", salaHandler.RemoveCollaborator)

	// Personal collection
	api.Get("/collection", middleware.JWTProtected(cfg), collectionHandler.GetCollection)
	api.Put("/collection", middleware.JWTProtected(cfg), collectionHandler.ReplaceCollection)

	// Reports
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.CreateReport)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/reports", reportHandler.ListReports)
	admin.Put("/reports/:id", reportHandler.ActionReport)
	admin.Put("/config/:key", configHandler.SetConfigKey)
	admin.Delete("/config/:key", configHandler.DeleteConfigKey)
}
