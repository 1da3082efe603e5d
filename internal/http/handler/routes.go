package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"legalsite/internal/service"
)

// RegisterRoutes attaches the API surface to the provided Fiber app.
// Handlers stay thin: parsing and status mapping here, rules in services.
func RegisterRoutes(app *fiber.App, db *sql.DB, blogSvc service.BlogService, subSvc service.SubmissionService) {
	api := app.Group("/api")

	api.Get("/", Root())
	api.Get("/blog", ListArticles(blogSvc))
	api.Get("/blog/:id", GetArticle(blogSvc))
	api.Post("/contact", CreateContactMessage(subSvc))
	api.Post("/appointments", CreateAppointment(subSvc))

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
}

// Root returns the API banner message.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Legal Professional Website API"})
	}
}
