package http

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/resumeparser/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Health  *handlers.HealthHandler
	Parse   *handlers.ParseHandler
	Batches *handlers.BatchesHandler
	Web     *handlers.WebHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers) {
	// Browser UI
	if h.Web != nil {
		app.Get("/", h.Web.Index)
		app.Post("/upload", h.Web.Upload)
	}
	app.Get("/batches/:id/"+handlers.CSVFilename, h.Batches.CSV)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/resumes/parse", h.Parse.Parse)

	bg := v1.Group("/batches")
	bg.Get("/", h.Batches.List)
	bg.Get("/:id", h.Batches.Get)
	bg.Get("/:id/csv", h.Batches.CSV)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)
}
