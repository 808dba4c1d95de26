package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"signupapi/internal/service"
	"signupapi/internal/storage"
	"signupapi/internal/worker"
)

// Deps bundles everything the route table needs.
type Deps struct {
	DB         *sql.DB
	Store      storage.Storage
	Signups    service.SignupService
	Dispatcher *worker.Dispatcher
	// ScheduledTasks maps X-Aws-Sqsd-Taskname values to worker message types.
	ScheduledTasks map[string]string
	// DefaultScheduledTask is dispatched when the timer sends no task name.
	DefaultScheduledTask string
	// Metrics is the gatherer exposed at /metrics.
	Metrics prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, d Deps) {
	// Landing page with the signup form
	app.Get("/", Index())

	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint with per-dependency sub-checks
	app.Get("/health", HealthCheck(d.DB, d.Store))

	// Backward-compatible simple liveness probe
	app.Get("/healthz", LivenessProbe())

	// Signup API
	app.Post("/signups", CreateSignup(d.Signups))
	app.Get("/signups", ListSignups(d.Signups))
	app.Get("/signups/:id", GetSignup(d.Signups))

	// Worker tier endpoints
	app.Post("/worker", WorkerEndpoint(d.Dispatcher))
	app.Post("/scheduled", ScheduledTask(d.Dispatcher, d.ScheduledTasks, d.DefaultScheduledTask))

	// Prometheus scrape endpoint
	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}
}
