package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"signupapi/internal/model"
	"signupapi/internal/storage"
)

// HealthCheck reports overall service health with one boolean per dependency.
// Returns 200 when every check passes, 503 otherwise; the report body is sent
// either way so the load balancer log shows which dependency failed.
func HealthCheck(db *sql.DB, store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		report := model.HealthReport{
			Checks: map[string]bool{
				"database": db.PingContext(ctx) == nil,
				"storage":  store.Ping(ctx) == nil,
			},
		}

		if report.Healthy() {
			report.Status = model.StatusHealthy
			return c.Status(fiber.StatusOK).JSON(report)
		}
		report.Status = model.StatusUnhealthy
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
}

// LivenessProbe is a bare liveness endpoint with no dependency checks.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
