package handler

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed index.html
var indexHTML string

// Index serves the embedded signup landing page.
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Type("html").SendString(indexHTML)
	}
}
