package middleware

import "github.com/gofiber/fiber/v2"

// AdminRequired restricts a route to users whose token carries the admin
// role. It must run after AuthRequired, which attaches the role to the
// request context.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}
