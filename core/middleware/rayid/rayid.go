// Package rayid assigns a unique request ID to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's RayID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New creates the RayID middleware. An inbound X-Ray-ID header is honored so
// upstream proxies can propagate their own trace IDs; otherwise a fresh UUID
// is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rayID := c.Get(HeaderName)
		if rayID == "" {
			rayID = uuid.NewString()
		}

		c.Locals(LocalsKey, rayID)
		c.Set(HeaderName, rayID)

		return c.Next()
	}
}
