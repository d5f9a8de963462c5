package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request's ray ID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key the ray ID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a ray ID to every request.
// An ID supplied by the caller in the X-Ray-ID header is reused so traces
// can span services; otherwise a fresh UUID is generated. The ID is stored
// in locals for logging and echoed in the response headers.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
