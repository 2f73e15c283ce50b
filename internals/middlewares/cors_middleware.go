// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS. origins: daftar dipisah koma.
func CorsMiddleware(origins string) fiber.Handler {
	parts := strings.Split(origins, ",")
	clean := make([]string, 0, len(parts))
	for _, o := range parts {
		if o = strings.TrimSpace(o); o != "" {
			clean = append(clean, o)
		}
	}
	allowCredentials := true
	if len(clean) == 0 || (len(clean) == 1 && clean[0] == "*") {
		clean = []string{"*"}
		allowCredentials = false // fiber menolak wildcard + credentials
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(clean, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: allowCredentials,
	})
}
