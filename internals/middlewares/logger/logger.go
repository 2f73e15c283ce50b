package logger

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware: access log ke stdout.
func LoggerMiddleware() fiber.Handler {
	return New(os.Stdout)
}

// New: satu baris per request, id dari RequestContext. Status ditulis
// setelah ErrorHandler jalan, jadi error 4xx/5xx tercatat apa adanya.
func New(out io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Output:     out,
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Madrid",
		Format:     "[${time}] id=${locals:reqid} ${ip} ${method} ${path} status=${status} ${latency}${error}\n",
	})
}
