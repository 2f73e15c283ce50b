package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fct_backend/internals/configs"
	helper "fct_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

func TestRequestContextSetsIDAndDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(2 * time.Second))
	var hasDeadline bool
	app.Get("/", func(c *fiber.Ctx) error {
		_, hasDeadline = c.UserContext().Deadline()
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Header.Get(HeaderRequestID) == "" {
		t.Fatal("missing generated request id")
	}
	if !hasDeadline {
		t.Fatal("user context must carry a deadline")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Header.Get(HeaderRequestID); got != "abc-123" {
		t.Fatalf("request id = %q, want the incoming one", got)
	}
}

func TestRequestContextNoTimeout(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(0))
	var ctx context.Context
	app.Get("/", func(c *fiber.Ctx) error {
		ctx = c.UserContext()
		return nil
	})
	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil)); err != nil {
		t.Fatal(err)
	}
	if _, ok := ctx.Deadline(); ok {
		t.Fatal("zero timeout must not add a deadline")
	}
}

func TestGlobalRateLimiter(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(GlobalRateLimiter(2))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	var last int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		if err != nil {
			t.Fatal(err)
		}
		last = resp.StatusCode
	}
	if last != fiber.StatusTooManyRequests {
		t.Fatalf("third request status = %d", last)
	}
}

func TestSetupMiddlewaresRecoversPanic(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupMiddlewares(app, configs.Config{CORSAllowOrigins: "*", RateLimitMax: 50, RequestTimeout: time.Second})
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
