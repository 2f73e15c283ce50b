package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestFromDomainError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", NotFound("taller %s no encontrado", "X1"), fiber.StatusNotFound, "taller X1 no encontrado"},
		{"conflict", Conflict("código duplicado"), fiber.StatusConflict, "código duplicado"},
		{"validation", Validation("horas inválidas"), fiber.StatusUnprocessableEntity, "horas inválidas"},
		{"storage hides detail", Storage("listar", errors.New("password=secret")), fiber.StatusInternalServerError, MsgInternal},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError, MsgInternal},
		{"fiber error passes", fiber.NewError(fiber.StatusBadRequest, "id inválido"), fiber.StatusBadRequest, "id inválido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var fe *fiber.Error
			if !errors.As(FromDomainError(tc.err), &fe) {
				t.Fatalf("expected *fiber.Error")
			}
			if fe.Code != tc.code || fe.Message != tc.msg {
				t.Fatalf("got %d %q, want %d %q", fe.Code, fe.Message, tc.code, tc.msg)
			}
		})
	}
	if FromDomainError(nil) != nil {
		t.Fatal("nil must stay nil")
	}
}

func TestErrorHandlerRendersShape(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return NotFound("familia ABC no encontrada")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v (%s)", err, raw)
	}
	if body.Success || body.ErrorCode != "NOT_FOUND" || body.Message != "familia ABC no encontrada" {
		t.Fatalf("unexpected body %+v", body)
	}
}
