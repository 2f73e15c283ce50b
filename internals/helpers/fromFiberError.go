package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Generic message for anything the boundary must not leak.
const MsgInternal = "Se produjo un error interno"

// FromDomainError mengubah DomainError hasil repository menjadi *fiber.Error.
// Storage errors are logged here and reported without detail.
func FromDomainError(err error) error {
	if err == nil {
		return nil
	}
	return toFiberError(err)
}

func toFiberError(err error) *fiber.Error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	var de *DomainError
	if errors.As(err, &de) {
		switch de.Kind {
		case KindNotFound:
			return fiber.NewError(fiber.StatusNotFound, de.Message)
		case KindConflict:
			return fiber.NewError(fiber.StatusConflict, de.Message)
		case KindValidation:
			return fiber.NewError(fiber.StatusUnprocessableEntity, de.Message)
		}
	}
	log.Printf("[ERROR] %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, MsgInternal)
}

// ErrorHandler dipasang di fiber.Config; semua error controller lewat sini
// supaya bentuk response konsisten via JsonError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	fe := toFiberError(err)
	return JsonError(c, fe.Code, fe.Message)
}
