package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StatusCoder is implemented by errors that carry their own HTTP status.
type StatusCoder interface {
	error
	StatusCode() int
}

// ErrorHandlerMiddleware renders any error returned down the chain as an
// ErrorResponse envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err)
	}
}

func WriteError(ctx *fiber.Ctx, err error) error {
	code, msg := fiber.StatusInternalServerError, "Internal server error"

	var fe *fiber.Error
	var sc StatusCoder
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &fe):
		code, msg = fe.Code, fe.Message
	case errors.As(err, &sc):
		code, msg = sc.StatusCode(), sc.Error()
	case errors.As(err, &ve):
		code, msg = fiber.StatusBadRequest, ValidationMessage(ve)
	}

	return ctx.Status(code).JSON(ErrorResponse(code, msg))
}
