package server

import (
	"errors"
	"log/slog"
	"strings"

	"blogapi/internal/dto"
	"blogapi/internal/middleware"
	"blogapi/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler turns every error returned by a handler into a response:
// REQUIRED_FIELD and VALIDATION_ERROR are 400, NOT_FOUND is 404, fiber errors keep
// their code and the rest is 500. The body lists the error chain, outermost first.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return respondMessages(c, status, errorChain(err)...)
}

func statusFor(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeRequiredField, models.CodeValidation:
			return fiber.StatusBadRequest
		case models.CodeNotFound:
			return fiber.StatusNotFound
		default:
			return fiber.StatusInternalServerError
		}
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// errorChain returns the message each error in the chain adds on its own.
func errorChain(err error) []string {
	var out []string
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			msg = strings.TrimSuffix(msg, next.Error())
			msg = strings.TrimSuffix(msg, ": ")
		}
		if msg != "" {
			out = append(out, msg)
		}
		err = next
	}
	return out
}

func respondMessages(c *fiber.Ctx, status int, messages ...string) error {
	if messages == nil {
		messages = []string{}
	}
	return c.Status(status).JSON(dto.NewResult(messages))
}
