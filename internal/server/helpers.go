package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	msgInvalidID = "Id should be a valid UUID."
	msgZeroID    = "Id should not be all zeros."
	msgIDMatch   = "Id in the route and in the body should match."
)

// parseID extracts a route parameter as a non-zero UUID.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return parseUUIDValue(c, c.Params(param))
}

func parseUUIDValue(c *fiber.Ctx, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		_ = respondMessages(c, fiber.StatusBadRequest, msgInvalidID)
		return uuid.Nil, errResponseWritten
	}
	if id == uuid.Nil {
		_ = respondMessages(c, fiber.StatusBadRequest, msgZeroID)
		return uuid.Nil, errResponseWritten
	}
	return id, nil
}

// bindBody decodes and validates the JSON body into dst.
// On failure it writes a 400 listing every problem and returns errResponseWritten.
func (s *Server) bindBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		_ = respondMessages(c, fiber.StatusBadRequest, "The request body is not valid JSON: "+err.Error())
		return errResponseWritten
	}
	return s.validateBody(c, dst)
}

func (s *Server) validateBody(c *fiber.Ctx, dst any) error {
	if problems := s.validationMessages(dst); len(problems) > 0 {
		_ = respondMessages(c, fiber.StatusBadRequest, problems...)
		return errResponseWritten
	}
	return nil
}
