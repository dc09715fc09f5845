package server

import (
	"errors"
	"fmt"
	"testing"

	"blogapi/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required field", models.NewRequiredFieldError("Id is required"), fiber.StatusBadRequest},
		{"validation", models.NewValidationError("bad"), fiber.StatusBadRequest},
		{"not found", models.NewNotFoundError("Post not found"), fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("service: %w", models.NewNotFoundError("gone")), fiber.StatusNotFound},
		{"internal", models.NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"fiber error", fiber.ErrUnprocessableEntity, fiber.StatusUnprocessableEntity},
		{"plain", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestErrorChain(t *testing.T) {
	root := errors.New("connection refused")
	err := fmt.Errorf("create comments: %w", root)

	assert.Equal(t, []string{"create comments", "connection refused"}, errorChain(err))
	assert.Equal(t, []string{"Post not found"}, errorChain(models.NewNotFoundError("Post not found")))
	assert.Equal(t, []string{"Internal server error", "boom"}, errorChain(models.NewInternalError(errors.New("boom"))))
	assert.Nil(t, errorChain(nil))

	// Only the separator is trimmed from a wrapper's own message.
	keyed := fmt.Errorf("read %s: %w", "posts:", root)
	assert.Equal(t, []string{"read posts:", "connection refused"}, errorChain(keyed))
}
