package server

import (
	"log/slog"
	"time"

	"blogapi/internal/dto"
	"blogapi/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// publishEvent sends a domain event after a successful write. Failures are
// logged and never change the response.
func (s *Server) publishEvent(c *fiber.Ctx, eventType string, payload map[string]any) {
	if s.notifier == nil {
		return
	}
	payload["published_at"] = time.Now().UTC().Format(time.RFC3339Nano)
	if err := s.notifier.Publish(c.UserContext(), eventType, payload); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "failed to publish event",
			slog.String("event", eventType),
			slog.String("error", err.Error()),
		)
	}
}

func postPayload(p *dto.Post) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return map[string]any{
		"post_id":       p.ID,
		"title":         p.Title,
		"creation_date": p.CreationDate,
	}
}

func commentPayload(cm *dto.Comment) map[string]any {
	if cm == nil {
		return map[string]any{}
	}
	return map[string]any{
		"comment_id":    cm.ID,
		"post_id":       cm.PostID,
		"author":        cm.Author,
		"creation_date": cm.CreationDate,
	}
}
