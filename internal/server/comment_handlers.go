package server

import (
	"blogapi/internal/dto"
	"blogapi/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

// GetComment handles GET /comments/:id
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.Result[dto.Comment]
// @Failure 400 {object} dto.Result[[]string]
// @Failure 404
// @Router /comments/{id} [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.comments.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if res.Content == nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return c.JSON(res)
}

// GetCommentsByPost handles GET /comments?postId=
// @Summary List the comments of a post
// @Tags comments
// @Produce json
// @Param postId query string true "Post ID"
// @Success 200 {object} dto.Result[[]dto.Comment]
// @Success 204
// @Failure 400 {object} dto.Result[[]string]
// @Router /comments [get]
func (s *Server) GetCommentsByPost(c *fiber.Ctx) error {
	postID, err := parseUUIDValue(c, c.Query("postId"))
	if err != nil {
		return nil
	}
	return s.respondComments(c, func() (dto.Result[[]dto.Comment], error) {
		return s.comments.GetByPostID(c.UserContext(), postID)
	})
}

// CreateComment handles POST /comments
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CommentCreate true "Comment"
// @Success 201 {object} dto.Result[dto.Comment]
// @Failure 400 {object} dto.Result[[]string]
// @Failure 404 {object} dto.Result[[]string]
// @Router /comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req dto.CommentCreate
	if err := s.bindBody(c, &req); err != nil {
		return nil
	}

	res, err := s.comments.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	s.publishEvent(c, notifications.EventCommentCreated, commentPayload(res.Content))

	c.Location("comments/" + res.Content.ID.String())
	return c.Status(fiber.StatusCreated).JSON(res)
}

// UpdateComment handles PUT /comments/:id
// @Summary Replace a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body dto.Comment true "Comment"
// @Success 200 {object} dto.Result[dto.Comment]
// @Failure 400 {object} dto.Result[[]string]
// @Failure 404 {object} dto.Result[[]string]
// @Router /comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req dto.Comment
	if err := c.BodyParser(&req); err != nil {
		return respondMessages(c, fiber.StatusBadRequest, "The request body is not valid JSON: "+err.Error())
	}
	if req.ID != id {
		return respondMessages(c, fiber.StatusBadRequest, msgIDMatch)
	}
	if err := s.validateBody(c, &req); err != nil {
		return nil
	}

	res, err := s.comments.Update(c.UserContext(), req)
	if err != nil {
		return err
	}

	s.publishEvent(c, notifications.EventCommentUpdated, commentPayload(res.Content))
	return c.JSON(res)
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete a comment
// @Tags comments
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 400 {object} dto.Result[[]string]
// @Failure 404 {object} dto.Result[[]string]
// @Router /comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.comments.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}

	s.publishEvent(c, notifications.EventCommentDeleted, map[string]any{
		"comment_id": id,
		"message":    res.Content,
	})
	return c.SendStatus(fiber.StatusNoContent)
}
