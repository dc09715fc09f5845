package server

import (
	"blogapi/internal/dto"
	"blogapi/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /posts
// @Summary List posts
// @Description Every post, without comments.
// @Tags posts
// @Produce json
// @Success 200 {object} dto.Result[[]dto.Post]
// @Success 204
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	res, err := s.posts.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	if res.Content == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(res)
}

// GetPost handles GET /posts/:id
// @Summary Get a post with its comments
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.Result[dto.Post]
// @Failure 400 {object} dto.Result[[]string]
// @Failure 404
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.posts.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if res.Content == nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return c.JSON(res)
}

// CreatePost handles POST /posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body dto.PostCreate true "Post"
// @Success 201 {object} dto.Result[dto.Post]
// @Failure 400 {object} dto.Result[[]string]
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req dto.PostCreate
	if err := s.bindBody(c, &req); err != nil {
		return nil
	}

	res, err := s.posts.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	s.publishEvent(c, notifications.EventPostCreated, postPayload(res.Content))

	c.Location("posts/" + res.Content.ID.String())
	return c.Status(fiber.StatusCreated).JSON(res)
}

// UpdatePost handles PUT /posts/:id
// @Summary Replace a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body dto.Post true "Post"
// @Success 200 {object} dto.Result[dto.Post]
// @Failure 400 {object} dto.Result[[]string]
// @Failure 404 {object} dto.Result[[]string]
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req dto.Post
	if err := c.BodyParser(&req); err != nil {
		return respondMessages(c, fiber.StatusBadRequest, "The request body is not valid JSON: "+err.Error())
	}
	if req.ID != id {
		return respondMessages(c, fiber.StatusBadRequest, msgIDMatch)
	}
	if err := s.validateBody(c, &req); err != nil {
		return nil
	}

	res, err := s.posts.Update(c.UserContext(), req)
	if err != nil {
		return err
	}

	s.publishEvent(c, notifications.EventPostUpdated, postPayload(res.Content))
	return c.JSON(res)
}

// DeletePost handles DELETE /posts/:id
// @Summary Delete a post and its comments
// @Tags posts
// @Param id path string true "Post ID"
// @Success 204
// @Failure 400 {object} dto.Result[[]string]
// @Failure 404 {object} dto.Result[[]string]
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.posts.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}

	s.publishEvent(c, notifications.EventPostDeleted, map[string]any{
		"post_id": id,
		"message": res.Content,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPostComments handles GET /posts/:id/comments
// @Summary List the comments of a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.Result[[]dto.Comment]
// @Success 204
// @Failure 400 {object} dto.Result[[]string]
// @Router /posts/{id}/comments [get]
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	return s.respondComments(c, func() (dto.Result[[]dto.Comment], error) {
		return s.posts.GetComments(c.UserContext(), id)
	})
}

func (s *Server) respondComments(c *fiber.Ctx, load func() (dto.Result[[]dto.Comment], error)) error {
	res, err := load()
	if err != nil {
		return err
	}
	if res.Content == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(res)
}
