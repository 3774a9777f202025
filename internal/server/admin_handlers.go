package server

import (
	"tinkerlab/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateProject handles POST /api/admin/projects
func (s *Server) CreateProject(c *fiber.Ctx) error {
	ctx := c.Context()

	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	project.ID = 0

	if err := s.catalogService.CreateProject(ctx, &project); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject handles PUT /api/admin/projects/:id
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	existing, err := s.catalogService.GetProject(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt

	if err := s.catalogService.UpdateProject(ctx, &project); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

// DeleteProject handles DELETE /api/admin/projects/:id
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catalogService.DeleteProject(ctx, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePremadeProject handles POST /api/admin/premade-projects
func (s *Server) CreatePremadeProject(c *fiber.Ctx) error {
	ctx := c.Context()

	var project models.PremadeProject
	if err := c.BodyParser(&project); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	project.ID = 0

	if err := s.catalogService.CreatePremade(ctx, &project); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdatePremadeProject handles PUT /api/admin/premade-projects/:id
func (s *Server) UpdatePremadeProject(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	existing, err := s.catalogService.GetPremade(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	var project models.PremadeProject
	if err := c.BodyParser(&project); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt

	if err := s.catalogService.UpdatePremade(ctx, &project); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

// DeletePremadeProject handles DELETE /api/admin/premade-projects/:id
func (s *Server) DeletePremadeProject(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catalogService.DeletePremade(ctx, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateTutorial handles POST /api/admin/tutorials
func (s *Server) CreateTutorial(c *fiber.Ctx) error {
	ctx := c.Context()

	var tutorial models.Tutorial
	if err := c.BodyParser(&tutorial); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	tutorial.ID = 0

	if err := s.catalogService.CreateTutorial(ctx, &tutorial); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tutorial)
}

// UpdateTutorial handles PUT /api/admin/tutorials/:id
func (s *Server) UpdateTutorial(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	existing, err := s.catalogService.GetTutorial(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	var tutorial models.Tutorial
	if err := c.BodyParser(&tutorial); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	tutorial.ID = existing.ID
	tutorial.CreatedAt = existing.CreatedAt

	if err := s.catalogService.UpdateTutorial(ctx, &tutorial); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tutorial)
}

// DeleteTutorial handles DELETE /api/admin/tutorials/:id
func (s *Server) DeleteTutorial(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catalogService.DeleteTutorial(ctx, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCommunityPost handles POST /api/admin/community/posts
func (s *Server) CreateCommunityPost(c *fiber.Ctx) error {
	ctx := c.Context()

	var post models.CommunityPost
	if err := c.BodyParser(&post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	post.ID = 0

	if err := s.communityService.CreatePost(ctx, &post); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeleteCommunityPost handles DELETE /api/admin/community/posts/:id
func (s *Server) DeleteCommunityPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.communityService.DeletePost(ctx, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
