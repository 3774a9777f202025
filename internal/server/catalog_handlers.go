package server

import (
	"tinkerlab/internal/models"
	"tinkerlab/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProjects handles GET /api/projects
// @Summary Browse the project catalog
// @Description List projects filtered by free-text query, category and difficulty, cut to the visible-count threshold.
// @Tags projects
// @Produce json
// @Param q query string false "Free-text query matched against title and description"
// @Param category query string false "Category facet, 'all' matches everything"
// @Param difficulty query string false "Difficulty facet, 'all' matches everything"
// @Param visible query int false "Visible-count threshold, defaults to 20"
// @Success 200 {object} service.Page[models.Project]
// @Router /projects [get]
func (s *Server) GetProjects(c *fiber.Ctx) error {
	ctx := c.Context()
	f, visible := parseCatalogQuery(c)

	page, err := s.catalogService.BrowseProjects(ctx, f, visible)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetFeaturedProjects handles GET /api/projects/featured
func (s *Server) GetFeaturedProjects(c *fiber.Ctx) error {
	ctx := c.Context()

	projects, err := s.catalogService.FeaturedProjects(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(projects)
}

// GetProject handles GET /api/projects/:id
// @Summary Get project detail
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} models.ErrorResponse
// @Router /projects/{id} [get]
func (s *Server) GetProject(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	project, err := s.catalogService.GetProject(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

// GetPremadeProjects handles GET /api/premade-projects
// @Summary Browse premade project kits
// @Tags premade-projects
// @Produce json
// @Param q query string false "Free-text query matched against title and description"
// @Param category query string false "Category facet, 'all' matches everything"
// @Param difficulty query string false "Difficulty facet, 'all' matches everything"
// @Param visible query int false "Visible-count threshold, defaults to 20"
// @Success 200 {object} service.Page[models.PremadeProject]
// @Router /premade-projects [get]
func (s *Server) GetPremadeProjects(c *fiber.Ctx) error {
	ctx := c.Context()
	f, visible := parseCatalogQuery(c)

	page, err := s.catalogService.BrowsePremade(ctx, f, visible)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetPremadeProject handles GET /api/premade-projects/:id
func (s *Server) GetPremadeProject(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	project, err := s.catalogService.GetPremade(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

// RegisterPremadeInterest handles POST /api/premade-projects/:id/purchase-intent
func (s *Server) RegisterPremadeInterest(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var input service.PurchaseInterestInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.catalogService.RegisterPurchaseInterest(ctx, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// GetTutorials handles GET /api/tutorials
func (s *Server) GetTutorials(c *fiber.Ctx) error {
	ctx := c.Context()
	f, visible := parseCatalogQuery(c)

	page, err := s.catalogService.BrowseTutorials(ctx, f, visible)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetTutorial handles GET /api/tutorials/:id
func (s *Server) GetTutorial(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tutorial, err := s.catalogService.GetTutorial(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tutorial)
}

// GetCommunityPosts handles GET /api/community/posts
func (s *Server) GetCommunityPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	f, visible := parseCatalogQuery(c)

	page, err := s.catalogService.BrowseCommunity(ctx, f, visible)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetCommunityPost handles GET /api/community/posts/:id
func (s *Server) GetCommunityPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.communityService.GetPost(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// GetPostComments handles GET /api/community/posts/:id/comments
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.communityService.ListComments(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// CreatePostComment handles POST /api/community/posts/:id/comments
func (s *Server) CreatePostComment(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Author  string `json:"author"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment := &models.CommunityComment{
		PostID:  id,
		Author:  req.Author,
		Content: req.Content,
	}
	if err := s.communityService.AddComment(ctx, comment); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
