package server

import (
	"tinkerlab/internal/models"
	"tinkerlab/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTeamUpListings handles GET /api/team-up
func (s *Server) GetTeamUpListings(c *fiber.Ctx) error {
	ctx := c.Context()
	f, visible := parseCatalogQuery(c)

	page, err := s.teamUpService.Browse(ctx, f, visible)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetTeamUpListing handles GET /api/team-up/:id
func (s *Server) GetTeamUpListing(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	listing, err := s.teamUpService.Get(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(listing)
}

// CreateTeamUpListing handles POST /api/team-up
// @Summary Post a collaboration listing
// @Tags team-up
// @Accept json
// @Produce json
// @Param listing body models.TeamUpListing true "Listing"
// @Success 201 {object} models.TeamUpListing
// @Failure 400 {object} models.ErrorResponse
// @Router /team-up [post]
func (s *Server) CreateTeamUpListing(c *fiber.Ctx) error {
	ctx := c.Context()

	var listing models.TeamUpListing
	if err := c.BodyParser(&listing); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	listing.ID = 0

	if err := s.teamUpService.Create(ctx, &listing); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

// ApplyToTeamUpListing handles POST /api/team-up/:id/apply
// @Summary Apply to a collaboration listing
// @Description Records interest in a listing. The application is acknowledged but not persisted; the owner follows up out of band.
// @Tags team-up
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param application body service.ApplyInput true "Application"
// @Success 200 {object} service.ApplyResult
// @Failure 404 {object} models.ErrorResponse
// @Router /team-up/{id}/apply [post]
func (s *Server) ApplyToTeamUpListing(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var input service.ApplyInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.teamUpService.Apply(ctx, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// DeleteTeamUpListing handles DELETE /api/admin/team-up/:id
func (s *Server) DeleteTeamUpListing(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.teamUpService.Delete(ctx, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
