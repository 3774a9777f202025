package server

import (
	"tinkerlab/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateAssistantSession handles POST /api/assistant/sessions
// @Summary Start an assistant session
// @Description Creates a conversational search session. A non-blank initial query is submitted immediately so the first exchange is on the transcript in the response.
// @Tags assistant
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /assistant/sessions [post]
func (s *Server) CreateAssistantSession(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		InitialQuery string `json:"initial_query"`
	}
	// Body is optional; a bare POST starts an empty session.
	_ = c.BodyParser(&req)

	session, err := s.assistantService.StartSession(ctx, req.InitialQuery)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": session.ID,
		"turns":      session.Turns(),
	})
}

// GetAssistantSession handles GET /api/assistant/sessions/:id
func (s *Server) GetAssistantSession(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	turns, err := s.assistantService.Transcript(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"session_id": id,
		"turns":      turns,
	})
}

// SubmitAssistantQuery handles POST /api/assistant/sessions/:id/messages
// @Summary Submit a query to the assistant
// @Description Appends the user turn, forwards the query to the remote assistant, and appends its reply. A blank query is a no-op; a transport failure appends a fixed fallback turn instead of failing the request.
// @Tags assistant
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /assistant/sessions/{id}/messages [post]
func (s *Server) SubmitAssistantQuery(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	var req struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	turns, err := s.assistantService.Submit(ctx, id, req.Query)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"session_id": id,
		"turns":      turns,
	})
}

// DeleteAssistantSession handles DELETE /api/assistant/sessions/:id
func (s *Server) DeleteAssistantSession(c *fiber.Ctx) error {
	ctx := c.Context()
	s.assistantService.EndSession(ctx, c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
