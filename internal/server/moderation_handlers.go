package server

import (
	"github.com/gofiber/fiber/v2"

	"notebooks/internal/models"
)

// ReportPost handles POST /api/posts/:id/report
func (s *Server) ReportPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ReporterID string `json:"reporter_id"`
		Reason     string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.moderationService.ReportPost(ctx, postID, req.ReporterID, req.Reason)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(result)
}
