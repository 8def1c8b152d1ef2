package server

import (
	"github.com/gofiber/fiber/v2"

	"notebooks/internal/service"
)

// GetFeed handles GET /api/feeds?viewerId=&page=&pageSize=
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePage(c)

	posts, err := s.feedService.GetFeed(ctx, service.GetFeedInput{
		ViewerID: c.Query("viewerId"),
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"page":      page.Page,
		"page_size": page.PageSize,
		"posts":     posts,
	})
}
