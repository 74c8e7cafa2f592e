package server

import (
	"log/slog"
	"strconv"

	"atelier/internal/middleware"
	"atelier/internal/models"

	"github.com/gofiber/fiber/v2"
)

type portfolioRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// GetPortfolios handles GET /api/portfolios. Public; returns every record in
// store order.
func (s *Server) GetPortfolios(c *fiber.Ctx) error {
	portfolios, err := s.portfolioRepo.List(c.Context())
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "portfolio list failed",
			slog.String("error", err.Error()),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch portfolios",
		})
	}
	return c.JSON(portfolios)
}

// CreatePortfolio handles POST /api/portfolios.
func (s *Server) CreatePortfolio(c *fiber.Ctx) error {
	var req portfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Description == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and description are required"))
	}

	// Images may be empty but never null in the stored row.
	if req.Images == nil {
		req.Images = []string{}
	}

	p := &models.Portfolio{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	}
	if err := s.portfolioRepo.Create(c.Context(), p); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "portfolio create failed",
			slog.String("error", err.Error()),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create portfolio",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdatePortfolio handles PUT /api/portfolios/:id. Admin-gated by the route.
func (s *Server) UpdatePortfolio(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid portfolio ID"))
	}

	var req portfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Description == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and description are required"))
	}

	if req.Images == nil {
		req.Images = []string{}
	}

	updated, err := s.portfolioRepo.Update(c.Context(), uint(id), req.Title, req.Description, req.Images)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "portfolio update failed",
			slog.String("error", err.Error()),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update portfolio",
		})
	}
	if updated == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Portfolio", id))
	}

	return c.JSON(updated)
}

// DeletePortfolio handles DELETE /api/portfolios/:id. Admin-gated by the
// route. Deleting an id that does not exist still reports success.
func (s *Server) DeletePortfolio(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid portfolio ID"))
	}

	if err := s.portfolioRepo.Delete(c.Context(), uint(id)); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "portfolio delete failed",
			slog.String("error", err.Error()),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete portfolio",
		})
	}

	return c.JSON(fiber.Map{"message": "Portfolio deleted successfully"})
}
