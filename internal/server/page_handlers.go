package server

import (
	"path/filepath"

	"atelier/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) servePage(c *fiber.Ctx, name string) error {
	return c.SendFile(filepath.Join(s.config.PublicDir, name))
}

// SignupPage serves the signup form.
func (s *Server) SignupPage(c *fiber.Ctx) error {
	return s.servePage(c, "signup.html")
}

// LoginPage serves the login form.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	return s.servePage(c, "login.html")
}

// CreatePage serves the portfolio creation form.
func (s *Server) CreatePage(c *fiber.Ctx) error {
	return s.servePage(c, "createPortfolio.html")
}

// HomePage serves the portfolio listing, but only to logged-in visitors.
func (s *Server) HomePage(c *fiber.Ctx) error {
	sess, err := s.currentSession(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if sess == nil {
		return redirectWithMessage(c, "/login", "Please log in to access the home page.")
	}
	return s.servePage(c, "home.html")
}
