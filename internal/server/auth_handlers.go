package server

import (
	"errors"
	"log/slog"
	"net/url"

	"atelier/internal/middleware"
	"atelier/internal/models"
	"atelier/internal/session"
	"atelier/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// redirectWithMessage issues a 302 to path with the message carried as a
// query parameter, matching what the signup/login pages render.
func redirectWithMessage(c *fiber.Ctx, path, message string) error {
	return c.Redirect(path+"?message="+url.QueryEscape(message), fiber.StatusFound)
}

// Signup handles POST /signup. The form flow never surfaces validation or
// conflict failures as HTTP errors; they are recovered into redirect messages
// so the page can display them.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username  string `form:"username"`
		FirstName string `form:"firstName"`
		LastName  string `form:"lastName"`
		Age       int    `form:"age"`
		Gender    string `form:"gender"`
		Email     string `form:"email"`
		Password  string `form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return redirectWithMessage(c, "/signup", "Invalid email format.")
	}

	if err := s.checkRegistration(c, req.Username, req.Email); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case "VALIDATION_ERROR", "CONFLICT":
				return redirectWithMessage(c, "/signup", appErr.Message)
			}
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// Create user. New accounts are never admins.
	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Gender:    req.Gender,
		Email:     req.Email,
		Password:  string(hashedPassword),
		IsAdmin:   false,
	}
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(createErr))
	}

	// Welcome email is fire-and-forget; signup already succeeded.
	s.mailer.SendWelcomeAsync(user.Email, user.FirstName)

	return redirectWithMessage(c, "/login", "Account created successfully. Please login.")
}

// checkRegistration validates signup input against the shape rule and the
// credential store. The AppError code distinguishes a malformed email from a
// taken username so the signup page can show the right message.
func (s *Server) checkRegistration(c *fiber.Ctx, username, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return models.NewValidationError("Invalid email format.")
	}

	existing, err := s.userRepo.GetByUsername(c.Context(), username)
	if err != nil {
		return models.NewInternalError(err)
	}
	if existing != nil {
		return models.NewConflictError(
			"Username already exists. Please choose a different username.")
	}

	return nil
}

// authenticate checks a username/password pair against the credential store.
// The returned AppError code distinguishes an unknown username from a bad
// password so the login page can show the right message.
func (s *Server) authenticate(c *fiber.Ctx, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(c.Context(), username)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundCredentialError("Username not found.")
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); cmpErr != nil {
		return nil, models.NewInvalidCredentialError("Incorrect password.")
	}

	return user, nil
}

// Login handles POST /login. Exactly one of the four outcomes fires per
// attempt: unknown username, bad password, success, or an unexpected failure.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return redirectWithMessage(c, "/login", "Error occurred during login.")
	}

	user, err := s.authenticate(c, req.Username, req.Password)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case "NOT_FOUND_CREDENTIAL", "INVALID_CREDENTIAL":
				return redirectWithMessage(c, "/login", appErr.Message)
			}
		}
		middleware.Logger.ErrorContext(c.UserContext(), "login failed unexpectedly",
			slog.String("error", err.Error()),
		)
		return redirectWithMessage(c, "/login", "Error occurred during login.")
	}

	sess, err := s.sessions.Create(c.Context(), user.ID, user.Username, user.IsAdmin)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "session creation failed",
			slog.String("error", err.Error()),
		)
		return redirectWithMessage(c, "/login", "Error occurred during login.")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sess.ID,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/home", fiber.StatusFound)
}

// Logout handles GET /logout. A missing or already-expired session still logs
// out cleanly; only a store failure is surfaced as an error.
func (s *Server) Logout(c *fiber.Ctx) error {
	err := s.sessions.Destroy(c.Context(), c.Cookies(session.CookieName))
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return c.Status(fiber.StatusInternalServerError).
			SendString("Could not log out, please try again.")
	}

	c.ClearCookie(session.CookieName)
	return redirectWithMessage(c, "/login", "You have successfully logged out.")
}

// GetUserRole handles GET /api/getUserRole. The client uses this to decide
// which controls to render; the server-side gate remains the enforcement
// point.
func (s *Server) GetUserRole(c *fiber.Ctx) error {
	sess, err := s.currentSession(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if sess == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "User not logged in",
		})
	}

	role := "user"
	if sess.IsAdmin {
		role = "admin"
	}
	return c.JSON(fiber.Map{"role": role})
}
