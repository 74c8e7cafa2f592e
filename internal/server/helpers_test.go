package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"atelier/internal/config"
	"atelier/internal/mailer"
	"atelier/internal/models"
	"atelier/internal/repository"
	"atelier/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func writeTestPages(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range []string{"signup.html", "login.html", "home.html", "createPortfolio.html"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("<html>"+name+"</html>"), 0o644)
		require.NoError(t, err)
	}
	return dir
}

// setupTestServer builds a Server over in-memory sqlite and miniredis with
// routes registered. Global middleware is not attached; these tests exercise
// handler behavior, not the middleware chain.
func setupTestServer(t *testing.T) (*Server, *fiber.App, *miniredis.Miniredis) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Portfolio{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Port:            "3000",
		SessionTTLHours: 1,
		PublicDir:       writeTestPages(t),
	}

	s := &Server{
		config:        cfg,
		db:            db,
		redis:         rdb,
		userRepo:      repository.NewUserRepository(db),
		portfolioRepo: repository.NewPortfolioRepository(db),
		sessions:      session.NewStore(rdb, time.Hour),
		mailer:        mailer.New(mailer.Config{}),
	}

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, mr
}

// createTestUser inserts a user with a real bcrypt hash and returns it.
func createTestUser(t *testing.T, s *Server, username, password string, isAdmin bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Age:       30,
		Gender:    "other",
		Email:     username + "@example.com",
		Password:  string(hash),
		IsAdmin:   isAdmin,
	}
	require.NoError(t, s.userRepo.Create(context.Background(), user))
	return user
}

// loginSession creates a session directly in the store and returns the cookie
// to attach to requests.
func loginSession(t *testing.T, s *Server, user *models.User) *http.Cookie {
	t.Helper()

	sess, err := s.sessions.Create(context.Background(), user.ID, user.Username, user.IsAdmin)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: sess.ID}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return string(data)
}

func userCount(t *testing.T, s *Server) int64 {
	t.Helper()

	var n int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&n).Error)
	return n
}
