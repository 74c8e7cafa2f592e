package server

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicPages(t *testing.T) {
	_, app, _ := setupTestServer(t)

	for _, path := range []string{"/signup", "/login", "/create"} {
		t.Run(path, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodGet, path, "", nil)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}

func TestHomePageRequiresSession(t *testing.T) {
	_, app, _ := setupTestServer(t)

	resp := doJSON(t, app, fiber.MethodGet, "/home", "", nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?message="+url.QueryEscape("Please log in to access the home page."),
		resp.Header.Get("Location"))
}

func TestHomePageWithSession(t *testing.T) {
	s, app, _ := setupTestServer(t)
	user := createTestUser(t, s, "visitor", "pw", false)

	resp := doJSON(t, app, fiber.MethodGet, "/home", "", loginSession(t, s, user))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "home.html")
}
