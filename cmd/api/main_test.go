package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without the spec file the UI is skipped and the app still boots and serves.
func TestRegisterSwagger_MissingFileSkipsUI(t *testing.T) {
	app := fiber.New()
	assert.False(t, registerSwagger(app, "./docs/swagger.json"))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// The committed spec file must exist, parse, and back the UI at /docs.
func TestRegisterSwagger_ServesCommittedSpec(t *testing.T) {
	app := fiber.New()
	require.True(t, registerSwagger(app, "../../docs/swagger.json"))

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
