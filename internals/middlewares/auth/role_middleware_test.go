package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesantrenku_backend/internals/constants"
)

func requestWithRole(t *testing.T, role string, handler fiber.Handler) int {
	t.Helper()

	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("role", role)
		}
		return c.Next()
	}, handler, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestOnlyRoles(t *testing.T) {
	mw := OnlyRoles("Khusus admin dan bendahara", constants.RoleAdmin, constants.RoleBendahara)

	assert.Equal(t, fiber.StatusOK, requestWithRole(t, constants.RoleAdmin, mw))
	assert.Equal(t, fiber.StatusOK, requestWithRole(t, constants.RoleBendahara, mw))
	assert.Equal(t, fiber.StatusForbidden, requestWithRole(t, constants.RoleUstadz, mw))
	assert.Equal(t, fiber.StatusUnauthorized, requestWithRole(t, "", mw))
}
