package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterLoginAndMe(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerAndLogin(t, app, "alice", "alice@example.com")

	response := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	requireStatus(t, response, http.StatusOK)

	var user UserView
	decodeJSON(t, response, &user)
	if user.Name != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestRegisterDuplicateNameConflicts(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	registerAndLogin(t, app, "alice", "alice@example.com")

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "alice",
		"email":    "other@example.com",
		"password": "StrongPass1",
	})
	requireStatus(t, response, http.StatusConflict)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	registerAndLogin(t, app, "alice", "alice@example.com")

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"login":    "alice",
		"password": "wrong-pass",
	})
	requireStatus(t, response, http.StatusUnauthorized)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/users/me", "", nil)
	requireStatus(t, response, http.StatusUnauthorized)

	response = doJSON(t, app, http.MethodGet, "/api/dashboards", "garbage-token", nil)
	requireStatus(t, response, http.StatusUnauthorized)
}
