package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Pocten/budget-planner-backend-sub000/internal/db"
	"github.com/Pocten/budget-planner-backend-sub000/internal/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "budget-planner-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	accessService := services.NewAccessService(repos.Access, repos.Users, repos.Dashboards)
	handler := NewHandler(HandlerConfig{
		Auth:         services.NewAuthService(repos.Users),
		Dashboards:   services.NewDashboardService(repos.Dashboards, accessService),
		Access:       accessService,
		Invites:      services.NewInviteService(repos.InviteLinks, accessService, 30*24*time.Hour, 24*time.Hour),
		Categories:   services.NewCategoryService(repos.Categories, accessService),
		Records:      services.NewRecordService(repos.Records, repos.Categories, repos.Tags, accessService),
		Budgets:      services.NewBudgetService(repos.Budgets, accessService),
		Goals:        services.NewGoalService(repos.Goals, accessService),
		Tags:         services.NewTagService(repos.Tags, accessService),
		Priorities:   services.NewPriorityService(repos.Priorities, repos.Categories, repos.Records, accessService),
		SecretKey:    []byte("test-secret-key"),
		AuthTokenTTL: time.Hour,
	})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func requireStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("status = %d, want %d (body: %s)", response.StatusCode, want, raw)
	}
}

// registerAndLogin creates the user over the API and returns a bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, name string, email string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "StrongPass1",
	})
	requireStatus(t, response, http.StatusCreated)

	response = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"login":    name,
		"password": "StrongPass1",
	})
	requireStatus(t, response, http.StatusOK)

	var result struct {
		Token string `json:"token"`
	}
	decodeJSON(t, response, &result)
	if result.Token == "" {
		t.Fatal("login response missing token")
	}
	return result.Token
}

func createTestDashboard(t *testing.T, app *fiber.App, token string, title string) uint {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/dashboards", token, fiber.Map{
		"title": title,
	})
	requireStatus(t, response, http.StatusCreated)

	var dashboard DashboardView
	decodeJSON(t, response, &dashboard)
	if dashboard.ID == 0 {
		t.Fatal("created dashboard has no ID")
	}
	return dashboard.ID
}
