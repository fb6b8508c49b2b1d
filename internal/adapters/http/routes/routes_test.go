package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"residential-hub/internal/adapters/http/middleware"
	"residential-hub/internal/adapters/http/routes"
	"residential-hub/internal/adapters/persistence/repositories/memory"
	"residential-hub/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp builds a server on fresh in-memory storage with the demo
// dataset loaded: two accounts, six apartments, three bookings.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	repos := memory.NewSet()
	require.NoError(t, config.SeedDemoData(context.Background(), &repos))

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	routes.Setup(app, &repos, nil)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	code, body := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, code)
	token := body["data"].(map[string]interface{})["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func dataList(t *testing.T, body map[string]interface{}) []interface{} {
	t.Helper()
	list, ok := body["data"].([]interface{})
	require.True(t, ok, "expected data to be a list, got %T", body["data"])
	return list
}

func TestHealth(t *testing.T) {
	app := setupApp(t)

	code, body := doRequest(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])

	code, _ = doRequest(t, app, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	code, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "new@example.com", "password": "hunter22", "name": "Newcomer",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.EqualValues(t, 3, body["data"].(map[string]interface{})["user_id"])

	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "new@example.com", "password": "other", "name": "Imposter",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, body = doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "new@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, code)
	user := body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "resident", user["role"])

	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "new@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestLogoutIdempotent(t *testing.T) {
	app := setupApp(t)
	token := login(t, app, "resident@example.com", "password123")

	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, code)

	// The session is gone.
	code, _ = doRequest(t, app, http.MethodGet, "/api/bookings", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Logging out again, or with garbage, still answers 200.
	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/logout", "never-issued", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestApartmentCatalog(t *testing.T) {
	app := setupApp(t)

	code, body := doRequest(t, app, http.MethodGet, "/api/apartments", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dataList(t, body), 6)

	code, body = doRequest(t, app, http.MethodGet, "/api/apartments?tower=Tower+A", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dataList(t, body), 2)

	code, body = doRequest(t, app, http.MethodGet, "/api/apartments?tower=Tower+C&bedrooms=3", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, dataList(t, body), 1)
	assert.Equal(t, "C-702", dataList(t, body)[0].(map[string]interface{})["unit"])

	// Garbage bedrooms filter degrades to unfiltered.
	code, body = doRequest(t, app, http.MethodGet, "/api/apartments?bedrooms=penthouse", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dataList(t, body), 6)

	code, _ = doRequest(t, app, http.MethodGet, "/api/apartments/999", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAdminCreateApartment(t *testing.T) {
	app := setupApp(t)
	adminToken := login(t, app, "admin@example.com", "admin123")

	code, body := doRequest(t, app, http.MethodPost, "/api/apartments", adminToken, fiber.Map{
		"tower": "Tower D", "unit": "D-101", "floor": 1, "bedrooms": 1, "bathrooms": 1, "price": 1200,
	})
	require.Equal(t, http.StatusCreated, code)
	created := body["data"].(map[string]interface{})
	assert.EqualValues(t, 7, created["id"])
	assert.Equal(t, "available", created["status"])
	assert.EqualValues(t, 1200, created["price"])
}

func TestRoleEnforcement(t *testing.T) {
	app := setupApp(t)
	residentToken := login(t, app, "resident@example.com", "password123")

	// Authenticated but not admin.
	code, _ := doRequest(t, app, http.MethodPost, "/api/apartments", residentToken, fiber.Map{
		"tower": "Tower D", "unit": "D-101",
	})
	assert.Equal(t, http.StatusForbidden, code)

	// The catalog is unchanged by the rejected attempt.
	code, body := doRequest(t, app, http.MethodGet, "/api/apartments", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dataList(t, body), 6)

	code, _ = doRequest(t, app, http.MethodGet, "/api/admin/stats", residentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodPut, "/api/bookings/1/approve", residentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// Not authenticated at all.
	code, _ = doRequest(t, app, http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doRequest(t, app, http.MethodGet, "/api/admin/stats", "stale-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestBookingLifecycle(t *testing.T) {
	app := setupApp(t)
	residentToken := login(t, app, "resident@example.com", "password123")
	adminToken := login(t, app, "admin@example.com", "admin123")

	// The seeded resident starts with three historical requests.
	code, body := doRequest(t, app, http.MethodGet, "/api/bookings", residentToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dataList(t, body), 3)

	// Booking an unknown unit appends nothing.
	code, _ = doRequest(t, app, http.MethodPost, "/api/bookings", residentToken, fiber.Map{"apartment_id": 999})
	assert.Equal(t, http.StatusNotFound, code)

	code, body = doRequest(t, app, http.MethodPost, "/api/bookings", residentToken, fiber.Map{"apartment_id": 3})
	require.Equal(t, http.StatusCreated, code)
	booking := body["data"].(map[string]interface{})
	assert.EqualValues(t, 4, booking["id"])
	assert.EqualValues(t, 1, booking["user_id"])
	assert.Equal(t, "pending", booking["status"])

	// Admin sees the whole ledger and can narrow by status.
	code, body = doRequest(t, app, http.MethodGet, "/api/bookings", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dataList(t, body), 4)

	code, body = doRequest(t, app, http.MethodGet, "/api/bookings?status=pending", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dataList(t, body), 2)

	code, body = doRequest(t, app, http.MethodPut, "/api/bookings/4/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "approved", body["data"].(map[string]interface{})["status"])

	code, _ = doRequest(t, app, http.MethodPut, "/api/bookings/999/decline", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Stats reflect the new approval: seed booking #1 (unit 1, 2500) plus
	// the fresh one on unit 3 (3200).
	code, body = doRequest(t, app, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	stats := body["data"].(map[string]interface{})
	assert.EqualValues(t, 6, stats["total_units"])
	assert.EqualValues(t, 2, stats["occupied_units"])
	assert.InDelta(t, 33.33, stats["occupancy_rate"].(float64), 0.01)
	assert.EqualValues(t, 1, stats["pending_bookings"])
	assert.EqualValues(t, 4, stats["total_bookings"])
	assert.EqualValues(t, 5700, stats["total_revenue"])
}
