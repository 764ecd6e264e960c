package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"arenaserver/internal/config"
	"arenaserver/internal/repositories"
	"arenaserver/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApplication() *application {
	return newApplication(newMemoryStorage(), services.NewBcryptHasher(bcrypt.MinCost), nil)
}

func decode(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	app := newApp(newTestApplication())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	svc := newTestApplication()
	svc.ping = func() error { return errors.New("connection refused") }
	app := newApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "unhealthy", decode(t, resp.Body)["status"])
}

func TestRoutes(t *testing.T) {
	app := newApp(newTestApplication())

	post := func(path, body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := post("/api/account", `{"userID":"player0001","password":"secret1","email":"one@example.com"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	resp.Body.Close()

	resp = post("/api/character", `{"userID":"player0001","name":"Hero"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/character/Hero", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	character := decode(t, resp.Body)["character"].(map[string]interface{})
	assert.Equal(t, []interface{}{}, character["inventory"])
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/unknown", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decode(t, resp.Body), "errorMessage")
	resp.Body.Close()
}

func TestSeedItems(t *testing.T) {
	svc := newTestApplication()

	seedItems(svc.items)
	seedItems(svc.items)

	for _, code := range []int{1001, 1002, 2001} {
		_, err := svc.items.GetItem(context.Background(), code)
		assert.NoError(t, err, "item %d should be seeded", code)
	}
}

func TestOpenStorage_Memory(t *testing.T) {
	store, closeStore, err := openStorage(&config.Config{DBDriver: config.DriverMemory})
	require.NoError(t, err)
	defer closeStore()

	assert.NoError(t, store.ping())
	assert.NotNil(t, store.accounts)
}

func TestOpenStorage_SQLite(t *testing.T) {
	store, closeStore, err := openStorage(&config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseDSN: "file:main_test?mode=memory&cache=shared",
		DBLogLevel:  "silent",
		AutoMigrate: true,
	})
	require.NoError(t, err)
	defer closeStore()

	assert.NoError(t, store.ping())
	assert.IsType(t, &repositories.GORMItemRepository{}, store.items)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newApp(newTestApplication())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/item/9999", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `arena_failures_total{kind="not_found"}`)
	assert.Contains(t, string(body), `route="/api/item/:code"`)
}
