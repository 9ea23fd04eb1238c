package routes

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bitsa_backend/internals/configs"
	"bitsa_backend/internals/constants"
	database "bitsa_backend/internals/databases"
	"bitsa_backend/internals/databases/dbtest"
	statsService "bitsa_backend/internals/features/stats/service"
	authHelper "bitsa_backend/internals/features/users/auth/helper"
	userModel "bitsa_backend/internals/features/users/user/model"
	helperAuth "bitsa_backend/internals/helpers/auth"
	"bitsa_backend/internals/helpers/cache"
	"bitsa_backend/internals/middlewares"
)

const testSecret = "route-test-secret"

type testApp struct {
	t      *testing.T
	app    *fiber.App
	db     *gorm.DB
	issuer *helperAuth.TokenIssuer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithCache(t, nil)
}

// newTestAppWithCache serves the public stats through c.
func newTestAppWithCache(t *testing.T, c cache.Cache) *testApp {
	t.Helper()
	db := dbtest.Open(t)
	require.NoError(t, database.AutoMigrate(db))

	cfg := configs.Config{
		AppEnv:      "test",
		JWTSecret:   testSecret,
		JWTTTL:      time.Hour,
		FrontendURL: "http://localhost:3000",
	}
	stats := statsService.NewStatsService(db, c, time.Hour)

	return &testApp{
		t:      t,
		app:    NewApp(db, cfg, stats),
		db:     db,
		issuer: helperAuth.NewTokenIssuer(testSecret, time.Hour),
	}
}

// user inserts an account directly and returns it with a valid token.
func (ta *testApp) user(name, role string) (userModel.UserModel, string) {
	ta.t.Helper()
	hash, err := authHelper.HashPassword("password123")
	require.NoError(ta.t, err)

	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	u := userModel.UserModel{
		Email:       slug + "@example.com",
		Password:    hash,
		FullName:    name,
		StudentID:   "S-" + uuid.NewString()[:8],
		Course:      "Computer Science",
		YearOfStudy: 2,
		Role:        role,
	}
	require.NoError(ta.t, ta.db.Create(&u).Error)

	tok, err := ta.issuer.Issue(helperAuth.Session{UserID: u.ID, Email: u.Email, Role: u.Role})
	require.NoError(ta.t, err)
	return u, tok
}

// memCache is an in-process cache.Cache that ignores TTLs.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (m *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memCache) Close() error { return nil }

func (ta *testApp) admin() (userModel.UserModel, string) {
	return ta.user("Site Admin", constants.RoleAdmin)
}

func newRequest(t *testing.T, method, path, token string, body any) *http.Request {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

// do sends one request and decodes the JSON envelope.
func (ta *testApp) do(method, path, token string, body any) (int, map[string]any) {
	ta.t.Helper()
	resp, err := ta.app.Test(newRequest(ta.t, method, path, token, body), -1)
	require.NoError(ta.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(ta.t, err)

	out := map[string]any{}
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) && len(raw) > 0 {
		require.NoError(ta.t, sonic.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func dataMap(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %v", body)
	return d
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	d, ok := body["data"].([]any)
	require.True(t, ok, "data is not a list: %v", body)
	return d
}

func ids(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.(map[string]any)["id"].(string))
	}
	return out
}

func TestHealth(t *testing.T) {
	ta := newTestApp(t)

	for _, path := range []string{"/health", "/api/health"} {
		code, body := ta.do(fiber.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "OK", body["status"])
		assert.Equal(t, "connected", body["database"])
		assert.Equal(t, "test", body["environment"])
		assert.Contains(t, body, "uptimeSeconds")
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	ta := newTestApp(t)
	sqlDB, err := ta.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	code, body := ta.do(fiber.MethodGet, "/api/health", "", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
	assert.Equal(t, "DOWN", body["status"])
	assert.Equal(t, "disconnected", body["database"])
}

func TestUnknownRoute(t *testing.T) {
	ta := newTestApp(t)

	code, body := ta.do(fiber.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["message"])
	assert.Equal(t, "NotFound", body["error"])
}

func TestRequestIDHeader(t *testing.T) {
	ta := newTestApp(t)

	resp, err := ta.app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(middlewares.HeaderRequestID))

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(middlewares.HeaderRequestID, "req-123")
	resp, err = ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(middlewares.HeaderRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	ta := newTestApp(t)
	ta.do(fiber.MethodGet, "/api/health", "", nil)

	resp, err := ta.app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "http_requests_total")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ta := newTestApp(t)

	tests := []struct {
		name  string
		token string
		msg   string
	}{
		{"missing", "", "No token provided"},
		{"garbage", "not-a-jwt", "Invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := ta.do(fiber.MethodGet, "/api/auth/me", tt.token, nil)
			assert.Equal(t, fiber.StatusUnauthorized, code)
			assert.Equal(t, tt.msg, body["message"])
			assert.Equal(t, "Unauthenticated", body["error"])
		})
	}

	forged, err := helperAuth.NewTokenIssuer("another-secret", time.Hour).
		Issue(helperAuth.Session{UserID: uuid.New(), Role: constants.RoleAdmin})
	require.NoError(t, err)
	code, _ := ta.do(fiber.MethodGet, "/api/admin/stats", forged, nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestRoleIsReadFromStoreNotToken(t *testing.T) {
	ta := newTestApp(t)
	u, _ := ta.user("Mallory", constants.RoleStudent)

	// a token claiming ADMIN for a STUDENT account does not grant admin access
	tok, err := ta.issuer.Issue(helperAuth.Session{UserID: u.ID, Email: u.Email, Role: constants.RoleAdmin})
	require.NoError(t, err)

	code, body := ta.do(fiber.MethodGet, "/api/admin/stats", tok, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Forbidden", body["error"])
}

func TestDeletedAccountTokenIsRejected(t *testing.T) {
	ta := newTestApp(t)
	u, tok := ta.user("Gone Soon", constants.RoleStudent)
	require.NoError(t, ta.db.Delete(&userModel.UserModel{}, "id = ?", u.ID).Error)

	code, body := ta.do(fiber.MethodGet, "/api/auth/me", tok, nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "User no longer exists", body["message"])
}
