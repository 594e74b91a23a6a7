package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentmate/internal/config"
	"rentmate/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []string        `json:"details"`
}

func newTestApp(t *testing.T) (*App, *fiber.App) {
	t.Helper()

	cfg := &config.Config{
		AppMode:  "dev",
		Port:     "0",
		LogLevel: "error",
		Storage: config.StorageConfig{
			DataDir:   t.TempDir(),
			SessionDB: ":memory:",
		},
	}
	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	server, _ := a.HTTP(context.Background())
	return a, server
}

func call(t *testing.T, server *fiber.App, method, path string, body any) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestApp_SeedsOnStart(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	for _, c := range domain.Collections {
		assert.True(t, a.Store.Exists(ctx, c), "collection %s", c)
	}
}

func TestHTTP_Health(t *testing.T) {
	_, server := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "healthy", checks["sessions"])
}

func TestHTTP_RequiresSession(t *testing.T) {
	_, server := newTestApp(t)

	status, body := call(t, server, http.MethodGet, "/api/v1/properties", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, body.Success)

	status, _ = call(t, server, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestHTTP_SignUpSignInFlow(t *testing.T) {
	_, server := newTestApp(t)

	status, body := call(t, server, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"name": "Lena", "email": "lena@x.com", "password": "pw", "role": "landlord",
	})
	require.Equal(t, http.StatusCreated, status, body.Error)

	status, body = call(t, server, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"name": "Other", "email": "LENA@x.com", "password": "pw", "role": "tenant",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "User with this email already exists", body.Error)

	status, body = call(t, server, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, status)
	me := decode[map[string]domain.User](t, body.Data)
	assert.Equal(t, "lena@x.com", me["user"].Email)

	status, _ = call(t, server, http.MethodPost, "/api/v1/auth/signout", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "ghost@x.com", "password": "pw",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No account found with this email. Please sign up first.", body.Error)

	status, _ = call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "Lena@X.com", "password": "pw",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestHTTP_RentalWorkflow(t *testing.T) {
	_, server := newTestApp(t)

	// landlord lists a property
	status, body := call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "landlord@demo.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, status, body.Error)

	status, body = call(t, server, http.MethodPost, "/api/v1/properties", map[string]any{
		"title": "Garden Flat", "address": "9 Elm Rd", "rent": 15000,
	})
	require.Equal(t, http.StatusCreated, status, body.Error)
	property := decode[domain.Property](t, body.Data)
	assert.Equal(t, "landlord-1", property.LandlordID)
	assert.Equal(t, domain.PropertyVacant, property.Status)

	// tenant applies, and may not list properties
	status, body = call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "tenant@demo.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, status, body.Error)

	status, _ = call(t, server, http.MethodPost, "/api/v1/properties", map[string]any{
		"title": "Nope", "address": "x", "rent": 1,
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, body = call(t, server, http.MethodPost, "/api/v1/applications", map[string]any{
		"propertyId": property.ID, "monthlyIncome": 90000, "employmentStatus": "employed",
	})
	require.Equal(t, http.StatusCreated, status, body.Error)
	application := decode[domain.RentalApplication](t, body.Data)
	assert.Equal(t, "tenant-1", application.TenantID)
	assert.Equal(t, "tenant@demo.com", application.TenantEmail)

	status, body = call(t, server, http.MethodPost, "/api/v1/payments", map[string]any{
		"propertyId": property.ID, "amount": 15000,
	})
	require.Equal(t, http.StatusCreated, status, body.Error)
	payment := decode[domain.Payment](t, body.Data)
	assert.Equal(t, "tenant-1", payment.TenantID)

	// landlord decides
	status, _ = call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "landlord@demo.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, server, http.MethodPost, "/api/v1/applications/"+application.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, status, body.Error)

	status, _ = call(t, server, http.MethodPost, "/api/v1/applications/"+application.ID+"/reject", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, body = call(t, server, http.MethodPost, "/api/v1/properties/"+property.ID+"/tenants", map[string]string{
		"tenantId": "tenant-1",
	})
	require.Equal(t, http.StatusOK, status, body.Error)
	property = decode[domain.Property](t, body.Data)
	assert.Equal(t, []string{"tenant-1"}, property.Tenants)
	assert.Equal(t, domain.PropertyOccupied, property.Status)

	status, body = call(t, server, http.MethodGet, "/api/v1/dashboard/landlord", nil)
	require.Equal(t, http.StatusOK, status, body.Error)
	dashboard := decode[map[string]any](t, body.Data)
	assert.Equal(t, float64(15000), dashboard["amount_received"])

	status, body = call(t, server, http.MethodGet, "/api/v1/dashboard/outstanding", nil)
	require.Equal(t, http.StatusOK, status, body.Error)
	due := decode[[]map[string]any](t, body.Data)
	assert.Empty(t, due)
}

func TestHTTP_MaintenanceAndValidation(t *testing.T) {
	_, server := newTestApp(t)

	status, _ := call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "admin@demo.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := call(t, server, http.MethodPost, "/api/v1/maintenance", map[string]string{
		"propertyId": "property-1", "description": "Broken window",
	})
	require.Equal(t, http.StatusCreated, status, body.Error)
	request := decode[domain.MaintenanceRequest](t, body.Data)
	assert.Equal(t, domain.MaintenanceOpen, request.Status)

	status, body = call(t, server, http.MethodPatch, "/api/v1/maintenance/"+request.ID, map[string]string{
		"status": "resolved",
	})
	require.Equal(t, http.StatusOK, status, body.Error)

	status, _ = call(t, server, http.MethodPatch, "/api/v1/maintenance/"+request.ID, map[string]string{
		"status": "done",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, server, http.MethodPatch, "/api/v1/maintenance/missing", map[string]string{
		"status": "open",
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, body = call(t, server, http.MethodPost, "/api/v1/payments", map[string]any{
		"propertyId": "property-1", "tenantId": "tenant-1", "amount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []string{"amount must be greater than 0"}, body.Details)
}

func TestHTTP_AdminUsers(t *testing.T) {
	_, server := newTestApp(t)

	status, _ := call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "tenant@demo.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, server, http.MethodGet, "/api/v1/users", nil)
	assert.Equal(t, http.StatusForbidden, status)

	// role switch is session-only but takes effect immediately
	status, body := call(t, server, http.MethodPut, "/api/v1/auth/role", map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, status, body.Error)

	status, body = call(t, server, http.MethodGet, "/api/v1/users?role=tenant&limit=10", nil)
	require.Equal(t, http.StatusOK, status, body.Error)
	page := decode[struct {
		Data []domain.User `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}](t, body.Data)
	assert.Equal(t, 1, page.Meta.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, domain.RoleTenant, page.Data[0].Role)

	status, body = call(t, server, http.MethodGet, "/api/v1/dashboard/admin", nil)
	require.Equal(t, http.StatusOK, status, body.Error)
	stats := decode[map[string]any](t, body.Data)
	assert.Equal(t, float64(3), stats["total_users"])
	assert.Equal(t, float64(2), stats["total_properties"])

	status, _ = call(t, server, http.MethodDelete, "/api/v1/users", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = call(t, server, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, status)
	empty := decode[struct {
		Data []domain.User `json:"data"`
	}](t, body.Data)
	assert.Empty(t, empty.Data)
}

func TestHTTP_PropertyUpdateIsAllOrNothing(t *testing.T) {
	a, server := newTestApp(t)

	status, _ := call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "admin@demo.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := call(t, server, http.MethodPatch, "/api/v1/properties/property-1", map[string]any{
		"status": "occupied", "rent": -5,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []string{"rent must be at least 0"}, body.Details)

	var stored []domain.Property
	require.True(t, a.Store.Load(context.Background(), domain.CollectionProperties, &stored))
	require.NotEmpty(t, stored)
	assert.Equal(t, "property-1", stored[0].ID)
	assert.Equal(t, domain.PropertyVacant, stored[0].Status)
	assert.Equal(t, float64(12000), stored[0].Rent)

	status, body = call(t, server, http.MethodPatch, "/api/v1/properties/property-1", map[string]any{
		"status": "occupied", "rent": 13000,
	})
	require.Equal(t, http.StatusOK, status, body.Error)
	property := decode[domain.Property](t, body.Data)
	assert.Equal(t, domain.PropertyOccupied, property.Status)
	assert.Equal(t, float64(13000), property.Rent)

	status, _ = call(t, server, http.MethodPatch, "/api/v1/properties/property-1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHTTP_TenantWithdrawsOnlyOwnApplication(t *testing.T) {
	_, server := newTestApp(t)

	status, _ := call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "tenant@demo.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := call(t, server, http.MethodPost, "/api/v1/applications", map[string]any{
		"propertyId": "property-1", "monthlyIncome": 50000, "employmentStatus": "employed",
	})
	require.Equal(t, http.StatusCreated, status, body.Error)
	application := decode[domain.RentalApplication](t, body.Data)

	status, body = call(t, server, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"name": "Otto", "email": "otto@x.com", "password": "pw", "role": "tenant",
	})
	require.Equal(t, http.StatusCreated, status, body.Error)

	status, _ = call(t, server, http.MethodDelete, "/api/v1/applications/"+application.ID, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, server, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email": "tenant@demo.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, server, http.MethodGet, "/api/v1/applications/me", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]domain.RentalApplication](t, body.Data), 1)

	status, _ = call(t, server, http.MethodDelete, "/api/v1/applications/"+application.ID, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = call(t, server, http.MethodGet, "/api/v1/applications/me", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[[]domain.RentalApplication](t, body.Data))
}
