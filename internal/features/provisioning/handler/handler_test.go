package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"seo-provisioner/internal/features/provisioning/domain"
	"seo-provisioner/internal/features/provisioning/ports"
	"seo-provisioner/internal/features/provisioning/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns canned results and records the last params it saw.
type stubProvider struct {
	err        error
	lastCreate domain.CreateParams
	lastAcct   domain.AccountIdentifierParams
}

func (s *stubProvider) Name() string { return "ranking-coach" }

func (s *stubProvider) About() domain.About { return domain.About{Name: "Ranking Coach"} }

func (s *stubProvider) Create(_ context.Context, params domain.CreateParams) (*domain.CreateResult, error) {
	s.lastCreate = params
	if s.err != nil {
		return nil, s.err
	}
	return &domain.CreateResult{Username: params.CustomerID.String(), Message: "Account created"}, nil
}

func (s *stubProvider) Login(_ context.Context, params domain.AccountIdentifierParams) (*domain.LoginResult, error) {
	s.lastAcct = params
	if s.err != nil {
		return nil, s.err
	}
	return &domain.LoginResult{URL: "https://sso.example/" + params.Username.String()}, nil
}

func (s *stubProvider) ChangePackage(_ context.Context, _ domain.ChangePackageParams) (*domain.EmptyResult, error) {
	return s.empty("Account updated")
}

func (s *stubProvider) Suspend(_ context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	s.lastAcct = params
	return s.empty("Account suspended")
}

func (s *stubProvider) Unsuspend(_ context.Context, _ domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	return s.empty("Account unsuspended")
}

func (s *stubProvider) Terminate(_ context.Context, _ domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	return s.empty("Account terminated")
}

func (s *stubProvider) empty(message string) (*domain.EmptyResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.EmptyResult{Message: message}, nil
}

func newTestApp(provider *stubProvider) *fiber.App {
	svc := service.NewProvisioningService([]ports.SeoProvider{provider})
	handler := NewProvisioningHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	handler.RegisterRoutes(app)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	return resp.StatusCode, raw
}

func decodeError(t *testing.T, raw []byte) ErrorResponse {
	t.Helper()
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	return errResp
}

// TestProvisioningHandler_ListProviders verifies the provider listing.
func TestProvisioningHandler_ListProviders(t *testing.T) {
	app := newTestApp(&stubProvider{})

	resp, err := app.Test(httptest.NewRequest("GET", "/providers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var infos []service.ProviderInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "ranking-coach", infos[0].Key)
	assert.Equal(t, "Ranking Coach", infos[0].Name)
}

// TestProvisioningHandler_Create_Success verifies a numeric customer id is accepted.
func TestProvisioningHandler_Create_Success(t *testing.T) {
	provider := &stubProvider{}
	app := newTestApp(provider)

	status, raw := post(t, app, "/providers/ranking-coach/create", `{
		"customer_id": 1001,
		"customer_email": "jane@example.com",
		"customer_name": "Jane Doe",
		"domain": "example.com",
		"package_identifier": "Basic"
	}`)
	assert.Equal(t, fiber.StatusOK, status)

	var result domain.CreateResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "1001", result.Username)
	assert.Equal(t, "Account created", result.Message)
	assert.Equal(t, "Jane Doe", provider.lastCreate.CustomerName)
}

// TestProvisioningHandler_Create_Validation verifies missing fields are reported per field.
func TestProvisioningHandler_Create_Validation(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, raw := post(t, app, "/providers/ranking-coach/create", `{"customer_id":"1001"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	errResp := decodeError(t, raw)
	assert.Contains(t, errResp.Message, "Validation failed")
	assert.Equal(t, "test-ray-id", errResp.RayID)
	fields, ok := errResp.Data["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "customer_email")
	assert.Contains(t, fields, "domain")
}

// TestProvisioningHandler_InvalidBody verifies malformed JSON is rejected.
func TestProvisioningHandler_InvalidBody(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, raw := post(t, app, "/providers/ranking-coach/suspend", `{"username":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", decodeError(t, raw).Message)
}

// TestProvisioningHandler_UnknownProvider verifies unknown keys yield 404.
func TestProvisioningHandler_UnknownProvider(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, raw := post(t, app, "/providers/acme/login", `{"username":"1001"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, decodeError(t, raw).Message, "not supported")
}

// TestProvisioningHandler_AccountOperations verifies each lifecycle route reaches the provider.
func TestProvisioningHandler_AccountOperations(t *testing.T) {
	tests := []struct {
		path    string
		body    string
		message string
	}{
		{path: "/providers/ranking-coach/change-package", body: `{"username":"1001","package_identifier":"Pro"}`, message: "Account updated"},
		{path: "/providers/ranking-coach/suspend", body: `{"username":1001}`, message: "Account suspended"},
		{path: "/providers/ranking-coach/unsuspend", body: `{"username":"1001"}`, message: "Account unsuspended"},
		{path: "/providers/ranking-coach/terminate", body: `{"username":"1001"}`, message: "Account terminated"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			app := newTestApp(&stubProvider{})

			status, raw := post(t, app, tt.path, tt.body)
			assert.Equal(t, fiber.StatusOK, status)

			var result domain.EmptyResult
			require.NoError(t, json.Unmarshal(raw, &result))
			assert.Equal(t, tt.message, result.Message)
		})
	}
}

// TestProvisioningHandler_Login verifies the login URL is returned.
func TestProvisioningHandler_Login(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, raw := post(t, app, "/providers/ranking-coach/login", `{"username":"1001"}`)
	assert.Equal(t, fiber.StatusOK, status)

	var result domain.LoginResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "https://sso.example/1001", result.URL)
}

// TestProvisioningHandler_UpstreamError verifies vendor failures keep message and data.
func TestProvisioningHandler_UpstreamError(t *testing.T) {
	provider := &stubProvider{
		err: domain.NewError(domain.ErrUpstream, "Provider API Error: Upstream maintenance").
			WithData("http_code", 503),
	}
	app := newTestApp(provider)

	status, raw := post(t, app, "/providers/ranking-coach/suspend", `{"username":"1001"}`)
	assert.Equal(t, fiber.StatusBadGateway, status)

	errResp := decodeError(t, raw)
	assert.Equal(t, "Provider API Error: Upstream maintenance", errResp.Message)
	assert.EqualValues(t, 503, errResp.Data["http_code"])
}

// TestProvisioningHandler_InternalError verifies unexpected errors are not leaked.
func TestProvisioningHandler_InternalError(t *testing.T) {
	app := newTestApp(&stubProvider{err: errors.New("boom")})

	status, raw := post(t, app, "/providers/ranking-coach/terminate", `{"username":"1001"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", decodeError(t, raw).Message)
}

// TestStatusFor verifies the error to status mapping.
func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.NewError(domain.ErrValidation, "x"), fiber.StatusBadRequest},
		{domain.NewError(domain.ErrAccountNotFound, "x"), fiber.StatusNotFound},
		{domain.NewError(domain.ErrSubscriptionNotFound, "x"), fiber.StatusNotFound},
		{domain.NewError(domain.ErrProviderNotSupported, "x"), fiber.StatusNotFound},
		{domain.NewError(domain.ErrUpstream, "x"), fiber.StatusBadGateway},
		{domain.NewError(domain.ErrUnknownProvider, "x"), fiber.StatusBadGateway},
		{domain.NewError(domain.ErrTransport, "x"), fiber.StatusBadGateway},
		{errors.New("x"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusFor(tt.err), tt.err)
	}
}
