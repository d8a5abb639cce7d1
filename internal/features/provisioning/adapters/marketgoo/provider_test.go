package marketgoo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"seo-provisioner/internal/features/provisioning/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partnerRequest is one request received by the fake partner API.
type partnerRequest struct {
	Route string
	Body  map[string]any
}

type partnerReply struct {
	status int
	body   string
}

// fakePartner stands in for the Marketgoo partner API.
type fakePartner struct {
	t        *testing.T
	mu       sync.Mutex
	requests []partnerRequest
	replies  map[string]partnerReply
	server   *httptest.Server
}

func newFakePartner(t *testing.T) *fakePartner {
	t.Helper()

	fp := &fakePartner{t: t, replies: map[string]partnerReply{}}
	fp.server = httptest.NewServer(http.HandlerFunc(fp.handle))
	t.Cleanup(fp.server.Close)
	return fp
}

func (fp *fakePartner) handle(w http.ResponseWriter, r *http.Request) {
	assert.Equal(fp.t, "mg-key", r.Header.Get("X-Auth-Token"))

	route := r.Method + " " + r.URL.Path

	var body map[string]any
	raw, err := io.ReadAll(r.Body)
	require.NoError(fp.t, err)
	if len(raw) > 0 {
		require.NoError(fp.t, json.Unmarshal(raw, &body))
	}

	fp.mu.Lock()
	fp.requests = append(fp.requests, partnerRequest{Route: route, Body: body})
	reply, ok := fp.replies[route]
	fp.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(reply.status)
	w.Write([]byte(reply.body))
}

func (fp *fakePartner) reply(route string, status int, body string) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.replies[route] = partnerReply{status: status, body: body}
}

func (fp *fakePartner) routes() []string {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	routes := make([]string, 0, len(fp.requests))
	for _, req := range fp.requests {
		routes = append(routes, req.Route)
	}
	return routes
}

func (fp *fakePartner) provider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider(Configuration{URL: fp.server.URL, APIKey: "mg-key"}, fp.server.Client())
	require.NoError(t, err)
	return p
}

func TestNewProvider_InvalidConfiguration(t *testing.T) {
	p, err := NewProvider(Configuration{URL: "not a url"}, http.DefaultClient)
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProvider_Create(t *testing.T) {
	fp := newFakePartner(t)
	fp.reply("POST /api/accounts", http.StatusCreated, `{"data":{"id":42,"type":"account"}}`)

	result, err := fp.provider(t).Create(context.Background(), domain.CreateParams{
		CustomerID:        "1001",
		CustomerEmail:     "jane@example.com",
		CustomerName:      "Jane Doe",
		Domain:            "example.com",
		PackageIdentifier: "pro",
	})
	require.NoError(t, err)

	assert.Equal(t, "42", result.Username)
	assert.Equal(t, "Account created", result.Message)
	require.Len(t, fp.requests, 1)
	assert.Equal(t, map[string]any{
		"product": "pro",
		"domain":  "example.com",
		"name":    "Jane Doe",
		"email":   "jane@example.com",
	}, fp.requests[0].Body)
}

func TestProvider_Create_NameDefaultsToDomain(t *testing.T) {
	fp := newFakePartner(t)
	fp.reply("POST /api/accounts", http.StatusCreated, `{"data":{"id":"abc"}}`)

	result, err := fp.provider(t).Create(context.Background(), domain.CreateParams{
		CustomerID:        "1001",
		CustomerEmail:     "jane@example.com",
		Domain:            "example.com",
		PackageIdentifier: "pro",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", result.Username)
	assert.Equal(t, "example.com", fp.requests[0].Body["name"])
}

func TestProvider_Create_MissingID(t *testing.T) {
	fp := newFakePartner(t)
	fp.reply("POST /api/accounts", http.StatusOK, `{"data":{}}`)

	_, err := fp.provider(t).Create(context.Background(), domain.CreateParams{
		CustomerID:        "1001",
		CustomerEmail:     "jane@example.com",
		Domain:            "example.com",
		PackageIdentifier: "pro",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestProvider_Login(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "PlainText", body: "https://app.marketgoo.test/sso/xyz\n"},
		{name: "DataURL", body: `{"data":{"url":"https://app.marketgoo.test/sso/xyz"}}`},
		{name: "Attributes", body: `{"data":{"attributes":{"url":"https://app.marketgoo.test/sso/xyz"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := newFakePartner(t)
			fp.reply("GET /api/accounts/42/login", http.StatusOK, tt.body)

			result, err := fp.provider(t).Login(context.Background(), domain.AccountIdentifierParams{Username: "42"})
			require.NoError(t, err)
			assert.Equal(t, "https://app.marketgoo.test/sso/xyz", result.URL)
		})
	}
}

func TestProvider_Login_NoURL(t *testing.T) {
	fp := newFakePartner(t)
	fp.reply("GET /api/accounts/42/login", http.StatusOK, `{"data":{}}`)

	_, err := fp.provider(t).Login(context.Background(), domain.AccountIdentifierParams{Username: "42"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestProvider_Lifecycle(t *testing.T) {
	fp := newFakePartner(t)
	p := fp.provider(t)
	ctx := context.Background()
	account := domain.AccountIdentifierParams{Username: "42"}

	changed, err := p.ChangePackage(ctx, domain.ChangePackageParams{Username: "42", PackageIdentifier: "premium"})
	require.NoError(t, err)
	assert.Equal(t, "Account updated", changed.Message)

	suspended, err := p.Suspend(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "Account suspended", suspended.Message)

	resumed, err := p.Unsuspend(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "Account unsuspended", resumed.Message)

	terminated, err := p.Terminate(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "Account terminated", terminated.Message)

	assert.Equal(t, []string{
		"PATCH /api/accounts/42/upgrade",
		"PATCH /api/accounts/42/suspend",
		"PATCH /api/accounts/42/resume",
		"DELETE /api/accounts/42",
	}, fp.routes())
	assert.Equal(t, "premium", fp.requests[0].Body["product"])
}

func TestProvider_ErrorReply(t *testing.T) {
	fp := newFakePartner(t)
	fp.reply("PATCH /api/accounts/42/suspend", http.StatusUnprocessableEntity,
		`{"errors":[{"title":"Invalid","detail":"Account already suspended"}]}`)

	_, err := fp.provider(t).Suspend(context.Background(), domain.AccountIdentifierParams{Username: "42"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, "Provider API Error: Account already suspended", err.Error())

	pe, ok := domain.AsProvisionError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, pe.Data["http_code"])
}
