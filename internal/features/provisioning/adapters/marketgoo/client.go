package marketgoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"seo-provisioner/internal/core/httpclient"
	"seo-provisioner/internal/features/provisioning/domain"
)

// Client talks to the Marketgoo partner API.
type Client struct {
	client *http.Client
	config Configuration
}

// NewClient creates a Client.
func NewClient(client *http.Client, cfg Configuration) *Client {
	return &Client{client: client, config: cfg}
}

// accountResponse is the reply to account creation.
type accountResponse struct {
	Data struct {
		ID domain.Identifier `json:"id"`
	} `json:"data"`
}

// loginResponse covers the JSON shapes a login reply may take.
type loginResponse struct {
	URL  string `json:"url"`
	Data struct {
		URL        string `json:"url"`
		Attributes struct {
			URL string `json:"url"`
		} `json:"attributes"`
	} `json:"data"`
}

// CreateAccount creates an account and returns its id.
func (c *Client) CreateAccount(ctx context.Context, product, domainName, name, email string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/accounts", map[string]any{
		"product": product,
		"domain":  domainName,
		"name":    name,
		"email":   email,
	})
	if err != nil {
		return "", err
	}

	var resp accountResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Data.ID == "" {
		return "", domain.NewError(domain.ErrUnknownProvider, "Unknown Provider API Error").
			WithData("response", domain.TruncateRaw(string(body)))
	}

	return resp.Data.ID.String(), nil
}

// LoginURL returns a single sign-on URL for the account.
func (c *Client) LoginURL(ctx context.Context, accountID string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/accounts/"+url.PathEscape(accountID)+"/login", nil)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		return text, nil
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		for _, candidate := range []string{resp.URL, resp.Data.URL, resp.Data.Attributes.URL} {
			if candidate != "" {
				return candidate, nil
			}
		}
	}

	return "", domain.NewError(domain.ErrUnknownProvider, "Provider API returned no login URL").
		WithData("response", domain.TruncateRaw(text))
}

// Upgrade moves the account to another product.
func (c *Client) Upgrade(ctx context.Context, accountID, product string) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/accounts/"+url.PathEscape(accountID)+"/upgrade", map[string]any{
		"product": product,
	})
	return err
}

// Suspend suspends the account.
func (c *Client) Suspend(ctx context.Context, accountID string) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/accounts/"+url.PathEscape(accountID)+"/suspend", nil)
	return err
}

// Resume lifts a suspension.
func (c *Client) Resume(ctx context.Context, accountID string) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/accounts/"+url.PathEscape(accountID)+"/resume", nil)
	return err
}

// Delete removes the account permanently.
func (c *Client) Delete(ctx context.Context, accountID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/accounts/"+url.PathEscape(accountID), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload map[string]any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.endpoint(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Auth-Token", c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return httpclient.Do(c.client, req)
}
