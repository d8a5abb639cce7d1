package rankingcoach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"seo-provisioner/internal/core/httpclient"
	"seo-provisioner/internal/core/logger"
	"seo-provisioner/internal/features/provisioning/domain"

	"go.uber.org/zap"
)

// Vendor commands.
const (
	cmdGetUser            = "get_user"
	cmdUpdateUser         = "update_user"
	cmdDeactivateUser     = "deactivate_user"
	cmdActivateUser       = "activate_user"
	cmdGetSubscriptions   = "get_subscriptions"
	cmdSubscriptionUpdate = "subscription_update"
)

// LookupMethod tells which key located an account.
type LookupMethod string

const (
	// LookupByExternalID means the reference matched the platform's customer id.
	LookupByExternalID LookupMethod = "external_id"
	// LookupByEmail means the reference matched the account's email address.
	LookupByEmail LookupMethod = "email"
)

// AccountData is the additional_infos object returned by get_user.
type AccountData struct {
	ExternalID     domain.Identifier `json:"external_id"`
	Email          string            `json:"email"`
	CustomerStatus string            `json:"customer_status"`
	SessionID      domain.Identifier `json:"session_id"`
	Subscriptions  []Subscription    `json:"subscriptions"`
	// Raw keeps every field the vendor sent.
	Raw map[string]any `json:"-"`
}

// AccountLookup is the outcome of the two-step account lookup.
type AccountLookup struct {
	Account AccountData
	Method  LookupMethod
	// Ref is the reference that was looked up.
	Ref string
}

// ExternalID returns the id to address the account by in later commands.
// An email match is translated back to the vendor's external id when it is known.
func (l *AccountLookup) ExternalID() string {
	if l.Method == LookupByEmail && l.Account.ExternalID != "" {
		return l.Account.ExternalID.String()
	}
	return l.Ref
}

// Client maps lifecycle operations onto RankingCoach commands.
type Client struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the reseller credentials.
	config Configuration
	logger *zap.Logger
}

// NewClient creates a Client. The configuration is passed explicitly and never re-read.
func NewClient(client *http.Client, cfg Configuration) *Client {
	return &Client{
		client: client,
		config: cfg,
		logger: logger.For(ProviderName),
	}
}

// LookupAccount finds an account by external id and, if that fails for any reason,
// once more treating the reference as an email address.
func (c *Client) LookupAccount(ctx context.Context, ref string) (*AccountLookup, error) {
	account, byIDErr := c.getUser(ctx, string(LookupByExternalID), ref)
	if byIDErr == nil {
		return &AccountLookup{Account: *account, Method: LookupByExternalID, Ref: ref}, nil
	}

	c.logger.Debug("Lookup by external id failed, retrying by email",
		zap.String("ref", ref),
		zap.Error(byIDErr),
	)

	account, byEmailErr := c.getUser(ctx, string(LookupByEmail), ref)
	if byEmailErr == nil {
		return &AccountLookup{Account: *account, Method: LookupByEmail, Ref: ref}, nil
	}

	var statusErr *httpclient.StatusError
	if errors.Is(byEmailErr, httpclient.ErrTransport) || errors.As(byEmailErr, &statusErr) {
		return nil, byEmailErr
	}

	message := fmt.Sprintf("Account %s not found", ref)
	if pe, ok := domain.AsProvisionError(byEmailErr); ok {
		message = pe.Message
	}

	return nil, domain.NewError(domain.ErrAccountNotFound, message).
		WithData("lookup", ref).
		WithData("external_id_error", byIDErr.Error()).
		WithCause(byEmailErr)
}

// GetAccountData returns the account's additional_infos.
func (c *Client) GetAccountData(ctx context.Context, ref string) (*AccountData, error) {
	lookup, err := c.LookupAccount(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &lookup.Account, nil
}

// GetStatus returns the account's customer_status.
func (c *Client) GetStatus(ctx context.Context, ref string) (string, error) {
	account, err := c.GetAccountData(ctx, ref)
	if err != nil {
		return "", err
	}
	return account.CustomerStatus, nil
}

// CreateAccount registers the user and then activates it, bound to planID when given.
func (c *Client) CreateAccount(ctx context.Context, externalID, email, fullName, domainName, planID string) error {
	var subscriptionID string
	if planID != "" {
		sub, err := c.findSubscription(ctx, planID)
		if err != nil {
			return err
		}
		subscriptionID = sub.ID.String()
	}

	firstName, lastName := SplitName(fullName)

	body := map[string]any{
		"email":             email,
		"firstname":         firstName,
		"lastname":          lastName,
		"external_id":       externalID,
		"api_params_domain": domainName,
	}

	if _, err := c.makeRequest(ctx, cmdUpdateUser, body); err != nil {
		return err
	}

	return c.ActivateUser(ctx, externalID, subscriptionID)
}

// Suspend deactivates the account unconditionally.
func (c *Client) Suspend(ctx context.Context, ref string) error {
	_, err := c.makeRequest(ctx, cmdDeactivateUser, map[string]any{"external_id": ref})
	return err
}

// Unsuspend activates the account, re-binding it to planID when given.
func (c *Client) Unsuspend(ctx context.Context, ref, planID string) error {
	return c.ActivateUser(ctx, ref, planID)
}

// ActivateUser activates the account. Non-numeric plan ids are resolved by name first.
func (c *Client) ActivateUser(ctx context.Context, ref, planID string) error {
	body := map[string]any{"external_id": ref}

	if planID != "" {
		subscriptionID, err := c.resolveSubscriptionID(ctx, planID)
		if err != nil {
			return err
		}
		body["subscription_id"] = jsonID(domain.Identifier(subscriptionID))
	}

	_, err := c.makeRequest(ctx, cmdActivateUser, body)
	return err
}

// ChangePackage moves the account onto planID. Without any subscription the account is
// simply activated on the plan; otherwise the current subscription is updated, after
// re-activating the account if that subscription is not active.
func (c *Client) ChangePackage(ctx context.Context, ref, planID string) error {
	target, err := c.findSubscription(ctx, planID)
	if err != nil {
		return err
	}

	lookup, err := c.LookupAccount(ctx, ref)
	if err != nil {
		return err
	}
	externalID := lookup.ExternalID()

	current, ok := CurrentSubscription(lookup.Account.Subscriptions)
	if !ok {
		return c.ActivateUser(ctx, externalID, target.ID.String())
	}

	if !current.Active() {
		if err := c.Unsuspend(ctx, externalID, ""); err != nil {
			return err
		}
	}

	body := map[string]any{
		"external_id":            externalID,
		"subscription_id":        jsonID(current.ID),
		"update_subscription_id": jsonID(target.ID),
	}

	_, err = c.makeRequest(ctx, cmdSubscriptionUpdate, body)
	return err
}

// Login returns a single sign-on URL for the account.
// The reseller credentials are embedded in the query string; the vendor requires it.
func (c *Client) Login(ctx context.Context, ref string) (string, error) {
	account, err := c.GetAccountData(ctx, ref)
	if err != nil {
		return "", err
	}

	if account.SessionID == "" {
		return "", domain.NewError(domain.ErrUnknownProvider, "Provider API returned no login session").
			WithData("account", account.Raw)
	}

	return fmt.Sprintf("%s/index/login?session_id=%s&site_id=&api_username=%s&api_password=%s",
		c.config.host(),
		url.QueryEscape(account.SessionID.String()),
		url.QueryEscape(c.config.Username),
		url.QueryEscape(c.config.Password),
	), nil
}

// Terminate deactivates the account. The vendor offers no hard delete.
func (c *Client) Terminate(ctx context.Context, ref string) error {
	_, err := c.makeRequest(ctx, cmdDeactivateUser, map[string]any{"external_id": ref})
	return err
}

// SplitName splits a full name into first and last name. The first token is the
// first name; a missing remainder repeats the first name because the vendor
// requires both fields.
func SplitName(fullName string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(fullName), " ", 2)

	firstName := parts[0]
	lastName := ""
	if len(parts) == 2 {
		lastName = strings.TrimSpace(parts[1])
	}
	if lastName == "" {
		lastName = firstName
	}
	return firstName, lastName
}

func (c *Client) getUser(ctx context.Context, key, ref string) (*AccountData, error) {
	raw, err := c.makeRequest(ctx, cmdGetUser, map[string]any{key: ref})
	if err != nil {
		return nil, err
	}

	var env envelope
	if raw != nil {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, domain.NewError(domain.ErrUnknownProvider, "Could not decode Provider API Response").
				WithData("response", domain.TruncateRaw(string(raw))).
				WithCause(err)
		}
	}

	infos := bytes.TrimSpace(env.AdditionalInfos)
	if len(infos) == 0 || infos[0] != '{' {
		return nil, domain.NewError(domain.ErrAccountNotFound, fmt.Sprintf("Account %s not found", ref)).
			WithData(key, ref)
	}

	var account AccountData
	if err := json.Unmarshal(infos, &account); err != nil {
		return nil, domain.NewError(domain.ErrUnknownProvider, "Could not decode account data").
			WithData("response", domain.TruncateRaw(string(infos))).
			WithCause(err)
	}
	if err := json.Unmarshal(infos, &account.Raw); err != nil {
		return nil, err
	}

	return &account, nil
}

// listSubscriptions returns the reseller's subscription catalog. The reply is either a
// bare array or an envelope carrying the array in additional_infos.
func (c *Client) listSubscriptions(ctx context.Context) ([]Subscription, json.RawMessage, error) {
	raw, err := c.makeRequest(ctx, cmdGetSubscriptions, nil)
	if err != nil {
		return nil, nil, err
	}

	list := bytes.TrimSpace(raw)
	if len(list) > 0 && list[0] == '{' {
		var env envelope
		if err := json.Unmarshal(list, &env); err != nil {
			return nil, raw, err
		}
		list = bytes.TrimSpace(env.AdditionalInfos)
	}

	if len(list) == 0 || list[0] != '[' {
		return nil, raw, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(list, &entries); err != nil {
		return nil, raw, domain.NewError(domain.ErrUnknownProvider, "Could not decode subscription list").
			WithData("response", domain.TruncateRaw(string(raw))).
			WithCause(err)
	}

	subs := make([]Subscription, 0, len(entries))
	for _, entry := range entries {
		var sub Subscription
		if err := json.Unmarshal(entry, &sub); err != nil {
			continue
		}
		subs = append(subs, sub)
	}

	return subs, raw, nil
}

// findSubscription checks that pkg, an id or a name, exists in the catalog.
func (c *Client) findSubscription(ctx context.Context, pkg string) (*Subscription, error) {
	pkg = strings.TrimSpace(pkg)
	subs, raw, err := c.listSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	for _, sub := range subs {
		if sub.matches(pkg) {
			return &sub, nil
		}
	}

	var response any = string(raw)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &response)
	}

	return nil, domain.NewError(domain.ErrSubscriptionNotFound, fmt.Sprintf("Subscription %s not found", pkg)).
		WithData("response", response)
}

// resolveSubscriptionID passes numeric plan ids through and resolves names to ids.
func (c *Client) resolveSubscriptionID(ctx context.Context, planID string) (string, error) {
	planID = strings.TrimSpace(planID)
	if isNumeric(planID) {
		return planID, nil
	}

	sub, err := c.findSubscription(ctx, planID)
	if err != nil {
		return "", err
	}
	return sub.ID.String(), nil
}

// makeRequest POSTs a command with the credentials merged into the body.
// An empty reply is success without data and yields a nil message.
func (c *Client) makeRequest(ctx context.Context, command string, body map[string]any) (json.RawMessage, error) {
	payload := make(map[string]any, len(body)+2)
	for k, v := range body {
		payload[k] = v
	}
	payload["api_username"] = c.config.Username
	payload["api_password"] = c.config.Password

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", command, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL()+command, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	result, err := httpclient.Do(c.client, req)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(result)) == 0 {
		c.logger.Debug("Empty response", zap.String("command", command))
		return nil, nil
	}

	return parseResponse(result)
}
