package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"seo-provisioner/internal/core/httpclient"
	"seo-provisioner/internal/features/provisioning/domain"
)

// ToProvisionError normalizes any adapter failure into the platform's error result.
// Errors that already are ProvisionErrors pass through untouched, whatever they wrap;
// HTTP error replies are parsed for a vendor message.
func ToProvisionError(err error) error {
	if err == nil {
		return nil
	}

	if pe, ok := domain.AsProvisionError(err); ok {
		return pe
	}

	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return fromStatusError(statusErr)
	}

	if errors.Is(err, httpclient.ErrTransport) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return domain.NewError(domain.ErrTransport, "Provider API Connection Failed").WithCause(err)
	}

	return domain.NewError(domain.ErrUpstream, fmt.Sprintf("Provider API Error: %s", err.Error())).WithCause(err)
}

func fromStatusError(statusErr *httpclient.StatusError) *domain.ProvisionError {
	body := strings.TrimSpace(string(statusErr.Body))

	var responseData any
	if err := json.Unmarshal([]byte(body), &responseData); err != nil || responseData == nil {
		responseData = domain.TruncateRaw(body)
	}

	message := vendorMessage(responseData)
	if message == "" {
		message = statusErr.Reason()
	}

	return domain.NewError(domain.ErrUpstream, fmt.Sprintf("Provider API Error: %s", message)).
		WithData("response_data", responseData).
		WithData("http_code", statusErr.StatusCode).
		WithCause(statusErr)
}

// vendorMessage pulls a message out of a decoded error body: a top level "message",
// or the first JSON:API error's detail or title.
func vendorMessage(data any) string {
	obj, ok := data.(map[string]any)
	if !ok {
		return ""
	}

	if msg, ok := obj["message"].(string); ok && msg != "" {
		return msg
	}

	list, ok := obj["errors"].([]any)
	if !ok || len(list) == 0 {
		return ""
	}

	first, ok := list[0].(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"detail", "title"} {
		if msg, ok := first[key].(string); ok && msg != "" {
			return msg
		}
	}
	return ""
}
