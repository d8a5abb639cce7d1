package rankingcoach

import (
	"bytes"
	"encoding/json"
	"strings"

	"seo-provisioner/internal/features/provisioning/domain"
)

const defaultErrorMessage = "Response Error."

// envelope is the uniform wrapper around every vendor reply.
type envelope struct {
	Status          json.RawMessage `json:"status"`
	Message         json.RawMessage `json:"message"`
	AdditionalInfos json.RawMessage `json:"additional_infos"`
}

// parseResponse decodes a non-empty reply and surfaces vendor errors.
func parseResponse(raw []byte) (json.RawMessage, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, domain.NewError(domain.ErrUnknownProvider, "Could not decode Provider API Response").
			WithData("response", domain.TruncateRaw(string(raw))).
			WithCause(err)
	}

	if isFalsy(decoded) {
		return nil, domain.NewError(domain.ErrUnknownProvider, "Unknown Provider API Error").
			WithData("response", string(raw))
	}

	if msg, ok := responseErrorMessage(raw); ok {
		return nil, domain.NewError(domain.ErrUpstream, msg).WithData("response", decoded)
	}

	return raw, nil
}

// isFalsy reports decode results that carry no information at all.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == "" || val == "0"
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}

// responseErrorMessage returns the vendor message when the envelope reports status "error".
// additional_infos values, from an array or an object, are appended space separated.
func responseErrorMessage(raw []byte) (string, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", false
	}

	var status string
	if err := json.Unmarshal(env.Status, &status); err != nil || status != "error" {
		return "", false
	}

	message, ok := scalarText(env.Message)
	if !ok {
		message = defaultErrorMessage
	}

	infos := infoValues(env.AdditionalInfos)
	if len(infos) == 0 {
		return message, true
	}

	return message + " " + strings.Join(infos, " "), true
}

// infoValues lists the values of a JSON array or object in document order.
func infoValues(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	var values []json.RawMessage

	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil
		}
	case '{':
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil {
			return nil
		}
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return nil
			}
			var v json.RawMessage
			if err := dec.Decode(&v); err != nil {
				return nil
			}
			values = append(values, v)
		}
	default:
		values = []json.RawMessage{raw}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if text, ok := scalarText(v); ok {
			out = append(out, text)
		}
	}
	return out
}

// scalarText renders a JSON value as text: strings unquoted, anything else compacted.
// Missing and null values report false.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw), true
	}
	return buf.String(), true
}
