package rankingcoach

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_CreatedAt(t *testing.T) {
	s := Subscription{Created: "2024-03-01 10:15:30.123456"}
	expected := time.Date(2024, 3, 1, 10, 15, 30, 123456000, time.UTC)
	assert.True(t, expected.Equal(s.CreatedAt()))

	s = Subscription{Created: "2024-03-01 10:15:30"}
	assert.Equal(t, 30, s.CreatedAt().Second())

	s = Subscription{Created: "yesterday"}
	assert.True(t, s.CreatedAt().IsZero())
}

func TestCurrentSubscription(t *testing.T) {
	tests := []struct {
		name       string
		subs       []Subscription
		expectedID string
		found      bool
	}{
		{
			name: "Empty",
		},
		{
			name:       "Single",
			subs:       []Subscription{{ID: "7", Status: "canceled", Created: "2023-01-01 00:00:00.000000"}},
			expectedID: "7",
			found:      true,
		},
		{
			name: "LatestActiveWins",
			subs: []Subscription{
				{ID: "1", Status: "active", Created: "2023-01-01 00:00:00.000000"},
				{ID: "2", Status: "active", Created: "2024-01-01 00:00:00.000000"},
			},
			expectedID: "2",
			found:      true,
		},
		{
			name: "LatestActiveWinsRegardlessOfOrder",
			subs: []Subscription{
				{ID: "2", Status: "active", Created: "2024-01-01 00:00:00.000000"},
				{ID: "1", Status: "active", Created: "2023-01-01 00:00:00.000000"},
			},
			expectedID: "2",
			found:      true,
		},
		{
			name: "ActiveBeatsNewerInactive",
			subs: []Subscription{
				{ID: "1", Status: "active", Created: "2022-01-01 00:00:00.000000"},
				{ID: "2", Status: "canceled", Created: "2024-01-01 00:00:00.000000"},
			},
			expectedID: "1",
			found:      true,
		},
		{
			name: "ActiveReplacesInactiveCandidate",
			subs: []Subscription{
				{ID: "1", Status: "canceled", Created: "2024-01-01 00:00:00.000000"},
				{ID: "2", Status: "active", Created: "2020-01-01 00:00:00.000000"},
			},
			expectedID: "2",
			found:      true,
		},
		{
			name: "AllInactiveLatestWins",
			subs: []Subscription{
				{ID: "1", Status: "canceled", Created: "2021-01-01 00:00:00.000000"},
				{ID: "2", Status: "expired", Created: "2023-06-01 00:00:00.000000"},
				{ID: "3", Status: "canceled", Created: "2022-01-01 00:00:00.000000"},
			},
			expectedID: "2",
			found:      true,
		},
		{
			name: "TieKeepsLaterEntry",
			subs: []Subscription{
				{ID: "1", Status: "active", Created: "2024-01-01 00:00:00.000000"},
				{ID: "2", Status: "active", Created: "2024-01-01 00:00:00.000000"},
			},
			expectedID: "2",
			found:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, found := CurrentSubscription(tt.subs)
			require.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expectedID, current.ID.String())
			}
		})
	}
}

func TestSubscription_Matches(t *testing.T) {
	s := Subscription{ID: "12", Name: "Pro"}

	assert.True(t, s.matches("Pro"))
	assert.True(t, s.matches("12"))
	assert.False(t, s.matches("pro"))
	assert.False(t, s.matches("13"))
	assert.False(t, Subscription{ID: "12"}.matches("12"))
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"1", "42", "-3", "1.5", "1e3", " 7 "} {
		assert.True(t, isNumeric(s), s)
	}
	for _, s := range []string{"", "Basic", "12a", "0x1A", "NaN"} {
		assert.False(t, isNumeric(s), s)
	}
}

func TestJSONID(t *testing.T) {
	out, err := json.Marshal(map[string]any{"a": jsonID("12"), "b": jsonID("sub-9")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12,"b":"sub-9"}`, string(out))
}
