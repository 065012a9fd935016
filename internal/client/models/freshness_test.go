package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func days(n int) *int { return &n }

func TestFreshnessFor(t *testing.T) {
	tests := []struct {
		name string
		days *int
		want Freshness
	}{
		{"no date", nil, FreshnessUnknown},
		{"past", days(-2), FreshnessExpired},
		{"today", days(0), FreshnessToday},
		{"one day", days(1), FreshnessSoon},
		{"threshold", days(3), FreshnessSoon},
		{"above threshold", days(4), FreshnessFresh},
		{"far out", days(30), FreshnessFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FreshnessFor(tt.days))
		})
	}
}

func TestFreshnessLabel(t *testing.T) {
	require.Equal(t, "No date", FreshnessLabel(nil))
	require.Equal(t, "Expired", FreshnessLabel(days(-1)))
	require.Equal(t, "Today", FreshnessLabel(days(0)))
	require.Equal(t, "1 day", FreshnessLabel(days(1)))
	require.Equal(t, "5 days", FreshnessLabel(days(5)))
}
