package models

import "strconv"

// Freshness is the display bucket derived from days-until-expiry.
type Freshness int

const (
	FreshnessUnknown Freshness = iota
	FreshnessExpired
	FreshnessToday
	FreshnessSoon
	FreshnessFresh
)

// FreshnessFor buckets days-until-expiry. nil means the item has no
// expiration date. Thresholds match the mobile app: past dates are expired,
// day zero is "today", three days or fewer is "soon".
func FreshnessFor(days *int) Freshness {
	switch {
	case days == nil:
		return FreshnessUnknown
	case *days < 0:
		return FreshnessExpired
	case *days == 0:
		return FreshnessToday
	case *days <= 3:
		return FreshnessSoon
	default:
		return FreshnessFresh
	}
}

// FreshnessLabel is the human-readable countdown shown next to an item.
func FreshnessLabel(days *int) string {
	switch {
	case days == nil:
		return "No date"
	case *days < 0:
		return "Expired"
	case *days == 0:
		return "Today"
	case *days == 1:
		return "1 day"
	default:
		return strconv.Itoa(*days) + " days"
	}
}

func (f Freshness) String() string {
	switch f {
	case FreshnessExpired:
		return "expired"
	case FreshnessToday:
		return "expires today"
	case FreshnessSoon:
		return "expiring soon"
	case FreshnessFresh:
		return "fresh"
	default:
		return "unknown"
	}
}
