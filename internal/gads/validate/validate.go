// Package validate holds the input grammar for everything that ends up in a
// Google Ads request. Every rule is a pure function from raw input to an
// accepted value or a validation error; nothing here talks to the network
package validate

import (
	"fmt"
	"strings"
	"time"

	perr "adsbridge/internal/platform/errors"
)

// DefaultLimitMax is the row cap applied when the caller does not supply one
const DefaultLimitMax = 10000

// maxPreview bounds how much of a rejected value is echoed back
const maxPreview = 32

// Preview truncates a rejected value for safe inclusion in error messages
func Preview(s string) string {
	if len(s) <= maxPreview {
		return s
	}
	return s[:maxPreview] + "..."
}

// statuses accepted for campaign, ad group, ad, and keyword state changes
var statusSet = map[string]struct{}{
	"ENABLED": {},
	"PAUSED":  {},
	"REMOVED": {},
}

// Status accepts exactly ENABLED, PAUSED, or REMOVED. Matching is case
// sensitive; the API rejects lowercase forms, so we do too rather than
// silently uppercasing
func Status(s string) (string, error) {
	if _, ok := statusSet[s]; !ok {
		return "", perr.WithField(
			perr.Validationf("status must be one of ENABLED, PAUSED, REMOVED; got %q", Preview(s)),
			"status",
		)
	}
	return s, nil
}

// NumericID strips customer-facing hyphen separators (123-456-7890) and
// requires the remainder to be all digits. The rejection names the field and
// carries only a truncated preview of the offending value
func NumericID(s, field string) (string, error) {
	cleaned := strings.ReplaceAll(s, "-", "")
	if cleaned == "" {
		return "", perr.WithField(perr.Validationf("%s must be a numeric id; got empty value", field), field)
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", perr.WithField(
				perr.Validationf("%s must be a numeric id; got %q", field, Preview(s)),
				field,
			)
		}
	}
	return cleaned, nil
}

// enumFamilies is the static allow-list per enum family. Members mirror the
// API's enum surface for the operations this service exposes; additions go
// here, never through reflection
var enumFamilies = map[string][]string{
	"match_type":      {"EXACT", "PHRASE", "BROAD"},
	"batch_status":    {"ENABLED", "PAUSED"},
	"device":          {"MOBILE", "DESKTOP", "TABLET", "CONNECTED_TV", "OTHER"},
	"segment_type":    {"DATE", "DEVICE", "AD_NETWORK_TYPE", "CLICK_TYPE", "CONVERSION_ACTION"},
	"criterion_type":  {"KEYWORD", "PLACEMENT", "AUDIENCE", "LOCATION", "LANGUAGE", "AGE_RANGE", "GENDER"},
	"channel_type":    {"SEARCH", "DISPLAY", "SHOPPING", "VIDEO", "PERFORMANCE_MAX", "DEMAND_GEN"},
	"delivery_method": {"STANDARD", "ACCELERATED"},
}

// Enum requires member to be an exact member of the named family.
// Unknown families are a caller bug and reject too
func Enum(family, member string) (string, error) {
	allowed, ok := enumFamilies[family]
	if !ok {
		return "", perr.WithField(perr.Validationf("unknown enum family %q", Preview(family)), family)
	}
	for _, a := range allowed {
		if member == a {
			return member, nil
		}
	}
	return "", perr.WithField(
		perr.Validationf("%s must be one of %s; got %q", family, strings.Join(allowed, ", "), Preview(member)),
		family,
	)
}

// EnumMembers returns the allow-list for a family, for building messages
// and swagger enums. The returned slice must not be mutated
func EnumMembers(family string) []string { return enumFamilies[family] }

// Date accepts exact YYYY-MM-DD form and requires the date to exist on the
// calendar (Feb-30 and month 13 reject)
func Date(s string) (string, error) {
	if len(s) != 10 {
		return "", perr.WithField(
			perr.Validationf("date must be YYYY-MM-DD; got %q", Preview(s)),
			"date",
		)
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", perr.WithField(
			perr.Validationf("date must be a valid YYYY-MM-DD calendar date; got %q", Preview(s)),
			"date",
		)
	}
	return s, nil
}

// namedRanges the reporting layer understands, rendered verbatim into
// segments.date DURING clauses
var namedRanges = map[string]struct{}{
	"TODAY":        {},
	"YESTERDAY":    {},
	"LAST_7_DAYS":  {},
	"LAST_14_DAYS": {},
	"LAST_30_DAYS": {},
	"THIS_MONTH":   {},
	"LAST_MONTH":   {},
}

// NamedRange accepts a member of the fixed named date range set
func NamedRange(s string) (string, error) {
	if _, ok := namedRanges[s]; !ok {
		return "", perr.WithField(
			perr.Validationf("date_range must be a supported named range; got %q", Preview(s)),
			"date_range",
		)
	}
	return s, nil
}

// Limit accepts an integer in [1, max]. max <= 0 selects the default cap.
// Out of range rejects outright; the caller asked for something we will not
// silently shrink
func Limit(n, max int) (int, error) {
	if max <= 0 {
		max = DefaultLimitMax
	}
	if n < 1 || n > max {
		return 0, perr.WithField(
			perr.Validationf("limit must be between 1 and %d; got %s", max, Preview(fmt.Sprintf("%d", n))),
			"limit",
		)
	}
	return n, nil
}
