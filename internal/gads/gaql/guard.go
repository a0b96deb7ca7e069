package gaql

import (
	"strings"

	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
)

// maxQueryLen caps raw passthrough queries
const maxQueryLen = 10000

// mutationKeywords are rejected anywhere in a passthrough query. GAQL itself
// is read-only, but the blocklist keeps junk from ever leaving the process
var mutationKeywords = []string{
	"INSERT", "UPDATE", "DELETE", "DROP", "CREATE", "ALTER", "TRUNCATE", "MUTATE",
}

// GuardSelectOnly admits a raw GAQL query for passthrough execution.
// The query must start with SELECT, stay under the length cap, and contain
// no mutation keywords. Returns the trimmed query
func GuardSelectOnly(q string) (string, error) {
	trimmed := strings.TrimSpace(q)
	if trimmed == "" {
		return "", perr.WithField(perr.Validationf("query must not be empty"), "query")
	}
	if len(trimmed) > maxQueryLen {
		return "", perr.WithField(
			perr.Validationf("query exceeds %d characters", maxQueryLen),
			"query",
		)
	}
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") {
		return "", perr.WithField(
			perr.Validationf("only SELECT queries are allowed; got %q", validate.Preview(trimmed)),
			"query",
		)
	}
	for _, kw := range mutationKeywords {
		if containsWord(upper, kw) {
			return "", perr.WithField(
				perr.Validationf("query contains forbidden keyword %s", kw),
				"query",
			)
		}
	}
	return trimmed, nil
}

// ContainsKeyword reports whether the keyword occurs in the query as a
// standalone word, case-insensitively. A quoted literal like 'unlimited'
// does not count as LIMIT
func ContainsKeyword(q, kw string) bool {
	return containsWord(strings.ToUpper(q), strings.ToUpper(kw))
}

// containsWord reports whether w occurs in s on word boundaries, so a field
// like metrics.all_conversions_from_click_to_call never trips the UPDATE check
func containsWord(s, w string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], w)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isWordChar(s[i-1])
		afterIdx := i + len(w)
		after := afterIdx >= len(s) || !isWordChar(s[afterIdx])
		if before && after {
			return true
		}
		idx = i + len(w)
	}
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
