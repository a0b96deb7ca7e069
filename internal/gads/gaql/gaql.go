// Package gaql assembles query fragments for the Google Ads Query Language.
// Every literal that reaches a clause has already passed validation, so
// rendering is plain string assembly with no escaping surprises
package gaql

import (
	"fmt"
	"strings"

	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
)

// Condition is a validated WHERE fragment. Construct through the helpers;
// the zero value renders empty and is skipped by Where
type Condition string

// Where joins conditions with AND into a WHERE clause, or returns an empty
// string when nothing survives
func Where(conds ...Condition) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		if c != "" {
			parts = append(parts, string(c))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(parts, " AND ")
}

// Eq builds field = 'value' for an already validated enum or id value
func Eq(field, value string) Condition {
	if field == "" || value == "" {
		return ""
	}
	return Condition(fmt.Sprintf("%s = '%s'", field, value))
}

// EqID builds field = value for a numeric id, unquoted
func EqID(field, id string) Condition {
	if field == "" || id == "" {
		return ""
	}
	return Condition(fmt.Sprintf("%s = %s", field, id))
}

// StatusEq validates the status then renders field = 'STATUS'
func StatusEq(field, status string) (Condition, error) {
	s, err := validate.Status(status)
	if err != nil {
		return "", err
	}
	return Eq(field, s), nil
}

// BuildDateClause renders the segments.date restriction for a report.
//
// Explicit start/end win over a named range; both must be calendar-valid and
// ordered. With neither supplied, defaultRange applies. An empty defaultRange
// falls back to LAST_30_DAYS
func BuildDateClause(namedRange, start, end, defaultRange string) (Condition, error) {
	if start != "" || end != "" {
		if start == "" || end == "" {
			return "", perr.WithField(
				perr.Validationf("start_date and end_date must be supplied together"),
				"start_date",
			)
		}
		s, err := validate.Date(start)
		if err != nil {
			return "", perr.WithField(err, "start_date")
		}
		e, err := validate.Date(end)
		if err != nil {
			return "", perr.WithField(err, "end_date")
		}
		// ISO dates order lexically
		if s > e {
			return "", perr.WithField(
				perr.Validationf("start_date %s is after end_date %s", s, e),
				"start_date",
			)
		}
		return Condition(fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'", s, e)), nil
	}

	if namedRange == "" {
		namedRange = defaultRange
	}
	if namedRange == "" {
		namedRange = "LAST_30_DAYS"
	}
	r, err := validate.NamedRange(namedRange)
	if err != nil {
		return "", err
	}
	return Condition("segments.date DURING " + r), nil
}
