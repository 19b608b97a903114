package units

import (
	"strings"
)

// sacct's ISO date strings sort correctly as plain strings, and a step that
// has not started or finished reports either an empty field or the literal
// "Unknown".  farFuture is a stand-in for the empty case so a minimum fold
// treats an absent start as not-yet-started; "Unknown" already sorts after
// any real date.
const farFuture = "2999-12-31T23:59:59"

// NormalizeDate prepares a raw date column value for lexicographic folding.
func NormalizeDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return farFuture
	}
	return s
}

// FinishDate maps the post-aggregation stand-ins back to the missing-data
// sentinel.
func FinishDate(s string) string {
	if s == farFuture || strings.EqualFold(s, "unknown") {
		return Missing
	}
	return s
}

// TimeMax compares two duration/limit strings: UNLIMITED always wins,
// INVALID and empty always lose, otherwise the lexicographically larger
// string wins.  Correct only because sacct emits fixed-width zero-padded
// encodings for the columns this is applied to.
func TimeMax(a, b string) string {
	switch {
	case a == "UNLIMITED" || b == "UNLIMITED":
		return "UNLIMITED"
	case a == "" || a == "INVALID":
		return b
	case b == "" || b == "INVALID":
		return a
	case a > b:
		return a
	}
	return b
}
