package units

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Durations are [[DD-]HH:]MM:SS[.fraction]: days and hours optional, seconds
// possibly fractional (sacct emits e.g. "00:17.122" for UserCPU).

var durationRe = regexp.MustCompile(`^(?:(?:(\d+)-)?(\d+):)?(\d+):(\d+(?:\.\d+)?)$`)

// ParseDuration splits a duration string into its components, defaulting any
// absent group to zero.  Input that does not match the pattern yields the
// all-zero tuple, never an error.
func ParseDuration(s string) (secs float64, mins, hours, days int64) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return
	}
	if m[1] != "" {
		days, _ = strconv.ParseInt(m[1], 10, 64)
	}
	if m[2] != "" {
		hours, _ = strconv.ParseInt(m[2], 10, 64)
	}
	mins, _ = strconv.ParseInt(m[3], 10, 64)
	secs, _ = strconv.ParseFloat(m[4], 64)
	return
}

// DurationSeconds is the total number of seconds in the duration string,
// zero when it does not parse.
func DurationSeconds(s string) float64 {
	ss, mm, hh, dd := ParseDuration(s)
	return ss + 60*float64(mm) + 3600*float64(hh) + 86400*float64(dd)
}

// DayWidth is the widest day-field digit count among the given duration
// strings, zero when none of them carries a day component.  All duration
// fields of one report share this width so their columns align.
func DayWidth(vs ...string) int {
	w := 0
	for _, v := range vs {
		if m := durationRe.FindStringSubmatch(v); m != nil && len(m[1]) > w {
			w = len(m[1])
		}
	}
	return w
}

// FormatDuration re-renders a duration as [DD-]HH:MM:SS with the day prefix
// right-justified to the shared width, omitted entirely when the width is
// zero.  A zero duration renders as the missing-data sentinel; the sentinel
// itself and UNLIMITED pass through unchanged.
func FormatDuration(s string, dayWidth int) string {
	if s == Missing || s == "UNLIMITED" {
		return s
	}
	ss, mm, hh, dd := ParseDuration(s)
	if ss == 0 && mm == 0 && hh == 0 && dd == 0 {
		return Missing
	}
	var b strings.Builder
	if dayWidth > 0 {
		fmt.Fprintf(&b, "%*d-", dayWidth, dd)
	}
	if ss != math.Trunc(ss) {
		fmt.Fprintf(&b, "%02d:%02d:%05.2f", hh, mm, ss)
	} else {
		fmt.Fprintf(&b, "%02d:%02d:%02d", hh, mm, int64(ss))
	}
	return b.String()
}
