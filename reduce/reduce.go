// Package reduce implements the aggregation strategies that collapse the
// ordered per-step rows of one job into a single value for one field.
//
// Every reducer takes the rows, the field's display name (for diagnostics
// only) and the source column name, and returns one string.  A row whose
// column is empty or absent contributes nothing; reducers never fail on it.
// A reducer with nothing to report returns the empty string or the
// missing-data sentinel as documented per reducer; the aggregation engine
// maps a remaining empty string to the sentinel.

package reduce

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rug-cit-hpc/slurm-jobinfo3/slurm"
	"github.com/rug-cit-hpc/slurm-jobinfo3/units"
)

type Func func(rows []slurm.StepRecord, field, column string) string

// FirstNonEmpty is the value of the first row, in source order, whose column
// is non-empty; else the empty string.
func FirstNonEmpty(rows []slurm.StepRecord, field, column string) string {
	for _, r := range rows {
		if v := r[column]; v != "" {
			return v
		}
	}
	return ""
}

// Maximum is the lexicographic maximum of the non-empty values.  This is
// meaningful only for columns sacct encodes fixed-width and zero-padded; it
// is a documented precondition on the source, not something re-derived here.
func Maximum(rows []slurm.StepRecord, field, column string) string {
	m := ""
	for _, r := range rows {
		if v := r[column]; v != "" && v > m {
			m = v
		}
	}
	return m
}

// UnionAppend is the sorted, de-duplicated union of the non-empty values,
// each possibly itself comma-separated, re-joined with commas.
func UnionAppend(rows []slurm.StepRecord, field, column string) string {
	seen := make(map[string]bool)
	for _, r := range rows {
		if r[column] == "" {
			continue
		}
		for _, v := range strings.Split(r[column], ",") {
			seen[v] = true
		}
	}
	if len(seen) == 0 {
		return ""
	}
	vs := make([]string, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return strings.Join(vs, ",")
}

// MinDate is the minimum of the normalized date values; an absent date
// normalizes to a far-future stand-in so it never wins.
func MinDate(rows []slurm.StepRecord, field, column string) string {
	m := ""
	for _, r := range rows {
		v := units.NormalizeDate(r[column])
		if m == "" || v < m {
			m = v
		}
	}
	return units.FinishDate(m)
}

// MaxDate is a time-max fold over the normalized date values.
func MaxDate(rows []slurm.StepRecord, field, column string) string {
	m := ""
	for _, r := range rows {
		m = units.TimeMax(m, units.NormalizeDate(r[column]))
	}
	return units.FinishDate(m)
}

// TimeMaxFold folds the raw values with the UNLIMITED-aware time maximum,
// for limit columns where UNLIMITED must win over any concrete value.
func TimeMaxFold(rows []slurm.StepRecord, field, column string) string {
	m := ""
	for _, r := range rows {
		m = units.TimeMax(m, r[column])
	}
	return m
}

// MaxBytes parses each non-empty value as a suffixed byte size and renders
// the running maximum; the sentinel if no row contributed.
func MaxBytes(rows []slurm.StepRecord, field, column string) string {
	m := -1.0
	for _, r := range rows {
		if v := r[column]; v != "" {
			if b := units.ParseBytes(v); b > m {
				m = b
			}
		}
	}
	if m < 0 {
		return units.Missing
	}
	return units.FormatBytes(m)
}

// maxOfKeyed is the running maximum of the keyed value extracted from each
// row's resource descriptor; ok is false when no row had a descriptor.
func maxOfKeyed(rows []slurm.StepRecord, column, key string) (float64, bool) {
	m, any := 0.0, false
	for _, r := range rows {
		if v, ok := units.ExtractKeyed(r[column], key); ok {
			if !any || v > m {
				m = v
			}
			any = true
		}
	}
	return m, any
}

// MaxOfKeyedPercent renders the keyed maximum as a percentage.
func MaxOfKeyedPercent(key string) Func {
	return func(rows []slurm.StepRecord, field, column string) string {
		v, ok := maxOfKeyed(rows, column, key)
		if !ok {
			return units.Missing
		}
		return strconv.FormatFloat(v, 'f', -1, 64) + "%"
	}
}

// MaxOfKeyedBytes renders the keyed maximum as a byte size.
func MaxOfKeyedBytes(key string) Func {
	return func(rows []slurm.StepRecord, field, column string) string {
		v, ok := maxOfKeyed(rows, column, key)
		if !ok {
			return units.Missing
		}
		return units.FormatBytes(v)
	}
}

// SumOfKeyedBytes renders the sum of the keyed values as a byte size.  The
// accumulator starts at -1 so that a column the key never appears in yields
// the sentinel rather than a spurious zero; a nonzero sum is shifted back
// up by one at the end.
func SumOfKeyedBytes(key string) Func {
	return func(rows []slurm.StepRecord, field, column string) string {
		sum := -1.0
		for _, r := range rows {
			if v, ok := units.ExtractKeyed(r[column], key); ok {
				sum += v
			}
		}
		if sum < 0 {
			return units.Missing
		}
		return units.FormatBytes(sum + 1)
	}
}

// GpuResource is the first non-empty GPU request extracted from the rows'
// resource descriptors.
func GpuResource(rows []slurm.StepRecord, field, column string) string {
	for _, r := range rows {
		if v := units.ExtractGPU(r[column]); v != "" {
			return v
		}
	}
	return ""
}
