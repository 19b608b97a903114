// Post-aggregation transforms, in a fixed order: CPU-time percentages, the
// efficiency figure, and the re-rendering of all duration fields with a
// shared day-field width so their columns align.

package report

import (
	"fmt"

	"github.com/rug-cit-hpc/slurm-jobinfo3/units"
)

// Derive enriches the aggregated job in place.
func Derive(j *Job) {
	cpuTime := units.DurationSeconds(j.Get(CPUTime))
	totalCPU := units.DurationSeconds(j.Get(TotalCPU))
	userCPU := units.DurationSeconds(j.Get(UserCPU))
	systemCPU := units.DurationSeconds(j.Get(SystemCPU))

	j.totalCPUSecs = totalCPU
	if totalCPU == 0 {
		// No meaningful percentage to report.
		j.Set(TotalCPU, units.Missing)
		j.Set(UserCPU, units.Missing)
		j.Set(SystemCPU, units.Missing)
		j.Set(Efficiency, "")
	} else {
		if cpuTime > 0 {
			j.efficiency = 100 * totalCPU / cpuTime
			j.hasEff = true
			j.Set(Efficiency, fmt.Sprintf("(Efficiency: %.2f%%)", j.efficiency))
		} else {
			j.Set(Efficiency, "")
		}
		j.Set(UserCPU, fmt.Sprintf("%.2f%%", 100*userCPU/totalCPU))
		j.Set(SystemCPU, fmt.Sprintf("%.2f%%", 100*systemCPU/totalCPU))
	}

	// The shared width covers exactly the duration fields that are
	// rendered as durations; it is zero when none of them carries a day
	// component and the day segment is then omitted everywhere.
	width := units.DayWidth(
		j.Get(Timelimit), j.Get(Elapsed), j.Get(CPUTime), j.Get(TotalCPU))
	for _, f := range []Field{Timelimit, Elapsed, CPUTime, TotalCPU} {
		j.Set(f, units.FormatDuration(j.Get(f), width))
	}
}
