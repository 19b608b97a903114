// Hints printed after the report for completed jobs whose resource usage
// suggests the request was off: poor core utilization, I/O-bound time
// accounting, or a memory request far above what was used.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rug-cit-hpc/slurm-jobinfo3/common"
	"github.com/rug-cit-hpc/slurm-jobinfo3/units"
)

// Hints returns the advice that applies to the job, empty for jobs that are
// not COMPLETED or have no computable efficiency.
func Hints(j *Job, cfg common.HintConfig) []string {
	if j.Get(State) != "COMPLETED" || !j.hasEff {
		return nil
	}

	var hs []string
	switch {
	case j.efficiency < cfg.VeryLowEfficiency:
		hs = append(hs, "The program efficiency is very low.")
	case j.efficiency < cfg.LowEfficiency:
		hs = append(hs,
			"The program efficiency is low. Your program is not using the assigned cores.")
	}

	// SystemCPU was rewritten to a percentage by Derive.
	var sysShare float64
	if _, err := fmt.Sscanf(j.Get(SystemCPU), "%f%%", &sysShare); err == nil {
		if sysShare > cfg.SystemShare {
			hs = append(hs, "Check the file in- and output pattern of your application.")
		}
	}

	// ReqMem carries a per-node (n) or per-core (c) marker in older sacct
	// versions; either way the numeral is what was asked for.
	req := units.ParseBytes(strings.TrimRight(j.Get(ReqMem), "nc"))
	used := units.ParseBytes(strings.TrimSuffix(j.Get(MaxRSS), " "))
	if req >= cfg.MemFloorGB*(1<<30) && used > 0 {
		if 100*used/req < cfg.MemFraction {
			hs = append(hs, "You requested much more memory than your program used.")
		}
	}

	return hs
}

// RenderHints prints the hints as a numbered list under a header, nothing
// at all when there are no hints.
func RenderHints(w io.Writer, hs []string) {
	if len(hs) == 0 {
		return
	}
	fmt.Fprintln(w, "Hints and tips:")
	for i, h := range hs {
		fmt.Fprintf(w, " %d) %s\n", i+1, h)
	}
}
