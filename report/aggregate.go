// The aggregation engine: collapse the step rows from the historical and
// live sources into one flat field-to-value mapping, per the field registry.

package report

import (
	"errors"

	"github.com/rug-cit-hpc/slurm-jobinfo3/common"
	"github.com/rug-cit-hpc/slurm-jobinfo3/slurm"
	"github.com/rug-cit-hpc/slurm-jobinfo3/units"
)

// The single fatal condition: the historical source knows nothing about the
// job.
var ErrNoJob = errors.New("No such job")

// Job is the aggregated view of one job: one finalized string per field.
// Built once by Aggregate, enriched in place by Derive, then read-only for
// rendering.
type Job struct {
	values [numFields]string

	// Seconds and percentages computed by Derive, kept numeric for the
	// hints.
	totalCPUSecs float64
	efficiency   float64
	hasEff       bool
}

func (j *Job) Get(f Field) string {
	return j.values[f]
}

func (j *Job) Set(f Field, v string) {
	j.values[f] = v
}

// Aggregate reduces the step rows into a Job.  For a field that prefers the
// live source the live rows win whenever that source produced anything;
// everything else always reduces over the historical rows.  Zero historical
// rows is the fatal job-not-found condition.
func Aggregate(hist, live []slurm.StepRecord, pending *slurm.PendingInfo) (*Job, error) {
	if len(hist) == 0 {
		return nil, ErrNoJob
	}

	j := new(Job)
	for i := range j.values {
		j.values[i] = units.Missing
	}

	for _, fs := range fieldSpecs {
		rows := hist
		if fs.PreferLive && len(live) > 0 {
			rows = live
		}
		v := fs.Reduce(rows, fs.Field.String(), fs.Column)
		if v == "" {
			v = units.Missing
		}
		j.values[fs.Field] = v
		common.Log.Debugf("aggregate: %s <- %q (live=%v)",
			fs.Field, v, fs.PreferLive && len(live) > 0)
	}

	if pending != nil {
		if pending.Dependencies != "" {
			j.Set(Dependencies, pending.Dependencies)
		}
		if pending.Reason != "" {
			j.Set(Reason, pending.Reason)
		}
		// sacct reports a zero cpu count for a job that has not started;
		// squeue knows the real request.
		if n := j.Get(NCPUS); n == units.Missing || n == "0" {
			if pending.CPUs != "" {
				j.Set(NCPUS, pending.CPUs)
			}
		}
	}

	return j, nil
}
