// Package slurm runs the Slurm accounting commands for one job and splits
// their delimited output into per-step records.  Three queries exist:
//
//   - sacct, the historical source, always run and required to yield rows;
//   - sstat, the live source, run only while the job is RUNNING;
//   - squeue, run only while the job is PENDING, for the dependency/reason/
//     cpu-count triple.
//
// Only the historical query can fail the program.  The other two degrade to
// "no data" on any failure, because a job can leave the RUNNING or PENDING
// state between queries.

package slurm

import (
	"strings"

	"github.com/rug-cit-hpc/slurm-jobinfo3/common"
	"github.com/rug-cit-hpc/slurm-jobinfo3/process"
)

// One row of accounting output: column name to raw value, the empty string
// signifying absent.  Built per query, consumed by aggregation, never
// mutated afterwards.
type StepRecord map[string]string

// The squeue triple for a pending job.
type PendingInfo struct {
	Dependencies string
	Reason       string
	CPUs         string
}

// Job names may contain "|", so sacct output is delimited with something a
// job name plausibly never contains.  sstat has no name-like columns and
// stays with the default pipe.
const sacctDelimiter = "☃" // snowman

// Source holds the paths of the accounting commands, usually just the bare
// command names.
type Source struct {
	Sacct  string
	Sstat  string
	Squeue string
}

// HistoricalRows returns one record per step of the job from the accounting
// history, zero records when the job is unknown.
func (src *Source) HistoricalRows(jobID string, columns []string) ([]StepRecord, error) {
	stdout, err := process.RunSubprocess(src.Sacct, []string{
		"--noheader",
		"--parsable2",
		"--delimiter=" + sacctDelimiter,
		"-j", jobID,
		"-o", strings.Join(columns, ","),
	})
	if err != nil {
		return nil, err
	}
	rows := splitRows(stdout, sacctDelimiter, columns)
	common.Log.Infof("sacct: %d rows for job %s", len(rows), jobID)
	return rows, nil
}

// LiveRows returns the resident-usage snapshot records for a running job.
// Any failure, including sstat not being runnable, is an empty result: the
// job may have finished since the historical query.
func (src *Source) LiveRows(jobID string, columns []string) []StepRecord {
	stdout, err := process.RunSubprocess(src.Sstat, []string{
		"-a",
		"-n",
		"-P",
		"-j", jobID,
		"-o", strings.Join(columns, ","),
	})
	if err != nil {
		common.Log.Infof("sstat unavailable for job %s: %v", jobID, err)
		return nil
	}
	rows := splitRows(stdout, "|", columns)
	common.Log.Infof("sstat: %d rows for job %s", len(rows), jobID)
	return rows
}

// Pending returns the dependency list, pending reason and cpu count for a
// pending job, nil when squeue yields nothing usable.  The response is an
// exact three-field semicolon-delimited line; semicolons embedded in a
// dependency name would break this, which matches what squeue guarantees
// today.
func (src *Source) Pending(jobID string) *PendingInfo {
	stdout, err := process.RunSubprocess(src.Squeue, []string{
		"-h",
		"-o", "%E;%R;%C",
		"-j", jobID,
	})
	if err != nil {
		common.Log.Infof("squeue unavailable for job %s: %v", jobID, err)
		return nil
	}
	return parsePending(stdout)
}

func parsePending(stdout string) *PendingInfo {
	line, _, _ := strings.Cut(stdout, "\n")
	parts := strings.Split(strings.TrimSpace(line), ";")
	if len(parts) != 3 {
		return nil
	}
	deps := parts[0]
	if deps == "(null)" {
		deps = ""
	}
	return &PendingInfo{
		Dependencies: deps,
		Reason:       parts[1],
		CPUs:         parts[2],
	}
}

// splitRows zips each delimited line with the requested column names.  The
// last requested column soaks up any excess fields, so a stray delimiter in
// a job name does not shift the row; short rows leave the remaining columns
// absent.
func splitRows(output, delimiter string, columns []string) []StepRecord {
	var rows []StepRecord
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, delimiter)
		for len(fields) > len(columns) {
			fields[len(fields)-2] += delimiter + fields[len(fields)-1]
			fields = fields[:len(fields)-1]
		}
		r := make(StepRecord, len(columns))
		for i, c := range columns {
			if i < len(fields) {
				r[c] = fields[i]
			} else {
				r[c] = ""
			}
		}
		rows = append(rows, r)
	}
	return rows
}
