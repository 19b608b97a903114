// The field registry: one declarative descriptor per output field, binding
// the sacct/sstat column it comes from, the reducer that collapses the step
// rows, and whether the live (sstat) rows take precedence over the
// historical (sacct) rows while the job is running.

package report

import (
	"github.com/rug-cit-hpc/slurm-jobinfo3/reduce"
)

// Field identifies one aggregated output field.  A fixed enum, rather than
// the string-keyed rows of the boundary, so that report lines are checked at
// compile time.
type Field int

const (
	JobID Field = iota
	JobName
	User
	Partition
	NodeList
	NNodes
	NCPUS
	NTasks
	State
	Submit
	Start
	End
	Timelimit
	Elapsed
	CPUTime
	TotalCPU
	UserCPU
	SystemCPU
	ReqMem
	MaxRSS
	MaxRSSNode
	MaxDiskWrite
	MaxDiskWriteNode
	MaxDiskRead
	MaxDiskReadNode
	ReqGPUS
	GPUUtilization
	GPUMem
	Comment

	// Not column-backed: filled by the derived-value step and the pending
	// query respectively.
	Efficiency
	Dependencies
	Reason

	numFields
)

var fieldNames = [numFields]string{
	"JobID", "JobName", "User", "Partition", "NodeList", "NNodes", "NCPUS",
	"NTasks", "State", "Submit", "Start", "End", "Timelimit", "Elapsed",
	"CPUTime", "TotalCPU", "UserCPU", "SystemCPU", "ReqMem", "MaxRSS",
	"MaxRSSNode", "MaxDiskWrite", "MaxDiskWriteNode", "MaxDiskRead",
	"MaxDiskReadNode", "ReqGPUS", "GPUUtilization", "GPUMem", "Comment",
	"Efficiency", "Dependencies", "Reason",
}

func (f Field) String() string {
	return fieldNames[f]
}

type FieldSpec struct {
	Field  Field
	Column string
	Reduce reduce.Func
	// Aggregate from the live-source rows instead of the historical rows
	// whenever the live source produced at least one row.  Live snapshots
	// report more current resident-memory/disk/GPU figures for a running
	// job than the accounting history does.
	PreferLive bool
}

// MT: Constant after initialization; immutable
//
// JobName stays last so that its column is last in the sacct request; a raw
// delimiter inside a job name then folds back into the name instead of
// shifting the row.
var fieldSpecs = []FieldSpec{
	{JobID, "JobID", reduce.FirstNonEmpty, false},
	{User, "User", reduce.FirstNonEmpty, false},
	{Partition, "Partition", reduce.FirstNonEmpty, false},
	{NodeList, "NodeList", reduce.UnionAppend, false},
	{NNodes, "NNodes", reduce.Maximum, false},
	{NCPUS, "NCPUS", reduce.Maximum, false},
	{NTasks, "NTasks", reduce.Maximum, false},
	{State, "State", reduce.FirstNonEmpty, false},
	{Submit, "Submit", reduce.MinDate, false},
	{Start, "Start", reduce.MinDate, false},
	{End, "End", reduce.MaxDate, false},
	{Timelimit, "Timelimit", reduce.TimeMaxFold, false},
	{Elapsed, "Elapsed", reduce.Maximum, false},
	{CPUTime, "CPUTime", reduce.Maximum, false},
	{TotalCPU, "TotalCPU", reduce.Maximum, false},
	{UserCPU, "UserCPU", reduce.Maximum, false},
	{SystemCPU, "SystemCPU", reduce.Maximum, false},
	{ReqMem, "ReqMem", reduce.FirstNonEmpty, false},
	{MaxRSS, "MaxRSS", reduce.MaxBytes, true},
	{MaxRSSNode, "MaxRSSNode", reduce.FirstNonEmpty, true},
	{MaxDiskWrite, "TRESUsageOutTot", reduce.SumOfKeyedBytes("fs/disk"), true},
	{MaxDiskWriteNode, "MaxDiskWriteNode", reduce.FirstNonEmpty, true},
	{MaxDiskRead, "TRESUsageInTot", reduce.SumOfKeyedBytes("fs/disk"), true},
	{MaxDiskReadNode, "MaxDiskReadNode", reduce.FirstNonEmpty, true},
	{ReqGPUS, "ReqTRES", reduce.GpuResource, false},
	{GPUUtilization, "TRESUsageInAve", reduce.MaxOfKeyedPercent("gres/gpuutil"), true},
	{GPUMem, "TRESUsageInMax", reduce.MaxOfKeyedBytes("gres/gpumem"), true},
	{Comment, "Comment", reduce.FirstNonEmpty, false},
	{JobName, "JobName", reduce.FirstNonEmpty, false},
}

// Columns is the full sacct column list, in registry order, each registry
// column guaranteed present.
func Columns() []string {
	cols := make([]string, 0, len(fieldSpecs))
	seen := make(map[string]bool)
	for _, fs := range fieldSpecs {
		if !seen[fs.Column] {
			seen[fs.Column] = true
			cols = append(cols, fs.Column)
		}
	}
	return cols
}

// LiveColumns is the sstat column list: JobID plus every preferLive column.
func LiveColumns() []string {
	cols := []string{"JobID"}
	seen := map[string]bool{"JobID": true}
	for _, fs := range fieldSpecs {
		if fs.PreferLive && !seen[fs.Column] {
			seen[fs.Column] = true
			cols = append(cols, fs.Column)
		}
	}
	return cols
}
