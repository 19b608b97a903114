package report

import (
	"strings"

	"github.com/rug-cit-hpc/slurm-jobinfo3/units"
)

// One report line: a description label, the fields it consumes, a format
// template with that many placeholders, and whether it shows by default.
// Visibility rules may flip a hidden line to visible, never the reverse.
type LineSpec struct {
	Desc    string
	Fields  []Field
	Format  string
	Visible bool
}

// MT: Constant after initialization; immutable
var reportLines = []LineSpec{
	{"Job ID", []Field{JobID}, "%s", true},
	{"Name", []Field{JobName}, "%s", true},
	{"User", []Field{User}, "%s", true},
	{"Partition", []Field{Partition}, "%s", true},
	{"Nodes", []Field{NodeList}, "%s", true},
	{"Number of Nodes", []Field{NNodes}, "%s", true},
	{"Cores", []Field{NCPUS}, "%s", true},
	{"Number of Tasks", []Field{NTasks}, "%s", true},
	{"State", []Field{State}, "%s", true},
	{"Submit", []Field{Submit}, "%s", true},
	{"Start", []Field{Start}, "%s", true},
	{"End", []Field{End}, "%s", true},
	{"Reserved walltime", []Field{Timelimit}, "%s", true},
	{"Used walltime", []Field{Elapsed}, "%s", true},
	{"Used CPU time", []Field{TotalCPU, Efficiency}, "%s %s", true},
	{"% User (Computation)", []Field{UserCPU}, "%s", true},
	{"% System (I/O)", []Field{SystemCPU}, "%s", true},
	{"Mem reserved", []Field{ReqMem}, "%s", true},
	{"Max Mem (RSS) used", []Field{MaxRSS, MaxRSSNode}, "%s (%s)", true},
	{"Max Disk Write", []Field{MaxDiskWrite, MaxDiskWriteNode}, "%s (%s)", true},
	{"Max Disk Read", []Field{MaxDiskRead, MaxDiskReadNode}, "%s (%s)", true},
	{"GPUs requested", []Field{ReqGPUS}, "%s", false},
	{"GPU utilization", []Field{GPUUtilization}, "%s", false},
	{"GPU memory used", []Field{GPUMem}, "%s", false},
	{"Dependencies", []Field{Dependencies}, "%s", false},
	{"Pending reason", []Field{Reason}, "%s", false},
	{"Comment", []Field{Comment}, "%s", false},
}

// GPUVisible is true when the job touched a GPU partition or requested GPU
// resources; the partition markers come from the site config.
func (j *Job) GPUVisible(markers []string) bool {
	part := j.Get(Partition)
	for _, m := range markers {
		if m != "" && strings.Contains(part, m) {
			return true
		}
	}
	return j.Get(ReqGPUS) != units.Missing
}

// resolveVisibility applies the flip-to-true rules to a copy of the line
// table: GPU lines for GPU jobs, the dependency/reason lines for pending
// jobs, the comment line when there is a comment.
func resolveVisibility(j *Job, gpuMarkers []string) []LineSpec {
	gpu := j.GPUVisible(gpuMarkers)
	pending := j.Get(State) == "PENDING"
	lines := make([]LineSpec, len(reportLines))
	copy(lines, reportLines)
	for i := range lines {
		switch {
		case strings.Contains(lines[i].Desc, "GPU"):
			lines[i].Visible = lines[i].Visible || gpu
		case lines[i].Desc == "Dependencies" || lines[i].Desc == "Pending reason":
			lines[i].Visible = lines[i].Visible || pending
		case lines[i].Desc == "Comment":
			lines[i].Visible = lines[i].Visible || j.Get(Comment) != units.Missing
		}
	}
	return lines
}
