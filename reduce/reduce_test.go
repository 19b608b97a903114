package reduce

import (
	"testing"

	"github.com/rug-cit-hpc/slurm-jobinfo3/slurm"
	"github.com/rug-cit-hpc/slurm-jobinfo3/units"
)

func rows(vs ...string) []slurm.StepRecord {
	rs := make([]slurm.StepRecord, len(vs))
	for i, v := range vs {
		rs[i] = slurm.StepRecord{"C": v}
	}
	return rs
}

func TestFirstNonEmpty(t *testing.T) {
	if s := FirstNonEmpty(rows("", "a", "b"), "F", "C"); s != "a" {
		t.Fatalf("FirstNonEmpty %q", s)
	}
	if s := FirstNonEmpty(rows("", ""), "F", "C"); s != "" {
		t.Fatalf("FirstNonEmpty %q", s)
	}
}

func TestMaximum(t *testing.T) {
	if s := Maximum(rows("01:02:03", "10:00:00", ""), "F", "C"); s != "10:00:00" {
		t.Fatalf("Maximum %q", s)
	}
	if s := Maximum(rows("", ""), "F", "C"); s != "" {
		t.Fatalf("Maximum %q", s)
	}
}

func TestUnionAppend(t *testing.T) {
	if s := UnionAppend(rows("b,a", "a,c", ""), "F", "C"); s != "a,b,c" {
		t.Fatalf("UnionAppend %q", s)
	}
	if s := UnionAppend(rows("", ""), "F", "C"); s != "" {
		t.Fatalf("UnionAppend %q", s)
	}
}

func TestMinDate(t *testing.T) {
	rs := rows("2020-01-02T10:00:00", "2020-01-01T09:00:00", "")
	if s := MinDate(rs, "F", "C"); s != "2020-01-01T09:00:00" {
		t.Fatalf("MinDate %q", s)
	}
	// Absent and Unknown starts finish as the sentinel.
	if s := MinDate(rows("", "Unknown"), "F", "C"); s != units.Missing {
		t.Fatalf("MinDate %q", s)
	}
}

func TestMaxDate(t *testing.T) {
	rs := rows("2020-01-01T13:00:00", "2020-01-01T14:00:00")
	if s := MaxDate(rs, "F", "C"); s != "2020-01-01T14:00:00" {
		t.Fatalf("MaxDate %q", s)
	}
	// A still-running step reports Unknown, which beats any real end time
	// and renders as the sentinel.
	if s := MaxDate(rows("2020-01-01T13:00:00", "Unknown"), "F", "C"); s != units.Missing {
		t.Fatalf("MaxDate %q", s)
	}
}

func TestTimeMaxFold(t *testing.T) {
	if s := TimeMaxFold(rows("01:00:00", "UNLIMITED"), "F", "C"); s != "UNLIMITED" {
		t.Fatalf("TimeMaxFold %q", s)
	}
	if s := TimeMaxFold(rows("01:00:00", "02:00:00"), "F", "C"); s != "02:00:00" {
		t.Fatalf("TimeMaxFold %q", s)
	}
}

func TestMaxBytes(t *testing.T) {
	if s := MaxBytes(rows("1G", "5135468K", ""), "F", "C"); s != "4.90G" {
		t.Fatalf("MaxBytes %q", s)
	}
	if s := MaxBytes(rows("", ""), "F", "C"); s != units.Missing {
		t.Fatalf("MaxBytes %q", s)
	}
}

func TestMaxOfKeyed(t *testing.T) {
	rs := rows("a=1,gres/gpuutil=50", "a=2,gres/gpuutil=80")
	if s := MaxOfKeyedPercent("gres/gpuutil")(rs, "F", "C"); s != "80%" {
		t.Fatalf("MaxOfKeyedPercent %q", s)
	}
	if s := MaxOfKeyedPercent("gres/gpuutil")(rows("", ""), "F", "C"); s != units.Missing {
		t.Fatalf("MaxOfKeyedPercent %q", s)
	}
	mem := rows("gres/gpumem=1G", "gres/gpumem=2G")
	if s := MaxOfKeyedBytes("gres/gpumem")(mem, "F", "C"); s != "2.00G" {
		t.Fatalf("MaxOfKeyedBytes %q", s)
	}
}

func TestSumOfKeyed(t *testing.T) {
	rs := rows("fs/disk=100", "fs/disk=200")
	if s := SumOfKeyedBytes("fs/disk")(rs, "F", "C"); s != "300.00 " {
		t.Fatalf("SumOfKeyedBytes %q", s)
	}
	// All-absent yields the sentinel, not zero.
	if s := SumOfKeyedBytes("fs/disk")(rows("", ""), "F", "C"); s != units.Missing {
		t.Fatalf("SumOfKeyedBytes %q", s)
	}
	// Descriptors present but key absent everywhere is still the sentinel.
	if s := SumOfKeyedBytes("fs/disk")(rows("a=1", "b=2"), "F", "C"); s != units.Missing {
		t.Fatalf("SumOfKeyedBytes %q", s)
	}
}

func TestGpuResource(t *testing.T) {
	rs := rows("", "billing=6,gres/gpu:v100=2", "gres/gpu:a100=1")
	if s := GpuResource(rs, "F", "C"); s != "v100=2" {
		t.Fatalf("GpuResource %q", s)
	}
	if s := GpuResource(rows("cpu=1", ""), "F", "C"); s != "" {
		t.Fatalf("GpuResource %q", s)
	}
}
