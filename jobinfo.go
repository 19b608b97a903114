// `jobinfo` - collect and summarize the accounting records of one Slurm job.
//
// The accounting tools emit one row per job step, each row partially
// populated.  jobinfo folds those rows into a single job view and prints a
// fixed report.  For a running job the resident-usage figures come from
// sstat rather than the accounting history; for a pending job the
// dependency and reason come from squeue.
//
// Usage:
//  jobinfo [options] jobid
//
// Exits 0 on success and 1 when the job is unknown to the accounting
// history ("No such job" on stderr).

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rug-cit-hpc/slurm-jobinfo3/common"
	"github.com/rug-cit-hpc/slurm-jobinfo3/prom"
	"github.com/rug-cit-hpc/slurm-jobinfo3/report"
	"github.com/rug-cit-hpc/slurm-jobinfo3/slurm"
	"github.com/rug-cit-hpc/slurm-jobinfo3/status"
	"github.com/rug-cit-hpc/slurm-jobinfo3/units"
)

const jobinfoVersion = "3.0.0"

var (
	configFile  = flag.String("config", "", "Site config `filename` (default /etc/jobinfo.yml)")
	prometheus  = flag.String("prometheus", "", "Prometheus base `url` for the GPU utilization fallback")
	verbose     = flag.Bool("v", false, "Verbose diagnostics; also prints hidden report lines")
	showVersion = flag.Bool("version", false, "Print the version and exit")
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [options] jobid\n\n", os.Args[0])
		fmt.Fprintf(out, "Summarize the accounting records of one Slurm job.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("jobinfo version %s\n", jobinfoVersion)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(flag.CommandLine.Output(), "Required jobid missing, try -h\n")
		os.Exit(2)
	}

	if err := jobinfo(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func jobinfo(jobID string) error {
	common.ApplyDefault(configFile, common.DefaultConfigFile)
	common.ApplyDefault(prometheus, common.DefaultPrometheus)
	if *verbose || common.HasDefault(common.DefaultVerbose) {
		common.Log.LowerLevelTo(status.LogLevelDebug)
	}

	explicit := *configFile != ""
	fn := *configFile
	if fn == "" {
		fn = common.DefaultConfigPath
	}
	cfg, err := common.ReadConfig(fn, explicit)
	if err != nil {
		return err
	}
	if *prometheus != "" {
		cfg.Prometheus.URL = *prometheus
	}

	src := &slurm.Source{Sacct: cfg.Sacct, Sstat: cfg.Sstat, Squeue: cfg.Squeue}
	hist, err := src.HistoricalRows(jobID, report.Columns())
	if err != nil {
		return err
	}
	if len(hist) == 0 {
		return report.ErrNoJob
	}

	// Row 0 is the job's main record; its state decides which further
	// sources are worth asking.
	var live []slurm.StepRecord
	var pending *slurm.PendingInfo
	switch hist[0]["State"] {
	case "RUNNING":
		live = src.LiveRows(jobID, report.LiveColumns())
	case "PENDING":
		pending = src.Pending(jobID)
	}

	job, err := report.Aggregate(hist, live, pending)
	if err != nil {
		return err
	}
	report.Derive(job)
	fetchGPUUtilization(job, jobID, cfg)

	report.Render(os.Stdout, job, report.RenderOptions{
		ShowAll:    *verbose,
		GPUMarkers: cfg.GPUPartitions,
	})
	report.RenderHints(os.Stdout, report.Hints(job, cfg.Hints))
	return nil
}

// The accounting rows only carry gres/gpuutil on clusters whose prolog
// publishes it.  Elsewhere a configured Prometheus server can fill the gap;
// any failure just leaves the sentinel in place.
func fetchGPUUtilization(job *report.Job, jobID string, cfg common.Config) {
	pc := prom.Config{URL: cfg.Prometheus.URL, Query: cfg.Prometheus.Query}
	if !pc.Enabled() ||
		!job.GPUVisible(cfg.GPUPartitions) ||
		job.Get(report.GPUUtilization) != units.Missing {
		return
	}
	at := time.Now()
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", job.Get(report.End), time.Local); err == nil {
		at = t
	}
	s, err := prom.GPUUtilization(context.Background(), pc, jobID, job.Get(report.NodeList), at)
	if err != nil {
		common.Log.Infof("GPU utilization fallback: %v", err)
		return
	}
	job.Set(report.GPUUtilization, s)
}
