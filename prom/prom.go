// Package prom asks a Prometheus server for the GPU utilization of a job's
// nodes when the accounting rows carry no gres/gpuutil data.  The query
// expression comes from the site config, with {jobid} and {nodes} expanded;
// every sample of the resulting vector becomes one percentage in the
// report, e.g. "50%,100%" for a two-GPU job.

package prom

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/api"
	promv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

type Config struct {
	URL   string
	Query string
}

func (cfg Config) Enabled() bool {
	return cfg.URL != "" && cfg.Query != ""
}

// GPUUtilization evaluates the configured expression at the given instant
// and formats the per-GPU results.  An empty vector is an error: the caller
// treats any error as "no data" and keeps the sentinel.
func GPUUtilization(ctx context.Context, cfg Config, jobID, nodes string, at time.Time) (string, error) {
	client, err := api.NewClient(api.Config{Address: cfg.URL})
	if err != nil {
		return "", fmt.Errorf("Failed to connect to Prometheus at %s: %v", cfg.URL, err)
	}

	expr := strings.ReplaceAll(cfg.Query, "{jobid}", jobID)
	expr = strings.ReplaceAll(expr, "{nodes}", nodes)
	value, _, err := promv1.NewAPI(client).Query(ctx, expr, at)
	if err != nil {
		return "", fmt.Errorf("Failed to query Prometheus: %v", err)
	}

	vector, ok := value.(model.Vector)
	if !ok || len(vector) == 0 {
		return "", fmt.Errorf("No GPU utilization samples for job %s", jobID)
	}
	parts := make([]string, len(vector))
	for i, sample := range vector {
		parts[i] = fmt.Sprintf("%.0f%%", float64(sample.Value))
	}
	return strings.Join(parts, ","), nil
}
