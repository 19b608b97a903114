package report

import (
	"fmt"
	"io"
	"strings"
)

type RenderOptions struct {
	// Print every line regardless of visibility (diagnostic mode).
	ShowAll bool
	// Partition-name markers that make a job count as a GPU job.
	GPUMarkers []string
}

// Render prints one line per visible LineSpec, label column padded to the
// longest description among all lines - visible or not, so alignment does
// not shift between runs.
func Render(w io.Writer, j *Job, opts RenderOptions) {
	width := 0
	for _, l := range reportLines {
		if len(l.Desc) > width {
			width = len(l.Desc)
		}
	}
	for _, l := range resolveVisibility(j, opts.GPUMarkers) {
		if !l.Visible && !opts.ShowAll {
			continue
		}
		args := make([]any, len(l.Fields))
		for i, f := range l.Fields {
			args[i] = j.Get(f)
		}
		value := strings.TrimRight(fmt.Sprintf(l.Format, args...), " ")
		fmt.Fprintf(w, "%-*s: %s\n", width, l.Desc, value)
	}
}
