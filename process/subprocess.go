// Abstractions for running subprocesses and capturing their output.

package process

import (
	"fmt"
	"os/exec"
	"strings"
)

// Run the program with the arguments and return its standard output.  If the
// program cannot be run or exits with a nonzero code then an error is
// returned that includes whatever the program wrote to standard error.

func RunSubprocess(programPath string, arguments []string) (string, error) {
	cmd := exec.Command(programPath, arguments...)
	var stdout strings.Builder
	var stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		if errs := strings.TrimSpace(stderr.String()); errs != "" {
			return "", fmt.Errorf("While running %s: %v: %s", programPath, err, errs)
		}
		return "", fmt.Errorf("While running %s: %v", programPath, err)
	}
	return stdout.String(), nil
}
