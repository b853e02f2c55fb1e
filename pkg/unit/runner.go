package unit

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

// Runner abstracts external command invocation so that probing and log
// fetching logic can be exercised without a systemd host.
//
// Output returns the command's captured stdout. A non-zero exit code is
// not an error: systemctl uses the exit code to mirror the unit state it
// already printed. Only a failure to run the command at all (missing
// binary, permission problem, deadline exceeded) is reported as an error.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands on the host. Every invocation is bounded by
// Timeout so a hung subprocess cannot stall a request indefinitely.
type ExecRunner struct {
	Timeout time.Duration
}

// DefaultTimeout bounds a single external command invocation.
const DefaultTimeout = 10 * time.Second

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	stdout := bytes.Buffer{}
	cmd.Stdout = &stdout

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", errors.Wrapf(ctxErr, "command %q timed out", name)
	}

	exitErr := &exec.ExitError{}
	if err != nil && !errors.As(err, &exitErr) {
		return "", errors.Wrapf(err, "failed to run %q", name)
	}

	return stdout.String(), nil
}
