package journal

import (
	"bufio"
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// Follow streams new journal entries of <utility>.service onto out until
// ctx is cancelled. Entries that fail to parse are skipped, matching
// Fetch. The channel is not closed by Follow; the caller owns it.
func (r *Reader) Follow(ctx context.Context, utility string, out chan<- Entry) error {
	cmd := exec.CommandContext(ctx, "journalctl",
		"-u", utility+".service",
		"--no-pager",
		"-n", "0",
		"-f",
		"--output=json",
	)

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to open journalctl stdout")
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "failed to start journalctl")
	}

	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}

		select {
		case out <- entry:
		case <-ctx.Done():
			_ = cmd.Wait()
			return nil
		}
	}

	err = cmd.Wait()
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "journalctl stopped unexpectedly")
	}

	return scanner.Err()
}
