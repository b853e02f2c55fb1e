package journal

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/unitboard/unitboard/pkg/unit"
)

// DefaultLines is the number of journal entries fetched per request.
const DefaultLines = 50

// Entry is one journal line, reduced to what the dashboard renders.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Result carries the journal entries of one utility. When the journal
// could not be read at all, Error is set and Entries is empty, so
// callers can render "no logs available" without special-casing.
type Result struct {
	Utility string  `json:"utility"`
	Error   string  `json:"error,omitempty"`
	Entries []Entry `json:"entries"`
}

// Reader fetches recent journal entries for a utility's service unit.
type Reader struct {
	Runner unit.Runner
	Lines  int
}

func NewReader(runner unit.Runner, lines int) *Reader {
	if lines <= 0 {
		lines = DefaultLines
	}
	return &Reader{Runner: runner, Lines: lines}
}

// Fetch reads the most recent journal entries of <utility>.service.
// Malformed journal lines are skipped individually; only a failure to
// invoke journalctl itself surfaces in the result's Error field.
func (r *Reader) Fetch(ctx context.Context, utility string) Result {
	lines := r.Lines
	if lines <= 0 {
		lines = DefaultLines
	}

	out, err := r.Runner.Output(ctx, "journalctl",
		"-u", utility+".service",
		"--no-pager",
		"-n", strconv.Itoa(lines),
		"--output=json",
	)
	if err != nil {
		log.WithField("utility", utility).WithError(err).Warn("failed to read journal")
		return Result{Utility: utility, Error: err.Error(), Entries: []Entry{}}
	}

	entries := []Entry{}
	for _, line := range strings.Split(out, "\n") {
		if entry, ok := parseLine(line); ok {
			entries = append(entries, entry)
		}
	}

	return Result{Utility: utility, Entries: entries}
}

// parseLine decodes one journalctl --output=json line. Lines that are
// not valid JSON or carry no usable __REALTIME_TIMESTAMP are dropped.
func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}

	fields := map[string]interface{}{}
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return Entry{}, false
	}

	usec, ok := realtimeTimestamp(fields["__REALTIME_TIMESTAMP"])
	if !ok {
		return Entry{}, false
	}

	// MESSAGE may be a byte array for non-UTF8 payloads; those render
	// as an empty message rather than being dropped.
	message, _ := fields["MESSAGE"].(string)

	return Entry{Timestamp: time.UnixMicro(usec), Message: message}, true
}

// realtimeTimestamp converts the journal's microsecond epoch field,
// which journalctl emits as a JSON string.
func realtimeTimestamp(field interface{}) (int64, bool) {
	switch value := field.(type) {
	case string:
		usec, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, false
		}
		return usec, true
	case float64:
		return int64(value), true
	default:
		return 0, false
	}
}
