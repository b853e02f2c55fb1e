package unit_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/unitboard/unitboard/pkg/unit"
)

// fakeRunner maps a command line to canned output or a canned error.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.outputs[key], nil
}

func TestProbeReportsSystemctlOutput(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"systemctl is-active backup.service":  "active\n",
		"systemctl is-enabled backup.service": "enabled\n",
	}}

	status := unit.NewProber(runner).Probe(context.Background(), "backup.service")

	require.Equal(t, "backup.service", status.Name)
	require.Equal(t, unit.ActiveStateActive, status.Active)
	require.Equal(t, unit.EnabledStateEnabled, status.Enabled)
}

func TestProbeTreatsEmptyOutputAsInactiveAndDisabled(t *testing.T) {
	runner := &fakeRunner{}

	status := unit.NewProber(runner).Probe(context.Background(), "ghost.service")

	require.Equal(t, unit.ActiveStateInactive, status.Active)
	require.Equal(t, unit.EnabledStateDisabled, status.Enabled)
}

func TestProbeDegradesFailedAxisToErrorWithoutBlockingTheOther(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{
			"systemctl is-enabled backup.service": "enabled\n",
		},
		errs: map[string]error{
			"systemctl is-active backup.service": errors.New("exec: \"systemctl\": executable file not found in $PATH"),
		},
	}

	status := unit.NewProber(runner).Probe(context.Background(), "backup.service")

	require.Equal(t, unit.ActiveStateError, status.Active)
	require.Equal(t, unit.EnabledStateEnabled, status.Enabled)
}

func TestUtilityStatusAlwaysContainsExactlyOneService(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"systemctl is-active backup.service":  errors.New("boom"),
		"systemctl is-enabled backup.service": errors.New("boom"),
		"systemctl is-active backup.timer":    errors.New("boom"),
		"systemctl is-enabled backup.timer":   errors.New("boom"),
	}}

	status := unit.NewProber(runner).UtilityStatus(context.Background(), "backup")

	require.Len(t, status.Services, 1)
	require.Equal(t, "backup.service", status.Services[0].Name)
	require.True(t, status.Enabled)
}

func TestUtilityStatusIncludesExistingTimer(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"systemctl is-active backup.service":  "active\n",
		"systemctl is-enabled backup.service": "enabled\n",
		"systemctl is-active backup.timer":    "active\n",
		"systemctl is-enabled backup.timer":   "enabled\n",
	}}

	status := unit.NewProber(runner).UtilityStatus(context.Background(), "backup")

	require.Len(t, status.Timers, 1)
	require.Equal(t, "backup.timer", status.Timers[0].Name)
}

func TestUtilityStatusSuppressesAbsentTimer(t *testing.T) {
	for _, state := range []string{"not-found", "error"} {
		t.Run(state, func(t *testing.T) {
			runner := &fakeRunner{outputs: map[string]string{
				"systemctl is-active backup.service":  "active\n",
				"systemctl is-enabled backup.service": "enabled\n",
				"systemctl is-active backup.timer":    "inactive\n",
			}}
			if state == "error" {
				runner.errs = map[string]error{
					"systemctl is-enabled backup.timer": errors.New("boom"),
				}
			} else {
				runner.outputs["systemctl is-enabled backup.timer"] = "not-found\n"
			}

			status := unit.NewProber(runner).UtilityStatus(context.Background(), "backup")

			require.Empty(t, status.Timers)
			require.NotNil(t, status.Timers, "timers must serialize as an empty list, not null")
		})
	}
}

func TestReportAllPreservesConfigurationOrder(t *testing.T) {
	runner := &fakeRunner{}
	utilities := []string{"zulu", "alpha", "mike"}

	report := unit.NewProber(runner).ReportAll(context.Background(), utilities)

	require.Len(t, report.Utilities, len(utilities))
	for i, utility := range utilities {
		require.Equal(t, utility, report.Utilities[i].Name)
		require.Equal(t, fmt.Sprintf("%s.service", utility), report.Utilities[i].Services[0].Name)
	}
}

func TestReportAllWithNoUtilitiesYieldsEmptyList(t *testing.T) {
	report := unit.NewProber(&fakeRunner{}).ReportAll(context.Background(), nil)

	require.NotNil(t, report.Utilities)
	require.Empty(t, report.Utilities)
}
