package unit

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Prober queries unit status via systemctl.
type Prober struct {
	runner Runner
}

func NewProber(runner Runner) *Prober {
	return &Prober{runner: runner}
}

// Probe queries both status axes of a unit. The axes degrade
// independently: a failed invocation on one axis yields "error" for that
// axis and must never block reporting of the other.
func (p *Prober) Probe(ctx context.Context, unitName string) Status {
	status := Status{
		Name:    unitName,
		Active:  ActiveStateUnknown,
		Enabled: EnabledStateUnknown,
	}

	if out, err := p.runner.Output(ctx, "systemctl", "is-active", unitName); err != nil {
		log.WithField("unit", unitName).WithError(err).Debug("is-active probe failed")
		status.Active = ActiveStateError
	} else if state := strings.TrimSpace(out); state == "" {
		// systemctl prints nothing for units it does not recognize
		status.Active = ActiveStateInactive
	} else {
		status.Active = ActiveState(state)
	}

	if out, err := p.runner.Output(ctx, "systemctl", "is-enabled", unitName); err != nil {
		log.WithField("unit", unitName).WithError(err).Debug("is-enabled probe failed")
		status.Enabled = EnabledStateError
	} else if state := strings.TrimSpace(out); state == "" {
		status.Enabled = EnabledStateDisabled
	} else {
		status.Enabled = EnabledState(state)
	}

	return status
}

// UtilityStatus assembles the full status record for one utility. The
// service unit is probed unconditionally; the timer unit is probed as
// well, but only reported when it actually exists, since not every
// utility ships a timer.
func (p *Prober) UtilityStatus(ctx context.Context, utility string) UtilityStatus {
	status := UtilityStatus{
		Name:     utility,
		Enabled:  true,
		Services: []Status{p.Probe(ctx, utility+".service")},
		Timers:   []Status{},
	}

	timer := p.Probe(ctx, utility+".timer")
	if timer.Enabled != EnabledStateNotFound && timer.Enabled != EnabledStateError {
		status.Timers = append(status.Timers, timer)
	}

	return status
}

// ReportAll probes every given utility and assembles the aggregate
// report, preserving the input order.
func (p *Prober) ReportAll(ctx context.Context, utilities []string) Report {
	report := Report{Utilities: []UtilityStatus{}}
	for _, utility := range utilities {
		report.Utilities = append(report.Utilities, p.UtilityStatus(ctx, utility))
	}
	return report
}
