package unit

// ActiveState is the activation state of a systemd unit as reported by
// `systemctl is-active`. Common values are listed below; any other word
// systemd prints (e.g. "activating", "failed") is passed through as-is.
type ActiveState string

const (
	ActiveStateActive   ActiveState = "active"
	ActiveStateInactive ActiveState = "inactive"
	ActiveStateUnknown  ActiveState = "unknown"
	ActiveStateError    ActiveState = "error"
)

// EnabledState is the installation state of a unit as reported by
// `systemctl is-enabled`.
type EnabledState string

const (
	EnabledStateEnabled  EnabledState = "enabled"
	EnabledStateDisabled EnabledState = "disabled"
	EnabledStateUnknown  EnabledState = "unknown"
	EnabledStateError    EnabledState = "error"
	EnabledStateNotFound EnabledState = "not-found"
)

// Status describes one systemd unit along its two status axes.
type Status struct {
	Name    string       `json:"name"`
	Active  ActiveState  `json:"active"`
	Enabled EnabledState `json:"enabled"`
}

// UtilityStatus is the full status record of one configured utility. A
// utility always has exactly one service unit; the timer unit is only
// reported when it exists on the host.
type UtilityStatus struct {
	Name     string   `json:"name"`
	Enabled  bool     `json:"enabled"`
	Services []Status `json:"services"`
	Timers   []Status `json:"timers"`
}

// Report is the aggregate status of all configured utilities, in
// configuration file order.
type Report struct {
	Utilities []UtilityStatus `json:"utilities"`
}
