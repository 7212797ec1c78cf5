// Package output renders log lines and writes them to stdout or a pager.
package output

// Mode selects how lines are rendered.
type Mode int

const (
	// ModePassthrough emits every line exactly as read.
	ModePassthrough Mode = iota

	// ModeColor wraps lines that carry an identifier in that identifier's color.
	ModeColor

	// ModeColorDisabled is ModePassthrough chosen explicitly by the user,
	// overriding a mode that would otherwise color.
	ModeColorDisabled
)

// ModeFor returns the render mode for the --no-color setting.
func ModeFor(noColor bool) Mode {
	if noColor {
		return ModeColorDisabled
	}
	return ModeColor
}

func (m Mode) String() string {
	switch m {
	case ModePassthrough:
		return "passthrough"
	case ModeColor:
		return "color"
	case ModeColorDisabled:
		return "color-disabled"
	default:
		return "unknown"
	}
}
