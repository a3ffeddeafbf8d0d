package deck

import (
	"fmt"
	"time"
)

// TickInterval is the cadence of every running countdown.
const TickInterval = time.Second

// Completion pulse shown by the display host.
const (
	PulseCount  = 3
	PulsePeriod = 500 * time.Millisecond
	PulseDecay  = 2000 * time.Millisecond
)

// Severity classifies how urgent a countdown is.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityDanger
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityDanger:
		return "danger"
	default:
		return "normal"
	}
}

// SeverityFor derives the severity from the remaining share of the duration:
// danger at or below 20%, warning at or below 40%, normal above that.
func SeverityFor(remaining, duration int) Severity {
	if duration <= 0 {
		return SeverityNormal
	}
	// Integer comparison of remaining/duration*100 against the thresholds.
	switch {
	case remaining*100 <= duration*20:
		return SeverityDanger
	case remaining*100 <= duration*40:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
