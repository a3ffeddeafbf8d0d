package deck

import (
	"errors"
	"fmt"
)

// ConfigError reports a slide set that cannot be presented. It is fatal at
// startup; nothing else in this package returns an error.
type ConfigError struct {
	Slide  int // -1 when the problem is not tied to one slide
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Slide >= 0 {
		return fmt.Sprintf("invalid deck: slide %d: %s", e.Slide+1, e.Reason)
	}
	return fmt.Sprintf("invalid deck: %s", e.Reason)
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func validateSlides(slides []Slide) error {
	if len(slides) == 0 {
		return &ConfigError{Slide: -1, Reason: "no slides"}
	}
	for i, s := range slides {
		if s.DurationSeconds < 0 {
			return &ConfigError{Slide: i, Reason: fmt.Sprintf("negative duration %d", s.DurationSeconds)}
		}
	}
	return nil
}
