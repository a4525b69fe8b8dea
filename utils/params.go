package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidParameter marks a command-line token that was reported and ignored
var ErrInvalidParameter = errors.New("invalid parameter")

// ParseArgs applies key=value tokens on top of base. Keys are case-insensitive.
// Bad tokens never abort parsing: each one yields a warning wrapping ErrInvalidParameter
// and the corresponding value in base is kept.
func ParseArgs(base Config, args []string) (Config, []error) {
	var (
		config   = base
		warnings []error
	)

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" || strings.Contains(value, "=") {
			warnings = append(warnings, errors.Wrapf(ErrInvalidParameter, "malformed argument %q", arg))
			continue
		}

		key = strings.ToLower(key)
		var err error
		switch key {
		case "w":
			err = parsePositive(value, "width", &config.Width)
		case "h":
			err = parsePositive(value, "height", &config.Height)
		case "g":
			err = parseNonNegative(value, "generations", &config.Generations)
		case "s":
			err = parseNonNegative(value, "speed", &config.DelayMs)
		case "p":
			config.Pattern = value
		case "d":
			display := strings.ToLower(value)
			if !validDisplay(display) {
				err = errors.Wrapf(ErrInvalidParameter, "display = %q [invalid]", value)
				break
			}
			config.Display = display
		case "r":
			seed, parseErr := strconv.ParseInt(value, 10, 64)
			if parseErr != nil {
				err = errors.Wrapf(ErrInvalidParameter, "seed = %q [invalid]", value)
				break
			}
			config.Seed = &seed
		default:
			err = errors.Wrapf(ErrInvalidParameter, "unknown parameter %q", key)
		}

		if err != nil {
			warnings = append(warnings, err)
		}
	}

	return config, warnings
}

func parsePositive(value, name string, dst *int) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s = %q [invalid]", name, value)
	}
	*dst = n
	return nil
}

func parseNonNegative(value, name string, dst *int) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s = %q [invalid]", name, value)
	}
	*dst = n
	return nil
}
