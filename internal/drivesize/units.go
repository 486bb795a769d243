package drivesize

import (
	"math"
	"strconv"
	"strings"
)

// Unit is a display unit for byte counts.
type Unit int

const (
	// KB is kibibytes (1024 bytes).
	KB Unit = iota
	// MB is mebibytes (1024^2 bytes).
	MB
	// GB is gibibytes (1024^3 bytes).
	GB
)

// String returns the unit label used in report lines.
func (u Unit) String() string {
	switch u {
	case KB:
		return "KB"
	case MB:
		return "MB"
	case GB:
		return "GB"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// divisor returns the number of bytes in one u.
func (u Unit) divisor() float64 {
	switch u {
	case MB:
		return 1 << 20
	case GB:
		return 1 << 30
	default:
		return 1 << 10
	}
}

// Thresholds are the lower bounds, in bytes, at which a size is reported in
// MB or GB.
type Thresholds struct {
	// MB is the smallest size reported in MB.
	MB int64 `json:"mb" mapstructure:"mb"`
	// GB is the smallest size reported in GB.
	GB int64 `json:"gb" mapstructure:"gb"`
}

// DefaultThresholds keeps the historical MB boundary of 4 bytes, so anything
// from 4 bytes up to one GiB is reported in MB. Callers that want the
// conventional 1 MiB boundary set Thresholds.MB explicitly.
//
//nolint:gochecknoglobals // Config constant
var DefaultThresholds = Thresholds{MB: 1 << 2, GB: 1 << 30}

// Select picks the display unit for size. GB wins over MB when both bounds
// are met, so a size of exactly GB bytes is reported in GB.
func (t Thresholds) Select(size int64) Unit {
	if size >= t.GB {
		return GB
	}

	if t.MB <= size && size <= t.GB {
		return MB
	}

	return KB
}

// Convert returns size expressed in u.
func Convert(size int64, u Unit) float64 {
	return float64(size) / u.divisor()
}

// Round4 rounds v to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// FormatFloat renders v with the fewest digits that represent it exactly,
// always keeping at least one fractional digit ("30.0", "0.0293").
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}
