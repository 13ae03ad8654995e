package timefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidDuration is returned by Parse for input that is not a
// "HH:MM:SS" duration (optionally prefixed with '-').
var ErrInvalidDuration = errors.New("invalid duration format, use [-]HH:MM:SS")

var secondsPerHour = decimal.NewFromInt(3600)

// Format renders a signed duration in seconds as "HH:MM:SS", prefixed with
// '-' when negative. Hours are zero-padded to two digits but unbounded, so
// accumulated period balances like "173:20:00" render as-is.
func Format(seconds int64) string {
	neg := seconds < 0
	if neg {
		seconds = -seconds
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	formatted := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	if neg {
		return "-" + formatted
	}
	return formatted
}

// Parse is the exact inverse of Format: Parse(Format(x)) == x for every
// int64 second count whose absolute hour component fits in the string.
func Parse(s string) (int64, error) {
	raw := s
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}

	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || len(parts[0]) < 2 || !isDigits(parts[0]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || len(parts[1]) != 2 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	secs, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || len(parts[2]) != 2 || secs > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}

	total := hours*3600 + minutes*60 + secs
	if neg {
		total = -total
	}
	return total, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FromHours converts an exact decimal hour count (e.g. "8.5") to whole
// seconds, rounding to the nearest second. Decimal arithmetic keeps inputs
// like 7.75h exact where float64 would drift.
func FromHours(hours decimal.Decimal) int64 {
	return hours.Mul(secondsPerHour).Round(0).IntPart()
}

// Hours converts whole seconds to decimal hours with two fractional digits,
// for human-facing payloads that report hours rather than HH:MM:SS.
func Hours(seconds int64) decimal.Decimal {
	return decimal.NewFromInt(seconds).Div(secondsPerHour).Round(2)
}
