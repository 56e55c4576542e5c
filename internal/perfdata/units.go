// internal/perfdata/units.go
package perfdata

import (
	"fmt"
	"strings"
)

// Unit is a shared display unit chosen once per knowledge base so that every
// engine's index time (or index size) is shown on the same scale.
type Unit struct {
	Label  string
	Factor float64
}

// Format renders a raw value using the shared unit.
func (u Unit) Format(value float64) string {
	if u.Factor == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f %s", value/u.Factor, u.Label)
}

// SelectTimeUnit picks seconds, minutes or hours based on the minimum
// observed index time across engines. Using the minimum keeps the smallest
// value readable; larger values simply grow in the same unit.
func SelectTimeUnit(values []float64) Unit {
	min, ok := minOf(values)
	if !ok {
		return Unit{Label: "s", Factor: 1}
	}
	switch {
	case min >= 3600:
		return Unit{Label: "h", Factor: 3600}
	case min >= 60:
		return Unit{Label: "min", Factor: 60}
	default:
		return Unit{Label: "s", Factor: 1}
	}
}

// SelectSizeUnit picks a byte unit based on the maximum observed index size
// across engines, so the largest index determines the scale.
func SelectSizeUnit(values []float64) Unit {
	max, ok := maxOf(values)
	if !ok {
		return Unit{Label: "B", Factor: 1}
	}
	switch {
	case max >= 1e12:
		return Unit{Label: "TB", Factor: 1e12}
	case max >= 1e9:
		return Unit{Label: "GB", Factor: 1e9}
	case max >= 1e6:
		return Unit{Label: "MB", Factor: 1e6}
	case max >= 1e3:
		return Unit{Label: "KB", Factor: 1e3}
	default:
		return Unit{Label: "B", Factor: 1}
	}
}

func minOf(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

func maxOf(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

// FormatCount renders an integer with thousands separators, the way the
// webapp displays result sizes.
func FormatCount(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, ",")
}
