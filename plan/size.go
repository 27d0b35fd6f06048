package plan

import (
	"strconv"
	"strings"
)

// byte count thresholds, binary (1024-based) as required by §4.A, not the
// teacher's decimal FormatSize — this function trades locale awareness for
// an exact, round-trippable string.
const (
	sizeKiB int64 = 1024
	sizeMiB       = 1024 * sizeKiB
	sizeGiB       = 1024 * sizeMiB
	sizeTiB       = 1024 * sizeGiB
)

var sizeUnitMultipliers = map[string]int64{
	"B":   1,
	"K":   sizeKiB,
	"KB":  sizeKiB,
	"KIB": sizeKiB,
	"M":   sizeMiB,
	"MB":  sizeMiB,
	"MIB": sizeMiB,
	"G":   sizeGiB,
	"GB":  sizeGiB,
	"GIB": sizeGiB,
	"T":   sizeTiB,
	"TB":  sizeTiB,
	"TIB": sizeTiB,
}

// InvalidSizeError is returned by ParseSize when s matches neither the
// bare-integer nor the number-plus-unit shape.
type InvalidSizeError struct {
	Input string
}

func (err *InvalidSizeError) Error() string {
	return f("invalid size %q: expected an integer byte count or a number followed by one of B/K/KB/KiB/M/MB/MiB/G/GB/GiB/T/TB/TiB", err.Input)
}

// ParseSize parses a human-readable size into a byte count. Accepts
// optional surrounding whitespace, a bare non-negative integer (bytes), or
// a decimal number followed by a case-insensitive unit. Multipliers are
// binary (1024-based); the result is floor(number * multiplier).
func ParseSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &InvalidSizeError{Input: s}
	}

	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if n < 0 {
			return 0, &InvalidSizeError{Input: s}
		}
		return n, nil
	}

	i := 0
	for i < len(trimmed) && (isDigit(trimmed[i]) || trimmed[i] == '.') {
		i++
	}
	if i == 0 {
		return 0, &InvalidSizeError{Input: s}
	}
	numPart := trimmed[:i]
	unitPart := strings.ToUpper(strings.TrimSpace(trimmed[i:]))

	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil || num < 0 {
		return 0, &InvalidSizeError{Input: s}
	}

	mult, ok := sizeUnitMultipliers[unitPart]
	if !ok {
		return 0, &InvalidSizeError{Input: s}
	}

	return int64(num * float64(mult)), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// FormatSize renders a signed byte count as a human-readable string:
// B below 1 KiB, otherwise KB/MB with one decimal, GB/TB with two,
// preserving sign. Pure, no locale.
func FormatSize(bytes int64) string {
	sign := ""
	n := bytes
	if n < 0 {
		sign = "-"
		n = -n
	}

	switch {
	case n < sizeKiB:
		return f("%s%d B", sign, n)
	case n < sizeMiB:
		return f("%s%.1f KB", sign, float64(n)/float64(sizeKiB))
	case n < sizeGiB:
		return f("%s%.1f MB", sign, float64(n)/float64(sizeMiB))
	case n < sizeTiB:
		return f("%s%.2f GB", sign, float64(n)/float64(sizeGiB))
	default:
		return f("%s%.2f TB", sign, float64(n)/float64(sizeTiB))
	}
}
