package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatPercent renders a percentage axis value with one decimal.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatBytes renders a byte count with SI units ("1.2 MB").
// Negative values keep their sign; fractions are rounded.
func FormatBytes(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v < 0 {
		return "-" + FormatBytes(-v)
	}
	// Values past uint64 have no defined conversion.
	if v >= math.MaxUint64 {
		return strconv.FormatFloat(v, 'g', 3, 64) + " B"
	}
	return humanize.Bytes(uint64(math.Round(v)))
}

// FormatSample renders a sample index.
func FormatSample(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
