package plotting

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// Multipliers tried, in order, for the tick step within a decade.
var niceSteps = []float64{1, 2, 2.5, 5}

// MaxNTicks places evenly spaced major ticks on round values,
// using the smallest step that splits the range into at most N
// intervals. It may return fewer ticks than N+1 when the range
// is narrow relative to the chosen step.
type MaxNTicks struct {
	N int
}

var _ plot.Ticker = MaxNTicks{}

func (t MaxNTicks) Ticks(min, max float64) []plot.Tick {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []plot.Tick{{Value: min, Label: strconv.FormatFloat(min, 'g', -1, 64)}}
	}
	n := t.N
	if n < 1 {
		n = 1
	}

	raw := (max - min) / float64(n)
	exp := math.Floor(math.Log10(raw))

	// Steps below raw/10 always give more than n intervals.
	// widest is the largest step seen that still lands a tick in range.
	var step, widest float64
search:
	for e := exp - 1; e <= exp+2; e++ {
		scale := math.Pow(10, e)
		for _, m := range niceSteps {
			s := m * scale
			lo := math.Ceil(min/s - 1e-9)
			hi := math.Floor(max/s + 1e-9)
			if lo > hi {
				continue
			}
			widest = s
			if hi-lo <= float64(n) {
				step = s
				break search
			}
		}
	}
	if step == 0 {
		step = widest
	}
	if step == 0 {
		return []plot.Tick{{Value: min, Label: strconv.FormatFloat(min, 'g', -1, 64)}}
	}

	prec := decimals(step)
	lo := int64(math.Ceil(min/step - 1e-9))
	hi := int64(math.Floor(max/step + 1e-9))
	ticks := make([]plot.Tick, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		v := float64(k) * step
		label := strconv.FormatFloat(v, 'f', prec, 64)
		// Strip float noise such as 0.6000000000000001.
		v, _ = strconv.ParseFloat(label, 64)
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

// decimals returns the number of fractional digits needed
// to print multiples of step exactly.
func decimals(step float64) int {
	for d := 0; d < 15; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-6*scaled {
			return d
		}
	}
	return 15
}
