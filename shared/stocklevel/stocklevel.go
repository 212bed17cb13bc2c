// Package stocklevel classifies a stock count against its min/max thresholds.
package stocklevel

type Level int

const (
	Healthy Level = iota
	Low
	Critical
)

// lowBandPercent is the share of the min..max range above min still reported as low.
const lowBandPercent = 25

// Of returns Critical at or below min, Low inside the band just above min,
// and Healthy otherwise. When max does not exceed min only the critical rule applies.
func Of(current, minStock, maxStock int) Level {
	if current <= minStock {
		return Critical
	}

	if maxStock <= minStock {
		return Healthy
	}

	// current < min + 25% of (max - min), kept in integers
	if (current-minStock)*100 < (maxStock-minStock)*lowBandPercent {
		return Low
	}

	return Healthy
}
