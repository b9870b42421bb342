package lottery

import "math"

// The worst-ranked eligible team opens at DefaultBaseOdds and each slot
// after it carries the previous slot's weight divided by DefaultDropFactor.
// Weights are relative; the draw never normalizes them.
const (
	DefaultBaseOdds   = 60.0
	DefaultDropFactor = 2.5
	DefaultSlots      = 6
)

// BuildOddsTable returns the weight table for slotCount lottery slots, index
// 0 belonging to the worst-ranked team.
func BuildOddsTable(slotCount int) []float64 {
	return buildOddsTable(slotCount, DefaultBaseOdds, DefaultDropFactor)
}

func buildOddsTable(slotCount int, baseOdds, dropFactor float64) []float64 {
	if slotCount <= 0 {
		return nil
	}
	table := make([]float64, slotCount)
	table[0] = baseOdds
	for i := 1; i < slotCount; i++ {
		table[i] = table[i-1] / dropFactor
	}
	return table
}

// DisplayOdds rounds a raw weight to two decimals. Display only; draw math
// keeps full precision.
func DisplayOdds(weight float64) float64 {
	return math.Round(weight*100) / 100
}

// DisplayPercent is a weight's share of total, as a rounded percentage.
func DisplayPercent(weight, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(weight/total*10000) / 100
}

func TotalWeight(weights []float64) float64 {
	var total float64
	for _, w := range weights {
		total += w
	}
	return total
}
