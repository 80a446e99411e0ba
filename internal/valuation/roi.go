package valuation

import "fmt"

// ROIRange is the return on investment in percent across a cost range. A nil
// bound means the ROI is not applicable because its cost is zero.
type ROIRange struct {
	Low  *float64 `json:"roi_low"`
	High *float64 `json:"roi_high"`
}

// ComputeROIRange returns the ROI of value against the cost range. The high
// cost gives the low ROI and the low cost gives the high ROI.
func ComputeROIRange(costMin, costMax, value float64) ROIRange {
	return ROIRange{
		Low:  roi(costMax, value),
		High: roi(costMin, value),
	}
}

func roi(cost, value float64) *float64 {
	if cost <= 0 {
		return nil
	}
	r := (value - cost) / cost * 100
	return &r
}

// GainPain is value divided by cost across a cost range.
type GainPain struct {
	Low  *float64 `json:"gain_pain_low"`
	High *float64 `json:"gain_pain_high"`
}

// ComputeGainPain returns value/costMax and value/costMin.
func ComputeGainPain(costMin, costMax, value float64) GainPain {
	return GainPain{
		Low:  ratio(value, costMax),
		High: ratio(value, costMin),
	}
}

// Mid is the midpoint of the range, or the low bound when the high bound is
// not applicable.
func (g GainPain) Mid() *float64 {
	if g.Low == nil {
		return nil
	}
	if g.High == nil {
		return g.Low
	}
	m := (*g.Low + *g.High) / 2
	return &m
}

func ratio(num, den float64) *float64 {
	if den <= 0 {
		return nil
	}
	r := num / den
	return &r
}

// Tier is the health bucket of a product by its worst-case ROI.
type Tier string

const (
	TierHealthy  Tier = "healthy"
	TierWatch    Tier = "watch"
	TierAtRisk   Tier = "at_risk"
	TierCritical Tier = "critical"
	TierUnknown  Tier = "unknown"
)

// Recommendation is the Gain/Pain classification shown next to a product.
type Recommendation struct {
	Tier      Tier   `json:"tier"`
	Action    string `json:"action"`
	Color     string `json:"color"`
	Label     string `json:"label"`
	Reasoning string `json:"reasoning"`
}

// ClassifyRecommendation buckets a product by its low ROI:
// >= 100 healthy, >= 50 watch, >= 0 at risk, < 0 critical, nil unknown.
func ClassifyRecommendation(roiLow *float64) Recommendation {
	if roiLow == nil {
		return Recommendation{
			Tier:      TierUnknown,
			Action:    "N/A",
			Color:     "gray",
			Label:     "Unknown",
			Reasoning: "ROI cannot be computed without a cost estimate.",
		}
	}

	r := *roiLow
	switch {
	case r >= 100:
		return Recommendation{
			Tier:      TierHealthy,
			Action:    "BUILD",
			Color:     "green",
			Label:     "Healthy",
			Reasoning: fmt.Sprintf("Worst-case ROI of %.0f%% justifies investment.", r),
		}
	case r >= 50:
		return Recommendation{
			Tier:      TierWatch,
			Action:    "CONSIDER",
			Color:     "yellow",
			Label:     "Watch",
			Reasoning: fmt.Sprintf("Moderate worst-case ROI of %.0f%%. Consider if strategic value justifies investment or if costs can be reduced.", r),
		}
	case r >= 0:
		return Recommendation{
			Tier:      TierAtRisk,
			Action:    "DEFER",
			Color:     "orange",
			Label:     "At Risk",
			Reasoning: fmt.Sprintf("Low worst-case ROI of %.0f%%. Defer until value proposition improves or costs decrease significantly.", r),
		}
	default:
		return Recommendation{
			Tier:      TierCritical,
			Action:    "KILL",
			Color:     "red",
			Label:     "Critical",
			Reasoning: fmt.Sprintf("Negative worst-case ROI of %.0f%%. Costs exceed projected value.", r),
		}
	}
}
