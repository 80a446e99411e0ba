package valuation

import "testing"

func TestComputeROIRange(t *testing.T) {
	r := ComputeROIRange(100, 200, 300)

	nearlyEqualPtr(t, "roiHigh", r.High, 200)
	nearlyEqualPtr(t, "roiLow", r.Low, 50)

	rec := ClassifyRecommendation(r.Low)
	if rec.Tier != TierWatch || rec.Color != "yellow" {
		t.Fatalf("classification = %+v, want watch/yellow", rec)
	}
}

func TestComputeROIRange_ZeroCostIsNotApplicable(t *testing.T) {
	r := ComputeROIRange(0, 0, 500)
	if r.Low != nil || r.High != nil {
		t.Fatalf("expected nil ROI bounds, got %+v", r)
	}

	r = ComputeROIRange(0, 100, 500)
	nearlyEqualPtr(t, "roiLow", r.Low, 400)
	if r.High != nil {
		t.Fatalf("roiHigh = %v, want nil", *r.High)
	}
}

func TestComputeGainPain(t *testing.T) {
	g := ComputeGainPain(100, 200, 300)

	nearlyEqualPtr(t, "low", g.Low, 1.5)
	nearlyEqualPtr(t, "high", g.High, 3)
	nearlyEqualPtr(t, "mid", g.Mid(), 2.25)

	g = ComputeGainPain(0, 200, 300)
	nearlyEqualPtr(t, "mid without high", g.Mid(), 1.5)

	if ComputeGainPain(0, 0, 300).Mid() != nil {
		t.Fatalf("expected nil mid for zero costs")
	}
}

func TestClassifyRecommendation(t *testing.T) {
	tests := []struct {
		roi    *float64
		tier   Tier
		color  string
		action string
	}{
		{Float(250), TierHealthy, "green", "BUILD"},
		{Float(100), TierHealthy, "green", "BUILD"},
		{Float(99.99), TierWatch, "yellow", "CONSIDER"},
		{Float(50), TierWatch, "yellow", "CONSIDER"},
		{Float(49.9), TierAtRisk, "orange", "DEFER"},
		{Float(0), TierAtRisk, "orange", "DEFER"},
		{Float(-0.01), TierCritical, "red", "KILL"},
		{nil, TierUnknown, "gray", "N/A"},
	}

	for _, tt := range tests {
		rec := ClassifyRecommendation(tt.roi)
		if rec.Tier != tt.tier || rec.Color != tt.color || rec.Action != tt.action {
			t.Fatalf("ClassifyRecommendation(%v) = %+v, want %s/%s/%s", tt.roi, rec, tt.tier, tt.color, tt.action)
		}
		if rec.Reasoning == "" {
			t.Fatalf("ClassifyRecommendation(%v) has no reasoning", tt.roi)
		}
	}
}
