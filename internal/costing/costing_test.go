package costing

import (
	"math"
	"testing"

	"github.com/Simplici0/product-jarvis/internal/valuation"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCostTask_UsesRateRange(t *testing.T) {
	task := TaskInput{
		Name:           "API design",
		EstimatedHours: 40,
		ActualHours:    20,
		HourlyCostMin:  50,
		HourlyCostMax:  80,
	}

	tc := CostTask(task)

	nearlyEqual(t, "taskCostMin", tc.TaskCostMin, 2000)
	nearlyEqual(t, "taskCostMax", tc.TaskCostMax, 3200)
	nearlyEqual(t, "actualCostMin", tc.ActualCostMin, 1000)
	nearlyEqual(t, "actualCostMax", tc.ActualCostMax, 1600)
	nearlyEqual(t, "progress", tc.HoursProgress, 50)
	if tc.HoursStatus != StatusUnder {
		t.Fatalf("status = %s, want %s", tc.HoursStatus, StatusUnder)
	}
}

func TestStatus_Thresholds(t *testing.T) {
	tests := []struct {
		actual, estimated float64
		want              HoursStatus
	}{
		{0, 10, StatusNotStarted},
		{5, 0, StatusNotStarted},
		{8.9, 10, StatusUnder},
		{9, 10, StatusOnTrack},
		{11, 10, StatusOnTrack},
		{11.5, 10, StatusOver},
	}

	for _, tt := range tests {
		if got := Status(tt.actual, tt.estimated); got != tt.want {
			t.Fatalf("Status(%v, %v) = %s, want %s", tt.actual, tt.estimated, got, tt.want)
		}
	}
}

func TestProgress_RoundsToOneDecimal(t *testing.T) {
	nearlyEqual(t, "progress", Progress(1, 3), 33.3)
	nearlyEqual(t, "progress zero estimate", Progress(5, 0), 0)
}

func TestOverheadAndFees(t *testing.T) {
	o := OverheadAndFees(1000, 2000, 200, 10)

	nearlyEqual(t, "overheadMin", o.OverheadMin, 1200)
	nearlyEqual(t, "overheadMax", o.OverheadMax, 2200)
	nearlyEqual(t, "feeMin", o.FeeAmountMin, 120)
	nearlyEqual(t, "feeMax", o.FeeAmountMax, 220)
	nearlyEqual(t, "totalMin", o.TotalMin, 1320)
	nearlyEqual(t, "totalMax", o.TotalMax, 2420)
}

func TestSplitByDepartment_ByAllocationAndEvenly(t *testing.T) {
	allocated := SplitByDepartment([]Department{
		{DepartmentName: "IT", Role: "lead", AllocationPercent: valuation.Float(75)},
		{DepartmentName: "Finance", Role: "support"},
	}, 100, 200)

	nearlyEqual(t, "IT min", allocated[0].CostMin, 75)
	nearlyEqual(t, "IT max", allocated[0].CostMax, 150)
	nearlyEqual(t, "Finance max", allocated[1].CostMax, 0)

	even := SplitByDepartment([]Department{{DepartmentName: "IT"}, {DepartmentName: "Ops"}, {DepartmentName: "HR"}, {DepartmentName: "Legal"}}, 100, 200)
	for _, d := range even {
		nearlyEqual(t, d.DepartmentName+" share", d.AllocationPercent, 25)
		nearlyEqual(t, d.DepartmentName+" max", d.CostMax, 50)
	}

	if got := SplitByDepartment([]Department{{DepartmentName: "IT"}}, 0, 0); len(got) != 0 {
		t.Fatalf("expected no breakdown for zero cost, got %+v", got)
	}
}

func TestCalculate_RollsUpAndRecommends(t *testing.T) {
	in := Input{
		FeePercent:     10,
		EstimatedValue: 6000,
		Tasks: []TaskInput{
			{Name: "Build", EstimatedHours: 20, ActualHours: 10, HourlyCostMin: 50, HourlyCostMax: 100},
			{Name: "Test", EstimatedHours: 10, HourlyCostMin: 40, HourlyCostMax: 60},
		},
		Software: []SoftwareInput{
			{SoftwareName: "CI", MonthlyCost: 500, AllocationPercent: 20},
		},
	}

	res := Calculate(in)

	s := res.Summary
	nearlyEqual(t, "totalHours", s.TotalHours, 30)
	nearlyEqual(t, "laborMin", s.TotalLaborCostMin, 1400)
	nearlyEqual(t, "laborMax", s.TotalLaborCostMax, 2600)
	nearlyEqual(t, "software", s.TotalSoftwareCost, 100)
	nearlyEqual(t, "totalCostMin", s.TotalCostMin, 1650)
	nearlyEqual(t, "totalCostMax", s.TotalCostMax, 2970)
	nearlyEqual(t, "actualCostMin", s.TotalActualCostMin, 600)
	nearlyEqual(t, "progress", s.OverallHoursProgress, 33.3)

	if s.ROIPercentLow == nil || s.ROIPercentHigh == nil {
		t.Fatalf("expected ROI bounds, got %+v", s)
	}
	nearlyEqual(t, "roiLow", *s.ROIPercentLow, (6000-2970)/2970.0*100)
	nearlyEqual(t, "roiHigh", *s.ROIPercentHigh, (6000-1650)/1650.0*100)

	if res.Recommendation.Tier != valuation.TierHealthy {
		t.Fatalf("recommendation = %+v, want healthy", res.Recommendation)
	}
}

func TestCalculate_NoCostIsUnknown(t *testing.T) {
	res := Calculate(Input{EstimatedValue: 1000})

	if res.Summary.ROIPercentLow != nil || res.Summary.GainPainRatioLow != nil {
		t.Fatalf("expected not-applicable ratios, got %+v", res.Summary)
	}
	if res.Recommendation.Tier != valuation.TierUnknown {
		t.Fatalf("recommendation = %+v, want unknown", res.Recommendation)
	}
	if res.Tasks == nil || res.DepartmentCostBreakdown == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}
