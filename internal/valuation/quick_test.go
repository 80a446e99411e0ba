package valuation

import (
	"math"
	"testing"
)

func TestComputeQuickEstimate_Internal(t *testing.T) {
	in := QuickInputs{HoursSavedPerUserPerWeek: 2, NumberOfUsers: 50, AverageHourlyCost: 50}

	est := ComputeQuickEstimate(Internal, in)

	if !est.Complete {
		t.Fatalf("expected complete estimate")
	}
	nearlyEqualPtr(t, "annual", est.AnnualValue, 130000)
	nearlyEqualPtr(t, "monthly", est.MonthlyValue, 2*50*50*52/12.0)
	if got := math.Round(*est.MonthlyValue*100) / 100; got != 21666.67 {
		t.Fatalf("rounded monthly = %v, want 21666.67", got)
	}
}

func TestComputeQuickEstimate_InternalIncomplete(t *testing.T) {
	est := ComputeQuickEstimate(Internal, QuickInputs{HoursSavedPerUserPerWeek: 2, AverageHourlyCost: 50})

	if est.Complete || est.MonthlyValue != nil || est.AnnualValue != nil {
		t.Fatalf("expected suppressed estimate, got %+v", est)
	}
}

func TestComputeQuickEstimate_External(t *testing.T) {
	in := DefaultQuickInputs()
	in.TotalPotentialCustomers = 10000
	in.AverageDealSize = 1200

	est := ComputeQuickEstimate(External, in)

	// 100 customers * (1200 * 0.7 * 2) / 12
	nearlyEqualPtr(t, "monthly", est.MonthlyValue, 14000)
	nearlyEqualPtr(t, "annual", est.AnnualValue, 168000)
}

func TestComputeQuickEstimate_ExternalSuppressedWithoutPrimaryDrivers(t *testing.T) {
	full := QuickInputs{
		TotalPotentialCustomers: 1000,
		ServiceablePercent:      50,
		MarketSharePercent:      10,
		AverageDealSize:         500,
		GrossMarginPercent:      60,
		CustomerLifetimeMonths:  12,
	}

	cases := map[string]func(*QuickInputs){
		"no customers":     func(in *QuickInputs) { in.TotalPotentialCustomers = 0 },
		"negative deal":    func(in *QuickInputs) { in.AverageDealSize = -5 },
		"no lifetime":      func(in *QuickInputs) { in.CustomerLifetimeMonths = 0 },
		"partial lifetime": func(in *QuickInputs) { in.CustomerLifetimeMonths = 0.5 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := full
			mutate(&in)
			est := ComputeQuickEstimate(External, in)
			if est.Complete || est.MonthlyValue != nil {
				t.Fatalf("expected suppressed estimate, got %+v", est)
			}
		})
	}
}

func TestComputeQuickEstimate_BothUsesExternalFormula(t *testing.T) {
	in := QuickInputs{TotalPotentialCustomers: 100, ServiceablePercent: 100, MarketSharePercent: 100, AverageDealSize: 12, GrossMarginPercent: 100, CustomerLifetimeMonths: 12}

	est := ComputeQuickEstimate(Both, in)

	nearlyEqualPtr(t, "monthly", est.MonthlyValue, 100)
}

func TestDecodeQuickInputs_AcceptsFormStrings(t *testing.T) {
	in, err := DecodeQuickInputs(`{"hours_saved_per_user_per_week":"2","number_of_users":"50.9","average_hourly_cost":50,"total_potential_customers":"","gross_margin_percent":null,"serviceable_percent":"abc"}`)
	if err != nil {
		t.Fatalf("DecodeQuickInputs: %v", err)
	}

	nearlyEqual(t, "hours", float64(in.HoursSavedPerUserPerWeek), 2)
	nearlyEqual(t, "users", float64(in.NumberOfUsers), 50.9)
	nearlyEqual(t, "cost", float64(in.AverageHourlyCost), 50)
	nearlyEqual(t, "customers", float64(in.TotalPotentialCustomers), 0)
	nearlyEqual(t, "serviceable", float64(in.ServiceablePercent), 0)

	est := ComputeQuickEstimate(Internal, in)
	nearlyEqualPtr(t, "annual", est.AnnualValue, 2*50*50*52)
}

func TestEncodeQuickInputs_RoundTrip(t *testing.T) {
	in := DefaultQuickInputs()
	in.HoursSavedPerUserPerWeek = 1.5

	blob, err := EncodeQuickInputs(in)
	if err != nil {
		t.Fatalf("EncodeQuickInputs: %v", err)
	}
	out, err := DecodeQuickInputs(blob)
	if err != nil {
		t.Fatalf("DecodeQuickInputs: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestDecodeQuickInputs_EmptyBlob(t *testing.T) {
	in, err := DecodeQuickInputs("  ")
	if err != nil {
		t.Fatalf("DecodeQuickInputs: %v", err)
	}
	if in != (QuickInputs{}) {
		t.Fatalf("expected zero inputs, got %+v", in)
	}
}
