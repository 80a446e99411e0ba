package report

import (
	"strings"
	"testing"

	"github.com/Simplici0/product-jarvis/internal/valuation"
)

func TestMarkdown_InternalValuation(t *testing.T) {
	in := valuation.Inputs{
		HoursSavedPerUserPerWeek: valuation.Float(2),
		NumberOfAffectedUsers:    valuation.Float(50),
		AverageHourlyCost:        valuation.Float(50),
		ConfidenceLevel:          valuation.High,
	}
	res := valuation.ComputeFullValuation(valuation.Internal, in, 0)

	md := Markdown(Summary{ProductName: "Invoice Bot", Result: res})

	for _, want := range []string{
		"# Valuation: Invoice Bot",
		"| Time savings | $130,000 |",
		"| Strategic multiplier | 1.00x |",
		"| Training cost | N/A |",
		"| RICE score | N/A |",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "External value") {
		t.Fatalf("internal report should not include external section:\n%s", md)
	}
}

func TestMarkdown_FlagsUnbalancedWeights(t *testing.T) {
	in := valuation.Inputs{
		InternalValueWeight: valuation.Float(70),
		ExternalValueWeight: valuation.Float(70),
	}
	res := valuation.ComputeFullValuation(valuation.Both, in, 0)

	md := Markdown(Summary{Result: res})

	if !strings.Contains(md, "Weights do not add up to 100%") {
		t.Fatalf("expected weight warning:\n%s", md)
	}
	if !strings.Contains(md, "# Valuation: Untitled Product") {
		t.Fatalf("expected default product name:\n%s", md)
	}
}

func TestHTML_RendersTablesAndRecommendation(t *testing.T) {
	res := valuation.ComputeFullValuation(valuation.External, valuation.Inputs{}, 0)
	roi := valuation.ComputeROIRange(100, 200, 300)
	rec := valuation.ClassifyRecommendation(roi.Low)

	html, err := HTML(Summary{ProductName: "Portal", Result: res, ROI: &roi, Recommendation: &rec})
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	for _, want := range []string{"<table>", "<h1>Valuation: Portal</h1>", "ROI range: 50% to 200%", "<strong>CONSIDER</strong>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q:\n%s", want, html)
		}
	}
}
