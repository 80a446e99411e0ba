// Package report renders a valuation as a short markdown summary and as HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Simplici0/product-jarvis/internal/valuation"
)

const notApplicable = "N/A"

// Summary is what a report is built from.
type Summary struct {
	ProductName string
	Result      valuation.Result
	// ROI and Recommendation are optional; they need a cost estimate.
	ROI            *valuation.ROIRange
	Recommendation *valuation.Recommendation
}

// Markdown renders the summary as GitHub-flavored markdown.
func Markdown(s Summary) string {
	r := s.Result
	var b strings.Builder

	name := s.ProductName
	if name == "" {
		name = "Untitled Product"
	}
	fmt.Fprintf(&b, "# Valuation: %s\n\n", name)
	fmt.Fprintf(&b, "Product type: **%s**, confidence: **%s**\n\n", r.ProductType, r.ConfidenceLevel)

	b.WriteString("| Metric | Value |\n|---|---|\n")
	row(&b, "Total economic value (annual)", money(r.TotalEconomicValue))
	row(&b, "Strategic multiplier", fmt.Sprintf("%.2fx", r.StrategicMultiplier))
	row(&b, "Final monthly value", money(r.FinalMonthlyValue))
	row(&b, "Value range", money(r.FinalValueLow)+" - "+money(r.FinalValueHigh))
	row(&b, "RICE score", number(r.RICEScore))

	if r.ProductType != valuation.External {
		b.WriteString("\n## Internal value\n\n| Driver | Annual value |\n|---|---|\n")
		row(&b, "Time savings", money(r.AnnualTimeSavingsValue))
		row(&b, "Error reduction", money(r.AnnualErrorReductionValue))
		row(&b, "Cost avoidance", money(r.AnnualCostAvoidanceValue))
		row(&b, "Risk mitigation", money(r.AnnualRiskMitigationValue))
		row(&b, "Adoption adjusted", money(r.AdoptionAdjustedAnnualValue))
		row(&b, "Training cost", moneyPtr(r.TotalTrainingCost))
	}

	if r.ProductType != valuation.Internal {
		b.WriteString("\n## External value\n\n| Metric | Value |\n|---|---|\n")
		row(&b, "Addressable customers", humanize.CommafWithDigits(r.AddressableCustomers, 1))
		row(&b, "Customer LTV", money(r.CustomerLTV))
		row(&b, "LTV:CAC", number(r.LTVCACRatio))
		row(&b, "Payback (months)", number(r.CustomerPaybackMonths))
		row(&b, "3-year revenue", moneyPtr(r.ThreeYearRevenueProjection))
		row(&b, "Net 3-year revenue", moneyPtr(r.NetThreeYearRevenue))
	}

	if r.ProductType == valuation.Both {
		fmt.Fprintf(&b, "\nBlend: %.0f%% internal / %.0f%% external.", r.InternalValueWeight, r.ExternalValueWeight)
		if r.WeightsUnbalanced {
			b.WriteString(" **Weights do not add up to 100%.**")
		}
		b.WriteString("\n")
	}

	if s.ROI != nil || s.Recommendation != nil {
		b.WriteString("\n## Gain/Pain\n\n")
		if s.ROI != nil {
			fmt.Fprintf(&b, "ROI range: %s to %s\n\n", percent(s.ROI.Low), percent(s.ROI.High))
		}
		if rec := s.Recommendation; rec != nil {
			fmt.Fprintf(&b, "**%s** (%s): %s\n", rec.Action, rec.Label, rec.Reasoning)
		}
	}

	return b.String()
}

// HTML renders the markdown summary to an HTML fragment.
func HTML(s Summary) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(s)), &buf); err != nil {
		return "", fmt.Errorf("render valuation report: %w", err)
	}
	return buf.String(), nil
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", label, value)
}

func money(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 2)
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}

func moneyPtr(v *float64) string {
	if v == nil {
		return notApplicable
	}
	return money(*v)
}

func number(v *float64) string {
	if v == nil {
		return notApplicable
	}
	return humanize.CommafWithDigits(*v, 2)
}

func percent(v *float64) string {
	if v == nil {
		return notApplicable
	}
	return humanize.CommafWithDigits(*v, 1) + "%"
}
