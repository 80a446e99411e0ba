// Command valuate evaluates a valuation scenario file offline and prints the
// result as JSON.
//
//	valuate -type Internal -effort 120 scenario.yaml
//
// The scenario uses the persisted valuation field names, in YAML or JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Simplici0/product-jarvis/internal/report"
	"github.com/Simplici0/product-jarvis/internal/valuation"
)

func main() {
	log.SetFlags(0)

	productType := flag.String("type", string(valuation.Internal), "product type: Internal, External or Both")
	effort := flag.Float64("effort", 0, "total estimated task hours, used for the RICE score")
	costMin := flag.Float64("cost-min", 0, "low end of the cost range, enables ROI output")
	costMax := flag.Float64("cost-max", 0, "high end of the cost range, enables ROI output")
	markdown := flag.Bool("markdown", false, "print a markdown report instead of JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: valuate [flags] scenario.yaml")
	}

	pt := valuation.ProductType(*productType)
	switch pt {
	case valuation.Internal, valuation.External, valuation.Both:
	default:
		log.Fatalf("unknown product type %q", *productType)
	}

	in, err := loadScenario(flag.Arg(0))
	if err != nil {
		log.Fatalf("load scenario: %v", err)
	}

	res := valuation.ComputeFullValuation(pt, in, *effort)
	out := output{Result: res}
	if *costMax > 0 {
		roi := valuation.ComputeROIRange(*costMin, *costMax, res.FinalMonthlyValue)
		rec := valuation.ClassifyRecommendation(roi.Low)
		out.ROI = &roi
		out.Recommendation = &rec
	}

	if *markdown {
		name := strings.TrimSuffix(filepath.Base(flag.Arg(0)), filepath.Ext(flag.Arg(0)))
		fmt.Print(report.Markdown(report.Summary{
			ProductName:    name,
			Result:         res,
			ROI:            out.ROI,
			Recommendation: out.Recommendation,
		}))
		return
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(b))
}

type output struct {
	Result         valuation.Result          `json:"result"`
	ROI            *valuation.ROIRange       `json:"roi,omitempty"`
	Recommendation *valuation.Recommendation `json:"recommendation,omitempty"`
}

// loadScenario reads a YAML or JSON scenario. YAML is decoded generically and
// re-encoded as JSON so both formats share the wire field names.
func loadScenario(path string) (valuation.Inputs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return valuation.Inputs{}, err
	}

	var in valuation.Inputs
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(raw, &in); err != nil {
			return valuation.Inputs{}, fmt.Errorf("decode json scenario: %w", err)
		}
		return in, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return valuation.Inputs{}, fmt.Errorf("decode yaml scenario: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return valuation.Inputs{}, fmt.Errorf("re-encode yaml scenario: %w", err)
	}
	if err := json.Unmarshal(b, &in); err != nil {
		return valuation.Inputs{}, fmt.Errorf("decode yaml scenario: %w", err)
	}
	return in, nil
}
