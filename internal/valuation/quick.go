package valuation

import (
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Number is a form value that may arrive as a JSON number or as the raw
// string typed into an input. Unparseable text reads as 0.
type Number float64

// UnmarshalJSON accepts numbers, numeric strings, empty strings and null.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		s = strings.TrimSpace(raw)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

// MarshalJSON writes the value back as a string, which is how the stored
// blob has always carried it.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(float64(n), 'f', -1, 64))
}

// QuickInputs is the quick-estimate blob stored on a product. Its field names
// are distinct from Inputs and must stay that way.
type QuickInputs struct {
	// Internal.
	HoursSavedPerUserPerWeek Number `json:"hours_saved_per_user_per_week"`
	NumberOfUsers            Number `json:"number_of_users"`
	AverageHourlyCost        Number `json:"average_hourly_cost"`

	// External.
	TotalPotentialCustomers Number `json:"total_potential_customers"`
	ServiceablePercent      Number `json:"serviceable_percent"`
	MarketSharePercent      Number `json:"market_share_percent"`
	AverageDealSize         Number `json:"average_deal_size"`
	GrossMarginPercent      Number `json:"gross_margin_percent"`
	CustomerLifetimeMonths  Number `json:"customer_lifetime_months"`
}

// DefaultQuickInputs returns the prefilled values of the quick calculator.
func DefaultQuickInputs() QuickInputs {
	return QuickInputs{
		AverageHourlyCost:      50,
		ServiceablePercent:     20,
		MarketSharePercent:     5,
		GrossMarginPercent:     70,
		CustomerLifetimeMonths: 24,
	}
}

// DecodeQuickInputs parses the JSON string stored in a product's
// quick_estimate_inputs column. An empty blob yields zero inputs.
func DecodeQuickInputs(blob string) (QuickInputs, error) {
	var in QuickInputs
	if strings.TrimSpace(blob) == "" {
		return in, nil
	}
	if err := json.Unmarshal([]byte(blob), &in); err != nil {
		return QuickInputs{}, err
	}
	return in, nil
}

// EncodeQuickInputs renders inputs as the stored JSON string.
func EncodeQuickInputs(in QuickInputs) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// QuickEstimate is the output of the quick calculator. When Complete is false
// the values are nil and nothing should be displayed.
type QuickEstimate struct {
	Complete     bool     `json:"complete"`
	MonthlyValue *float64 `json:"monthly_value"`
	AnnualValue  *float64 `json:"annual_value"`
}

// ComputeQuickEstimate returns the monthly value of a product from the few
// primary drivers of its branch. Anything other than Internal uses the
// external market formula. Counts are truncated to whole numbers.
func ComputeQuickEstimate(productType ProductType, in QuickInputs) QuickEstimate {
	var annual float64
	var complete bool

	if productType == Internal {
		hours := float64(in.HoursSavedPerUserPerWeek)
		users := math.Trunc(float64(in.NumberOfUsers))
		cost := float64(in.AverageHourlyCost)

		annual = hours * users * cost * 52
		complete = hours > 0 && users > 0 && cost > 0
	} else {
		customers := math.Trunc(float64(in.TotalPotentialCustomers))
		dealSize := float64(in.AverageDealSize)
		lifetime := math.Trunc(float64(in.CustomerLifetimeMonths))

		addressable := customers * (float64(in.ServiceablePercent) / 100) * (float64(in.MarketSharePercent) / 100)
		ltv := dealSize * (float64(in.GrossMarginPercent) / 100) * (lifetime / 12)
		annual = addressable * ltv
		complete = customers > 0 && dealSize > 0 && lifetime > 0
	}

	if !complete {
		return QuickEstimate{}
	}
	monthly := annual / 12
	return QuickEstimate{Complete: true, MonthlyValue: &monthly, AnnualValue: &annual}
}
