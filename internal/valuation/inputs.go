package valuation

// ProductType selects which value branch applies to a product.
type ProductType string

const (
	Internal ProductType = "Internal"
	External ProductType = "External"
	Both     ProductType = "Both"
)

// Confidence is the self-reported certainty of a valuation.
type Confidence string

const (
	High        Confidence = "High"
	Medium      Confidence = "Medium"
	Low         Confidence = "Low"
	Speculative Confidence = "Speculative"
)

// AlternativePeriod is the billing period of the alternative solution cost.
type AlternativePeriod string

const (
	PeriodMonthly  AlternativePeriod = "Monthly"
	PeriodAnnually AlternativePeriod = "Annually"
	PeriodOneTime  AlternativePeriod = "One-time"
)

// Inputs holds the business assumptions of a full valuation. Field names
// follow the persisted valuation record. Every numeric field is optional and
// a nil value counts as 0. Percent fields are 0-100.
type Inputs struct {
	ValuationDate   string     `json:"valuation_date,omitempty"`
	ConfidenceLevel Confidence `json:"confidence_level,omitempty"`
	ConfidenceNotes string     `json:"confidence_notes,omitempty"`

	// Internal value drivers.
	HoursSavedPerUserPerWeek          *float64          `json:"hours_saved_per_user_per_week,omitempty"`
	NumberOfAffectedUsers             *float64          `json:"number_of_affected_users,omitempty"`
	AverageHourlyCost                 *float64          `json:"average_hourly_cost,omitempty"`
	CurrentErrorsPerMonth             *float64          `json:"current_errors_per_month,omitempty"`
	CostPerError                      *float64          `json:"cost_per_error,omitempty"`
	ExpectedErrorReductionPercent     *float64          `json:"expected_error_reduction_percent,omitempty"`
	AlternativeSolutionCost           *float64          `json:"alternative_solution_cost,omitempty"`
	AlternativeSolutionPeriod         AlternativePeriod `json:"alternative_solution_period,omitempty"`
	RiskDescription                   string            `json:"risk_description,omitempty"`
	RiskProbabilityPercent            *float64          `json:"risk_probability_percent,omitempty"`
	RiskCostIfOccurs                  *float64          `json:"risk_cost_if_occurs,omitempty"`
	RiskReductionPercent              *float64          `json:"risk_reduction_percent,omitempty"`
	ExpectedAdoptionRatePercent       *float64          `json:"expected_adoption_rate_percent,omitempty"`
	TrainingCostPerUser               *float64          `json:"training_cost_per_user,omitempty"`
	RolloutMonths                     *float64          `json:"rollout_months,omitempty"`
	TimeToFullProductivityWeeks       *float64          `json:"time_to_full_productivity_weeks,omitempty"`
	ProcessStandardizationAnnualValue *float64          `json:"process_standardization_annual_value,omitempty"`

	// External value drivers.
	TargetCustomerSegment          string   `json:"target_customer_segment,omitempty"`
	TotalPotentialCustomers        *float64 `json:"total_potential_customers,omitempty"`
	ServiceablePercent             *float64 `json:"serviceable_percent,omitempty"`
	AchievableMarketSharePercent   *float64 `json:"achievable_market_share_percent,omitempty"`
	PricePerUnit                   *float64 `json:"price_per_unit,omitempty"`
	PricingModel                   string   `json:"pricing_model,omitempty"`
	AverageDealSize                *float64 `json:"average_deal_size,omitempty"`
	SalesCycleMonths               *float64 `json:"sales_cycle_months,omitempty"`
	ConversionRatePercent          *float64 `json:"conversion_rate_percent,omitempty"`
	GrossMarginPercent             *float64 `json:"gross_margin_percent,omitempty"`
	ExpectedCustomerLifetimeMonths *float64 `json:"expected_customer_lifetime_months,omitempty"`
	MonthlyChurnRatePercent        *float64 `json:"monthly_churn_rate_percent,omitempty"`
	CustomerAcquisitionCost        *float64 `json:"customer_acquisition_cost,omitempty"`
	AnnualMarketingSpend           *float64 `json:"annual_marketing_spend,omitempty"`
	AnnualSalesTeamCost            *float64 `json:"annual_sales_team_cost,omitempty"`
	Year1Customers                 *float64 `json:"year_1_customers,omitempty"`
	Year2Customers                 *float64 `json:"year_2_customers,omitempty"`
	Year3Customers                 *float64 `json:"year_3_customers,omitempty"`
	CompetitorName                 string   `json:"competitor_name,omitempty"`
	CompetitorPricing              *float64 `json:"competitor_pricing,omitempty"`
	DifferentiationSummary         string   `json:"differentiation_summary,omitempty"`

	// Blend weights, only read for Both.
	InternalValueWeight *float64 `json:"internal_value_weight,omitempty"`
	ExternalValueWeight *float64 `json:"external_value_weight,omitempty"`

	// Strategic assessment.
	ReachScore              *float64 `json:"reach_score,omitempty"`
	ImpactScore             *float64 `json:"impact_score,omitempty"`
	StrategicAlignmentScore *float64 `json:"strategic_alignment_score,omitempty"`
	DifferentiationScore    *float64 `json:"differentiation_score,omitempty"`
	UrgencyScore            *float64 `json:"urgency_score,omitempty"`
}

// Float returns a pointer to v, for building Inputs literals.
func Float(v float64) *float64 {
	return &v
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// orDefault mirrors the `x || d` fallback of the form code: nil and 0 both
// fall back to d.
func orDefault(p *float64, d float64) float64 {
	if p == nil || *p == 0 {
		return d
	}
	return *p
}

func pct(p *float64) float64 {
	return val(p) / 100
}
