package valuation

import "math"

const (
	weeksPerYear  = 52
	monthsPerYear = 12

	// neutralScoreProduct is reach*impact*alignment*differentiation*urgency
	// when every score sits at its default.
	neutralScoreProduct = 81

	defaultBlendWeight = 50
	effortHoursPerWeek = 40
)

// Default strategic scores, applied when a score is missing.
const (
	DefaultReach           = 3
	DefaultImpact          = 1
	DefaultAlignment       = 3
	DefaultDifferentiation = 3
	DefaultUrgency         = 3
)

type confidenceBand struct {
	low, high float64
}

var confidenceBands = map[Confidence]confidenceBand{
	High:        {0.9, 1.1},
	Medium:      {0.6, 1.0},
	Low:         {0.3, 0.7},
	Speculative: {0.1, 0.4},
}

var riceConfidence = map[Confidence]float64{
	High:        1.0,
	Medium:      0.8,
	Low:         0.5,
	Speculative: 0.2,
}

// Result is the derived side of a valuation record. Pointer fields are nil
// when the metric is not applicable (missing driver or zero denominator).
type Result struct {
	ProductType ProductType `json:"product_type"`

	AnnualTimeSavingsValue      float64  `json:"annual_time_savings_value"`
	AnnualErrorReductionValue   float64  `json:"annual_error_reduction_value"`
	AnnualCostAvoidanceValue    float64  `json:"annual_cost_avoidance_value"`
	AnnualRiskMitigationValue   float64  `json:"annual_risk_mitigation_value"`
	AdoptionAdjustedAnnualValue float64  `json:"adoption_adjusted_annual_value"`
	TotalTrainingCost           *float64 `json:"total_training_cost"`
	InternalValue               float64  `json:"internal_value"`

	AddressableCustomers       float64  `json:"addressable_customers"`
	CustomerLTV                float64  `json:"customer_ltv"`
	ExternalValue              float64  `json:"external_value"`
	ThreeYearRevenueProjection *float64 `json:"three_year_revenue_projection"`
	NetThreeYearRevenue        *float64 `json:"net_three_year_revenue"`
	Year1Revenue               *float64 `json:"year_1_revenue"`
	Year2Revenue               *float64 `json:"year_2_revenue"`
	Year3Revenue               *float64 `json:"year_3_revenue"`
	LTVCACRatio                *float64 `json:"ltv_cac_ratio"`
	CustomerPaybackMonths      *float64 `json:"customer_payback_months"`

	InternalValueWeight float64 `json:"internal_value_weight,omitempty"`
	ExternalValueWeight float64 `json:"external_value_weight,omitempty"`
	WeightsUnbalanced   bool    `json:"weights_unbalanced"`

	TotalEconomicValue  float64    `json:"total_economic_value"`
	StrategicMultiplier float64    `json:"strategic_multiplier"`
	FinalMonthlyValue   float64    `json:"final_monthly_value"`
	ConfidenceLevel     Confidence `json:"confidence_level"`
	FinalValueLow       float64    `json:"final_value_low"`
	FinalValueHigh      float64    `json:"final_value_high"`
	RICEScore           *float64   `json:"rice_score"`
}

// ComputeFullValuation derives every value metric of a product from its
// assumptions. effortHours is the total estimated task hours of the product
// and only feeds the RICE score.
func ComputeFullValuation(productType ProductType, in Inputs, effortHours float64) Result {
	res := Result{ProductType: productType}

	internalValue(in, &res)
	externalValue(in, &res)

	switch productType {
	case Internal:
		res.TotalEconomicValue = res.InternalValue
	case External:
		res.TotalEconomicValue = res.ExternalValue
	default:
		wi := in.InternalValueWeight
		we := in.ExternalValueWeight
		res.InternalValueWeight = defaultBlendWeight
		res.ExternalValueWeight = defaultBlendWeight
		if wi != nil {
			res.InternalValueWeight = *wi
		}
		if we != nil {
			res.ExternalValueWeight = *we
		}
		// Weights are used as entered; an unbalanced pair is reported, not fixed.
		res.WeightsUnbalanced = res.InternalValueWeight+res.ExternalValueWeight != 100
		res.TotalEconomicValue = res.InternalValue*(res.InternalValueWeight/100) + res.ExternalValue*(res.ExternalValueWeight/100)
	}

	res.StrategicMultiplier = StrategicMultiplier(in)
	res.FinalMonthlyValue = res.TotalEconomicValue * res.StrategicMultiplier / monthsPerYear

	res.ConfidenceLevel = in.ConfidenceLevel
	band, ok := confidenceBands[in.ConfidenceLevel]
	if !ok {
		res.ConfidenceLevel = Medium
		band = confidenceBands[Medium]
	}
	adjusted := res.TotalEconomicValue * res.StrategicMultiplier
	res.FinalValueLow = adjusted * band.low
	res.FinalValueHigh = adjusted * band.high

	res.RICEScore = RICEScore(in.ReachScore, in.ImpactScore, res.ConfidenceLevel, effortHours)
	return res
}

func internalValue(in Inputs, res *Result) {
	res.AnnualTimeSavingsValue = val(in.HoursSavedPerUserPerWeek) * val(in.NumberOfAffectedUsers) * val(in.AverageHourlyCost) * weeksPerYear
	res.AnnualErrorReductionValue = val(in.CurrentErrorsPerMonth) * val(in.CostPerError) * pct(in.ExpectedErrorReductionPercent) * monthsPerYear

	res.AnnualCostAvoidanceValue = val(in.AlternativeSolutionCost)
	if in.AlternativeSolutionPeriod == PeriodMonthly {
		res.AnnualCostAvoidanceValue *= monthsPerYear
	}

	res.AnnualRiskMitigationValue = pct(in.RiskProbabilityPercent) * val(in.RiskCostIfOccurs) * pct(in.RiskReductionPercent)

	raw := res.AnnualTimeSavingsValue + res.AnnualErrorReductionValue + res.AnnualCostAvoidanceValue +
		res.AnnualRiskMitigationValue + val(in.ProcessStandardizationAnnualValue)
	adoption := orDefault(in.ExpectedAdoptionRatePercent, 100) / 100

	res.AdoptionAdjustedAnnualValue = raw * adoption
	res.InternalValue = res.AdoptionAdjustedAnnualValue

	if in.TrainingCostPerUser != nil {
		training := val(in.TrainingCostPerUser) * val(in.NumberOfAffectedUsers) * adoption
		res.TotalTrainingCost = &training
	}
}

func externalValue(in Inputs, res *Result) {
	dealSize := val(in.AverageDealSize)
	margin := pct(in.GrossMarginPercent)

	res.AddressableCustomers = val(in.TotalPotentialCustomers) * pct(in.ServiceablePercent) * pct(in.AchievableMarketSharePercent)
	ltv := dealSize * margin * (val(in.ExpectedCustomerLifetimeMonths) / monthsPerYear)
	res.ExternalValue = res.AddressableCustomers * ltv

	// A churn rate overrides the stated lifetime for the reported LTV.
	res.CustomerLTV = ltv
	if churn := val(in.MonthlyChurnRatePercent); churn > 0 {
		lifetime := math.Trunc(1 / (churn / 100))
		res.CustomerLTV = dealSize * margin * (lifetime / monthsPerYear)
	}

	if in.AverageDealSize != nil {
		res.Year1Revenue = yearRevenue(in.Year1Customers, dealSize)
		res.Year2Revenue = yearRevenue(in.Year2Customers, dealSize)
		res.Year3Revenue = yearRevenue(in.Year3Customers, dealSize)
	}

	if in.TotalPotentialCustomers != nil && in.ServiceablePercent != nil &&
		in.AchievableMarketSharePercent != nil && in.AverageDealSize != nil {
		gross := res.AddressableCustomers * dealSize * 3
		res.ThreeYearRevenueProjection = &gross
	}
	if val(res.Year1Revenue) > 0 && val(res.Year2Revenue) > 0 && val(res.Year3Revenue) > 0 {
		gross := *res.Year1Revenue + *res.Year2Revenue + *res.Year3Revenue
		res.ThreeYearRevenueProjection = &gross
	}

	if res.ThreeYearRevenueProjection != nil {
		customers := val(in.Year1Customers) + val(in.Year2Customers) + val(in.Year3Customers)
		acquisition := customers * val(in.CustomerAcquisitionCost)
		goToMarket := 3 * (val(in.AnnualMarketingSpend) + val(in.AnnualSalesTeamCost))
		net := *res.ThreeYearRevenueProjection - acquisition - goToMarket
		res.NetThreeYearRevenue = &net
	}

	cac := val(in.CustomerAcquisitionCost)
	if in.CustomerAcquisitionCost != nil && cac > 0 {
		ratio := res.CustomerLTV / cac
		res.LTVCACRatio = &ratio
	}
	if in.CustomerAcquisitionCost != nil {
		if monthly := dealSize * margin / monthsPerYear; monthly > 0 {
			payback := cac / monthly
			res.CustomerPaybackMonths = &payback
		}
	}
}

func yearRevenue(customers *float64, dealSize float64) *float64 {
	if customers == nil {
		return nil
	}
	v := *customers * dealSize
	return &v
}

// StrategicMultiplier scales value by the five strategic scores. It is 1.0
// when every score is at its default.
func StrategicMultiplier(in Inputs) float64 {
	return orDefault(in.ReachScore, DefaultReach) *
		orDefault(in.ImpactScore, DefaultImpact) *
		orDefault(in.StrategicAlignmentScore, DefaultAlignment) *
		orDefault(in.DifferentiationScore, DefaultDifferentiation) *
		orDefault(in.UrgencyScore, DefaultUrgency) / neutralScoreProduct
}

// RICEScore is reach * impact * confidence / effort, with effort expressed in
// 40-hour weeks. It is nil when reach or impact is missing.
func RICEScore(reach, impact *float64, confidence Confidence, effortHours float64) *float64 {
	if reach == nil || impact == nil {
		return nil
	}
	c, ok := riceConfidence[confidence]
	if !ok {
		c = 0.5
	}
	if effortHours <= 0 {
		effortHours = 1
	}
	score := *reach * *impact * c / (effortHours / effortHoursPerWeek)
	return &score
}
