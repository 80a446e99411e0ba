package costing

import (
	"math"

	"github.com/Simplici0/product-jarvis/internal/valuation"
)

// HoursStatus compares logged hours against the estimate.
type HoursStatus string

const (
	StatusNotStarted HoursStatus = "not_started"
	StatusUnder      HoursStatus = "under"
	StatusOnTrack    HoursStatus = "on_track"
	StatusOver       HoursStatus = "over"
)

const (
	underThreshold = 0.9
	overThreshold  = 1.1
)

// TaskInput represents a staffed task and the hourly-rate range of its position.
type TaskInput struct {
	Name           string  `json:"name"`
	PositionID     int64   `json:"position_id"`
	PositionTitle  string  `json:"position_title"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
	HourlyCostMin  float64 `json:"hourly_cost_min"`
	HourlyCostMax  float64 `json:"hourly_cost_max"`
}

// TaskCost contains the cost range and progress of a single task.
type TaskCost struct {
	TaskInput
	HoursProgress float64     `json:"hours_progress"`
	HoursStatus   HoursStatus `json:"hours_status"`
	TaskCostMin   float64     `json:"task_cost_min"`
	TaskCostMax   float64     `json:"task_cost_max"`
	ActualCostMin float64     `json:"actual_cost_min"`
	ActualCostMax float64     `json:"actual_cost_max"`
}

// SoftwareInput represents a software subscription partially charged to a product.
type SoftwareInput struct {
	SoftwareID        int64   `json:"software_id"`
	SoftwareName      string  `json:"software_name"`
	MonthlyCost       float64 `json:"software_monthly_cost"`
	AllocationPercent float64 `json:"allocation_percent"`
}

// SoftwareAllocation is a SoftwareInput with its allocated monthly cost.
type SoftwareAllocation struct {
	SoftwareInput
	AllocatedCost float64 `json:"allocated_cost"`
}

// Department is a service department sharing the cost of a product.
type Department struct {
	DepartmentName    string   `json:"department_name"`
	Role              string   `json:"role"`
	AllocationPercent *float64 `json:"allocation_percent"`
}

// DepartmentCost is the share of the total cost range carried by a department.
type DepartmentCost struct {
	DepartmentName    string  `json:"department_name"`
	Role              string  `json:"role"`
	AllocationPercent float64 `json:"allocation_percent"`
	CostMin           float64 `json:"cost_min"`
	CostMax           float64 `json:"cost_max"`
}

// Overhead contains labor plus software, the fee on top of it and the totals.
type Overhead struct {
	OverheadMin  float64 `json:"overhead_min"`
	OverheadMax  float64 `json:"overhead_max"`
	FeePercent   float64 `json:"fee_percent"`
	FeeAmountMin float64 `json:"fee_amount_min"`
	FeeAmountMax float64 `json:"fee_amount_max"`
	TotalMin     float64 `json:"total_min"`
	TotalMax     float64 `json:"total_max"`
}

// Input groups everything needed to cost a product.
type Input struct {
	FeePercent     float64         `json:"fee_percent"`
	EstimatedValue float64         `json:"estimated_value"`
	Tasks          []TaskInput     `json:"tasks"`
	Software       []SoftwareInput `json:"software"`
	Departments    []Department    `json:"departments"`
}

// Summary contains roll-up values of the cost calculation.
type Summary struct {
	TotalHours              float64     `json:"total_hours"`
	TotalActualHours        float64     `json:"total_actual_hours"`
	OverallHoursProgress    float64     `json:"overall_hours_progress"`
	OverallHoursStatus      HoursStatus `json:"overall_hours_status"`
	TotalLaborCostMin       float64     `json:"total_labor_cost_min"`
	TotalLaborCostMax       float64     `json:"total_labor_cost_max"`
	TotalActualLaborCostMin float64     `json:"total_actual_labor_cost_min"`
	TotalActualLaborCostMax float64     `json:"total_actual_labor_cost_max"`
	TotalSoftwareCost       float64     `json:"total_software_cost"`
	Overhead
	TotalCostMin          float64  `json:"total_cost_min"`
	TotalCostMax          float64  `json:"total_cost_max"`
	TotalActualCostMin    float64  `json:"total_actual_cost_min"`
	TotalActualCostMax    float64  `json:"total_actual_cost_max"`
	EstimatedMonthlyValue float64  `json:"estimated_monthly_value"`
	ROIPercentLow         *float64 `json:"roi_percent_low"`
	ROIPercentHigh        *float64 `json:"roi_percent_high"`
	GainPainRatioLow      *float64 `json:"gain_pain_ratio_low"`
	GainPainRatioHigh     *float64 `json:"gain_pain_ratio_high"`
}

// Result groups the full cost output, including per-line detail and the summary.
type Result struct {
	Tasks                   []TaskCost               `json:"tasks"`
	SoftwareAllocations     []SoftwareAllocation     `json:"software_allocations"`
	DepartmentCostBreakdown []DepartmentCost         `json:"department_cost_breakdown"`
	Summary                 Summary                  `json:"summary"`
	Recommendation          valuation.Recommendation `json:"recommendation"`
}

// Status buckets actual hours against the estimate.
func Status(actualHours, estimatedHours float64) HoursStatus {
	if actualHours == 0 || estimatedHours <= 0 {
		return StatusNotStarted
	}
	ratio := actualHours / estimatedHours
	switch {
	case ratio < underThreshold:
		return StatusUnder
	case ratio <= overThreshold:
		return StatusOnTrack
	default:
		return StatusOver
	}
}

// Progress is actual over estimated hours in percent, rounded to one decimal.
func Progress(actualHours, estimatedHours float64) float64 {
	if estimatedHours <= 0 {
		return 0
	}
	return math.Round(actualHours/estimatedHours*1000) / 10
}

// CostTask prices a task at both ends of its position's hourly-rate range.
func CostTask(task TaskInput) TaskCost {
	return TaskCost{
		TaskInput:     task,
		HoursProgress: Progress(task.ActualHours, task.EstimatedHours),
		HoursStatus:   Status(task.ActualHours, task.EstimatedHours),
		TaskCostMin:   task.EstimatedHours * task.HourlyCostMin,
		TaskCostMax:   task.EstimatedHours * task.HourlyCostMax,
		ActualCostMin: task.ActualHours * task.HourlyCostMin,
		ActualCostMax: task.ActualHours * task.HourlyCostMax,
	}
}

// Allocate charges the allocated share of a software subscription.
func Allocate(sw SoftwareInput) SoftwareAllocation {
	return SoftwareAllocation{
		SoftwareInput: sw,
		AllocatedCost: sw.MonthlyCost * sw.AllocationPercent / 100,
	}
}

// OverheadAndFees adds software to labor and applies the fee percent.
func OverheadAndFees(laborMin, laborMax, software, feePercent float64) Overhead {
	overheadMin := laborMin + software
	overheadMax := laborMax + software
	feeMin := overheadMin * feePercent / 100
	feeMax := overheadMax * feePercent / 100

	return Overhead{
		OverheadMin:  overheadMin,
		OverheadMax:  overheadMax,
		FeePercent:   feePercent,
		FeeAmountMin: feeMin,
		FeeAmountMax: feeMax,
		TotalMin:     overheadMin + feeMin,
		TotalMax:     overheadMax + feeMax,
	}
}

// SplitByDepartment spreads the total cost range over departments by their
// allocation percent. When no department has an allocation the split is even.
func SplitByDepartment(depts []Department, totalMin, totalMax float64) []DepartmentCost {
	if len(depts) == 0 || totalMax <= 0 {
		return []DepartmentCost{}
	}

	hasAllocations := false
	for _, d := range depts {
		if d.AllocationPercent != nil && *d.AllocationPercent != 0 {
			hasAllocations = true
			break
		}
	}

	equal := 100 / float64(len(depts))
	out := make([]DepartmentCost, 0, len(depts))
	for _, d := range depts {
		share := equal
		if hasAllocations {
			share = 0
			if d.AllocationPercent != nil {
				share = *d.AllocationPercent
			}
		}
		out = append(out, DepartmentCost{
			DepartmentName:    d.DepartmentName,
			Role:              d.Role,
			AllocationPercent: share,
			CostMin:           totalMin * share / 100,
			CostMax:           totalMax * share / 100,
		})
	}
	return out
}

// Calculate computes the cost range of a product and weighs it against the
// estimated monthly value.
func Calculate(in Input) Result {
	res := Result{
		Tasks:               make([]TaskCost, 0, len(in.Tasks)),
		SoftwareAllocations: make([]SoftwareAllocation, 0, len(in.Software)),
	}
	sum := &res.Summary

	for _, t := range in.Tasks {
		tc := CostTask(t)
		res.Tasks = append(res.Tasks, tc)

		sum.TotalHours += t.EstimatedHours
		sum.TotalActualHours += t.ActualHours
		sum.TotalLaborCostMin += tc.TaskCostMin
		sum.TotalLaborCostMax += tc.TaskCostMax
		sum.TotalActualLaborCostMin += tc.ActualCostMin
		sum.TotalActualLaborCostMax += tc.ActualCostMax
	}

	for _, sw := range in.Software {
		alloc := Allocate(sw)
		res.SoftwareAllocations = append(res.SoftwareAllocations, alloc)
		sum.TotalSoftwareCost += alloc.AllocatedCost
	}

	sum.Overhead = OverheadAndFees(sum.TotalLaborCostMin, sum.TotalLaborCostMax, sum.TotalSoftwareCost, in.FeePercent)
	sum.OverallHoursProgress = Progress(sum.TotalActualHours, sum.TotalHours)
	sum.OverallHoursStatus = Status(sum.TotalActualHours, sum.TotalHours)
	sum.TotalCostMin = sum.TotalMin
	sum.TotalCostMax = sum.TotalMax
	sum.TotalActualCostMin = sum.TotalActualLaborCostMin + sum.TotalSoftwareCost
	sum.TotalActualCostMax = sum.TotalActualLaborCostMax + sum.TotalSoftwareCost

	res.DepartmentCostBreakdown = SplitByDepartment(in.Departments, sum.TotalMin, sum.TotalMax)

	sum.EstimatedMonthlyValue = in.EstimatedValue
	roi := valuation.ComputeROIRange(sum.TotalMin, sum.TotalMax, in.EstimatedValue)
	gp := valuation.ComputeGainPain(sum.TotalMin, sum.TotalMax, in.EstimatedValue)
	sum.ROIPercentLow = roi.Low
	sum.ROIPercentHigh = roi.High
	sum.GainPainRatioLow = gp.Low
	sum.GainPainRatioHigh = gp.High

	res.Recommendation = valuation.ClassifyRecommendation(roi.Low)
	return res
}
