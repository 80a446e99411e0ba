package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/product-jarvis/internal/costing"
	"github.com/Simplici0/product-jarvis/internal/report"
	"github.com/Simplici0/product-jarvis/internal/store"
	"github.com/Simplici0/product-jarvis/internal/valuation"
)

// RateCard is the read side of the store the cost calculator needs.
type RateCard interface {
	ListPositions(ctx context.Context) ([]store.Position, error)
	ListSoftware(ctx context.Context) ([]store.Software, error)
	PositionsByID(ctx context.Context, ids []int64) (map[int64]store.Position, error)
	SoftwareByID(ctx context.Context, ids []int64) (map[int64]store.Software, error)
}

type server struct {
	rates RateCard
}

// Options configures the router.
type Options struct {
	APIBase    string
	CORSOrigin string
}

// NewRouter wires every endpoint under opts.APIBase.
func NewRouter(rates RateCard, opts Options) http.Handler {
	s := &server{rates: rates}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors(opts.CORSOrigin))

	r.Get("/health", s.handleHealth)

	base := "/" + strings.Trim(opts.APIBase, "/")
	r.Route(base, func(r chi.Router) {
		r.Post("/valuations/quick-estimate", s.handleQuickEstimate)
		r.Post("/valuations/calculate", s.handleCalculate)
		r.Post("/valuations/report", s.handleReport)
		r.Post("/calculator/roi", s.handleROI)
		r.Post("/calculator/estimate", s.handleCostEstimate)
		r.Get("/positions", s.handlePositions)
		r.Get("/software", s.handleSoftware)
	})

	return r
}

func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

type quickEstimateRequest struct {
	ProductType valuation.ProductType `json:"product_type"`
	Inputs      valuation.QuickInputs `json:"inputs"`
}

func (s *server) handleQuickEstimate(w http.ResponseWriter, r *http.Request) {
	var req quickEstimateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !validProductType(req.ProductType) {
		writeError(w, http.StatusBadRequest, "product_type must be Internal, External or Both")
		return
	}

	writeData(w, http.StatusOK, valuation.ComputeQuickEstimate(req.ProductType, req.Inputs))
}

type valuationRequest struct {
	ProductName string                `json:"product_name"`
	ProductType valuation.ProductType `json:"product_type"`
	EffortHours float64               `json:"effort_hours"`
	Inputs      valuation.Inputs      `json:"inputs"`
	// Optional cost range; when set the report includes ROI and a recommendation.
	CostMin *float64 `json:"cost_min"`
	CostMax *float64 `json:"cost_max"`
}

func (s *server) decodeValuation(w http.ResponseWriter, r *http.Request) (valuationRequest, bool) {
	var req valuationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return req, false
	}
	if !validProductType(req.ProductType) {
		writeError(w, http.StatusBadRequest, "product_type must be Internal, External or Both")
		return req, false
	}
	if req.EffortHours < 0 {
		writeError(w, http.StatusBadRequest, "effort_hours must be >= 0")
		return req, false
	}
	return req, true
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeValuation(w, r)
	if !ok {
		return
	}

	writeData(w, http.StatusOK, valuation.ComputeFullValuation(req.ProductType, req.Inputs, req.EffortHours))
}

func (s *server) handleReport(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeValuation(w, r)
	if !ok {
		return
	}

	summary := report.Summary{
		ProductName: req.ProductName,
		Result:      valuation.ComputeFullValuation(req.ProductType, req.Inputs, req.EffortHours),
	}
	if req.CostMin != nil && req.CostMax != nil {
		roi := valuation.ComputeROIRange(*req.CostMin, *req.CostMax, summary.Result.FinalMonthlyValue)
		rec := valuation.ClassifyRecommendation(roi.Low)
		summary.ROI = &roi
		summary.Recommendation = &rec
	}

	html, err := report.HTML(summary)
	if err != nil {
		log.Printf("render report: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

type roiRequest struct {
	CostMin float64 `json:"cost_min"`
	CostMax float64 `json:"cost_max"`
	Value   float64 `json:"value"`
}

type roiResponse struct {
	ROILow         *float64                 `json:"roi_low"`
	ROIHigh        *float64                 `json:"roi_high"`
	GainPainLow    *float64                 `json:"gain_pain_low"`
	GainPainHigh   *float64                 `json:"gain_pain_high"`
	GainPainMid    *float64                 `json:"gain_pain_mid"`
	Recommendation valuation.Recommendation `json:"recommendation"`
}

func (s *server) handleROI(w http.ResponseWriter, r *http.Request) {
	var req roiRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.CostMin > req.CostMax {
		writeError(w, http.StatusBadRequest, "cost_min must be <= cost_max")
		return
	}

	roi := valuation.ComputeROIRange(req.CostMin, req.CostMax, req.Value)
	gp := valuation.ComputeGainPain(req.CostMin, req.CostMax, req.Value)
	writeData(w, http.StatusOK, roiResponse{
		ROILow:         roi.Low,
		ROIHigh:        roi.High,
		GainPainLow:    gp.Low,
		GainPainHigh:   gp.High,
		GainPainMid:    gp.Mid(),
		Recommendation: valuation.ClassifyRecommendation(roi.Low),
	})
}

type costTaskRequest struct {
	Name           string  `json:"name"`
	PositionID     int64   `json:"position_id"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
}

type costSoftwareRequest struct {
	SoftwareID        int64   `json:"software_id"`
	AllocationPercent float64 `json:"allocation_percent"`
}

type costEstimateRequest struct {
	FeePercent     float64               `json:"fee_percent"`
	EstimatedValue float64               `json:"estimated_value"`
	Tasks          []costTaskRequest     `json:"tasks"`
	Software       []costSoftwareRequest `json:"software"`
	Departments    []costing.Department  `json:"departments"`
}

func (req costEstimateRequest) validate() error {
	if req.FeePercent < 0 {
		return errors.New("fee_percent must be >= 0")
	}
	for _, t := range req.Tasks {
		if t.EstimatedHours < 0 || t.ActualHours < 0 {
			return errors.New("task hours must be >= 0")
		}
	}
	for _, sw := range req.Software {
		if sw.AllocationPercent < 0 || sw.AllocationPercent > 100 {
			return errors.New("allocation_percent must be between 0 and 100")
		}
	}
	return nil
}

func (s *server) handleCostEstimate(w http.ResponseWriter, r *http.Request) {
	var req costEstimateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := s.resolveCostInput(r.Context(), req)
	switch {
	case errors.Is(err, store.ErrPositionNotFound), errors.Is(err, store.ErrSoftwareNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		log.Printf("resolve cost input: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load rate card")
		return
	}

	writeData(w, http.StatusOK, costing.Calculate(in))
}

// resolveCostInput fills position rates and software prices from the rate card.
func (s *server) resolveCostInput(ctx context.Context, req costEstimateRequest) (costing.Input, error) {
	positionIDs := make([]int64, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		positionIDs = append(positionIDs, t.PositionID)
	}
	softwareIDs := make([]int64, 0, len(req.Software))
	for _, sw := range req.Software {
		softwareIDs = append(softwareIDs, sw.SoftwareID)
	}

	positions, err := s.rates.PositionsByID(ctx, positionIDs)
	if err != nil {
		return costing.Input{}, err
	}
	software, err := s.rates.SoftwareByID(ctx, softwareIDs)
	if err != nil {
		return costing.Input{}, err
	}

	in := costing.Input{
		FeePercent:     req.FeePercent,
		EstimatedValue: req.EstimatedValue,
		Departments:    req.Departments,
	}
	for _, t := range req.Tasks {
		p := positions[t.PositionID]
		in.Tasks = append(in.Tasks, costing.TaskInput{
			Name:           t.Name,
			PositionID:     p.ID,
			PositionTitle:  p.Title,
			EstimatedHours: t.EstimatedHours,
			ActualHours:    t.ActualHours,
			HourlyCostMin:  p.HourlyCostMin,
			HourlyCostMax:  p.HourlyCostMax,
		})
	}
	for _, a := range req.Software {
		sw := software[a.SoftwareID]
		in.Software = append(in.Software, costing.SoftwareInput{
			SoftwareID:        sw.ID,
			SoftwareName:      sw.Name,
			MonthlyCost:       sw.MonthlyCost,
			AllocationPercent: a.AllocationPercent,
		})
	}
	return in, nil
}

func (s *server) handlePositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.rates.ListPositions(r.Context())
	if err != nil {
		log.Printf("list positions: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load positions")
		return
	}
	writeData(w, http.StatusOK, positions)
}

func (s *server) handleSoftware(w http.ResponseWriter, r *http.Request) {
	software, err := s.rates.ListSoftware(r.Context())
	if err != nil {
		log.Printf("list software: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load software")
		return
	}
	writeData(w, http.StatusOK, software)
}

func validProductType(pt valuation.ProductType) bool {
	switch pt {
	case valuation.Internal, valuation.External, valuation.Both:
		return true
	}
	return false
}
