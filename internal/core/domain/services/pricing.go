package services

import (
	"math"

	"missions/internal/core/domain/model/mission"
)

// MarginType selects how the billing margin is computed.
type MarginType int

const (
	// MarginUnknown represents an invalid or undefined margin type.
	MarginUnknown MarginType = iota

	// MarginPercentage adds a percentage of the total cost, clamped to 100.
	MarginPercentage

	// MarginFixed adds an absolute amount.
	MarginFixed
)

// MarginConfig enables a billing margin on top of the base cost. A nil
// MarginConfig on QuoteParams means no margin.
type MarginConfig struct {
	Type  MarginType
	Value float64
}

// AutomaticRates selects automatic pricing: the daily rate and per-diem
// amount are resolved from the rate table by aircraft registration and
// crew position.
type AutomaticRates struct {
	Registration string
	Position     string
}

// QuoteParams are the inputs of a pricing calculation.
//
// Either Auto is set (automatic mode, rates resolved from the rate table)
// or the Manual* fields supply the rates directly. In manual mode the
// interpretation of ManualRate follows Mode: a per-day rate for daily, a
// per-month amount for monthly, the fixed total for lump_sum. Automatic
// mode always prices per day.
type QuoteParams struct {
	Auto          *AutomaticRates
	ManualRate    float64
	ManualPerDiem float64

	Mode           mission.SalaryMode
	DurationDays   int
	PerDiemEnabled bool
	Margin         *MarginConfig
}

// Quote is the result of a pricing calculation. All values are clamped to
// be non-negative and TotalWithMargin is always TotalCost plus
// MarginAmount.
//
// In lump_sum mode DailySalary is a synthetic per-day figure for display
// only; TotalSalary is the supplied fixed amount and is invariant under
// duration changes.
type Quote struct {
	DailySalary     float64
	TotalSalary     float64
	DailyPerDiem    float64
	TotalPerDiem    float64
	TotalCost       float64
	MarginAmount    float64
	TotalWithMargin float64
}

// Fees converts the quote into the billing snapshot attached to the email
// sent to the paying party. This is the only producer of a fees block.
func (q Quote) Fees() mission.Fees {
	return mission.Fees{
		DailySalary:     q.DailySalary,
		TotalSalary:     q.TotalSalary,
		DailyPerDiem:    q.DailyPerDiem,
		TotalPerDiem:    q.TotalPerDiem,
		TotalCost:       q.TotalCost,
		MarginAmount:    q.MarginAmount,
		TotalWithMargin: q.TotalWithMargin,
	}
}

// PricingEngine computes crew compensation and client billing figures.
// It is a pure domain service: no side effects, no dependency on the
// lifecycle state machine, safe to call concurrently. Transition handlers
// use it to attach a fees snapshot to the billing email; preview surfaces
// call it speculatively.
type PricingEngine struct {
	rates *RateTable
}

// NewPricingEngine creates a pricing engine backed by the given rate table.
func NewPricingEngine(rates *RateTable) PricingEngine {
	return PricingEngine{rates: rates}
}

// Calculate computes a quote from the given parameters.
//
// It never fails: malformed numeric inputs are sanitized to zero and every
// output is clamped to be non-negative. The single exception is an
// automatic-mode lookup miss (unknown aircraft or unknown position), which
// returns nil so callers can distinguish "not yet computable" from
// "computed to zero".
func (e PricingEngine) Calculate(params QuoteParams) *Quote {
	duration := params.DurationDays
	if duration < 1 {
		duration = 1
	}

	var rate, perDiemDaily float64
	if params.Auto != nil {
		resolved, ok := e.rates.Resolve(params.Auto.Registration, params.Auto.Position)
		if !ok {
			return nil
		}
		rate = resolved.DailySalary
		perDiemDaily = resolved.DailyPerDiem
	} else {
		rate = sanitizeAmount(params.ManualRate)
		perDiemDaily = sanitizeAmount(params.ManualPerDiem)
	}

	var dailySalary, totalSalary float64
	mode := params.Mode
	if params.Auto != nil {
		mode = mission.SalaryModeDaily
	}
	switch mode {
	case mission.SalaryModeMonthly:
		dailySalary = rate / 30
		totalSalary = dailySalary * float64(duration)
	case mission.SalaryModeLumpSum:
		totalSalary = rate
		dailySalary = totalSalary / float64(duration)
	default:
		dailySalary = rate
		totalSalary = dailySalary * float64(duration)
	}

	var dailyPerDiem, totalPerDiem float64
	if params.PerDiemEnabled {
		dailyPerDiem = perDiemDaily
		totalPerDiem = dailyPerDiem * float64(duration)
	}

	totalCost := totalSalary + totalPerDiem

	var marginAmount float64
	if params.Margin != nil {
		switch params.Margin.Type {
		case MarginPercentage:
			percent := sanitizeAmount(params.Margin.Value)
			if percent > 100 {
				percent = 100
			}
			marginAmount = totalCost * percent / 100
		case MarginFixed:
			marginAmount = sanitizeAmount(params.Margin.Value)
		}
	}

	quote := Quote{
		DailySalary:     dailySalary,
		TotalSalary:     totalSalary,
		DailyPerDiem:    dailyPerDiem,
		TotalPerDiem:    totalPerDiem,
		TotalCost:       totalCost,
		MarginAmount:    marginAmount,
		TotalWithMargin: totalCost + marginAmount,
	}
	quote.clamp()
	return &quote
}

// clamp maps any negative or NaN output to zero. Every published quote
// figure is non-negative and finite.
func (q *Quote) clamp() {
	for _, v := range []*float64{
		&q.DailySalary, &q.TotalSalary,
		&q.DailyPerDiem, &q.TotalPerDiem,
		&q.TotalCost, &q.MarginAmount, &q.TotalWithMargin,
	} {
		*v = sanitizeAmount(*v)
	}
}

// sanitizeAmount maps negative and NaN inputs to zero so malformed input
// never propagates into a quote.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
