package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferMethod represents the speed class of a single transfer step
type TransferMethod string

const (
	TransferMethodInstant  TransferMethod = "INSTANT"
	TransferMethodSameDay  TransferMethod = "SAME_DAY"
	TransferMethodOneDay   TransferMethod = "ONE_DAY"
	TransferMethodThreeDay TransferMethod = "THREE_DAY"
)

// RiskLevel is the categorical risk label of a route (informative only)
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// RouteCategory identifies which selector picked a route.
// It is not an intrinsic property of a route prior to selection.
type RouteCategory string

const (
	RouteCategoryCheapest    RouteCategory = "CHEAPEST"
	RouteCategoryFastest     RouteCategory = "FASTEST"
	RouteCategoryRecommended RouteCategory = "RECOMMENDED"
)

// ErrEmptyBatch is returned by all selectors when given zero routes
var ErrEmptyBatch = errors.New("route batch cannot be empty")

// TransferStep represents one hop of a route
type TransferStep struct {
	FromAccountID    string
	ToAccountID      string
	Amount           decimal.Decimal // ABSOLUTE VALUE (Always Positive)
	Method           TransferMethod
	Fee              decimal.Decimal // Zero value means no fee on this hop
	EstimatedArrival time.Time
}

// Route represents one end-to-end transfer candidate
// Steps are owned by the route and ordered from source to destination
type Route struct {
	ID               uuid.UUID
	Category         RouteCategory
	Steps            []TransferStep
	TotalFees        decimal.Decimal // Must equal SumStepFees(Steps)
	EstimatedArrival time.Time
	RiskLevel        RiskLevel
	RiskScore        float64 // 0-100, LOWER is better
	Reasoning        string
}

// SumStepFees returns the total fee across the given steps, treating the
// decimal zero value as an absent fee. An empty slice sums to zero.
func SumStepFees(steps []TransferStep) decimal.Decimal {
	total := decimal.Zero
	for _, step := range steps {
		total = total.Add(step.Fee)
	}
	return total
}

// Validate ensures the route adheres to domain rules
// Returns an error if validation fails
// CRITICAL: TotalFees must equal the sum of step fees; the engine enforces
// this at selection time rather than trusting the cached field
func (r *Route) Validate() error {
	if len(r.Steps) == 0 {
		return errors.New("route must have at least one transfer step")
	}

	for _, step := range r.Steps {
		if step.Amount.LessThanOrEqual(decimal.Zero) {
			return errors.New("step amount must be positive")
		}
		if step.Fee.LessThan(decimal.Zero) {
			return errors.New("step fee cannot be negative")
		}
	}

	if r.RiskScore < 0 || r.RiskScore > 100 {
		return errors.New("risk score must be between 0 and 100")
	}

	if !r.TotalFees.Equal(SumStepFees(r.Steps)) {
		return errors.New("total fees must equal the sum of step fees")
	}

	return nil
}

// RouteDecision records one selector pick for auditing
type RouteDecision struct {
	ID               uuid.UUID
	Category         RouteCategory
	RouteID          uuid.UUID
	TotalFees        decimal.Decimal
	EstimatedArrival time.Time
	Score            float64
	Reasoning        string
	CreatedAt        time.Time
}
