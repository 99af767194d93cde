package scorer

import (
	"github.com/payroute/payroute-backend/internal/domain"
)

// Recommendation weights. Fixed by product definition: cost dominates at 40%,
// time and risk contribute 30% each.
const (
	CostWeight = 0.4
	TimeWeight = 0.3
	RiskWeight = 0.3
)

// Breakdown holds the weighted contribution of each criterion to a route's
// recommendation score. Each component is (100 - input) * weight, so higher
// is better throughout.
type Breakdown struct {
	CostScore float64
	TimeScore float64
	RiskScore float64
}

// Total returns the overall recommendation score.
// The score is nominally bounded to [0, 100], but normalized delays are not
// clamped, so mixed-sign delay batches can push it outside that range.
func (b Breakdown) Total() float64 {
	return b.CostScore + b.TimeScore + b.RiskScore
}

// Components computes the weighted sub-scores for a route given its normalized
// cost and normalized delay. Both the recommended selector and the reasoning
// generator go through this single helper so the explanation always matches
// the selection.
func Components(route domain.Route, normalizedCost, normalizedTime float64) Breakdown {
	return Breakdown{
		CostScore: (100 - normalizedCost) * CostWeight,
		TimeScore: (100 - normalizedTime) * TimeWeight,
		RiskScore: (100 - route.RiskScore) * RiskWeight,
	}
}

// Score computes the overall recommendation score for a route. Higher is better.
func Score(route domain.Route, normalizedCost, normalizedTime float64) float64 {
	return Components(route, normalizedCost, normalizedTime).Total()
}
