package selector

import (
	"time"

	"github.com/payroute/payroute-backend/internal/domain"
	"github.com/payroute/payroute-backend/internal/usecase/normalizer"
	"github.com/payroute/payroute-backend/internal/usecase/scorer"
)

// Cheapest returns the route with the minimum total fees.
// Ties break to the first occurrence in batch order.
// Returns domain.ErrEmptyBatch when given zero routes.
func Cheapest(routes []domain.Route) (domain.Route, error) {
	if len(routes) == 0 {
		return domain.Route{}, domain.ErrEmptyBatch
	}

	best := routes[0]
	for _, candidate := range routes[1:] {
		// Strict comparison keeps the first minimum found
		if candidate.TotalFees.LessThan(best.TotalFees) {
			best = candidate
		}
	}

	return best, nil
}

// Fastest returns the route with the earliest estimated arrival.
// Ties break to the first occurrence in batch order.
// Returns domain.ErrEmptyBatch when given zero routes.
func Fastest(routes []domain.Route) (domain.Route, error) {
	if len(routes) == 0 {
		return domain.Route{}, domain.ErrEmptyBatch
	}

	best := routes[0]
	for _, candidate := range routes[1:] {
		if candidate.EstimatedArrival.Before(best.EstimatedArrival) {
			best = candidate
		}
	}

	return best, nil
}

// Recommended returns the route with the highest weighted recommendation
// score, computed from batch-relative cost and delay normalization plus the
// route's risk score. Ties break to the first occurrence of the maximum.
// Returns domain.ErrEmptyBatch when given zero routes.
func Recommended(routes []domain.Route, now time.Time) (domain.Route, error) {
	if len(routes) == 0 {
		return domain.Route{}, domain.ErrEmptyBatch
	}

	// Normalize once over the whole batch, then score each candidate
	normalizedCosts := normalizer.NormalizeCosts(routes)
	normalizedDelays := normalizer.NormalizeDelays(routes, now)

	bestIdx := 0
	bestScore := scorer.Score(routes[0], normalizedCosts[0], normalizedDelays[0])
	for i := 1; i < len(routes); i++ {
		score := scorer.Score(routes[i], normalizedCosts[i], normalizedDelays[i])
		if score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	return routes[bestIdx], nil
}
