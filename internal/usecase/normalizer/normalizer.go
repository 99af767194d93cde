package normalizer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/payroute/payroute-backend/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// NormalizeCosts maps each route (keyed by its index in the batch) to a cost
// score in [0, 100] relative to the most expensive candidate.
// Logic:
//   - Empty batch returns an empty map
//   - If every route has zero fees, every route maps to 0
//   - Otherwise each route maps to (totalFees / maxFee) * 100, so the route(s)
//     attaining maxFee map to exactly 100
//
// The normalization is relative to the batch and recomputed fresh on every
// call; results must never be reused across different batches.
func NormalizeCosts(routes []domain.Route) map[int]float64 {
	normalized := make(map[int]float64, len(routes))
	if len(routes) == 0 {
		return normalized
	}

	maxFee := MaxTotalFees(routes)
	for i, route := range routes {
		normalized[i] = normalizeFee(route.TotalFees, maxFee)
	}

	return normalized
}

// NormalizeDelays maps each route (keyed by its index in the batch) to a delay
// score relative to the candidate with the longest delay from now.
// Logic:
//   - Delay = estimatedArrival - now; negative delays pass through unmodified
//   - Empty batch returns an empty map
//   - If the maximum delay is exactly zero, every route maps to 0
//   - Otherwise each route maps to (delay / maxDelay) * 100
//
// Values are NOT clamped to [0, 100]: when delays are mixed-sign the relative
// formula can produce values outside that range, and callers doing final
// scoring see the raw value.
func NormalizeDelays(routes []domain.Route, now time.Time) map[int]float64 {
	normalized := make(map[int]float64, len(routes))
	if len(routes) == 0 {
		return normalized
	}

	maxDelay := maxArrivalDelay(routes, now)
	for i, route := range routes {
		normalized[i] = normalizeDelay(route.EstimatedArrival.Sub(now), maxDelay)
	}

	return normalized
}

// NormalizedCost returns the cost score of a single route relative to the
// batch, using the exact algorithm of NormalizeCosts.
func NormalizedCost(route domain.Route, routes []domain.Route) float64 {
	return normalizeFee(route.TotalFees, MaxTotalFees(routes))
}

// NormalizedDelay returns the delay score of a single route relative to the
// batch, using the exact algorithm of NormalizeDelays.
func NormalizedDelay(route domain.Route, routes []domain.Route, now time.Time) float64 {
	return normalizeDelay(route.EstimatedArrival.Sub(now), maxArrivalDelay(routes, now))
}

// MaxTotalFees returns the highest TotalFees across the batch.
// An empty batch yields zero.
func MaxTotalFees(routes []domain.Route) decimal.Decimal {
	maxFee := decimal.Zero
	for _, route := range routes {
		if route.TotalFees.GreaterThan(maxFee) {
			maxFee = route.TotalFees
		}
	}
	return maxFee
}

// SlowestArrival returns the latest estimated arrival across the batch.
// An empty batch yields the zero time.
func SlowestArrival(routes []domain.Route) time.Time {
	var slowest time.Time
	for i, route := range routes {
		if i == 0 || route.EstimatedArrival.After(slowest) {
			slowest = route.EstimatedArrival
		}
	}
	return slowest
}

func normalizeFee(fee, maxFee decimal.Decimal) float64 {
	if maxFee.IsZero() {
		return 0
	}
	score, _ := fee.Div(maxFee).Mul(oneHundred).Float64()
	return score
}

func normalizeDelay(delay, maxDelay time.Duration) float64 {
	if maxDelay == 0 {
		return 0
	}
	return float64(delay) / float64(maxDelay) * 100
}

func maxArrivalDelay(routes []domain.Route, now time.Time) time.Duration {
	var maxDelay time.Duration
	for i, route := range routes {
		delay := route.EstimatedArrival.Sub(now)
		if i == 0 || delay > maxDelay {
			maxDelay = delay
		}
	}
	return maxDelay
}
