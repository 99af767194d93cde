package reasoning

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payroute/payroute-backend/internal/domain"
	"github.com/payroute/payroute-backend/internal/usecase/normalizer"
	"github.com/payroute/payroute-backend/internal/usecase/scorer"
)

// Qualitative strength thresholds on the weighted sub-scores
const (
	competitiveFeesThreshold = 30.0
	fastDeliveryThreshold    = 20.0
	lowRiskThreshold         = 20.0
)

// fallbackReasoning covers categories this generator does not recognize.
// Explanations are best-effort and must never block a selection result.
const fallbackReasoning = "This route offers a good balance of cost, speed, and reliability."

// Generate returns a human-readable justification for why route was selected
// for the given category, referencing the batch's extremes (most expensive
// fee, slowest arrival) for comparison. now is the reference timestamp the
// selection ran against. Generation never fails; unknown categories yield a
// generic sentence.
func Generate(route domain.Route, category domain.RouteCategory, routes []domain.Route, now time.Time) string {
	switch category {
	case domain.RouteCategoryCheapest:
		return cheapestReasoning(route, routes)
	case domain.RouteCategoryFastest:
		return fastestReasoning(route, routes, now)
	case domain.RouteCategoryRecommended:
		return recommendedReasoning(route, routes, now)
	default:
		return fallbackReasoning
	}
}

func cheapestReasoning(route domain.Route, routes []domain.Route) string {
	stepCount := len(route.Steps)

	if route.TotalFees.IsZero() {
		return fmt.Sprintf("This route is completely free, moving your money through %d transfer %s with no fees.",
			stepCount, pluralize("step", stepCount))
	}

	savings := normalizer.MaxTotalFees(routes).Sub(route.TotalFees)
	if savings.IsZero() {
		// Every candidate charges the same, so there is nothing to save
		return fmt.Sprintf("This route charges a flat %s in fees across %d transfer %s.",
			currency(route.TotalFees), stepCount, pluralize("step", stepCount))
	}

	return fmt.Sprintf("This route costs %s in fees, saving you %s compared to the most expensive option.",
		currency(route.TotalFees), currency(savings))
}

func fastestReasoning(route domain.Route, routes []domain.Route, now time.Time) string {
	delay := route.EstimatedArrival.Sub(now)
	totalMinutes := int(delay.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	var arrival string
	switch {
	case hours == 0 && minutes <= 5:
		arrival = "within minutes"
	case hours == 0:
		arrival = fmt.Sprintf("in %d minutes", minutes)
	case hours < 24:
		arrival = fmt.Sprintf("in %d %s", hours, pluralize("hour", hours))
	default:
		days := hours / 24
		arrival = fmt.Sprintf("in %d %s", days, pluralize("day", days))
	}

	timeSaved := normalizer.SlowestArrival(routes).Sub(route.EstimatedArrival)
	if timeSaved == 0 {
		return fmt.Sprintf("Your money arrives %s, matching the fastest possible time.", arrival)
	}
	if timeSaved < time.Hour {
		// Below one hour we make no numeric saved-time claim
		return fmt.Sprintf("Your money arrives %s, making this the fastest option available.", arrival)
	}

	hoursSaved := int(timeSaved.Hours())
	if hoursSaved >= 24 {
		daysSaved := hoursSaved / 24
		return fmt.Sprintf("Your money arrives %s, %d %s sooner than the slowest option.",
			arrival, daysSaved, pluralize("day", daysSaved))
	}

	return fmt.Sprintf("Your money arrives %s, %d %s sooner than the slowest option.",
		arrival, hoursSaved, pluralize("hour", hoursSaved))
}

func recommendedReasoning(route domain.Route, routes []domain.Route, now time.Time) string {
	// Recompute normalization through the same helpers the recommended
	// selector uses, so the explanation reflects the score that actually won
	normalizedCost := normalizer.NormalizedCost(route, routes)
	normalizedDelay := normalizer.NormalizedDelay(route, routes, now)
	breakdown := scorer.Components(route, normalizedCost, normalizedDelay)

	strengths := make([]string, 0, 3)
	if breakdown.CostScore >= competitiveFeesThreshold {
		strengths = append(strengths, "competitive fees")
	}
	if breakdown.TimeScore >= fastDeliveryThreshold {
		strengths = append(strengths, "fast delivery")
	}
	if breakdown.RiskScore >= lowRiskThreshold {
		strengths = append(strengths, "low risk")
	}

	summary := "balanced characteristics"
	if len(strengths) > 0 {
		summary = strings.Join(strengths, ", ")
	}

	return fmt.Sprintf("Best overall value with %s, scoring %.1f out of 100 on a weighted blend of cost (40%%), speed (30%%), and risk (30%%).",
		summary, breakdown.Total())
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

func currency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
