package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/payroute/payroute-backend/internal/domain"
	"github.com/payroute/payroute-backend/internal/usecase/normalizer"
	"github.com/payroute/payroute-backend/internal/usecase/reasoning"
	"github.com/payroute/payroute-backend/internal/usecase/scorer"
	"github.com/payroute/payroute-backend/internal/usecase/selector"
)

// RoutePlan holds the three distinguished picks for one calculation
type RoutePlan struct {
	Cheapest    domain.Route
	Fastest     domain.Route
	Recommended domain.Route
}

// RoutePlanService runs one user-initiated calculation over a candidate batch:
// batch validation, the three selectors, reasoning, and a decision audit trail
type RoutePlanService struct {
	DecisionRepo domain.DecisionRepository

	logger *zap.Logger
}

// NewRoutePlanService creates a new RoutePlanService instance
func NewRoutePlanService(logger *zap.Logger, decisionRepo domain.DecisionRepository) *RoutePlanService {
	return &RoutePlanService{
		DecisionRepo: decisionRepo,
		logger:       logger,
	}
}

// PlanRoutes validates every candidate, picks the cheapest, fastest and
// recommended routes, and attaches category and reasoning to each pick.
// The input batch is never mutated; winners are returned as stamped copies.
// now is the reference timestamp for all delay computations, supplied by the
// caller to keep the engine deterministic.
func (s *RoutePlanService) PlanRoutes(ctx context.Context, routes []domain.Route, now time.Time) (*RoutePlan, error) {
	if len(routes) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	for i := range routes {
		if err := routes[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid route at index %d: %w", i, err)
		}
	}

	cheapest, err := selector.Cheapest(routes)
	if err != nil {
		return nil, err
	}

	fastest, err := selector.Fastest(routes)
	if err != nil {
		return nil, err
	}

	recommended, err := selector.Recommended(routes, now)
	if err != nil {
		return nil, err
	}

	cheapest.Category = domain.RouteCategoryCheapest
	cheapest.Reasoning = reasoning.Generate(cheapest, domain.RouteCategoryCheapest, routes, now)

	fastest.Category = domain.RouteCategoryFastest
	fastest.Reasoning = reasoning.Generate(fastest, domain.RouteCategoryFastest, routes, now)

	recommended.Category = domain.RouteCategoryRecommended
	recommended.Reasoning = reasoning.Generate(recommended, domain.RouteCategoryRecommended, routes, now)

	plan := &RoutePlan{
		Cheapest:    cheapest,
		Fastest:     fastest,
		Recommended: recommended,
	}

	s.recordDecisions(ctx, plan, routes, now)

	return plan, nil
}

// recordDecisions writes one audit row per pick. Audit writes are
// best-effort: a storage failure must not block the selection result.
func (s *RoutePlanService) recordDecisions(ctx context.Context, plan *RoutePlan, routes []domain.Route, now time.Time) {
	for _, pick := range []domain.Route{plan.Cheapest, plan.Fastest, plan.Recommended} {
		decision := &domain.RouteDecision{
			ID:               uuid.New(),
			Category:         pick.Category,
			RouteID:          pick.ID,
			TotalFees:        pick.TotalFees,
			EstimatedArrival: pick.EstimatedArrival,
			Score: scorer.Score(pick,
				normalizer.NormalizedCost(pick, routes),
				normalizer.NormalizedDelay(pick, routes, now)),
			Reasoning: pick.Reasoning,
			CreatedAt: time.Now(),
		}

		if err := s.DecisionRepo.Record(ctx, decision); err != nil {
			s.logger.Warn("failed to record route decision",
				zap.String("category", string(pick.Category)),
				zap.Error(err))
		}
	}
}
