package http

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/payroute/payroute-backend/internal/domain"
)

// TransferStepRequest is the wire form of one transfer hop.
// Monetary values travel as decimal strings.
type TransferStepRequest struct {
	FromAccountID    string    `json:"fromAccountId" binding:"required"`
	ToAccountID      string    `json:"toAccountId" binding:"required"`
	Amount           string    `json:"amount" binding:"required"`
	Method           string    `json:"method" binding:"required"`
	Fee              string    `json:"fee"`
	EstimatedArrival time.Time `json:"estimatedArrival" binding:"required"`
}

// RouteRequest is the wire form of one candidate route.
type RouteRequest struct {
	ID               string                `json:"id"`
	Steps            []TransferStepRequest `json:"steps" binding:"required,min=1,dive"`
	TotalFees        string                `json:"totalFees" binding:"required"`
	EstimatedArrival time.Time             `json:"estimatedArrival" binding:"required"`
	RiskLevel        string                `json:"riskLevel"`
	RiskScore        float64               `json:"riskScore" binding:"min=0,max=100"`
}

// PlanRoutesRequest carries the full candidate batch for one calculation.
// referenceTime is optional; when absent the server clock is used at the edge
// so the engine itself never reads a clock.
type PlanRoutesRequest struct {
	Routes        []RouteRequest `json:"routes" binding:"dive"`
	ReferenceTime *time.Time     `json:"referenceTime"`
}

// TransferStepResponse mirrors TransferStepRequest on the way out.
type TransferStepResponse struct {
	FromAccountID    string    `json:"fromAccountId"`
	ToAccountID      string    `json:"toAccountId"`
	Amount           string    `json:"amount"`
	Method           string    `json:"method"`
	Fee              string    `json:"fee"`
	EstimatedArrival time.Time `json:"estimatedArrival"`
}

// RouteResponse is one selected route with its category and reasoning attached.
type RouteResponse struct {
	ID               string                 `json:"id"`
	Category         string                 `json:"category"`
	Steps            []TransferStepResponse `json:"steps"`
	TotalFees        string                 `json:"totalFees"`
	EstimatedArrival time.Time              `json:"estimatedArrival"`
	RiskLevel        string                 `json:"riskLevel"`
	RiskScore        float64                `json:"riskScore"`
	Reasoning        string                 `json:"reasoning"`
}

// PlanRoutesResponse holds the three distinguished picks.
type PlanRoutesResponse struct {
	Cheapest    RouteResponse `json:"cheapest"`
	Fastest     RouteResponse `json:"fastest"`
	Recommended RouteResponse `json:"recommended"`
}

func toDomainRoutes(requests []RouteRequest) ([]domain.Route, error) {
	routes := make([]domain.Route, 0, len(requests))
	for i, req := range requests {
		route, err := toDomainRoute(req)
		if err != nil {
			return nil, fmt.Errorf("invalid route at index %d: %w", i, err)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func toDomainRoute(req RouteRequest) (domain.Route, error) {
	routeID := uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			return domain.Route{}, fmt.Errorf("invalid id format: %w", err)
		}
		routeID = parsed
	}

	totalFees, err := decimal.NewFromString(req.TotalFees)
	if err != nil {
		return domain.Route{}, fmt.Errorf("invalid totalFees format: %w", err)
	}

	steps := make([]domain.TransferStep, 0, len(req.Steps))
	for _, stepReq := range req.Steps {
		step, err := toDomainStep(stepReq)
		if err != nil {
			return domain.Route{}, err
		}
		steps = append(steps, step)
	}

	return domain.Route{
		ID:               routeID,
		Steps:            steps,
		TotalFees:        totalFees,
		EstimatedArrival: req.EstimatedArrival,
		RiskLevel:        domain.RiskLevel(req.RiskLevel),
		RiskScore:        req.RiskScore,
	}, nil
}

func toDomainStep(req TransferStepRequest) (domain.TransferStep, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return domain.TransferStep{}, fmt.Errorf("invalid amount format: %w", err)
	}

	// Absent fee is treated as zero
	fee := decimal.Zero
	if req.Fee != "" {
		fee, err = decimal.NewFromString(req.Fee)
		if err != nil {
			return domain.TransferStep{}, fmt.Errorf("invalid fee format: %w", err)
		}
	}

	return domain.TransferStep{
		FromAccountID:    req.FromAccountID,
		ToAccountID:      req.ToAccountID,
		Amount:           amount,
		Method:           domain.TransferMethod(req.Method),
		Fee:              fee,
		EstimatedArrival: req.EstimatedArrival,
	}, nil
}

func toRouteResponse(route domain.Route) RouteResponse {
	steps := make([]TransferStepResponse, 0, len(route.Steps))
	for _, step := range route.Steps {
		steps = append(steps, TransferStepResponse{
			FromAccountID:    step.FromAccountID,
			ToAccountID:      step.ToAccountID,
			Amount:           step.Amount.String(),
			Method:           string(step.Method),
			Fee:              step.Fee.String(),
			EstimatedArrival: step.EstimatedArrival,
		})
	}

	return RouteResponse{
		ID:               route.ID.String(),
		Category:         string(route.Category),
		Steps:            steps,
		TotalFees:        route.TotalFees.String(),
		EstimatedArrival: route.EstimatedArrival,
		RiskLevel:        string(route.RiskLevel),
		RiskScore:        route.RiskScore,
		Reasoning:        route.Reasoning,
	}
}
