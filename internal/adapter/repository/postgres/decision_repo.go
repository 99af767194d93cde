package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/payroute/payroute-backend/internal/domain"
)

// decisionRepository implements domain.DecisionRepository
type decisionRepository struct {
	db *DB
}

// NewDecisionRepository creates a new route decision repository
func NewDecisionRepository(db *DB) domain.DecisionRepository {
	return &decisionRepository{db: db}
}

// Record stores a single selection decision
func (r *decisionRepository) Record(ctx context.Context, decision *domain.RouteDecision) error {
	query := `
		INSERT INTO route_decisions (id, category, route_id, total_fees, estimated_arrival, score, reasoning, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		decision.ID,
		string(decision.Category),
		decision.RouteID,
		decision.TotalFees.String(),
		decision.EstimatedArrival,
		decision.Score,
		decision.Reasoning,
		decision.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert route decision: %w", err)
	}

	return nil
}

// ListRecent retrieves the most recent decisions, newest first
func (r *decisionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RouteDecision, error) {
	query := `
		SELECT id, category, route_id, total_fees, estimated_arrival, score, reasoning, created_at
		FROM route_decisions
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list route decisions: %w", err)
	}
	defer rows.Close()

	decisions := make([]*domain.RouteDecision, 0)
	for rows.Next() {
		var decision domain.RouteDecision
		var category string
		var totalFeesStr string

		if err := rows.Scan(
			&decision.ID,
			&category,
			&decision.RouteID,
			&totalFeesStr,
			&decision.EstimatedArrival,
			&decision.Score,
			&decision.Reasoning,
			&decision.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan route decision: %w", err)
		}

		// Parse total_fees (DECIMAL)
		totalFees, err := decimal.NewFromString(totalFeesStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse total_fees: %w", err)
		}
		decision.TotalFees = totalFees
		decision.Category = domain.RouteCategory(category)

		decisions = append(decisions, &decision)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate route decisions: %w", err)
	}

	return decisions, nil
}
