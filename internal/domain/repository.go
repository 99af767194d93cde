package domain

import (
	"context"
)

// DecisionRepository defines the interface for route decision persistence operations
type DecisionRepository interface {
	// Record stores a single selection decision
	Record(ctx context.Context, decision *RouteDecision) error

	// ListRecent retrieves the most recent decisions, newest first
	// limit bounds the number of rows returned
	ListRecent(ctx context.Context, limit int) ([]*RouteDecision, error)
}
