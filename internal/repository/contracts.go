package repository

import (
	"context"

	"github.com/lmartin/tennis-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PlayerRepository declares persistence operations for players.
// I return domain models and surface the classified errors from errors.go
// rather than raw PG codes.
type PlayerRepository interface {
	// Create inserts one player as a single statement and returns the row as
	// stored. Constraint failures come back as *StoreError.
	Create(ctx context.Context, p model.Player) (model.Player, error)
	// GetByID returns the player or ErrNotFound. Absence is not a failure.
	GetByID(ctx context.Context, id int64) (model.Player, error)
	// List returns every player ordered by rank ascending, then points
	// descending. The ordering is part of the contract, not a presentation
	// detail.
	List(ctx context.Context) ([]model.Player, error)
}

// StatsRepository declares the read side of the statistics feature: a single
// normalized projection of the columns the calculations need. It never loads
// full players.
type StatsRepository interface {
	FetchPlayerStatsData(ctx context.Context) ([]model.PlayerStatsData, error)
}
