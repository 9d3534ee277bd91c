package service

import (
	"context"
	"time"

	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type playerService struct {
	players repository.PlayerRepository
	log     zerolog.Logger
}

func NewPlayerService(players repository.PlayerRepository, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{players: players, log: l}
}

func (s *playerService) CreatePlayer(ctx context.Context, in model.PlayerInput) (model.Player, error) {
	start := time.Now()

	p, ferrs := ValidatePlayer(in)
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("player validation failed")
		return model.Player{}, err
	}

	out, err := s.players.Create(ctx, p)
	if err != nil {
		// Repository errors arrive classified; do not wrap, the boundary maps them.
		s.log.Error().Err(err).Int64("player_id", p.ID).Str("shortname", p.Shortname).Msg("create player failed")
		return model.Player{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("player_id", out.ID).Msg("player created")
	return out, nil
}

// GetPlayer passes the id straight through: unparseable ids never reach this
// point and out-of-range ones simply miss, which the boundary reports as 404.
func (s *playerService) GetPlayer(ctx context.Context, id int64) (model.Player, error) {
	return s.players.GetByID(ctx, id)
}

func (s *playerService) ListPlayers(ctx context.Context) ([]model.Player, error) {
	res, err := s.players.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list players failed")
		return nil, err
	}
	return res, nil
}
