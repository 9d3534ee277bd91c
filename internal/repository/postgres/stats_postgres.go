package postgres

import (
	"context"

	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/repository"
)

type statsRepository struct{ db DB }

func NewStatsRepository(db DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// FetchPlayerStatsData pulls the statistics projection in one query. The
// COALESCEs and the float8 casts do the normalization contract in SQL: rows
// predating the NOT NULL constraints still come back with a zero weight and
// points, an empty outcome list and numeric types the engine can use as-is.
func (r *statsRepository) FetchPlayerStatsData(ctx context.Context) ([]model.PlayerStatsData, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(weight, 0)::float8,
		        COALESCE(height, 0)::float8,
		        COALESCE(last, '[]'::jsonb),
		        COALESCE(countrycode, ''),
		        COALESCE(points, 0)
		 FROM players`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.PlayerStatsData, 0, 16)
	for rows.Next() {
		var it model.PlayerStatsData
		if err := rows.Scan(&it.Weight, &it.Height, &it.Last, &it.Countrycode, &it.Points); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.StatsRepository = (*statsRepository)(nil)
