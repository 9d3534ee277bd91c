package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/repository"
)

// playerColumns is the full attribute list in scanPlayer order. The id is
// caller-supplied, so inserts carry it explicitly instead of relying on a
// sequence.
const playerColumns = `id, firstname, lastname, shortname, sex, countrycode, countrypicture, picture, rank, points, weight, height, age, last`

type playerRepository struct{ db DB }

func NewPlayerRepository(db DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Player{}, err
	}
	// Single INSERT .. RETURNING round trip; the slice binds straight to the
	// JSONB column through pgx's JSON codec. Uniqueness and the table checks
	// stay with Postgres, and their violations come back classified by
	// MapPgError.
	row := r.db.QueryRow(ctx,
		`INSERT INTO players (`+playerColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING `+playerColumns,
		p.ID, p.Firstname, p.Lastname, p.Shortname, p.Sex, p.Countrycode, p.Countrypicture, p.Picture,
		p.Rank, p.Points, p.Weight, p.Height, p.Age, p.Last,
	)
	out, err := scanPlayer(row)
	if err != nil {
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (model.Player, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Player{}, err
	}
	row := r.db.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1`, id,
	)
	out, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) List(ctx context.Context) ([]model.Player, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	// rank/points ordering is the operation's contract; id only makes ties
	// deterministic.
	rows, err := r.db.Query(ctx,
		`SELECT `+playerColumns+` FROM players ORDER BY rank ASC, points DESC, id ASC`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Player, 0, 16)
	for rows.Next() {
		it, err := scanPlayer(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

// scanPlayer reads one row in playerColumns order. pgx.Row and pgx.Rows both
// satisfy the single-row scan shape.
func scanPlayer(row pgx.Row) (model.Player, error) {
	var p model.Player
	err := row.Scan(
		&p.ID, &p.Firstname, &p.Lastname, &p.Shortname, &p.Sex, &p.Countrycode, &p.Countrypicture, &p.Picture,
		&p.Rank, &p.Points, &p.Weight, &p.Height, &p.Age, &p.Last,
	)
	return p, err
}

var _ repository.PlayerRepository = (*playerRepository)(nil)
