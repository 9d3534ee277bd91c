// Package contract holds reusable repository test suites. A suite receives a
// factory owning every store-specific detail (connection, schema, cleanup)
// and exercises only the repository interfaces, so any implementation can be
// checked against the same behavior.
package contract

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/repository"
)

type PlayerFactory func(t *testing.T) (repository.PlayerRepository, func())

type StatsFactory func(t *testing.T) (repo repository.StatsRepository, seed func(ctx context.Context, p model.Player) error, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

// samplePlayer builds a row satisfying every table constraint. Cases mutate
// copies of it to provoke specific violations.
func samplePlayer(id int64, shortname string) model.Player {
	return model.Player{
		ID:             id,
		Firstname:      "Ashleigh",
		Lastname:       "Barty",
		Shortname:      shortname,
		Sex:            "F",
		Countrycode:    "AUS",
		Countrypicture: "https://img.example.org/flags/AUS.png",
		Picture:        "https://img.example.org/players/" + shortname + ".png",
		Rank:           int(id),
		Points:         1000,
		Weight:         62000,
		Height:         166,
		Age:            26,
		Last:           []int{1, 1, 0, 1, 0},
	}
}

func RunPlayerRepositoryContract(t *testing.T, makeRepo PlayerFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		in := samplePlayer(1, "A.BAR")
		created, err := repo.Create(ctx, in)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID != in.ID || created.Shortname != in.Shortname {
			t.Fatalf("created row mismatch: %+v", created)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Firstname != in.Firstname || got.Rank != in.Rank || got.Countrycode != in.Countrycode {
			t.Fatalf("mismatch: %+v", got)
		}
		if len(got.Last) != len(in.Last) {
			t.Fatalf("last not preserved: %v", got.Last)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_ordered_by_rank_then_points", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		// Insertion order is shuffled on purpose; ids 3 and 4 share a rank
		// so the points tie-break is exercised too.
		seed := []model.Player{
			samplePlayer(1, "P.ONE"),
			samplePlayer(2, "P.TWO"),
			samplePlayer(3, "P.THREE"),
			samplePlayer(4, "P.FOUR"),
		}
		seed[0].Rank, seed[0].Points = 3, 500
		seed[1].Rank, seed[1].Points = 1, 2000
		seed[2].Rank, seed[2].Points = 2, 800
		seed[3].Rank, seed[3].Points = 2, 900
		for _, p := range seed {
			if _, err := repo.Create(ctx, p); err != nil {
				t.Fatalf("seed %d: %v", p.ID, err)
			}
		}
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		wantIDs := []int64{2, 4, 3, 1}
		if len(got) != len(wantIDs) {
			t.Fatalf("expected %d players, got %d", len(wantIDs), len(got))
		}
		for i, want := range wantIDs {
			if got[i].ID != want {
				t.Fatalf("position %d: want id %d, got %d", i, want, got[i].ID)
			}
		}
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if prev.Rank > cur.Rank || (prev.Rank == cur.Rank && prev.Points < cur.Points) {
				t.Fatalf("ordering violated at %d: (%d,%d) before (%d,%d)", i, prev.Rank, prev.Points, cur.Rank, cur.Points)
			}
		}
	})

	t.Run("create_duplicate_shortname_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, samplePlayer(1, "DUP.SN")); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, samplePlayer(2, "DUP.SN"))
		assertStoreError(t, err, repository.KindDuplicate, http.StatusConflict)
	})

	t.Run("create_duplicate_id_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, samplePlayer(7, "ID.ONE")); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, samplePlayer(7, "ID.TWO"))
		assertStoreError(t, err, repository.KindDuplicate, http.StatusConflict)
	})

	t.Run("create_check_violation_rank", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		bad := samplePlayer(1, "BAD.RANK")
		bad.Rank = 0
		_, err := repo.Create(context.Background(), bad)
		assertStoreError(t, err, repository.KindConstraint, http.StatusBadRequest)
	})

	t.Run("create_check_violation_last_values", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		bad := samplePlayer(1, "BAD.LAST")
		bad.Last = []int{1, 0, 2}
		_, err := repo.Create(context.Background(), bad)
		assertStoreError(t, err, repository.KindConstraint, http.StatusBadRequest)
	})
}

func RunStatsReaderContract(t *testing.T, makeRepo StatsFactory) {
	t.Helper()

	t.Run("fetch_projection", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		p := samplePlayer(1, "S.ONE")
		p.Countrycode = "FRA"
		p.Weight = 80000
		p.Height = 180
		p.Points = 1500
		p.Last = []int{1, 0, 1}
		if err := seed(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
		rows, err := repo.FetchPlayerStatsData(ctx)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		r := rows[0]
		if r.Weight != 80000 || r.Height != 180 || r.Countrycode != "FRA" || r.Points != 1500 {
			t.Fatalf("unexpected projection: %+v", r)
		}
		if len(r.Last) != 3 || r.Last[0] != 1 || r.Last[1] != 0 || r.Last[2] != 1 {
			t.Fatalf("last not preserved: %v", r.Last)
		}
	})

	t.Run("fetch_empty_ok", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		rows, err := repo.FetchPlayerStatsData(context.Background())
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(rows))
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

// assertStoreError fails unless err is a *StoreError with the wanted kind and
// status. The store classifies by error code, so this is where the contract
// pins the 409/400 families down.
func assertStoreError(t *testing.T, err error, kind repository.Kind, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	var se *repository.StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StoreError, got %T: %v", err, err)
	}
	if se.Kind != kind || se.Status != status {
		t.Fatalf("expected %s/%d, got %s/%d (%v)", kind, status, se.Kind, se.Status, err)
	}
}
