package service_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/repository"
	"github.com/lmartin/tennis-stats-service/internal/service"
)

type fakePlayerRepo struct {
	players  map[int64]model.Player
	createFn func(p model.Player) (model.Player, error)
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: map[int64]model.Player{}}
}

func (f *fakePlayerRepo) Create(_ context.Context, p model.Player) (model.Player, error) {
	if f.createFn != nil {
		return f.createFn(p)
	}
	f.players[p.ID] = p
	return p, nil
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id int64) (model.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePlayerRepo) List(_ context.Context) ([]model.Player, error) {
	res := make([]model.Player, 0, len(f.players))
	for _, p := range f.players {
		res = append(res, p)
	}
	return res, nil
}

var _ repository.PlayerRepository = (*fakePlayerRepo)(nil)

func discardLogger() zerolog.Logger { return zerolog.New(io.Discard) }

func TestPlayerService_CreatePlayer_OK(t *testing.T) {
	repo := newFakePlayerRepo()
	svc := service.NewPlayerService(repo, discardLogger())

	out, err := svc.CreatePlayer(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 52 || out.Shortname != "N.DJO" {
		t.Fatalf("unexpected player: %+v", out)
	}
	if _, ok := repo.players[52]; !ok {
		t.Fatalf("player not persisted")
	}
}

func TestPlayerService_CreatePlayer_ValidationStopsBeforeStore(t *testing.T) {
	repo := newFakePlayerRepo()
	repo.createFn = func(model.Player) (model.Player, error) {
		t.Fatal("store must not be reached on validation failure")
		return model.Player{}, nil
	}
	svc := service.NewPlayerService(repo, discardLogger())

	in := validInput()
	in.Rank = ptr(0)
	in.Sex = ptr("Q")
	_, err := svc.CreatePlayer(context.Background(), in)
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if fe := service.FieldErrors(err); len(fe) != 2 {
		t.Fatalf("expected 2 field errors, got %v", fe)
	}
}

func TestPlayerService_CreatePlayer_StoreErrorPassesThrough(t *testing.T) {
	storeErr := &repository.StoreError{
		Kind:   repository.KindDuplicate,
		Status: http.StatusConflict,
		Public: "player already exists",
	}
	repo := newFakePlayerRepo()
	repo.createFn = func(model.Player) (model.Player, error) { return model.Player{}, storeErr }
	svc := service.NewPlayerService(repo, discardLogger())

	_, err := svc.CreatePlayer(context.Background(), validInput())
	var se *repository.StoreError
	if !errors.As(err, &se) || se != storeErr {
		t.Fatalf("expected the repository error unchanged, got %v", err)
	}
}

func TestPlayerService_GetPlayer(t *testing.T) {
	repo := newFakePlayerRepo()
	repo.players[7] = model.Player{ID: 7, Shortname: "R.NAD"}
	svc := service.NewPlayerService(repo, discardLogger())

	got, err := svc.GetPlayer(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Shortname != "R.NAD" {
		t.Fatalf("unexpected player: %+v", got)
	}

	_, err = svc.GetPlayer(context.Background(), 999)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_ListPlayers(t *testing.T) {
	repo := newFakePlayerRepo()
	repo.players[1] = model.Player{ID: 1}
	repo.players[2] = model.Player{ID: 2}
	svc := service.NewPlayerService(repo, discardLogger())

	res, err := svc.ListPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 players, got %d", len(res))
	}
}
