// Command seed imports the upstream players feed into the database. The feed
// nests country and ranking data; this tool flattens each entry into a player
// row and inserts it through the repository, skipping players that are
// already present.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmartin/tennis-stats-service/internal/config"
	"github.com/lmartin/tennis-stats-service/internal/logger"
	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/repository"
	"github.com/lmartin/tennis-stats-service/internal/repository/postgres"
)

// feedPlayer mirrors one entry of the upstream feed.
type feedPlayer struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Shortname string `json:"shortname"`
	Sex       string `json:"sex"`
	Picture   string `json:"picture"`
	Country   struct {
		Code    string `json:"code"`
		Picture string `json:"picture"`
	} `json:"country"`
	Data struct {
		Rank   int   `json:"rank"`
		Points int   `json:"points"`
		Weight int   `json:"weight"`
		Height int   `json:"height"`
		Age    int   `json:"age"`
		Last   []int `json:"last"`
	} `json:"data"`
}

type feed struct {
	Players []feedPlayer `json:"players"`
}

func (f feedPlayer) toModel() model.Player {
	return model.Player{
		ID:             f.ID,
		Firstname:      f.Firstname,
		Lastname:       f.Lastname,
		Shortname:      f.Shortname,
		Sex:            f.Sex,
		Countrycode:    f.Country.Code,
		Countrypicture: f.Country.Picture,
		Picture:        f.Picture,
		Rank:           f.Data.Rank,
		Points:         f.Data.Points,
		Weight:         f.Data.Weight,
		Height:         f.Data.Height,
		Age:            f.Data.Age,
		Last:           f.Data.Last,
	}
}

func main() {
	feedPath := flag.String("feed", "players.json", "path to the players feed file")
	configPath := flag.String("config", "config.yaml", "path to the application config")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}
	seedLog := appLogger.With().Str("module", "seed").Logger()

	raw, err := os.ReadFile(*feedPath)
	if err != nil {
		seedLog.Fatal().Err(err).Str("feed", *feedPath).Msg("cannot read feed file")
	}
	var f feed
	if err := json.Unmarshal(raw, &f); err != nil {
		seedLog.Fatal().Err(err).Msg("cannot parse feed file")
	}

	ctx := context.Background()
	store, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		seedLog.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer store.Close()

	players := postgres.NewPlayerRepository(store.Pool())

	var inserted, skipped, failed int
	for _, fp := range f.Players {
		p := fp.toModel()
		if _, err := players.Create(ctx, p); err != nil {
			var se *repository.StoreError
			// A duplicate means the row is already seeded; keep going.
			if errors.As(err, &se) && se.Kind == repository.KindDuplicate {
				seedLog.Debug().Int64("player_id", p.ID).Str("shortname", p.Shortname).Msg("already present, skipped")
				skipped++
				continue
			}
			seedLog.Error().Err(err).Int64("player_id", p.ID).Msg("insert failed")
			failed++
			continue
		}
		inserted++
	}

	seedLog.Info().
		Int("inserted", inserted).
		Int("skipped", skipped).
		Int("failed", failed).
		Msg("seed finished")
	if failed > 0 {
		os.Exit(1)
	}
}
