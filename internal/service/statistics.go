package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

// The three calculations below are pure functions over the stats projection.
// Each one filters out records it cannot use and returns nil when nothing
// qualifies; nil means "not computable", which the API serializes as null.

// CalculateAverageIMC returns the mean body-mass index, weight(kg)/height(m)²,
// over every record whose converted weight and height are finite and strictly
// positive and whose resulting IMC is itself finite. Weight is stored in
// grams and height in centimeters, hence the two conversions.
func CalculateAverageIMC(data []model.PlayerStatsData) *float64 {
	var sum float64
	var n int
	for _, d := range data {
		kg := d.Weight / 1000
		m := d.Height / 100
		if !isFinite(kg) || !isFinite(m) || kg <= 0 || m <= 0 {
			continue
		}
		imc := kg / (m * m)
		if !isFinite(imc) {
			continue
		}
		sum += imc
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// CalculateMedianHeight returns the median over all finite heights. There is
// no range check here: zero or negative heights count, only NaN/Inf are
// dropped. Even counts average the two middle elements.
func CalculateMedianHeight(data []model.PlayerStatsData) *float64 {
	heights := make([]float64, 0, len(data))
	for _, d := range data {
		if isFinite(d.Height) {
			heights = append(heights, d.Height)
		}
	}
	if len(heights) == 0 {
		return nil
	}
	sort.Float64s(heights)
	n := len(heights)
	var med float64
	if n%2 == 1 {
		med = heights[n/2]
	} else {
		med = (heights[n/2-1] + heights[n/2]) / 2
	}
	return &med
}

type countryAgg struct {
	wins   int
	games  int
	points int
}

// ratio ranks a country: wins over games, with -1 as the sentinel for
// zero-game groups so they sort below every real ratio, 0 included.
func (a *countryAgg) ratio() float64 {
	if a.games == 0 {
		return -1
	}
	return float64(a.wins) / float64(a.games)
}

// CalculateCountryWithHighestWinRatio groups the projection by country code
// and picks the best group by, in order: higher win ratio, more games played,
// more total points, lexicographically smaller code. The chain is total, so
// the winner does not depend on map iteration order. Returns nil on empty
// input. A zero-game winner reports ratio 0, not the internal sentinel.
func CalculateCountryWithHighestWinRatio(data []model.PlayerStatsData) *model.CountryWinRatio {
	if len(data) == 0 {
		return nil
	}

	agg := make(map[string]*countryAgg)
	for _, d := range data {
		a := agg[d.Countrycode]
		if a == nil {
			a = &countryAgg{}
			agg[d.Countrycode] = a
		}
		for _, outcome := range d.Last {
			if outcome == 1 {
				a.wins++
			}
		}
		a.games += len(d.Last)
		a.points += d.Points
	}

	var bestCode string
	var best *countryAgg
	for code, a := range agg {
		if best == nil {
			best, bestCode = a, code
			continue
		}
		switch {
		case a.ratio() != best.ratio():
			if a.ratio() > best.ratio() {
				best, bestCode = a, code
			}
		case a.games != best.games:
			if a.games > best.games {
				best, bestCode = a, code
			}
		case a.points != best.points:
			if a.points > best.points {
				best, bestCode = a, code
			}
		case code < bestCode:
			best, bestCode = a, code
		}
	}

	out := &model.CountryWinRatio{Code: bestCode, Games: best.games}
	if best.games > 0 {
		out.WinRatio = float64(best.wins) / float64(best.games)
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type statisticsService struct {
	stats repository.StatsRepository
	log   zerolog.Logger
}

func NewStatisticsService(stats repository.StatsRepository, logger zerolog.Logger) StatisticsService {
	l := logger.With().Str("module", "service").Str("component", "statistics").Logger()
	return &statisticsService{stats: stats, log: l}
}

// GetStatistics fetches the projection once and runs the three calculations
// over it. Accessor failures propagate unchanged; they arrive classified.
func (s *statisticsService) GetStatistics(ctx context.Context) (model.Statistics, error) {
	start := time.Now()
	data, err := s.stats.FetchPlayerStatsData(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch player stats data failed")
		return model.Statistics{}, err
	}
	stats := model.Statistics{
		CountryWithHighestWinRatio: CalculateCountryWithHighestWinRatio(data),
		AverageIMC:                 CalculateAverageIMC(data),
		MedianHeight:               CalculateMedianHeight(data),
	}
	s.log.Info().Dur("took", time.Since(start)).Int("rows", len(data)).Msg("statistics computed")
	return stats, nil
}
