package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lmartin/tennis-stats-service/internal/handler"
	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/repository"
	"github.com/lmartin/tennis-stats-service/internal/service"
)

type stubStatisticsService struct {
	res model.Statistics
	err error
}

func (s *stubStatisticsService) GetStatistics(context.Context) (model.Statistics, error) {
	return s.res, s.err
}

var _ service.StatisticsService = (*stubStatisticsService)(nil)

func newStatsRouter(svc service.StatisticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewStatisticsHandler(svc).Register(r)
	return r
}

func TestGetStatistics_OK(t *testing.T) {
	imc := 24.69
	median := 185.0
	svc := &stubStatisticsService{res: model.Statistics{
		CountryWithHighestWinRatio: &model.CountryWinRatio{Code: "SRB", WinRatio: 1, Games: 9},
		AverageIMC:                 &imc,
		MedianHeight:               &median,
	}}
	r := newStatsRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/players/statistics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Statistics model.Statistics `json:"statistics"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	got := body.Statistics
	if got.CountryWithHighestWinRatio == nil || got.CountryWithHighestWinRatio.Code != "SRB" {
		t.Fatalf("unexpected country: %+v", got.CountryWithHighestWinRatio)
	}
	if got.AverageIMC == nil || got.MedianHeight == nil {
		t.Fatalf("expected both figures present: %+v", got)
	}
}

// An empty table serializes every figure as an explicit JSON null.
func TestGetStatistics_EmptyTableNulls(t *testing.T) {
	r := newStatsRouter(&stubStatisticsService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/players/statistics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Statistics map[string]json.RawMessage `json:"statistics"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	for _, key := range []string{"countryWithHighestWinRatio", "averageIMC", "medianHeight"} {
		raw, ok := body.Statistics[key]
		if !ok {
			t.Fatalf("expected key %q in response", key)
		}
		if string(raw) != "null" {
			t.Fatalf("expected %q to be null, got %s", key, raw)
		}
	}
}

func TestGetStatistics_StoreFailure(t *testing.T) {
	svc := &stubStatisticsService{err: &repository.StoreError{
		Kind:   repository.KindInternal,
		Status: http.StatusInternalServerError,
		Public: "database error",
	}}
	r := newStatsRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/players/statistics", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Error != "database error" {
		t.Fatalf("expected generic public message, got %q", body.Error)
	}
}
