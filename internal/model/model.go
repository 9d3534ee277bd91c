// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// Player represents a ranked tennis player as stored and served by the API.
// Weight is grams, height is centimeters. Last holds recent match outcomes
// (1 win, 0 loss) with index 0 being the most recent match.
type Player struct {
	ID             int64  `json:"id"`
	Firstname      string `json:"firstname"`
	Lastname       string `json:"lastname"`
	Shortname      string `json:"shortname"`
	Sex            string `json:"sex"`
	Countrycode    string `json:"countrycode"`
	Countrypicture string `json:"countrypicture"`
	Picture        string `json:"picture"`
	Rank           int    `json:"rank"`
	Points         int    `json:"points"`
	Weight         int    `json:"weight"`
	Height         int    `json:"height"`
	Age            int    `json:"age"`
	Last           []int  `json:"last"`
}

// PlayerInput is the untrusted create payload. Every field is a pointer so
// validation can distinguish an absent field from a zero value.
type PlayerInput struct {
	ID             *int64  `json:"id"`
	Firstname      *string `json:"firstname"`
	Lastname       *string `json:"lastname"`
	Shortname      *string `json:"shortname"`
	Sex            *string `json:"sex"`
	Countrycode    *string `json:"countrycode"`
	Countrypicture *string `json:"countrypicture"`
	Picture        *string `json:"picture"`
	Rank           *int    `json:"rank"`
	Points         *int    `json:"points"`
	Weight         *int    `json:"weight"`
	Height         *int    `json:"height"`
	Age            *int    `json:"age"`
	Last           *[]int  `json:"last"`
}

// PlayerStatsData is the minimal projection the statistics calculations work
// on. It is produced only by the stats repository and never persisted or
// serialized. Weight and Height are floats because the accessor coerces
// whatever the store holds into numbers before the engine sees it.
type PlayerStatsData struct {
	Weight      float64
	Height      float64
	Last        []int
	Countrycode string
	Points      int
}

// CountryWinRatio is the winning country of the win-ratio ranking.
type CountryWinRatio struct {
	Code     string  `json:"code"`
	WinRatio float64 `json:"winRatio"`
	Games    int     `json:"games"`
}

// Statistics aggregates the three derived figures served by the API.
// Nil pointers serialize as JSON null and mean "not computable from the
// current data" (for example an empty players table).
type Statistics struct {
	CountryWithHighestWinRatio *CountryWinRatio `json:"countryWithHighestWinRatio"`
	AverageIMC                 *float64         `json:"averageIMC"`
	MedianHeight               *float64         `json:"medianHeight"`
}
