package points

import (
	"fmt"
	"math"
	"time"
)

const (
	DateLayout = "2006-01-02"

	// growth is the share of the value two days back added to each new day.
	growth = 0.01
	day    = 24 * time.Hour
)

// DefaultSeasonStart is the first day of the current season.
var DefaultSeasonStart = time.Date(2025, time.September, 22, 0, 0, 0, 0, time.UTC)

// DefaultOverrides holds calendar days whose value is fixed instead of
// accrued. Entries are exceptions to the recurrence, never inputs to it.
var DefaultOverrides = map[string]float64{
	"2025-10-22": 45000,
}

type Engine struct {
	seasonStart time.Time
	overrides   map[string]float64
}

// NewEngine copies overrides so later changes to the caller's map do not leak
// into the engine. Keys must be YYYY-MM-DD dates.
func NewEngine(seasonStart time.Time, overrides map[string]float64) (*Engine, error) {
	table := make(map[string]float64, len(overrides))
	for key, value := range overrides {
		d, err := time.Parse(DateLayout, key)
		if err != nil {
			return nil, fmt.Errorf("invalid override date %q: %w", key, err)
		}
		if value < 0 {
			return nil, fmt.Errorf("override for %s must not be negative, got %v", key, value)
		}
		table[d.Format(DateLayout)] = value
	}

	return &Engine{seasonStart: seasonStart, overrides: table}, nil
}

func (e *Engine) SeasonStart() time.Time {
	return e.seasonStart
}

// Overrides returns a copy of the override table.
func (e *Engine) Overrides() map[string]float64 {
	out := make(map[string]float64, len(e.overrides))
	for k, v := range e.overrides {
		out[k] = v
	}
	return out
}

// DayOfSeason is 1 on the season's first day and <= 0 before it. Days are
// counted on the calendar of the season start's location.
func (e *Engine) DayOfSeason(date time.Time) int {
	from := calendarDay(e.seasonStart)
	to := calendarDay(date.In(e.seasonStart.Location()))
	return int(to.Sub(from)/day) + 1
}

// Override reports the fixed value for date's calendar day, read in the
// season start's location, if any.
func (e *Engine) Override(date time.Time) (float64, bool) {
	v, ok := e.overrides[date.In(e.seasonStart.Location()).Format(DateLayout)]
	return v, ok
}

// DailyPoints returns the points accrued on date.
func (e *Engine) DailyPoints(date time.Time) float64 {
	if v, ok := e.Override(date); ok {
		return v
	}
	return Accrue(e.DayOfSeason(date))
}

// Accrue evaluates the recurrence for a day of season. Every step is rounded
// to cents before it feeds the next one, so results depend on that path.
func Accrue(dayOfSeason int) float64 {
	switch {
	case dayOfSeason <= 0:
		return 0
	case dayOfSeason == 1:
		return 1
	case dayOfSeason == 2:
		return 2
	}

	prev2, prev1 := 1.0, 2.0
	points := prev1
	for i := 3; i <= dayOfSeason; i++ {
		points = round2(prev1 + growth*prev2)
		prev2, prev1 = prev1, points
	}
	return points
}

// calendarDay maps t's wall-clock date to UTC midnight so that day
// arithmetic is not shifted by DST transitions.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
