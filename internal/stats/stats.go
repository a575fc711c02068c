// Package stats derives capture statistics from a collection snapshot.
//
// Like the query engine it is pure: functions over a snapshot plus a
// reference time, no stored state, recomputed on demand. The reference time
// is a parameter (not time.Now inside) so tests can pin it.
package stats

import (
	"strings"
	"time"

	"github.com/ruilin/inspiration-space/internal/model"
)

// Period scopes statistics to a time window.
type Period string

const (
	PeriodWeek  Period = "week"  // the last 7 days
	PeriodMonth Period = "month" // the current calendar month
	PeriodTotal Period = "total" // everything
)

// ParsePeriod maps a raw string onto a Period, defaulting to week.
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodMonth:
		return PeriodMonth
	case PeriodTotal:
		return PeriodTotal
	default:
		return PeriodWeek
	}
}

// CategoryStat is one category's share of the period.
type CategoryStat struct {
	Category   model.Category `json:"category"`
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"` // 0..100 of the period total
}

// DailyCount is one day's captures, used for the week bar chart.
type DailyCount struct {
	Date    time.Time `json:"date"`
	Weekday string    `json:"weekday"`
	Count   int       `json:"count"`
}

// Summary is the full statistics payload for one period.
type Summary struct {
	Period       Period         `json:"period"`
	TotalCount   int            `json:"totalCount"`
	AverageDaily float64        `json:"averageDaily"`
	Categories   []CategoryStat `json:"categories"`
	Daily        []DailyCount   `json:"daily,omitempty"` // week period only
}

// Compute builds the summary for the given period, with now as the
// reference point. CreatedAt decides which period a record falls in;
// UpdatedAt plays no part here.
func Compute(records []model.Inspiration, period Period, now time.Time) Summary {
	start := periodStart(period, now)

	var scoped []model.Inspiration
	for _, r := range records {
		if start.IsZero() || !r.CreatedAt.Before(start) {
			scoped = append(scoped, r)
		}
	}

	summary := Summary{
		Period:     period,
		TotalCount: len(scoped),
		Categories: categoryStats(scoped),
	}
	summary.AverageDaily = averageDaily(records, scoped, period, now)
	if period == PeriodWeek {
		summary.Daily = dailyCounts(records, now)
	}
	return summary
}

func periodStart(period Period, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{} // total: no lower bound
	}
}

func categoryStats(scoped []model.Inspiration) []CategoryStat {
	counts := make(map[model.Category]int, 4)
	for _, r := range scoped {
		counts[r.Category]++
	}
	out := make([]CategoryStat, 0, 4)
	for _, c := range model.Categories() {
		stat := CategoryStat{Category: c, Count: counts[c]}
		if len(scoped) > 0 {
			stat.Percentage = float64(counts[c]) / float64(len(scoped)) * 100
		}
		out = append(out, stat)
	}
	return out
}

func averageDaily(all, scoped []model.Inspiration, period Period, now time.Time) float64 {
	total := float64(len(scoped))
	switch period {
	case PeriodWeek:
		return total / 7
	case PeriodMonth:
		return total / float64(now.Day())
	default:
		// Spread over the days since the oldest record. The collection's
		// natural order is most-recent-first, so the oldest is the last one.
		if len(all) == 0 {
			return 0
		}
		oldest := all[len(all)-1].CreatedAt
		days := now.Sub(oldest).Hours() / 24
		if days < 1 {
			days = 1
		}
		return total / days
	}
}

// dailyCounts buckets the last seven days, oldest day first, today last.
func dailyCounts(records []model.Inspiration, now time.Time) []DailyCount {
	out := make([]DailyCount, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		count := 0
		for _, r := range records {
			if !r.CreatedAt.Before(dayStart) && r.CreatedAt.Before(dayEnd) {
				count++
			}
		}
		out = append(out, DailyCount{
			Date:    dayStart,
			Weekday: dayStart.Weekday().String(),
			Count:   count,
		})
	}
	return out
}
