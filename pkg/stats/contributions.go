// Package stats derives the processed model from the raw GitHub bundle:
// contribution statistics, the calendar heatmap, activity histograms,
// repository scores, per-repo attribution, and persona classification.
// Everything here is a pure function of its inputs; wall-clock time is
// always passed in explicitly so results are reproducible.
package stats

import (
	"sort"
	"time"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

const dateLayout = "2006-01-02"

// ContributionStats summarizes one target year of daily contributions.
type ContributionStats struct {
	BestDay       github.DayCount `json:"best_day"`
	Total         int             `json:"total"`
	DailyAverage  float64         `json:"daily_average"`
	LongestStreak int             `json:"longest_streak"`
	CurrentStreak int             `json:"current_streak"`
	ActiveDays    int             `json:"active_days"`
}

// FilterYear keeps only entries whose date falls inside the target year.
// Unparseable dates are dropped.
func FilterYear(days []github.DayCount, year int) []github.DayCount {
	var kept []github.DayCount
	for _, d := range days {
		t, err := time.Parse(dateLayout, d.Date)
		if err != nil || t.Year() != year {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

// ComputeContributionStats derives totals, the best day, streaks and the
// daily average for the target year. The average divides by days elapsed
// from Jan 1 of the target year through now, inclusive, even when the
// target year is already over.
func ComputeContributionStats(days []github.DayCount, year int, now time.Time) ContributionStats {
	days = FilterYear(days, year)

	var stats ContributionStats
	for _, d := range days {
		stats.Total += d.Count
		if d.Count > 0 {
			stats.ActiveDays++
		}
		if d.Count > stats.BestDay.Count {
			stats.BestDay = d
		}
	}

	stats.DailyAverage = dailyAverage(stats.Total, year, now)
	stats.LongestStreak = longestStreak(days)
	stats.CurrentStreak = currentStreak(days, now)
	return stats
}

func dailyAverage(total, year int, now time.Time) float64 {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	elapsed := int(now.Sub(jan1).Hours()/24) + 1
	if elapsed < 1 {
		elapsed = 1
	}
	return float64(total) / float64(elapsed)
}

// longestStreak scans the days in date order, counting consecutive entries
// with activity. Only an explicit zero-count day resets the run; calendar
// gaps in the input do not.
func longestStreak(days []github.DayCount) int {
	sorted := make([]github.DayCount, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	longest, run := 0, 0
	for _, d := range sorted {
		if d.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// currentStreak counts consecutive active days ending today, scanning the
// most recent entries first and stopping at the first zero.
func currentStreak(days []github.DayCount, now time.Time) int {
	today := now.Format(dateLayout)
	var past []github.DayCount
	for _, d := range days {
		if d.Date <= today {
			past = append(past, d)
		}
	}
	sort.SliceStable(past, func(i, j int) bool { return past[i].Date > past[j].Date })

	streak := 0
	for _, d := range past {
		if d.Count == 0 {
			break
		}
		streak++
	}
	return streak
}
