package stats

import (
	"time"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

// HeatmapCell is one day in the contribution grid. InYear is false for the
// leading and trailing padding days so renderers can dim them.
type HeatmapCell struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Level     int    `json:"level"`
	DayOfWeek int    `json:"day_of_week"`
	InYear    bool   `json:"in_year"`
}

// MonthLabel marks the first week column whose first in-year day enters a
// new calendar month.
type MonthLabel struct {
	Month     time.Month `json:"month"`
	WeekIndex int        `json:"week_index"`
}

// Heatmap is the full-year contribution grid: week columns of 7 days
// padded to start on a Sunday, with a possibly short trailing week.
type Heatmap struct {
	Weeks       [][]HeatmapCell `json:"weeks"`
	MonthLabels []MonthLabel    `json:"month_labels"`
	MaxCount    int             `json:"max_count"`
}

// ContributionLevel buckets a daily count into the five intensity levels.
// Thresholds are fixed, not relative to the user's own maximum.
func ContributionLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}

// BuildHeatmap lays the target year out as week columns starting from the
// Sunday on or before Jan 1 and ending with the year's last day.
func BuildHeatmap(days []github.DayCount, year int) Heatmap {
	counts := make(map[string]int, len(days))
	for _, d := range FilterYear(days, year) {
		counts[d.Date] = d.Count
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for start.Weekday() != time.Sunday {
		start = start.AddDate(0, 0, -1)
	}

	var heatmap Heatmap
	var week []HeatmapCell
	for day := start; day.Year() <= year; day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)
		cell := HeatmapCell{
			Date:      date,
			Count:     counts[date],
			Level:     ContributionLevel(counts[date]),
			DayOfWeek: int(day.Weekday()),
			InYear:    day.Year() == year,
		}
		if cell.InYear && cell.Count > heatmap.MaxCount {
			heatmap.MaxCount = cell.Count
		}
		week = append(week, cell)
		if len(week) == 7 {
			heatmap.Weeks = append(heatmap.Weeks, week)
			week = nil
		}
	}
	if len(week) > 0 {
		heatmap.Weeks = append(heatmap.Weeks, week)
	}

	heatmap.MonthLabels = monthLabels(heatmap.Weeks)
	return heatmap
}

func monthLabels(weeks [][]HeatmapCell) []MonthLabel {
	var labels []MonthLabel
	seen := make(map[time.Month]bool)
	for i, week := range weeks {
		for _, cell := range week {
			if !cell.InYear {
				continue
			}
			t, err := time.Parse(dateLayout, cell.Date)
			if err != nil {
				break
			}
			if !seen[t.Month()] {
				seen[t.Month()] = true
				labels = append(labels, MonthLabel{Month: t.Month(), WeekIndex: i})
			}
			break // only the first in-year day of each week matters
		}
	}
	return labels
}
