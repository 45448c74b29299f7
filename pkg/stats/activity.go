package stats

import (
	"math"
	"time"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

// ActivityBreakdown tallies events by category, with each category's share
// of the total as a percentage rounded to one decimal.
type ActivityBreakdown struct {
	Commits      int `json:"commits"`
	PullRequests int `json:"pull_requests"`
	Issues       int `json:"issues"`
	Reviews      int `json:"reviews"`
	Other        int `json:"other"`

	CommitsPct      float64 `json:"commits_pct"`
	PullRequestsPct float64 `json:"pull_requests_pct"`
	IssuesPct       float64 `json:"issues_pct"`
	ReviewsPct      float64 `json:"reviews_pct"`
	OtherPct        float64 `json:"other_pct"`
}

// TotalCount returns the sum across all five categories.
func (b ActivityBreakdown) TotalCount() int {
	return b.Commits + b.PullRequests + b.Issues + b.Reviews + b.Other
}

// BreakdownActivity tallies events in a single pass. Push events
// contribute their commit count; everything that is not a push, pull
// request, issue or review lands in Other. All percentages are 0 when
// there are no events at all.
func BreakdownActivity(events []github.Event) ActivityBreakdown {
	var b ActivityBreakdown
	for _, e := range events {
		switch e.Type {
		case github.EventPush:
			b.Commits += e.CommitCount()
		case github.EventPullRequest:
			b.PullRequests++
		case github.EventIssues, github.EventIssueComment:
			b.Issues++
		case github.EventPullRequestReview, github.EventPullRequestReviewComment:
			b.Reviews++
		default:
			b.Other++
		}
	}

	total := b.TotalCount()
	if total == 0 {
		return b
	}
	b.CommitsPct = percent(b.Commits, total)
	b.PullRequestsPct = percent(b.PullRequests, total)
	b.IssuesPct = percent(b.Issues, total)
	b.ReviewsPct = percent(b.Reviews, total)
	b.OtherPct = percent(b.Other, total)
	return b
}

// TimeOfDaySplit is the four-way split of event activity across the day:
// morning [6,12), afternoon [12,18), evening [18,22), night [22,6).
type TimeOfDaySplit struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`

	MorningPct   float64 `json:"morning_pct"`
	AfternoonPct float64 `json:"afternoon_pct"`
	EveningPct   float64 `json:"evening_pct"`
	NightPct     float64 `json:"night_pct"`
}

// HourlyActivity holds the hour-of-day and day-of-week event histograms.
// Weekdays are Sunday-first.
type HourlyActivity struct {
	Hours          [24]int        `json:"hours"`
	Weekdays       [7]int         `json:"weekdays"`
	PeakHour       int            `json:"peak_hour"`
	BusiestWeekday time.Weekday   `json:"busiest_weekday"`
	TimeOfDay      TimeOfDaySplit `json:"time_of_day"`
}

// ComputeHourlyActivity buckets every event by local hour and weekday of
// its timestamp. Ties on the peak pick the lowest bucket index.
func ComputeHourlyActivity(events []github.Event, loc *time.Location) HourlyActivity {
	if loc == nil {
		loc = time.Local
	}

	var a HourlyActivity
	for _, e := range events {
		t := e.CreatedAt.In(loc)
		a.Hours[t.Hour()]++
		a.Weekdays[int(t.Weekday())]++

		switch hour := t.Hour(); {
		case hour >= 6 && hour < 12:
			a.TimeOfDay.Morning++
		case hour >= 12 && hour < 18:
			a.TimeOfDay.Afternoon++
		case hour >= 18 && hour < 22:
			a.TimeOfDay.Evening++
		default:
			a.TimeOfDay.Night++
		}
	}

	a.PeakHour = maxIndex(a.Hours[:])
	a.BusiestWeekday = time.Weekday(maxIndex(a.Weekdays[:]))

	total := a.TimeOfDay.Morning + a.TimeOfDay.Afternoon + a.TimeOfDay.Evening + a.TimeOfDay.Night
	if total > 0 {
		a.TimeOfDay.MorningPct = percent(a.TimeOfDay.Morning, total)
		a.TimeOfDay.AfternoonPct = percent(a.TimeOfDay.Afternoon, total)
		a.TimeOfDay.EveningPct = percent(a.TimeOfDay.Evening, total)
		a.TimeOfDay.NightPct = percent(a.TimeOfDay.Night, total)
	}
	return a
}

// maxIndex returns the first index attaining the maximum value.
func maxIndex(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
