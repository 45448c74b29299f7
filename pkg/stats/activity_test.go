package stats

import (
	"testing"
	"time"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

func TestBreakdownActivity(t *testing.T) {
	events := []github.Event{
		{Type: github.EventPush, Payload: github.EventPayload{Size: 2}},
		{Type: github.EventPush, Payload: github.EventPayload{Size: 2}},
		{Type: github.EventPush, Payload: github.EventPayload{Size: 2}},
		{Type: github.EventPullRequest, Payload: github.EventPayload{Action: "opened"}},
	}

	b := BreakdownActivity(events)

	if b.Commits != 6 {
		t.Errorf("expected 6 commits, got %d", b.Commits)
	}
	if b.PullRequests != 1 {
		t.Errorf("expected 1 pull request, got %d", b.PullRequests)
	}
	if b.TotalCount() != 7 {
		t.Errorf("expected total 7, got %d", b.TotalCount())
	}
	if b.CommitsPct != 85.7 {
		t.Errorf("expected commits pct 85.7, got %v", b.CommitsPct)
	}
	if b.PullRequestsPct != 14.3 {
		t.Errorf("expected pull requests pct 14.3, got %v", b.PullRequestsPct)
	}
}

func TestBreakdownActivityCategories(t *testing.T) {
	events := []github.Event{
		{Type: github.EventPush}, // no payload size, counts as 1 commit
		{Type: github.EventIssues},
		{Type: github.EventIssueComment},
		{Type: github.EventPullRequestReview},
		{Type: github.EventPullRequestReviewComment},
		{Type: github.EventWatch},
		{Type: github.EventCreate},
		{Type: github.EventOther},
	}

	b := BreakdownActivity(events)

	if b.Commits != 1 {
		t.Errorf("expected 1 commit, got %d", b.Commits)
	}
	if b.Issues != 2 {
		t.Errorf("expected 2 issues, got %d", b.Issues)
	}
	if b.Reviews != 2 {
		t.Errorf("expected 2 reviews, got %d", b.Reviews)
	}
	if b.Other != 3 {
		t.Errorf("expected 3 other, got %d", b.Other)
	}
}

func TestBreakdownActivityEmpty(t *testing.T) {
	b := BreakdownActivity(nil)
	if b.TotalCount() != 0 {
		t.Errorf("expected empty breakdown, got total %d", b.TotalCount())
	}
	if b.CommitsPct != 0 || b.OtherPct != 0 {
		t.Errorf("expected zero percentages, got %v / %v", b.CommitsPct, b.OtherPct)
	}
}

func TestComputeHourlyActivity(t *testing.T) {
	at := func(hour int, day int) github.Event {
		return github.Event{CreatedAt: time.Date(2025, 6, day, hour, 30, 0, 0, time.UTC)}
	}
	// June 1 2025 is a Sunday.
	events := []github.Event{
		at(9, 2), at(9, 2), at(9, 3), // three morning events, peak hour 9
		at(14, 2),            // afternoon
		at(19, 7),            // evening, Saturday
		at(23, 7), at(23, 8), // night
	}

	a := ComputeHourlyActivity(events, time.UTC)

	if a.PeakHour != 9 {
		t.Errorf("expected peak hour 9, got %d", a.PeakHour)
	}
	if a.BusiestWeekday != time.Monday {
		t.Errorf("expected busiest weekday Monday, got %v", a.BusiestWeekday)
	}
	if a.Hours[9] != 3 || a.Hours[23] != 2 {
		t.Errorf("unexpected hour counts: hour 9 = %d, hour 23 = %d", a.Hours[9], a.Hours[23])
	}

	split := a.TimeOfDay
	if split.Morning != 3 || split.Afternoon != 1 || split.Evening != 1 || split.Night != 2 {
		t.Errorf("unexpected time-of-day split: %+v", split)
	}
	if split.MorningPct != 42.9 {
		t.Errorf("expected morning pct 42.9, got %v", split.MorningPct)
	}
}

func TestComputeHourlyActivityRespectsLocation(t *testing.T) {
	// 23:00 UTC is 08:00 the next day in UTC+9.
	events := []github.Event{
		{CreatedAt: time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)},
	}
	loc := time.FixedZone("UTC+9", 9*60*60)

	a := ComputeHourlyActivity(events, loc)
	if a.Hours[8] != 1 {
		t.Errorf("expected the event in hour 8 local, got hours %v", a.Hours)
	}
	if a.TimeOfDay.Morning != 1 {
		t.Errorf("expected a morning event in local time, got %+v", a.TimeOfDay)
	}
}

func TestPeakHourTiePicksLowest(t *testing.T) {
	events := []github.Event{
		{CreatedAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)},
	}
	a := ComputeHourlyActivity(events, time.UTC)
	if a.PeakHour != 10 {
		t.Errorf("expected tie to resolve to hour 10, got %d", a.PeakHour)
	}
}

func TestComputeHourlyActivityEmpty(t *testing.T) {
	a := ComputeHourlyActivity(nil, time.UTC)
	if a.PeakHour != 0 || a.BusiestWeekday != time.Sunday {
		t.Errorf("expected zero-value peaks, got hour %d weekday %v", a.PeakHour, a.BusiestWeekday)
	}
}
