package stats

import (
	"testing"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

func TestClassifyByRules(t *testing.T) {
	tests := []struct {
		name string
		in   PersonaInputs
		want string
	}{
		{"late peak", PersonaInputs{PeakHour: 23, TotalContributions: 2000}, "night-owl"},
		{"small-hours peak", PersonaInputs{PeakHour: 2}, "night-owl"},
		{"dawn peak", PersonaInputs{PeakHour: 6, TotalContributions: 2000}, "early-bird"},
		{"weekend heavy", PersonaInputs{PeakHour: 14, WeekendShare: 0.5}, "weekend-warrior"},
		{"huge volume", PersonaInputs{PeakHour: 14, TotalContributions: 1500}, "grid-painter"},
		{"steady volume", PersonaInputs{PeakHour: 14, TotalContributions: 500}, "consistent"},
		{"many followers", PersonaInputs{PeakHour: 14, Followers: 600}, "community-star"},
		{"many stars", PersonaInputs{PeakHour: 14, TotalStars: 1500}, "community-star"},
		{"nothing matches", PersonaInputs{PeakHour: 14}, "tinkerer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyByRules(tt.in)
			if got.ID != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.ID)
			}
		})
	}
}

func TestClassifiersDiverge(t *testing.T) {
	// A long streak with moderate volume: the full rule chain lands on The
	// Consistent before it would ever consider the streak, while the
	// profile chain has no 400-contribution rule and reaches Streak Keeper.
	in := PersonaInputs{PeakHour: 14, TotalContributions: 500, LongestStreak: 35}

	if got := ClassifyByRules(in).ID; got != "consistent" {
		t.Errorf("rules classifier: expected consistent, got %s", got)
	}
	if got := ClassifyByProfile(in).ID; got != "streak-keeper" {
		t.Errorf("profile classifier: expected streak-keeper, got %s", got)
	}
}

func TestClassifyByProfileSkipsWeekendRule(t *testing.T) {
	// The profile chain has no weekend rule; the same inputs that make a
	// Weekend Warrior under the full chain fall through to the fallback.
	in := PersonaInputs{PeakHour: 14, WeekendShare: 0.9}

	if got := ClassifyByRules(in).ID; got != "weekend-warrior" {
		t.Errorf("rules classifier: expected weekend-warrior, got %s", got)
	}
	if got := ClassifyByProfile(in).ID; got != "tinkerer" {
		t.Errorf("profile classifier: expected tinkerer fallback, got %s", got)
	}
}

func TestClassifyCommunityStarWithNoContributions(t *testing.T) {
	in := PersonaInputs{PeakHour: 14, Followers: 600}
	for i := 0; i < 3; i++ {
		if got := ClassifyByRules(in).ID; got != "community-star" {
			t.Fatalf("expected community-star every run, got %s", got)
		}
	}
}

func TestWeekendShare(t *testing.T) {
	days := []github.DayCount{
		{Date: "2025-06-02", Count: 4}, // Monday
		{Date: "2025-06-07", Count: 3}, // Saturday
		{Date: "2025-06-08", Count: 3}, // Sunday
		{Date: "bad-date", Count: 100},
	}

	if got := WeekendShare(days); got != 0.6 {
		t.Errorf("expected weekend share 0.6, got %v", got)
	}
	if got := WeekendShare(nil); got != 0 {
		t.Errorf("expected 0 for no contributions, got %v", got)
	}
}
