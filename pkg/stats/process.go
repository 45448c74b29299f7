package stats

import (
	"time"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

// Overview is the headline statistics block: the contribution stats plus
// the account-level totals.
type Overview struct {
	ContributionStats
	TotalRepos int `json:"total_repos"`
	TotalStars int `json:"total_stars"`
	TotalForks int `json:"total_forks"`
	Followers  int `json:"followers"`
	Following  int `json:"following"`
}

// Model is the processed data model consumed by presentation. It is
// derived once per session from an immutable raw bundle and never
// recomputed incrementally; a new username submission starts over.
type Model struct {
	Overview       Overview               `json:"stats"`
	Heatmap        Heatmap                `json:"heatmap"`
	Breakdown      ActivityBreakdown      `json:"activity_breakdown"`
	Hourly         HourlyActivity         `json:"hourly_activity"`
	ScoredRepos    []ScoredRepo           `json:"scored_repos"`
	Contributed    []ContributedRepo      `json:"contributed_repos"`
	Persona        Persona                `json:"persona"`
	ProfilePersona Persona                `json:"profile_persona"`
	Languages      []github.LanguageShare `json:"languages"`
	Year           int                    `json:"year"`
}

// Process derives the complete model from a raw bundle. now and loc are
// explicit so results are reproducible in tests. Repositories are scored
// in activity-weighted mode when events are present, base mode otherwise.
func Process(bundle *github.RawBundle, year int, now time.Time, loc *time.Location) *Model {
	var days []github.DayCount
	if bundle.Contributions != nil {
		days = FilterYear(bundle.Contributions.Contributions, year)
	}

	overview := Overview{
		ContributionStats: ComputeContributionStats(days, year, now),
		TotalRepos:        len(bundle.Repos),
	}
	for _, repo := range bundle.Repos {
		overview.TotalStars += repo.Stars
		overview.TotalForks += repo.Forks
	}
	if bundle.User != nil {
		overview.Followers = bundle.User.Followers
		overview.Following = bundle.User.Following
	}

	hourly := ComputeHourlyActivity(bundle.Events, loc)

	var scored []ScoredRepo
	if len(bundle.Events) > 0 {
		scored = ScoreReposByActivity(bundle.Repos, AttributeActivity(bundle.Events), now)
	} else {
		scored = ScoreRepos(bundle.Repos, now)
	}

	inputs := PersonaInputs{
		PeakHour:           hourly.PeakHour,
		WeekendShare:       WeekendShare(days),
		TotalContributions: overview.Total,
		Followers:          overview.Followers,
		TotalStars:         overview.TotalStars,
		LongestStreak:      overview.LongestStreak,
	}

	return &Model{
		Overview:       overview,
		Heatmap:        BuildHeatmap(days, year),
		Breakdown:      BreakdownActivity(bundle.Events),
		Hourly:         hourly,
		ScoredRepos:    scored,
		Contributed:    TopContributedRepos(bundle.Events, bundle.Repos),
		Persona:        ClassifyByRules(inputs),
		ProfilePersona: ClassifyByProfile(inputs),
		Languages:      bundle.Languages,
		Year:           year,
	}
}
