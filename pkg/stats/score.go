package stats

import (
	"math"
	"sort"
	"time"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

// ScoreBreakdown itemizes the additive components of a repository score.
// Base-mode scores fill Stars/Forks/Activity/Originality/Description/Size;
// the activity-weighted mode swaps Activity for UserActivity and Recency.
type ScoreBreakdown struct {
	Stars        float64 `json:"stars"`
	Forks        float64 `json:"forks"`
	Activity     float64 `json:"activity,omitempty"`
	UserActivity float64 `json:"user_activity,omitempty"`
	Recency      float64 `json:"recency,omitempty"`
	Originality  float64 `json:"originality"`
	Description  float64 `json:"description"`
	Size         float64 `json:"size"`
}

// ScoredRepo decorates a repository with its heuristic score. Activity is
// nil in base mode.
type ScoredRepo struct {
	github.Repository
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"score_breakdown"`
	Activity  *RepoActivity  `json:"user_activity,omitempty"`
}

// ScoreRepos ranks repositories with no per-repo user-activity data. The
// six terms sum to at most 100; the total is rounded to one decimal and
// ties keep their original relative order.
func ScoreRepos(repos []github.Repository, now time.Time) []ScoredRepo {
	scored := make([]ScoredRepo, 0, len(repos))
	for _, repo := range repos {
		// Each term is capped at its weight so the six sum to at most 100.
		b := ScoreBreakdown{
			Stars:    math.Min(25, math.Log10(float64(repo.Stars)+1)*25),
			Forks:    math.Min(20, math.Log10(float64(repo.Forks)+1)*20),
			Activity: math.Max(0, 25-daysSince(repo.PushedAt, now)/10),
			Size:     math.Min(5, math.Log10(float64(repo.SizeKB)+1)),
		}
		if !repo.Fork {
			b.Originality = 15
		}
		if repo.Description != "" {
			b.Description = math.Min(10, float64(len(repo.Description))/20)
		}

		score := b.Stars + b.Forks + b.Activity + b.Originality + b.Description + b.Size
		scored = append(scored, ScoredRepo{Repository: repo, Score: round1(score), Breakdown: b})
	}
	sortByScore(scored)
	return scored
}

// ScoreReposByActivity reweights the ranking around the user's own
// contribution to each repository. The activity map is keyed by short repo
// name, as produced by AttributeActivity; totals are normalized by the
// maximum across all repos, floored at 1.
func ScoreReposByActivity(repos []github.Repository, activity map[string]*RepoActivity, now time.Time) []ScoredRepo {
	maxTotal := 1.0
	for _, a := range activity {
		if a.Total > maxTotal {
			maxTotal = a.Total
		}
	}

	scored := make([]ScoredRepo, 0, len(repos))
	for _, repo := range repos {
		b := ScoreBreakdown{
			Stars:   math.Log10(float64(repo.Stars)+1) * 10,
			Forks:   math.Log10(float64(repo.Forks)+1) * 8,
			Recency: math.Max(0, 20-daysSince(repo.PushedAt, now)/15),
			Size:    math.Min(5, math.Log10(float64(repo.SizeKB)+1)),
		}
		if !repo.Fork {
			b.Originality = 10
		}
		if repo.Description != "" {
			b.Description = math.Min(5, float64(len(repo.Description))/40)
		}

		act := activity[repo.Name]
		if act != nil {
			userScore := act.Total / maxTotal * 35
			if act.Commits > 0 {
				userScore += 10
			}
			if act.PullRequests > 0 {
				userScore += 5
			}
			b.UserActivity = math.Min(35, userScore)
		}

		score := b.Stars + b.Forks + b.Recency + b.Originality + b.Description + b.Size + b.UserActivity
		scored = append(scored, ScoredRepo{Repository: repo, Score: round1(score), Breakdown: b, Activity: act})
	}
	sortByScore(scored)
	return scored
}

// daysSince treats a zero push timestamp as infinitely old, so repos that
// never saw a push get no recency credit.
func daysSince(t, now time.Time) float64 {
	if t.IsZero() {
		return math.Inf(1)
	}
	return now.Sub(t).Hours() / 24
}

func sortByScore(repos []ScoredRepo) {
	sort.SliceStable(repos, func(i, j int) bool { return repos[i].Score > repos[j].Score })
}
