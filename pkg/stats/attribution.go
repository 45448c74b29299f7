package stats

import (
	"sort"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

// RepoActivity is the user's own event tally against one repository.
type RepoActivity struct {
	Commits      int     `json:"commits"`
	PullRequests int     `json:"pull_requests"`
	Issues       int     `json:"issues"`
	Reviews      int     `json:"reviews"`
	Total        float64 `json:"total"`
}

// AttributeActivity groups events by short repository name and assigns
// weighted credit per event type. This derivation feeds the
// activity-weighted repository scorer; TopContributedRepos is the
// stricter, separately weighted one.
func AttributeActivity(events []github.Event) map[string]*RepoActivity {
	byRepo := make(map[string]*RepoActivity)
	for _, e := range events {
		name := e.Repo.Short()
		a, ok := byRepo[name]
		if !ok {
			a = &RepoActivity{}
			byRepo[name] = a
		}

		switch e.Type {
		case github.EventPush:
			commits := e.CommitCount()
			a.Commits += commits
			a.Total += float64(commits)
		case github.EventPullRequest:
			a.PullRequests++
			a.Total += 2
		case github.EventPullRequestReview:
			a.Reviews++
			a.Total += 2
		case github.EventPullRequestReviewComment:
			a.Reviews++
			a.Total++
		case github.EventIssues:
			a.Issues++
			a.Total++
		case github.EventIssueComment:
			a.Issues++
			a.Total += 0.5
		default:
			a.Total++
		}
	}
	return byRepo
}

// ContributedRepo is one entry of the "repos you contributed to" view.
// The repository metadata fields are populated when the repo also appears
// in the user's own list.
type ContributedRepo struct {
	FullName     string  `json:"full_name"`
	Owner        string  `json:"owner"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Language     string  `json:"language,omitempty"`
	HTMLURL      string  `json:"html_url,omitempty"`
	Commits      int     `json:"commits"`
	PullRequests int     `json:"pull_requests"`
	Issues       int     `json:"issues"`
	Reviews      int     `json:"reviews"`
	Stars        int     `json:"stars,omitempty"`
	Total        float64 `json:"total"`
	IsOwned      bool    `json:"is_owned"`
}

// TopContributedRepos derives the stricter contributed-repos view: only
// events carrying a full owner/repo identity count, and a repository
// qualifies only through actual commits, pull requests, or reviews —
// issues alone do not. Sorted descending by weighted total; ties keep
// first-seen order.
func TopContributedRepos(events []github.Event, owned []github.Repository) []ContributedRepo {
	byRepo := make(map[string]*ContributedRepo)
	var order []string

	for _, e := range events {
		if e.Repo.Owner() == "" {
			continue // reference without the owner half
		}
		full := e.Repo.Name
		r, ok := byRepo[full]
		if !ok {
			r = &ContributedRepo{FullName: full, Owner: e.Repo.Owner(), Name: e.Repo.Short()}
			byRepo[full] = r
			order = append(order, full)
		}

		switch e.Type {
		case github.EventPush:
			commits := e.CommitCount()
			r.Commits += commits
			r.Total += float64(commits) * 2
		case github.EventPullRequest:
			if e.Payload.Action == "opened" || e.Payload.Action == "closed" {
				r.PullRequests++
				r.Total += 3
			}
		case github.EventPullRequestReview:
			r.Reviews++
			r.Total += 2
		case github.EventPullRequestReviewComment:
			r.Reviews++
			r.Total++
		case github.EventIssues:
			r.Issues++
			r.Total++
		case github.EventIssueComment:
			r.Issues++
			r.Total += 0.5
		}
	}

	ownedByFullName := make(map[string]github.Repository, len(owned))
	for _, repo := range owned {
		ownedByFullName[repo.FullName] = repo
	}

	var contributed []ContributedRepo
	for _, full := range order {
		r := byRepo[full]
		if r.Commits == 0 && r.PullRequests == 0 && r.Reviews == 0 {
			continue // issues-only activity does not qualify
		}
		if repo, ok := ownedByFullName[full]; ok {
			r.IsOwned = true
			r.Stars = repo.Stars
			r.Language = repo.Language
			r.Description = repo.Description
			r.HTMLURL = repo.HTMLURL
		}
		contributed = append(contributed, *r)
	}

	sort.SliceStable(contributed, func(i, j int) bool { return contributed[i].Total > contributed[j].Total })
	return contributed
}
