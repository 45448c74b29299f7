package github

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
)

// Stage labels passed to the FetchAll progress callback, in order.
const (
	StageProfile       = "profile"
	StageRepositories  = "repositories"
	StageEvents        = "events"
	StageContributions = "contributions"
	StageLanguages     = "languages"
)

// FetchUser fetches a user's public profile.
func (c *Client) FetchUser(ctx context.Context, username string) (*User, error) {
	body, err := c.request(ctx, "/users/"+url.PathEscape(username))
	if err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", username, err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return &user, nil
}

// ValidateUser reports whether the username resolves to a GitHub account.
// It never returns an error; any failure counts as invalid.
func (c *Client) ValidateUser(ctx context.Context, username string) bool {
	_, err := c.FetchUser(ctx, username)
	return err == nil
}

// FetchRepos fetches one page of a user's repositories.
func (c *Client) FetchRepos(ctx context.Context, username, sortBy string, pageSize, page int) ([]Repository, error) {
	endpoint := fmt.Sprintf("/users/%s/repos?sort=%s&per_page=%d&page=%d",
		url.PathEscape(username), url.QueryEscape(sortBy), pageSize, page)
	body, err := c.request(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching repos for %s: %w", username, err)
	}

	var repos []Repository
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("decoding repos: %w", err)
	}
	return repos, nil
}

// FetchAllRepos pages through the user's repositories, 100 at a time, in
// arrival order, until a short page or the safety cap.
func (c *Client) FetchAllRepos(ctx context.Context, username string) ([]Repository, error) {
	var all []Repository
	for page := 1; page <= maxRepoPages; page++ {
		repos, err := c.FetchRepos(ctx, username, "updated", perPage, page)
		if err != nil {
			return nil, err
		}
		all = append(all, repos...)
		if len(repos) < perPage {
			break
		}
	}
	c.logger.Debug("fetched repositories", "username", username, "count", len(all))
	return all, nil
}

// FetchAllEvents fetches up to 300 recent public events (GitHub serves at
// most 3 pages of 100). A first-page failure propagates; a failure further
// in truncates silently, since partial activity history still renders.
func (c *Client) FetchAllEvents(ctx context.Context, username string) ([]Event, error) {
	var all []Event
	for page := 1; page <= maxEventPages; page++ {
		endpoint := fmt.Sprintf("/users/%s/events/public?per_page=%d&page=%d",
			url.PathEscape(username), perPage, page)
		body, err := c.request(ctx, endpoint)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("fetching events for %s: %w", username, err)
			}
			c.logger.Debug("event pagination stopped early", "username", username, "page", page, "error", err)
			break
		}

		var events []Event
		if err := json.Unmarshal(body, &events); err != nil {
			if page == 1 {
				return nil, fmt.Errorf("decoding events: %w", err)
			}
			c.logger.Debug("event pagination stopped early", "username", username, "page", page, "error", err)
			break
		}

		all = append(all, events...)
		if len(events) < perPage {
			break
		}
	}
	c.logger.Debug("fetched public events", "username", username, "count", len(all))
	return all, nil
}

// FetchContributions fetches one calendar year of daily contribution
// counts from the contributions endpoint (no auth, separate cache key).
// Failures are absorbed into a zeroed calendar so the heatmap can always
// render.
func (c *Client) FetchContributions(ctx context.Context, username string, year int) *Contributions {
	endpoint := fmt.Sprintf("%s/%s?y=%d", c.contributionsURL, url.PathEscape(username), year)

	body, err := c.request(ctx, endpoint)
	if err != nil {
		c.logger.Debug("contributions fetch failed", "username", username, "year", year, "error", err)
		return emptyContributions(year)
	}

	var contribs Contributions
	if err := json.Unmarshal(body, &contribs); err != nil {
		c.logger.Debug("decoding contributions failed", "username", username, "error", err)
		return emptyContributions(year)
	}
	if contribs.Total == nil {
		contribs.Total = map[string]int{strconv.Itoa(year): 0}
	}
	return &contribs
}

func emptyContributions(year int) *Contributions {
	return &Contributions{Total: map[string]int{strconv.Itoa(year): 0}}
}

// RateLimit is the core rate-limit snapshot from GET /rate_limit.
type RateLimit struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// FetchRateLimit fetches the current core API quota.
func (c *Client) FetchRateLimit(ctx context.Context) (*RateLimit, error) {
	body, err := c.request(ctx, "/rate_limit")
	if err != nil {
		return nil, fmt.Errorf("fetching rate limit: %w", err)
	}

	var result struct {
		Resources struct {
			Core RateLimit `json:"core"`
		} `json:"resources"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding rate limit: %w", err)
	}
	return &result.Resources.Core, nil
}

// FetchAll retrieves the complete raw bundle for a user: profile, all
// repositories, recent public events, one year of contributions, and the
// language aggregate. onProgress, when non-nil, is invoked with a stage
// label before each step so callers can update UI state without polling.
// Profile, repository and first-page event failures propagate; the
// contribution fetch degrades to an empty calendar instead.
func (c *Client) FetchAll(ctx context.Context, username string, year int, onProgress func(stage string)) (*RawBundle, error) {
	progress := func(stage string) {
		if onProgress != nil {
			onProgress(stage)
		}
	}

	progress(StageProfile)
	user, err := c.FetchUser(ctx, username)
	if err != nil {
		return nil, err
	}

	progress(StageRepositories)
	repos, err := c.FetchAllRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	progress(StageEvents)
	events, err := c.FetchAllEvents(ctx, username)
	if err != nil {
		return nil, err
	}

	progress(StageContributions)
	contribs := c.FetchContributions(ctx, username, year)

	progress(StageLanguages)
	languages := AggregateLanguages(repos)

	return &RawBundle{
		User:          user,
		Repos:         repos,
		Events:        events,
		Contributions: contribs,
		Languages:     languages,
		Year:          year,
	}, nil
}

// AggregateLanguages approximates byte share per language across non-fork
// repositories (GitHub only reports repo size in KB) and keeps the top 10
// by share.
func AggregateLanguages(repos []Repository) []LanguageShare {
	byteTotals := make(map[string]int64)
	var total int64
	for _, repo := range repos {
		if repo.Fork || repo.Language == "" {
			continue
		}
		b := int64(repo.SizeKB) * 1024
		byteTotals[repo.Language] += b
		total += b
	}
	if total == 0 {
		return nil
	}

	shares := make([]LanguageShare, 0, len(byteTotals))
	for name, b := range byteTotals {
		shares = append(shares, LanguageShare{
			Name:       name,
			Bytes:      b,
			Percentage: math.Round(float64(b)/float64(total)*1000) / 10,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})
	if len(shares) > 10 {
		shares = shares[:10]
	}
	return shares
}
