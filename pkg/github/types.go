package github

import (
	"encoding/json"
	"strings"
	"time"
)

// User represents a GitHub user profile.
type User struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
}

// Repository represents a GitHub repository. SizeKB is the size GitHub
// reports, in kilobytes.
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	HTMLURL     string    `json:"html_url"`
	PushedAt    time.Time `json:"pushed_at"`
	Owner       RepoOwner `json:"owner"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	SizeKB      int       `json:"size"`
	Fork        bool      `json:"fork"`
}

// RepoOwner is the owner reference on a repository.
type RepoOwner struct {
	Login string `json:"login"`
}

// EventType is the closed set of public event kinds this system
// distinguishes. Anything else on the wire maps to EventOther.
type EventType int

const (
	EventOther EventType = iota
	EventPush
	EventPullRequest
	EventPullRequestReview
	EventPullRequestReviewComment
	EventIssues
	EventIssueComment
	EventCreate
	EventDelete
	EventWatch
	EventFork
)

var eventTypeNames = map[string]EventType{
	"PushEvent":                     EventPush,
	"PullRequestEvent":              EventPullRequest,
	"PullRequestReviewEvent":        EventPullRequestReview,
	"PullRequestReviewCommentEvent": EventPullRequestReviewComment,
	"IssuesEvent":                   EventIssues,
	"IssueCommentEvent":             EventIssueComment,
	"CreateEvent":                   EventCreate,
	"DeleteEvent":                   EventDelete,
	"WatchEvent":                    EventWatch,
	"ForkEvent":                     EventFork,
}

// String returns the GitHub wire tag for the event type.
func (t EventType) String() string {
	for name, typ := range eventTypeNames {
		if typ == t {
			return name
		}
	}
	return "OtherEvent"
}

// UnmarshalJSON maps the GitHub wire tag onto the closed enum. Unknown
// tags become EventOther rather than an error.
func (t *EventType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = eventTypeNames[s]
	return nil
}

// MarshalJSON writes the wire tag back out.
func (t EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// EventPayload carries the type-specific fields used downstream: the
// commit count on push events and the action verb on pull-request and
// issue events.
type EventPayload struct {
	Action string `json:"action,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// EventRepo is the owning-repository reference on an event, normally in
// "owner/name" form.
type EventRepo struct {
	Name string `json:"name"`
}

// Owner returns the owner half of an owner/name reference, or "" when the
// reference is not fully qualified.
func (r EventRepo) Owner() string {
	if i := strings.IndexByte(r.Name, '/'); i >= 0 {
		return r.Name[:i]
	}
	return ""
}

// Short returns the repository name without its owner prefix.
func (r EventRepo) Short() string {
	if i := strings.IndexByte(r.Name, '/'); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

// Event represents one public activity event.
type Event struct {
	CreatedAt time.Time    `json:"created_at"`
	Repo      EventRepo    `json:"repo"`
	Payload   EventPayload `json:"payload"`
	Type      EventType    `json:"type"`
}

// CommitCount returns how many commits a push event carried, defaulting
// to 1 when the payload did not say.
func (e Event) CommitCount() int {
	if e.Payload.Size > 0 {
		return e.Payload.Size
	}
	return 1
}

// DayCount is one day of contribution activity.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Contributions is one calendar year of daily contribution counts as
// served by the contributions endpoint. Total is keyed by year string.
type Contributions struct {
	Total         map[string]int `json:"total"`
	Contributions []DayCount     `json:"contributions"`
}

// LanguageShare is one language's slice of the user's non-fork code.
type LanguageShare struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// RawBundle is everything the data processor consumes. It is fetched once
// per session and held immutable afterwards.
type RawBundle struct {
	User          *User           `json:"user"`
	Contributions *Contributions  `json:"contributions"`
	Repos         []Repository    `json:"repos"`
	Events        []Event         `json:"events"`
	Languages     []LanguageShare `json:"languages"`
	Year          int             `json:"year"`
}
