package github

import (
	"encoding/json"
	"testing"
)

func TestEventTypeUnmarshal(t *testing.T) {
	tests := []struct {
		wire string
		want EventType
	}{
		{"PushEvent", EventPush},
		{"PullRequestEvent", EventPullRequest},
		{"PullRequestReviewEvent", EventPullRequestReview},
		{"IssuesEvent", EventIssues},
		{"IssueCommentEvent", EventIssueComment},
		{"WatchEvent", EventWatch},
		{"GollumEvent", EventOther}, // unknown tags degrade, never error
	}

	for _, tt := range tests {
		var e Event
		if err := json.Unmarshal([]byte(`{"type":"`+tt.wire+`"}`), &e); err != nil {
			t.Fatalf("%s: %v", tt.wire, err)
		}
		if e.Type != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.wire, tt.want, e.Type)
		}
	}
}

func TestEventRepoOwnerAndShort(t *testing.T) {
	full := EventRepo{Name: "alice/widget"}
	if full.Owner() != "alice" || full.Short() != "widget" {
		t.Errorf("expected alice/widget split, got %q / %q", full.Owner(), full.Short())
	}

	bare := EventRepo{Name: "widget"}
	if bare.Owner() != "" {
		t.Errorf("expected empty owner for a bare name, got %q", bare.Owner())
	}
	if bare.Short() != "widget" {
		t.Errorf("expected the bare name back, got %q", bare.Short())
	}
}

func TestCommitCountDefaultsToOne(t *testing.T) {
	withSize := Event{Type: EventPush, Payload: EventPayload{Size: 7}}
	if withSize.CommitCount() != 7 {
		t.Errorf("expected 7, got %d", withSize.CommitCount())
	}
	without := Event{Type: EventPush}
	if without.CommitCount() != 1 {
		t.Errorf("expected default of 1, got %d", without.CommitCount())
	}
}
