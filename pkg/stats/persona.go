package stats

import (
	"time"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
)

// Persona is a descriptive label chosen by priority-ordered rule matching.
type Persona struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// PersonaInputs are the aggregate statistics the classifiers match on.
// WeekendShare is the fraction (0..1) of contributions landing on a
// Saturday or Sunday.
type PersonaInputs struct {
	PeakHour           int     `json:"peak_hour"`
	WeekendShare       float64 `json:"weekend_share"`
	TotalContributions int     `json:"total_contributions"`
	Followers          int     `json:"followers"`
	TotalStars         int     `json:"total_stars"`
	LongestStreak      int     `json:"longest_streak"`
}

var (
	personaNightOwl = Persona{ID: "night-owl", Name: "Night Owl", Emoji: "🦉",
		Description: "Most active late at night, when the notifications go quiet."}
	personaEarlyBird = Persona{ID: "early-bird", Name: "Early Bird", Emoji: "🐦",
		Description: "Ships before most people have had coffee."}
	personaWeekendWarrior = Persona{ID: "weekend-warrior", Name: "Weekend Warrior", Emoji: "⚔️",
		Description: "Saves the real work for Saturday and Sunday."}
	personaGridPainter = Persona{ID: "grid-painter", Name: "Grid Painter", Emoji: "🎨",
		Description: "Paints the contribution graph green, square by square."}
	personaConsistent = Persona{ID: "consistent", Name: "The Consistent", Emoji: "📈",
		Description: "Shows up steadily, month after month."}
	personaCommunityStar = Persona{ID: "community-star", Name: "Community Star", Emoji: "🌟",
		Description: "The community knows this name."}
	personaStreakKeeper = Persona{ID: "streak-keeper", Name: "Streak Keeper", Emoji: "🔥",
		Description: "Keeps the streak alive no matter what."}
	personaTinkerer = Persona{ID: "tinkerer", Name: "The Tinkerer", Emoji: "🔧",
		Description: "Always building something, on no particular schedule."}
)

// personaRule pairs a persona with its predicate. The first match in
// listed order wins; this is a priority chain, not a scored match.
type personaRule struct {
	matches func(PersonaInputs) bool
	persona Persona
}

var rulesChain = []personaRule{
	{func(in PersonaInputs) bool { return in.PeakHour >= 22 || in.PeakHour < 4 }, personaNightOwl},
	{func(in PersonaInputs) bool { return in.PeakHour >= 5 && in.PeakHour < 9 }, personaEarlyBird},
	{func(in PersonaInputs) bool { return in.WeekendShare > 0.35 }, personaWeekendWarrior},
	{func(in PersonaInputs) bool { return in.TotalContributions >= 1200 }, personaGridPainter},
	{func(in PersonaInputs) bool { return in.TotalContributions >= 400 }, personaConsistent},
	{func(in PersonaInputs) bool { return in.Followers >= 500 || in.TotalStars >= 1000 }, personaCommunityStar},
}

// profileChain is the second, divergent classifier. Call sites depend on
// each ordering, so the two chains are deliberately not unified.
var profileChain = []personaRule{
	{func(in PersonaInputs) bool { return in.PeakHour >= 22 || in.PeakHour < 4 }, personaNightOwl},
	{func(in PersonaInputs) bool { return in.PeakHour >= 5 && in.PeakHour < 9 }, personaEarlyBird},
	{func(in PersonaInputs) bool { return in.TotalContributions >= 1200 }, personaGridPainter},
	{func(in PersonaInputs) bool { return in.Followers >= 500 || in.TotalStars >= 1000 }, personaCommunityStar},
	{func(in PersonaInputs) bool { return in.LongestStreak >= 30 }, personaStreakKeeper},
}

// ClassifyByRules returns the first matching persona from the full rule
// chain, falling back to The Tinkerer.
func ClassifyByRules(in PersonaInputs) Persona {
	return classifyPersona(rulesChain, in)
}

// ClassifyByProfile returns the first matching persona from the
// profile-oriented chain, falling back to The Tinkerer.
func ClassifyByProfile(in PersonaInputs) Persona {
	return classifyPersona(profileChain, in)
}

func classifyPersona(chain []personaRule, in PersonaInputs) Persona {
	for _, rule := range chain {
		if rule.matches(in) {
			return rule.persona
		}
	}
	return personaTinkerer
}

// WeekendShare computes the fraction of contributions landing on a
// Saturday or Sunday, 0 when there are no contributions at all.
func WeekendShare(days []github.DayCount) float64 {
	total, weekend := 0, 0
	for _, d := range days {
		t, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			continue
		}
		total += d.Count
		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend += d.Count
		}
	}
	if total == 0 {
		return 0
	}
	return float64(weekend) / float64(total)
}
