// Package poster renders the processed model as a styled terminal poster.
// It reads the model strictly read-only.
package poster

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitrewind-dev/gitrewind/pkg/github"
	"github.com/gitrewind-dev/gitrewind/pkg/stats"
)

var (
	colorAccent = lipgloss.Color("36")  // teal - headings
	colorGold   = lipgloss.Color("220") // amber - persona
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	stylePersona = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	stylePanel   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// heatStyles maps contribution levels 0..4 to green shades.
var heatStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

// Render draws the full poster for a user's year.
func Render(user *github.User, model *stats.Model) string {
	sections := []string{
		header(user, model.Year),
		heatmapGrid(model.Heatmap),
		overview(model.Overview),
		breakdown(model.Breakdown),
		topRepos(model.ScoredRepos),
		contributed(model.Contributed),
		languages(model.Languages),
		personaCard(model.Persona, model.ProfilePersona),
	}

	var out []string
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}

func header(user *github.User, year int) string {
	if user == nil {
		return styleTitle.Render(fmt.Sprintf("GitHub %d", year))
	}
	name := user.Login
	if user.Name != "" {
		name = fmt.Sprintf("%s (%s)", user.Name, user.Login)
	}
	line := styleTitle.Render(fmt.Sprintf("%s — GitHub %d", name, year))
	sub := styleLabel.Render(fmt.Sprintf("%d followers · %d following · %d public repos",
		user.Followers, user.Following, user.PublicRepos))
	return line + "\n" + sub + "\n"
}

// heatmapGrid draws the year as 7 weekday rows of week columns, with a
// month-initial ruler above.
func heatmapGrid(h stats.Heatmap) string {
	if len(h.Weeks) == 0 {
		return ""
	}

	ruler := make([]rune, len(h.Weeks))
	for i := range ruler {
		ruler[i] = ' '
	}
	for _, label := range h.MonthLabels {
		if label.WeekIndex < len(ruler) {
			ruler[label.WeekIndex] = []rune(label.Month.String())[0]
		}
	}

	var output strings.Builder
	output.WriteString(styleLabel.Render(string(ruler)) + "\n")
	for day := 0; day < 7; day++ {
		var row strings.Builder
		for _, week := range h.Weeks {
			if day >= len(week) {
				row.WriteString(" ")
				continue
			}
			cell := week[day]
			if !cell.InYear {
				row.WriteString(styleLabel.Render("·"))
				continue
			}
			row.WriteString(heatStyles[cell.Level].Render("■"))
		}
		output.WriteString(row.String() + "\n")
	}
	return output.String()
}

func overview(o stats.Overview) string {
	rows := []string{
		statLine("Contributions", fmt.Sprintf("%d", o.Total)),
		statLine("Daily average", fmt.Sprintf("%.1f", o.DailyAverage)),
		statLine("Best day", fmt.Sprintf("%d on %s", o.BestDay.Count, o.BestDay.Date)),
		statLine("Longest streak", fmt.Sprintf("%d days", o.LongestStreak)),
		statLine("Current streak", fmt.Sprintf("%d days", o.CurrentStreak)),
		statLine("Active days", fmt.Sprintf("%d", o.ActiveDays)),
		statLine("Stars earned", fmt.Sprintf("%d across %d repos", o.TotalStars, o.TotalRepos)),
	}
	return styleTitle.Render("Your year in numbers") + "\n" + strings.Join(rows, "\n") + "\n"
}

func breakdown(b stats.ActivityBreakdown) string {
	if b.TotalCount() == 0 {
		return ""
	}
	rows := []string{
		statLine("Commits", fmt.Sprintf("%d (%.1f%%)", b.Commits, b.CommitsPct)),
		statLine("Pull requests", fmt.Sprintf("%d (%.1f%%)", b.PullRequests, b.PullRequestsPct)),
		statLine("Issues", fmt.Sprintf("%d (%.1f%%)", b.Issues, b.IssuesPct)),
		statLine("Reviews", fmt.Sprintf("%d (%.1f%%)", b.Reviews, b.ReviewsPct)),
		statLine("Other", fmt.Sprintf("%d (%.1f%%)", b.Other, b.OtherPct)),
	}
	return styleTitle.Render("Recent activity") + "\n" + strings.Join(rows, "\n") + "\n"
}

func topRepos(repos []stats.ScoredRepo) string {
	if len(repos) == 0 {
		return ""
	}
	n := len(repos)
	if n > 5 {
		n = 5
	}
	rows := make([]string, 0, n)
	for _, repo := range repos[:n] {
		detail := fmt.Sprintf("★ %d · score %.1f", repo.Stars, repo.Score)
		if repo.Language != "" {
			detail = repo.Language + " · " + detail
		}
		rows = append(rows, statLine(repo.Name, detail))
	}
	return styleTitle.Render("Top repositories") + "\n" + strings.Join(rows, "\n") + "\n"
}

func contributed(repos []stats.ContributedRepo) string {
	if len(repos) == 0 {
		return ""
	}
	n := len(repos)
	if n > 5 {
		n = 5
	}
	rows := make([]string, 0, n)
	for _, repo := range repos[:n] {
		detail := fmt.Sprintf("%d commits · %d PRs · %d reviews", repo.Commits, repo.PullRequests, repo.Reviews)
		if repo.IsOwned {
			detail += " · owned"
		}
		rows = append(rows, statLine(repo.FullName, detail))
	}
	return styleTitle.Render("Repos you contributed to") + "\n" + strings.Join(rows, "\n") + "\n"
}

func languages(shares []github.LanguageShare) string {
	if len(shares) == 0 {
		return ""
	}
	rows := make([]string, 0, len(shares))
	for _, share := range shares {
		width := int(share.Percentage / 5)
		if width == 0 {
			width = 1
		}
		rows = append(rows, fmt.Sprintf("%s %s %s",
			styleLabel.Render(fmt.Sprintf("%-12s", share.Name)),
			heatStyles[3].Render(strings.Repeat("█", width)),
			styleValue.Render(fmt.Sprintf("%.1f%%", share.Percentage))))
	}
	return styleTitle.Render("Languages") + "\n" + strings.Join(rows, "\n") + "\n"
}

func personaCard(persona, profilePersona stats.Persona) string {
	card := stylePersona.Render(fmt.Sprintf("%s  %s", persona.Emoji, persona.Name)) + "\n" +
		styleValue.Render(persona.Description)
	if profilePersona.ID != persona.ID {
		card += "\n" + styleLabel.Render(fmt.Sprintf("Profile says: %s %s", profilePersona.Emoji, profilePersona.Name))
	}
	return stylePanel.Render(card) + "\n"
}

func statLine(label, value string) string {
	return fmt.Sprintf("%s %s", styleLabel.Render(fmt.Sprintf("%-16s", label)), styleValue.Render(value))
}
