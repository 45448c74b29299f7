// Package histogram renders terminal views of the activity distributions.
package histogram

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/gitrewind-dev/gitrewind/pkg/stats"
)

const maxBarWidth = 40

// RenderHours draws the 24-bucket hour-of-day distribution, one line per
// hour, with the peak hour highlighted.
func RenderHours(hourly stats.HourlyActivity) string {
	var output strings.Builder
	output.WriteString("⏰ Activity by hour\n")
	output.WriteString(strings.Repeat("─", 50) + "\n")

	maxCount := 0
	for _, count := range hourly.Hours {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		output.WriteString("No activity data available\n")
		return output.String()
	}

	peak := color.New(color.FgYellow)
	for hour, count := range hourly.Hours {
		line := fmt.Sprintf("%02d:00 ", hour)

		if hour == hourly.PeakHour {
			line += peak.Sprint("^") + " "
		} else {
			line += "  "
		}

		if count > 0 {
			line += fmt.Sprintf("(%3d) ", count)
			line += bar(count, maxCount, hour == hourly.PeakHour)
		}
		output.WriteString(line + "\n")
	}
	return output.String()
}

// RenderWeekdays draws the day-of-week distribution, Sunday first, with
// the busiest day highlighted.
func RenderWeekdays(hourly stats.HourlyActivity) string {
	var output strings.Builder
	output.WriteString("📅 Activity by weekday\n")
	output.WriteString(strings.Repeat("─", 50) + "\n")

	maxCount := 0
	for _, count := range hourly.Weekdays {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		output.WriteString("No activity data available\n")
		return output.String()
	}

	for i, count := range hourly.Weekdays {
		day := time.Weekday(i)
		line := fmt.Sprintf("%-9s ", day.String())
		if count > 0 {
			line += fmt.Sprintf("(%3d) ", count)
			line += bar(count, maxCount, day == hourly.BusiestWeekday)
		}
		output.WriteString(line + "\n")
	}
	return output.String()
}

func bar(count, maxCount int, highlight bool) string {
	length := count * maxBarWidth / maxCount
	c := color.New(color.FgHiBlack)
	if highlight {
		c = color.New(color.FgYellow)
	}
	if length == 0 {
		return c.Sprint("·")
	}
	return c.Sprint(strings.Repeat("█", length))
}
