package calendar

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxMinutes is the sort key of a missing or unparseable time. It lies past
// the last minute of the day so unscheduled items sort after timed ones.
const MaxMinutes = 1500

var timePattern = regexp.MustCompile(`^(\d{1,2}):?(\d{2})?$`)

// TimeRange holds the parsed bounds of a planning's time text.
type TimeRange struct {
	Start int
	End   int
}

// TimeToMinutes converts "HH:MM" (or "H", "HHMM") into minutes after
// midnight. Empty or unparseable text returns MaxMinutes.
func TimeToMinutes(text string) int {
	if text == "" {
		return MaxMinutes
	}
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return MaxMinutes
	}
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	return hours*60 + minutes
}

// ParseRange parses "HH:MM - HH:MM" or "HH:MM". A missing end is treated as
// open-ended and sorts after a bounded range with the same start.
func ParseRange(text string) TimeRange {
	text = strings.TrimSpace(text)
	if text == "" {
		return TimeRange{Start: MaxMinutes, End: MaxMinutes}
	}
	startText, endText, _ := strings.Cut(text, "-")
	startText = strings.TrimSpace(startText)
	endText = strings.TrimSpace(endText)

	r := TimeRange{Start: TimeToMinutes(startText), End: MaxMinutes}
	if endText != "" {
		r.End = TimeToMinutes(endText)
	}
	return r
}

// FormatRange renders the time text shown on a planning: "start - end" when
// both are set, the start alone otherwise, nothing without a start.
func FormatRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	default:
		return start
	}
}
