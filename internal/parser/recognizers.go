package parser

import (
	"regexp"
	"strconv"
	"time"

	"say-to-plan/internal/domain"
)

// match is a recognized date expression and its byte span in the input.
type match struct {
	start, end int
	due        time.Time
}

// recognizer finds the first occurrence of one kind of date expression.
type recognizer struct {
	name string
	find func(text string, now time.Time) (match, bool)
}

var (
	todayRe    = regexp.MustCompile(`(?i)\btoday\b`)
	tomorrowRe = regexp.MustCompile(`(?i)\btomorrow\b`)
	nextWeekRe = regexp.MustCompile(`(?i)\bnext\s+week\b`)
	monthDayRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
)

// recognizers in priority order; the first one that matches wins.
var recognizers = []recognizer{
	keyword("today", todayRe, 0),
	keyword("tomorrow", tomorrowRe, 1),
	keyword("next week", nextWeekRe, 7),
	{name: "month/day", find: findMonthDay},
}

func keyword(name string, re *regexp.Regexp, offsetDays int) recognizer {
	return recognizer{
		name: name,
		find: func(text string, now time.Time) (match, bool) {
			loc := re.FindStringIndex(text)
			if loc == nil {
				return match{}, false
			}
			return match{start: loc[0], end: loc[1], due: domain.EndOfDayAfter(now, offsetDays)}, true
		},
	}
}

// findMonthDay recognizes M/D without a year. Dates already past roll to next year.
func findMonthDay(text string, now time.Time) (match, bool) {
	for _, loc := range monthDayRe.FindAllStringSubmatchIndex(text, -1) {
		// 1/2/2027 and 10/1/2 are not month/day expressions
		if loc[0] > 0 && text[loc[0]-1] == '/' {
			continue
		}
		if loc[1] < len(text) && text[loc[1]] == '/' {
			continue
		}

		month, _ := strconv.Atoi(text[loc[2]:loc[3]])
		day, _ := strconv.Atoi(text[loc[4]:loc[5]])

		due, ok := monthDay(now.Year(), month, day, now.Location())
		if !ok {
			continue
		}
		if due.Before(now) {
			if due, ok = monthDay(now.Year()+1, month, day, now.Location()); !ok {
				continue
			}
		}
		return match{start: loc[0], end: loc[1], due: due}, true
	}
	return match{}, false
}

// monthDay builds the end of month/day in year, rejecting dates time.Date would normalize.
func monthDay(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return domain.EndOfDay(t), true
}
