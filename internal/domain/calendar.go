package domain

import (
	"sort"
	"strings"
)

// RescheduledSuffix marks actions that were moved forward by a replan,
// distinguishing them from actions originally planned at that day.
const RescheduledSuffix = " (rescheduled)"

// CalendarEntry is one day-keyed block of the crop calendar. Actions keep
// insertion order. Day values are 1-based; day 0 never carries an entry.
type CalendarEntry struct {
	Day                int      `json:"day"`
	Stage              string   `json:"stage"`
	Actions            []string `json:"actions"`
	Dependencies       []string `json:"dependencies"`
	WeatherConstraints []string `json:"weatherConstraints"`
}

// IsRescheduled reports whether the entry was inserted by a replan: every
// action it carries bears the rescheduled marker.
func (e CalendarEntry) IsRescheduled() bool {
	if len(e.Actions) == 0 {
		return false
	}
	for _, a := range e.Actions {
		if !strings.HasSuffix(a, RescheduledSuffix) {
			return false
		}
	}
	return true
}

// Calendar is the authoritative day-indexed schedule from sowing to harvest.
type Calendar []CalendarEntry

// MaxDay returns the highest day value in the calendar, or 0 when empty.
func (c Calendar) MaxDay() int {
	max := 0
	for _, e := range c {
		if e.Day > max {
			max = e.Day
		}
	}
	return max
}

// SortByDay orders entries by ascending day in place. The sort is stable so
// entries sharing a day keep their relative order.
func (c Calendar) SortByDay() {
	sort.SliceStable(c, func(i, j int) bool { return c[i].Day < c[j].Day })
}

// SplitAt partitions the calendar into entries strictly before day and
// entries at or after day. Both halves share no backing storage with each
// other, so rewriting one cannot corrupt the other.
func (c Calendar) SplitAt(day int) (past, remaining Calendar) {
	for _, e := range c {
		if e.Day < day {
			past = append(past, e)
		} else {
			remaining = append(remaining, e)
		}
	}
	return past, remaining
}

// EntryAt returns the first entry whose day matches exactly.
func (c Calendar) EntryAt(day int) (CalendarEntry, bool) {
	for _, e := range c {
		if e.Day == day {
			return e, true
		}
	}
	return CalendarEntry{}, false
}

// EntriesAt returns every entry whose day matches exactly, in calendar
// order. A replan whose reschedule day collides with an existing entry
// leaves two entries on the same day.
func (c Calendar) EntriesAt(day int) []CalendarEntry {
	var matches []CalendarEntry
	for _, e := range c {
		if e.Day == day {
			matches = append(matches, e)
		}
	}
	return matches
}

// LatestStarted returns the latest entry whose day is <= the given day.
func (c Calendar) LatestStarted(day int) (CalendarEntry, bool) {
	best := -1
	for i, e := range c {
		if e.Day <= day && (best < 0 || e.Day >= c[best].Day) {
			best = i
		}
	}
	if best < 0 {
		return CalendarEntry{}, false
	}
	return c[best], true
}
