// Package algo has the numeric folds behind streaks, rolling statistics and rankings.
package algo

import "github.com/huangsam/cardstats/schema"

// longestState is the accumulator of the forward fold used by LongestStreak.
type longestState struct {
	run     int // length of the run ending at the current day
	longest int // longest run seen so far
}

func stepLongest(s longestState, count int) longestState {
	if count <= 0 {
		return longestState{longest: s.longest}
	}
	s.run++
	s.longest = max(s.longest, s.run)
	return s
}

// currentState is the accumulator of the backward fold used by CurrentStreak.
type currentState struct {
	count int
	done  bool
}

// stepCurrent consumes one day walking backward from today.
// A quiet today is forgiven since the day may not be over yet.
func stepCurrent(s currentState, count int, isToday bool) currentState {
	if s.done {
		return s
	}
	switch {
	case count > 0:
		s.count++
	case isToday:
	default:
		s.done = true
	}
	return s
}

// LongestStreak returns the longest run of consecutive days with activity.
func LongestStreak(counts []int) int {
	var s longestState
	for _, c := range counts {
		s = stepLongest(s, c)
	}
	return s.longest
}

// CurrentStreak returns the run of active days ending today, or ending
// yesterday when today has no activity yet.
func CurrentStreak(counts []int) int {
	var s currentState
	last := len(counts) - 1
	for i := last; i >= 0 && !s.done; i-- {
		s = stepCurrent(s, counts[i], i == last)
	}
	return s.count
}

// ComputeStreak returns both streak lengths for a series of day counts,
// oldest first.
func ComputeStreak(counts []int) schema.StreakResult {
	return schema.StreakResult{
		Current: CurrentStreak(counts),
		Longest: LongestStreak(counts),
	}
}

// ActiveDays returns the number of days with at least one event.
func ActiveDays(counts []int) int {
	n := 0
	for _, c := range counts {
		if c > 0 {
			n++
		}
	}
	return n
}
