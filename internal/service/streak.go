package service

import "time"

// streakLookbackDays bounds how many distinct practice days are fetched
// for the streak walk. A streak longer than the window reports the window.
const streakLookbackDays = 30

// CalculateStreak counts consecutive practice days ending at today, or at
// yesterday when today has not been practiced yet (the grace day).
// practiceDates may carry arbitrary timestamps; only their UTC calendar
// days matter.
func CalculateStreak(practiceDates []time.Time, today time.Time) int {
	if len(practiceDates) == 0 {
		return 0
	}

	days := make(map[time.Time]struct{}, len(practiceDates))
	for _, date := range practiceDates {
		days[dateOnly(date)] = struct{}{}
	}

	day := dateOnly(today)
	if _, ok := days[day]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[day]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
