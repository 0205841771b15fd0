package journal

import (
	"fmt"
	"sort"
	"time"
)

// Streak reports consecutive calendar days with at least one successful
// action, counted backward from today (UTC).
//
// LastActionDate is the most recent distinct date with a success even
// when the active streak is 0 — a single success five days ago yields
// {StreakDays: 0, LastActionDate: that date}. Whether it should instead
// be null once the streak is broken is an open product question; current
// behavior reports the date.
type Streak struct {
	StreakDays     int     `json:"streak_days"`
	LastActionDate *string `json:"last_action_date"`
}

// ActionStreak derives the current streak from all successful actions.
func (s *Store) ActionStreak() (Streak, error) {
	rows, err := s.db.Query(
		`SELECT timestamp FROM action_logs WHERE success = 1 ORDER BY timestamp DESC`,
	)
	if err != nil {
		return Streak{}, fmt.Errorf("journal: action streak: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var timestamps []string
	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			return Streak{}, err
		}
		timestamps = append(timestamps, ts)
	}
	if err := rows.Err(); err != nil {
		return Streak{}, err
	}

	return ComputeStreak(timestamps, timeNow().UTC()), nil
}

// ComputeStreak reduces success timestamps to distinct UTC calendar days
// and walks backward from today, one day at a time:
//
//   - a day present at the expected date extends the streak;
//   - a day after the expected date (clock skew, future-dated entries)
//     is skipped without breaking the walk;
//   - the first gap ends the streak.
//
// Timestamps that fail to parse are silently excluded; bad rows are a
// data-quality skip, not an error.
func ComputeStreak(timestamps []string, today time.Time) Streak {
	seen := make(map[string]bool)
	var dates []time.Time
	for _, ts := range timestamps {
		t, ok := parseTimestamp(ts)
		if !ok {
			continue
		}
		day := t.Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, day)
	}

	if len(dates) == 0 {
		return Streak{StreakDays: 0, LastActionDate: nil}
	}

	// Input arrives newest-first, but re-sort: the walk requires distinct
	// days strictly descending.
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 0
	expected := today.Truncate(24 * time.Hour)
	last := lastActionDate(dates, expected)

	for _, d := range dates {
		switch {
		case d.Equal(expected):
			streak++
			expected = expected.AddDate(0, 0, -1)
		case d.After(expected):
			// Future-dated relative to today: does not count, does not break.
			continue
		default:
			// Gap: the walk is over.
			return Streak{StreakDays: streak, LastActionDate: last}
		}
	}

	return Streak{StreakDays: streak, LastActionDate: last}
}

// lastActionDate picks the most recent past-or-present date. Future-dated
// entries never shadow a real date; they are reported only when nothing
// else exists.
func lastActionDate(dates []time.Time, today time.Time) *string {
	for _, d := range dates {
		if !d.After(today) {
			return formatDate(d)
		}
	}
	return formatDate(dates[0])
}

func formatDate(d time.Time) *string {
	s := d.Format("2006-01-02")
	return &s
}
