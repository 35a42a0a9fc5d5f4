package domain

import "time"

// Level bounds.
const (
	MinLevel = 1
	MaxLevel = 5
)

// levelThresholds is ordered from the highest level down.
var levelThresholds = []struct {
	minPoints int
	level     int
}{
	{500, 5},
	{250, 4},
	{100, 3},
	{50, 2},
}

// LevelFor returns the level a running total qualifies for.
func LevelFor(total int) int {
	for _, th := range levelThresholds {
		if total >= th.minPoints {
			return th.level
		}
	}
	return MinLevel
}

// UserReputation is the per-user running score.
type UserReputation struct {
	UserID         string
	TotalEcoPoints int
	Level          int
	// Version increases by one on every successful write.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReputation is the first row for a user. The level starts at 1 whatever
// the first delta is; levels only move on later updates.
func NewReputation(userID string, delta int, now time.Time) UserReputation {
	return UserReputation{
		UserID:         userID,
		TotalEcoPoints: delta,
		Level:          MinLevel,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Apply folds delta into the total. The level never decreases.
func (r UserReputation) Apply(delta int, now time.Time) UserReputation {
	next := r
	next.TotalEcoPoints += delta
	if lvl := LevelFor(next.TotalEcoPoints); lvl > next.Level {
		next.Level = lvl
	}
	next.Version++
	next.UpdatedAt = now
	return next
}

// RecentActivityLimit is how many activities a profile shows.
const RecentActivityLimit = 10

// Profile is a user's reputation with their latest activities, newest first.
type Profile struct {
	Reputation       UserReputation
	RecentActivities []ActivityRecord
}
