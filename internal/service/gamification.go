package service

import (
	"context"
	"time"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

// Habit names a streak counter.
type Habit string

const (
	HabitHealthInputs Habit = "health_inputs"
	HabitWorkouts     Habit = "workouts"
	HabitMeditation   Habit = "meditation"
	HabitNutrition    Habit = "nutrition"
)

// badgeCatalog is the fixed set of earnable badges.
var badgeCatalog = []internal.Badge{
	{ID: "early-bird", Name: "Early Bird", Description: "Log activity before 8 AM", Category: "activity", Points: 50},
	{ID: "streak-master", Name: "Streak Master", Description: "7-day logging streak", Category: "consistency", Points: 100},
	{ID: "step-champion", Name: "Step Champion", Description: "10,000 steps in a day", Category: "activity", Points: 75},
	{ID: "wellness-warrior", Name: "Wellness Warrior", Description: "Complete 5 wellness sessions", Category: "health", Points: 100},
	{ID: "consistency-king", Name: "Consistency King", Description: "30-day streak", Category: "consistency", Points: 200},
	{ID: "energy-booster", Name: "Energy Booster", Description: "Complete morning routine 10 times", Category: "health", Points: 75},
	{ID: "nutrition-ninja", Name: "Nutrition Ninja", Description: "Log 20 meals", Category: "nutrition", Points: 100},
}

// RolloverStreaks applies the daily reset policy: a streak snapshot loaded
// strictly after the local day it was last updated keeps its counters only
// if that day was yesterday; a longer gap breaks every streak. The zero
// value is returned for users with no prior record.
func RolloverStreaks(s *internal.Streaks, now time.Time) internal.Streaks {
	if s == nil {
		return internal.Streaks{LastUpdated: now}
	}
	if sameLocalDay(s.LastUpdated, now) {
		return *s
	}
	rolled := *s
	if !sameLocalDay(s.LastUpdated.AddDate(0, 0, 1), now) {
		// Gap of more than one day: streaks are broken.
		rolled = internal.Streaks{}
	}
	rolled.LastUpdated = now
	return rolled
}

// BumpStreak increments one habit counter after applying rollover, persists
// the result, and returns it. Callers invoke it once per qualifying user
// action.
func BumpStreak(ctx context.Context, journal *Journal, userID string, habit Habit, now time.Time) (*internal.Streaks, error) {
	prev, _, err := journal.LoadStreaks(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := RolloverStreaks(prev, now)
	switch habit {
	case HabitHealthInputs:
		s.HealthInputs++
	case HabitWorkouts:
		s.Workouts++
	case HabitMeditation:
		s.Meditation++
	case HabitNutrition:
		s.Nutrition++
	}
	s.LastUpdated = now
	if err := journal.SaveStreaks(ctx, userID, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadBadges returns the user's badge board, seeding the catalog on first
// access.
func LoadBadges(ctx context.Context, journal *Journal, userID string) ([]internal.Badge, error) {
	badges, found, err := journal.LoadBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		badges = make([]internal.Badge, len(badgeCatalog))
		copy(badges, badgeCatalog)
		if err := journal.SaveBadges(ctx, userID, badges); err != nil {
			return nil, err
		}
	}
	return badges, nil
}

// EvaluateBadges awards any badge whose condition the current state meets.
// Earned badges are never revoked.
func EvaluateBadges(ctx context.Context, journal *Journal, userID string, now time.Time) ([]internal.Badge, error) {
	badges, err := LoadBadges(ctx, journal, userID)
	if err != nil {
		return nil, err
	}
	streaks, _, err := journal.LoadStreaks(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := journal.LoadFoodLog(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range badges {
		if badges[i].Earned {
			continue
		}
		earned := false
		switch badges[i].ID {
		case "streak-master":
			earned = streaks != nil && streaks.HealthInputs >= 7
		case "consistency-king":
			earned = streaks != nil && streaks.HealthInputs >= 30
		case "nutrition-ninja":
			earned = len(entries) >= 20
		case "early-bird":
			earned = now.Local().Hour() < 8
		}
		if earned {
			badges[i].Earned = true
			t := now
			badges[i].EarnedDate = &t
			changed = true
		}
	}
	if changed {
		if err := journal.SaveBadges(ctx, userID, badges); err != nil {
			return nil, err
		}
	}
	return badges, nil
}
