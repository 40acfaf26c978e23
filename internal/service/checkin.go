package service

import (
	"context"
	"errors"
	"time"

	"github.com/Krushna4142/FitOS-dashboard/internal"
	"github.com/Krushna4142/FitOS-dashboard/internal/engine"
)

// ErrNoCheckIn marks a user who has never submitted vitals.
var ErrNoCheckIn = errors.New("no vitals recorded")

// CheckInRequest is a vitals check-in. Numeric bounds mirror the input
// form; the engine clamps again regardless.
type CheckInRequest struct {
	HeartRate   int      `json:"heart_rate" validate:"required,gte=40,lte=200"`
	Mood        int      `json:"mood" validate:"required,gte=1,lte=5"`
	SleepHours  float64  `json:"sleep_hours" validate:"gte=0,lte=24"`
	StressLevel int      `json:"stress_level" validate:"required,gte=1,lte=5"`
	Feeling     string   `json:"feeling,omitempty" validate:"omitempty,oneof=good tired unwell"`
	Symptoms    []string `json:"symptoms,omitempty" validate:"dive,required"`
}

func ValidateCheckInRequest(req *CheckInRequest) error {
	return validate.Struct(req)
}

// CheckInResult pairs the stored snapshot with its derived assessment.
type CheckInResult struct {
	Snapshot   internal.VitalsSnapshot `json:"snapshot"`
	Assessment internal.Assessment     `json:"assessment"`
	Streaks    *internal.Streaks       `json:"streaks,omitempty"`
}

// RecordCheckIn normalizes and persists a snapshot, computes its
// assessment, and bumps the check-in streak.
func RecordCheckIn(ctx context.Context, journal *Journal, userID string, req *CheckInRequest, now time.Time) (*CheckInResult, error) {
	snapshot := engine.Normalize(internal.VitalsSnapshot{
		HeartRate:   req.HeartRate,
		Mood:        req.Mood,
		SleepHours:  req.SleepHours,
		StressLevel: req.StressLevel,
		Feeling:     internal.Feeling(req.Feeling),
		Symptoms:    req.Symptoms,
		Timestamp:   now,
	})

	if err := journal.SaveVitals(ctx, userID, &snapshot); err != nil {
		return nil, err
	}

	streaks, err := BumpStreak(ctx, journal, userID, HabitHealthInputs, now)
	if err != nil {
		return nil, err
	}
	if _, err := EvaluateBadges(ctx, journal, userID, now); err != nil {
		return nil, err
	}

	return &CheckInResult{
		Snapshot:   snapshot,
		Assessment: engine.Assess(snapshot),
		Streaks:    streaks,
	}, nil
}

// ChatContextFor assembles the responder context from stored state, or nil
// when the user has never checked in.
func ChatContextFor(ctx context.Context, journal *Journal, userID string, now time.Time) (*engine.ChatContext, error) {
	vitals, found, err := journal.LoadVitals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	entries, err := journal.LoadFoodLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	assessment := engine.Assess(*vitals)
	return &engine.ChatContext{
		HealthScore: assessment.Score,
		RecentMeals: DailyTotals(entries, now).Meals,
		SleepHours:  vitals.SleepHours,
		StressLevel: vitals.StressLevel,
		Mood:        vitals.Mood,
		HeartRate:   vitals.HeartRate,
	}, nil
}
