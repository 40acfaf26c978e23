package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

func TestRecordCheckIn_PersistsAndAssesses(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()
	noon := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	res, err := RecordCheckIn(ctx, journal, "alice", &CheckInRequest{
		HeartRate:   72,
		Mood:        5,
		SleepHours:  8,
		StressLevel: 1,
	}, noon)
	assert.NoError(t, err)
	assert.Equal(t, 100, res.Assessment.Score)
	assert.Equal(t, internal.HeartRateNormal, res.Assessment.HeartRateStatus)
	assert.Equal(t, 1, res.Streaks.HealthInputs)
	assert.Equal(t, internal.FeelingGood, res.Snapshot.Feeling)

	stored, found, err := journal.LoadVitals(ctx, "alice")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, res.Snapshot.HeartRate, stored.HeartRate)
	assert.Equal(t, res.Snapshot.Feeling, stored.Feeling)
	assert.True(t, stored.Timestamp.Equal(noon))
}

func TestRecordCheckIn_ClampsOutOfRangeInput(t *testing.T) {
	journal := newTestJournal(t)
	res, err := RecordCheckIn(context.Background(), journal, "alice", &CheckInRequest{
		HeartRate:   72,
		Mood:        99,
		SleepHours:  40,
		StressLevel: -3,
	}, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 5, res.Snapshot.Mood)
	assert.Equal(t, 24.0, res.Snapshot.SleepHours)
	assert.Equal(t, 1, res.Snapshot.StressLevel)
}

func TestValidateCheckInRequest(t *testing.T) {
	valid := &CheckInRequest{HeartRate: 72, Mood: 4, SleepHours: 8, StressLevel: 2}
	assert.NoError(t, ValidateCheckInRequest(valid))

	assert.Error(t, ValidateCheckInRequest(&CheckInRequest{HeartRate: 30, Mood: 4, SleepHours: 8, StressLevel: 2}))
	assert.Error(t, ValidateCheckInRequest(&CheckInRequest{HeartRate: 72, Mood: 6, SleepHours: 8, StressLevel: 2}))
	assert.Error(t, ValidateCheckInRequest(&CheckInRequest{HeartRate: 72, Mood: 4, SleepHours: 8, StressLevel: 2, Feeling: "meh"}))
}

func TestChatContextFor_NoCheckIn(t *testing.T) {
	journal := newTestJournal(t)
	ctx, err := ChatContextFor(context.Background(), journal, "alice", time.Now())
	assert.NoError(t, err)
	assert.Nil(t, ctx)
}

func TestChatContextFor_ReflectsStoredState(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()
	noon := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	_, err := RecordCheckIn(ctx, journal, "alice", &CheckInRequest{
		HeartRate:   110,
		Mood:        2,
		SleepHours:  5,
		StressLevel: 4,
	}, noon)
	assert.NoError(t, err)

	_, err = AddFood(ctx, journal, "alice", &FoodLogRequest{Name: "Apple", Quantity: 1, MealType: "snack"}, noon)
	assert.NoError(t, err)

	cc, err := ChatContextFor(ctx, journal, "alice", noon)
	assert.NoError(t, err)
	assert.NotNil(t, cc)
	assert.Equal(t, 110, cc.HeartRate)
	assert.Equal(t, 5.0, cc.SleepHours)
	assert.Equal(t, 4, cc.StressLevel)
	assert.Equal(t, 2, cc.Mood)
	assert.Equal(t, 1, cc.RecentMeals)
	// 100 −15 sleep −10 elevated HR −15 stress −10 mood = 50
	assert.Equal(t, 50, cc.HealthScore)
}
