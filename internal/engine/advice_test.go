package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

func TestAdvise_HeartRatePrecedesMood(t *testing.T) {
	s := Normalize(internal.VitalsSnapshot{
		HeartRate:   130,
		Mood:        1,
		SleepHours:  8,
		StressLevel: 2,
	})
	advice := adviseFor(s)
	assert.Len(t, advice, 2)
	assert.Equal(t, "Heart Rate Alert", advice[0].Title)
	assert.Equal(t, internal.SeverityAlert, advice[0].Severity)
	assert.Equal(t, "Mood Support", advice[1].Title)
}

func TestAdvise_LowHeartRate(t *testing.T) {
	s := Normalize(internal.VitalsSnapshot{HeartRate: 50, Mood: 4, SleepHours: 8, StressLevel: 2})
	advice := adviseFor(s)
	assert.Len(t, advice, 1)
	assert.Equal(t, "Low Heart Rate", advice[0].Title)
	assert.Equal(t, internal.SeverityInfo, advice[0].Severity)
}

func TestAdvise_FeelingRules(t *testing.T) {
	tired := Normalize(internal.VitalsSnapshot{HeartRate: 72, Mood: 4, SleepHours: 8, StressLevel: 2, Feeling: internal.FeelingTired})
	advice := adviseFor(tired)
	assert.Len(t, advice, 1)
	assert.Equal(t, "Energy Boost", advice[0].Title)

	unwell := tired
	unwell.Feeling = internal.FeelingUnwell
	advice = adviseFor(unwell)
	assert.Len(t, advice, 1)
	assert.Equal(t, "Wellness Check", advice[0].Title)
	assert.Equal(t, internal.SeverityAlert, advice[0].Severity)
}

func TestAdvise_SymptomsAppendOneItem(t *testing.T) {
	s := Normalize(internal.VitalsSnapshot{
		HeartRate:   72,
		Mood:        4,
		SleepHours:  8,
		StressLevel: 2,
		Symptoms:    []string{"headache", "nausea", "fatigue"},
	})
	advice := adviseFor(s)
	assert.Len(t, advice, 1)
	assert.Equal(t, "Symptom Tracking", advice[0].Title)
}

func TestAdvise_PositiveFallbackIsSingle(t *testing.T) {
	advice := adviseFor(Normalize(internal.VitalsSnapshot{HeartRate: 72, Mood: 4, SleepHours: 8, StressLevel: 2}))
	assert.Len(t, advice, 1)
	assert.Equal(t, "Great Health Status!", advice[0].Title)
}

func TestAdvise_EverythingFires(t *testing.T) {
	s := Normalize(internal.VitalsSnapshot{
		HeartRate:   130,
		Mood:        1,
		SleepHours:  4,
		StressLevel: 5,
		Feeling:     internal.FeelingUnwell,
		Symptoms:    []string{"headache"},
	})
	advice := adviseFor(s)
	titles := make([]string, len(advice))
	for i, a := range advice {
		titles[i] = a.Title
	}
	assert.Equal(t, []string{"Heart Rate Alert", "Mood Support", "Wellness Check", "Symptom Tracking"}, titles)
}
