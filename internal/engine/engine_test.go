package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

func healthySnapshot() internal.VitalsSnapshot {
	return internal.VitalsSnapshot{
		HeartRate:   72,
		Mood:        5,
		SleepHours:  8,
		StressLevel: 1,
	}
}

func TestAssess_HealthyBaseline(t *testing.T) {
	a := Assess(healthySnapshot())
	assert.Equal(t, 100, a.Score)
	assert.Equal(t, internal.HeartRateNormal, a.HeartRateStatus)
	assert.Len(t, a.Advice, 1)
	assert.Equal(t, "Great Health Status!", a.Advice[0].Title)
}

func TestAssess_Deterministic(t *testing.T) {
	s := internal.VitalsSnapshot{
		HeartRate:   110,
		Mood:        2,
		SleepHours:  5.5,
		StressLevel: 4,
		Symptoms:    []string{"headache", "fatigue"},
	}
	first := Assess(s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Assess(s))
	}
}

func TestAssess_ScoreAlwaysInRange(t *testing.T) {
	extreme := internal.VitalsSnapshot{
		HeartRate:   180,
		Mood:        1,
		SleepHours:  2,
		StressLevel: 5,
		Symptoms:    []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
	}
	a := Assess(extreme)
	assert.GreaterOrEqual(t, a.Score, 0)
	assert.LessOrEqual(t, a.Score, 100)
	assert.Equal(t, 0, a.Score)
}

func TestAssess_PenaltyTable(t *testing.T) {
	cases := []struct {
		name string
		mod  func(s *internal.VitalsSnapshot)
		want int
	}{
		{"short sleep", func(s *internal.VitalsSnapshot) { s.SleepHours = 6.5 }, 85},
		{"elevated heart rate", func(s *internal.VitalsSnapshot) { s.HeartRate = 110 }, 90},
		{"high heart rate", func(s *internal.VitalsSnapshot) { s.HeartRate = 130 }, 80},
		{"high stress", func(s *internal.VitalsSnapshot) { s.StressLevel = 4 }, 85},
		{"low mood", func(s *internal.VitalsSnapshot) { s.Mood = 2 }, 90},
		{"one symptom", func(s *internal.VitalsSnapshot) { s.Symptoms = []string{"headache"} }, 95},
		{"three symptoms", func(s *internal.VitalsSnapshot) { s.Symptoms = []string{"a", "b", "c"} }, 85},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := healthySnapshot()
			tc.mod(&s)
			assert.Equal(t, tc.want, Assess(s).Score)
		})
	}
}

func TestAssess_SymptomsMonotonic(t *testing.T) {
	s := healthySnapshot()
	prev := Assess(s).Score
	for i := 0; i < 25; i++ {
		s.Symptoms = append(s.Symptoms, "symptom")
		score := Assess(s).Score
		assert.LessOrEqual(t, score, prev)
		assert.GreaterOrEqual(t, score, 0)
		prev = score
	}
}

func TestAssess_BadWorseThanGood(t *testing.T) {
	bad := internal.VitalsSnapshot{
		HeartRate:   130,
		Mood:        1,
		SleepHours:  5,
		StressLevel: 5,
		Symptoms:    []string{"headache"},
	}
	assert.Less(t, Assess(bad).Score, Assess(healthySnapshot()).Score)
}

func TestClassifyHeartRate_Boundaries(t *testing.T) {
	assert.Equal(t, internal.HeartRateLow, ClassifyHeartRate(59))
	assert.Equal(t, internal.HeartRateNormal, ClassifyHeartRate(60))
	assert.Equal(t, internal.HeartRateNormal, ClassifyHeartRate(100))
	assert.Equal(t, internal.HeartRateHigh, ClassifyHeartRate(101))
}

func TestNormalize_ClampsOutOfRange(t *testing.T) {
	s := Normalize(internal.VitalsSnapshot{
		HeartRate:   72,
		Mood:        9,
		SleepHours:  30,
		StressLevel: -2,
	})
	assert.Equal(t, 5, s.Mood)
	assert.Equal(t, 1, s.StressLevel)
	assert.Equal(t, 24.0, s.SleepHours)
	assert.Equal(t, internal.FeelingGood, s.Feeling)
}

func TestNormalize_KeepsFeeling(t *testing.T) {
	s := Normalize(internal.VitalsSnapshot{HeartRate: 72, Mood: 3, SleepHours: 8, StressLevel: 2, Feeling: internal.FeelingTired})
	assert.Equal(t, internal.FeelingTired, s.Feeling)
}
