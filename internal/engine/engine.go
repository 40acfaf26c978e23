// Package engine derives health assessments, advice, and conversational
// replies from self-reported vitals. Every function here is pure and
// deterministic; out-of-range inputs are clamped, never rejected.
package engine

import "github.com/Krushna4142/FitOS-dashboard/internal"

const (
	baseScore = 100

	heartRateLowBound      = 60  // below this: low
	heartRateHighBound     = 100 // above this: high
	heartRateElevatedBound = 120 // scoring splits high into 101–120 and >120
)

// scoreRule is one entry of the ordered penalty table. Rules are independent:
// each one is evaluated against the same snapshot and its delta applied to
// the running score, which is clamped to [0,100] only at the end.
type scoreRule struct {
	name    string
	applies func(s internal.VitalsSnapshot) bool
	delta   func(s internal.VitalsSnapshot) int
}

func fixed(d int) func(internal.VitalsSnapshot) int {
	return func(internal.VitalsSnapshot) int { return d }
}

var scoreRules = []scoreRule{
	{
		name:    "short sleep",
		applies: func(s internal.VitalsSnapshot) bool { return s.SleepHours < 7 },
		delta:   fixed(-15),
	},
	{
		name:    "elevated heart rate",
		applies: func(s internal.VitalsSnapshot) bool { return s.HeartRate > heartRateHighBound && s.HeartRate <= heartRateElevatedBound },
		delta:   fixed(-10),
	},
	{
		name:    "high heart rate",
		applies: func(s internal.VitalsSnapshot) bool { return s.HeartRate > heartRateElevatedBound },
		delta:   fixed(-20),
	},
	{
		name:    "high stress",
		applies: func(s internal.VitalsSnapshot) bool { return s.StressLevel >= 4 },
		delta:   fixed(-15),
	},
	{
		name:    "low mood",
		applies: func(s internal.VitalsSnapshot) bool { return s.Mood <= 2 },
		delta:   fixed(-10),
	},
	{
		name:    "reported symptoms",
		applies: func(s internal.VitalsSnapshot) bool { return len(s.Symptoms) > 0 },
		delta:   func(s internal.VitalsSnapshot) int { return -5 * len(s.Symptoms) },
	},
}

// Normalize clamps a snapshot into the domains the rule tables assume. The
// input surface already bounds mood and stress, but the engine does not
// trust it.
func Normalize(s internal.VitalsSnapshot) internal.VitalsSnapshot {
	s.Mood = clampInt(s.Mood, 1, 5)
	s.StressLevel = clampInt(s.StressLevel, 1, 5)
	s.SleepHours = clampFloat(s.SleepHours, 0, 24)
	if s.Feeling == "" {
		s.Feeling = internal.FeelingGood
	}
	return s
}

// Assess computes the score, heart-rate classification, and ordered advice
// for a snapshot.
func Assess(snapshot internal.VitalsSnapshot) internal.Assessment {
	s := Normalize(snapshot)

	score := baseScore
	for _, rule := range scoreRules {
		if rule.applies(s) {
			score += rule.delta(s)
		}
	}

	return internal.Assessment{
		Score:           clampInt(score, 0, 100),
		HeartRateStatus: ClassifyHeartRate(s.HeartRate),
		Advice:          adviseFor(s),
	}
}

// ClassifyHeartRate buckets a resting heart rate: <60 low, >100 high.
func ClassifyHeartRate(bpm int) internal.HeartRateStatus {
	switch {
	case bpm < heartRateLowBound:
		return internal.HeartRateLow
	case bpm > heartRateHighBound:
		return internal.HeartRateHigh
	default:
		return internal.HeartRateNormal
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
