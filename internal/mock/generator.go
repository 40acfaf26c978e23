// Package mock generates the synthetic dashboard payloads that stand in
// for a real backend. Responses are regenerated on every call; determinism
// for tests comes from seeding the injected random source.
package mock

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

type HealthCurrent struct {
	HealthScore     int     `json:"healthScore"`
	Trend           int     `json:"trend"`
	HeartRate       int     `json:"heartRate"`
	HeartRateStatus string  `json:"heartRateStatus"`
	SleepHours      float64 `json:"sleepHours"`
	SleepQuality    string  `json:"sleepQuality"`
	Steps           int     `json:"steps"`
	StepGoal        int     `json:"stepGoal"`
	LastUpdated     string  `json:"lastUpdated"`
}

type HistoryPoint struct {
	Date        string  `json:"date"`
	HealthScore int     `json:"healthScore"`
	HeartRate   int     `json:"heartRate"`
	SleepHours  float64 `json:"sleepHours"`
	Steps       int     `json:"steps"`
	Mood        int     `json:"mood"`
}

type Insight struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Priority   string `json:"priority"`
	Actionable bool   `json:"actionable"`
	Suggestion string `json:"suggestion"`
}

type PredictivePoint struct {
	Date       string `json:"date"`
	Actual     int    `json:"actual,omitempty"`
	Predicted  int    `json:"predicted,omitempty"`
	UpperBound int    `json:"upperBound,omitempty"`
	LowerBound int    `json:"lowerBound,omitempty"`
	Type       string `json:"type"`
}

type RiskFactor struct {
	Factor string `json:"factor"`
	Risk   int    `json:"risk"`
}

type RiskAssessment struct {
	OverallRisk     int          `json:"overallRisk"`
	Factors         []RiskFactor `json:"factors"`
	Recommendations []string     `json:"recommendations"`
}

type UserProfile struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Avatar      string         `json:"avatar"`
	Preferences map[string]any `json:"preferences"`
	Goals       map[string]any `json:"goals"`
	Streaks     map[string]int `json:"streaks"`
	Badges      []ProfileBadge `json:"badges"`
	TotalPoints int            `json:"totalPoints"`
	Level       int            `json:"level"`
}

type ProfileBadge struct {
	ID         string `json:"id"`
	Earned     bool   `json:"earned"`
	EarnedDate string `json:"earnedDate,omitempty"`
}

type Appointment struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Address   string `json:"address"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type Challenge struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	Participants int    `json:"participants"`
	Difficulty   string `json:"difficulty"`
	Reward       string `json:"reward"`
	Progress     int    `json:"progress"`
	Category     string `json:"category"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

type Meal struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Ingredients []string `json:"ingredients"`
}

type MealPlan struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Calories int    `json:"calories"`
	Meals    []Meal `json:"meals"`
}

// Service produces synthetic payloads from a single random source. A zero
// seed uses the clock; a fixed seed makes every response deterministic.
type Service struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
	gen atomic.Int64
}

func NewService(seed int64) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Generation returns a monotonically increasing counter stamped on health
// payloads so a polling client can discard responses superseded by a newer
// request.
func (s *Service) Generation() int64 {
	return s.gen.Add(1)
}

// Interval picks a random duration in [min, max) for simulated latency.
func (s *Service) Interval(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + time.Duration(s.rnd.Int63n(int64(max-min)))
}

func (s *Service) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

func (s *Service) float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Current synthesizes the "right now" health card, with a subtle
// sinusoidal variation on top of the random noise.
func (s *Service) Current() HealthCurrent {
	now := s.now()
	variation := math.Sin(float64(now.Minute())/10) * 5
	return HealthCurrent{
		HealthScore:     int(82 + variation + s.float()*6),
		Trend:           int((s.float() - 0.5) * 10),
		HeartRate:       int(68 + variation + s.float()*8),
		HeartRateStatus: "normal",
		SleepHours:      7.2 + (s.float()-0.5)*1.5,
		SleepQuality:    "good",
		Steps:           int(7800 + variation*200 + s.float()*1000),
		StepGoal:        10000,
		LastUpdated:     now.UTC().Format(time.RFC3339),
	}
}

// History synthesizes 30 daily records ending today.
func (s *Service) History() []HistoryPoint {
	today := s.now()
	points := make([]HistoryPoint, 0, 30)
	for i := 29; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		fi := float64(i)
		points = append(points, HistoryPoint{
			Date:        date.Format("2006-01-02"),
			HealthScore: int(75 + s.float()*20 + math.Sin(fi*0.1)*10),
			HeartRate:   int(65 + s.float()*15 + math.Sin(fi*0.2)*5),
			SleepHours:  6.5 + s.float()*2.5 + math.Sin(fi*0.15)*0.5,
			Steps:       int(6000 + s.float()*5000 + math.Sin(fi*0.3)*2000),
			Mood:        int(60 + s.float()*30 + math.Sin(fi*0.25)*15),
		})
	}
	return points
}

// Insights shuffles the canned catalog and returns 2–3 of its items.
func (s *Service) Insights() []Insight {
	shuffled := make([]Insight, len(insightCatalog))
	copy(shuffled, insightCatalog)
	s.mu.Lock()
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()
	return shuffled[:s.intn(2)+2]
}

// Predictive returns 7 historical points followed by 7 predicted points
// with ±8 confidence bounds.
func (s *Service) Predictive() []PredictivePoint {
	today := s.now()
	points := make([]PredictivePoint, 0, 14)
	for i := 6; i >= 0; i-- {
		points = append(points, PredictivePoint{
			Date:   today.AddDate(0, 0, -i).Format("Jan 2"),
			Actual: s.intn(15) + 75 + int(math.Sin(float64(i)*0.3)*5),
			Type:   "historical",
		})
	}
	for i := 1; i <= 7; i++ {
		predicted := s.intn(10) + 80 + int(math.Sin(float64(i)*0.2)*3)
		points = append(points, PredictivePoint{
			Date:       today.AddDate(0, 0, i).Format("Jan 2"),
			Predicted:  predicted,
			UpperBound: predicted + 8,
			LowerBound: predicted - 8,
			Type:       "predicted",
		})
	}
	return points
}

func (s *Service) Risk() RiskAssessment {
	factors := []RiskFactor{
		{Factor: "Cardiovascular Health", Risk: s.intn(30) + 15},
		{Factor: "Sleep Patterns", Risk: s.intn(40) + 30},
		{Factor: "Physical Activity", Risk: s.intn(25) + 10},
		{Factor: "Stress Levels", Risk: s.intn(50) + 40},
		{Factor: "Nutrition", Risk: s.intn(20) + 10},
	}
	total := 0
	for _, f := range factors {
		total += f.Risk
	}
	return RiskAssessment{
		OverallRisk:     total / len(factors),
		Factors:         factors,
		Recommendations: riskRecommendations,
	}
}

func (s *Service) Profile() UserProfile {
	return UserProfile{
		ID:     "user_123",
		Name:   "John Doe",
		Email:  "john.doe@example.com",
		Avatar: "/placeholder.svg?height=40&width=40",
		Preferences: map[string]any{
			"theme":         "dark",
			"notifications": true,
			"units":         "metric",
		},
		Goals: map[string]any{
			"dailySteps":  10000,
			"sleepHours":  8,
			"workoutDays": 5,
			"waterIntake": 8,
		},
		Streaks: map[string]int{
			"dailyCheckin":  s.intn(20) + 5,
			"exerciseLog":   s.intn(15) + 3,
			"sleepTracking": s.intn(25) + 10,
		},
		Badges:      profileBadges,
		TotalPoints: s.intn(2000) + 1500,
		Level:       s.intn(5) + 3,
	}
}

func (s *Service) Appointments() []Appointment {
	return appointmentList
}

// Challenges returns the catalog with randomized participant counts and
// per-user progress.
func (s *Service) Challenges() []Challenge {
	out := make([]Challenge, len(challengeCatalog))
	copy(out, challengeCatalog)
	for i := range out {
		r := challengeRanges[i]
		out[i].Participants = s.intn(r.participantSpread) + r.participantBase
		out[i].Progress = s.intn(r.durationDays)
	}
	return out
}

func (s *Service) MealPlans() []MealPlan {
	return mealPlanCatalog
}
