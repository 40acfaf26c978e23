package internal

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// DemoUsername is the identity every unauthenticated request resolves to.
// Per-user records for anonymous visitors all land under this key.
const DemoUsername = "demo"

type Feeling string

const (
	FeelingGood   Feeling = "good"
	FeelingTired  Feeling = "tired"
	FeelingUnwell Feeling = "unwell"
)

// VitalsSnapshot is the latest self-reported check-in for a user.
type VitalsSnapshot struct {
	HeartRate   int       `json:"heart_rate"`
	Mood        int       `json:"mood"`         // 1–5 scale
	SleepHours  float64   `json:"sleep_hours"`  // 0–24
	StressLevel int       `json:"stress_level"` // 1–5 scale
	Feeling     Feeling   `json:"feeling,omitempty"`
	Symptoms    []string  `json:"symptoms,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type HeartRateStatus string

const (
	HeartRateLow    HeartRateStatus = "low"
	HeartRateNormal HeartRateStatus = "normal"
	HeartRateHigh   HeartRateStatus = "high"
)

type AdviceSeverity string

const (
	SeverityInfo    AdviceSeverity = "info"
	SeverityWarning AdviceSeverity = "warning"
	SeverityAlert   AdviceSeverity = "alert"
)

type AdviceItem struct {
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Severity AdviceSeverity `json:"severity"`
}

// Assessment is derived from a VitalsSnapshot. It is recomputed on every
// check-in and never stored on its own.
type Assessment struct {
	Score           int             `json:"score"` // clamped to [0,100]
	HeartRateStatus HeartRateStatus `json:"heart_rate_status"`
	Advice          []AdviceItem    `json:"advice"`
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// FoodLogEntry macros are per-serving values multiplied by Quantity at
// creation time.
type FoodLogEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fats      float64   `json:"fats"`
	Quantity  float64   `json:"quantity"`
	MealType  MealType  `json:"meal_type"`
	Timestamp time.Time `json:"timestamp"`
}

// Streaks counts consecutive days of activity per habit. Counters roll back
// to zero when loaded on a later local day than LastUpdated.
type Streaks struct {
	HealthInputs int       `json:"health_inputs"`
	Workouts     int       `json:"workouts"`
	Meditation   int       `json:"meditation"`
	Nutrition    int       `json:"nutrition"`
	LastUpdated  time.Time `json:"last_updated"`
}

// ActiveItem is a wellness challenge or program the user has joined.
type ActiveItem struct {
	ID       int       `json:"id"`
	Progress int       `json:"progress"`
	JoinedAt time.Time `json:"joined_at"`
}

// QuickLogEntry is one tap-logged activity from the wellness hub.
type QuickLogEntry struct {
	ID        string    `json:"id"`
	Activity  string    `json:"activity"`
	Timestamp time.Time `json:"timestamp"`
}

type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Points      int        `json:"points"`
	Earned      bool       `json:"earned"`
	EarnedDate  *time.Time `json:"earned_date,omitempty"`
}
