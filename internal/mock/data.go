package mock

var insightCatalog = []Insight{
	{
		Type:       "sleep",
		Title:      "Sleep Pattern Analysis",
		Message:    "Your sleep quality has improved by 12% this week. Your consistent bedtime routine is working well.",
		Priority:   "positive",
		Actionable: true,
		Suggestion: "Continue your current bedtime routine and consider reducing screen time 30 minutes before sleep.",
	},
	{
		Type:       "activity",
		Title:      "Activity Trend",
		Message:    "You're averaging 8,200 steps daily. Just 1,800 more steps would help you reach your goal consistently.",
		Priority:   "neutral",
		Actionable: true,
		Suggestion: "Try taking a 15-minute walk after lunch to boost your daily step count.",
	},
	{
		Type:       "heart_rate",
		Title:      "Cardiovascular Health",
		Message:    "Your resting heart rate has decreased by 3 BPM over the past month - excellent cardiovascular improvement!",
		Priority:   "positive",
		Actionable: false,
		Suggestion: "Keep up your current exercise routine to maintain this positive trend.",
	},
	{
		Type:       "stress",
		Title:      "Stress Management",
		Message:    "Elevated stress indicators detected this week. Your heart rate variability suggests you need more recovery time.",
		Priority:   "warning",
		Actionable: true,
		Suggestion: "Try 10 minutes of deep breathing exercises or meditation before bed.",
	},
	{
		Type:       "nutrition",
		Title:      "Nutrition Balance",
		Message:    "Your meal logging shows consistent protein intake but could benefit from more vegetables.",
		Priority:   "neutral",
		Actionable: true,
		Suggestion: "Add a serving of leafy greens to your lunch and dinner for better nutrient balance.",
	},
}

var riskRecommendations = []string{
	"Establish a consistent sleep schedule",
	"Incorporate 30 minutes of daily exercise",
	"Practice stress-reduction techniques",
	"Maintain a balanced diet with regular meals",
}

var profileBadges = []ProfileBadge{
	{ID: "early-bird", Earned: true, EarnedDate: "2024-01-10"},
	{ID: "streak-master", Earned: true, EarnedDate: "2024-01-15"},
	{ID: "wellness-warrior", Earned: true, EarnedDate: "2024-01-20"},
	{ID: "step-champion", Earned: false},
	{ID: "consistency-king", Earned: false},
	{ID: "energy-booster", Earned: false},
}

var appointmentList = []Appointment{
	{
		ID:        1,
		Title:     "Annual Physical",
		Doctor:    "Dr. Sarah Johnson",
		Specialty: "General Practice",
		Date:      "2024-01-15",
		Time:      "10:30 AM",
		Location:  "Main Medical Center",
		Address:   "123 Health St, Medical District",
		Type:      "General Checkup",
		Status:    "confirmed",
		Notes:     "Bring previous lab results",
	},
	{
		ID:        2,
		Title:     "Dental Cleaning",
		Doctor:    "Dr. Mike Chen",
		Specialty: "Dentistry",
		Date:      "2024-01-22",
		Time:      "2:00 PM",
		Location:  "Smile Dental Clinic",
		Address:   "456 Dental Ave, Downtown",
		Type:      "Dental",
		Status:    "confirmed",
		Notes:     "Regular 6-month cleaning",
	},
	{
		ID:        3,
		Title:     "Eye Exam",
		Doctor:    "Dr. Lisa Park",
		Specialty: "Ophthalmology",
		Date:      "2024-02-05",
		Time:      "11:15 AM",
		Location:  "Vision Care Center",
		Address:   "789 Eye Care Blvd, Uptown",
		Type:      "Vision",
		Status:    "pending",
		Notes:     "Annual vision screening",
	},
	{
		ID:        4,
		Title:     "Cardiology Follow-up",
		Doctor:    "Dr. Robert Kim",
		Specialty: "Cardiology",
		Date:      "2024-02-12",
		Time:      "9:00 AM",
		Location:  "Heart Health Institute",
		Address:   "321 Cardiac Way, Medical Center",
		Type:      "Specialist",
		Status:    "confirmed",
		Notes:     "Review recent EKG results",
	},
}

var challengeCatalog = []Challenge{
	{
		ID:          1,
		Title:       "30-Day Step Challenge",
		Description: "Walk 10,000 steps daily for 30 days",
		Duration:    "30 days",
		Difficulty:  "Beginner",
		Reward:      "Step Master Badge + 500 points",
		Category:    "fitness",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
	},
	{
		ID:          2,
		Title:       "Mindful January",
		Description: "Complete 15 minutes of meditation daily",
		Duration:    "31 days",
		Difficulty:  "Intermediate",
		Reward:      "Zen Master Badge + 750 points",
		Category:    "mindfulness",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
	},
	{
		ID:          3,
		Title:       "Hydration Hero",
		Description: "Drink 8 glasses of water daily",
		Duration:    "21 days",
		Difficulty:  "Beginner",
		Reward:      "Hydration Hero Badge + 400 points",
		Category:    "nutrition",
		StartDate:   "2024-01-15",
		EndDate:     "2024-02-05",
	},
	{
		ID:          4,
		Title:       "Sleep Optimization",
		Description: "Get 7-9 hours of sleep for 14 consecutive nights",
		Duration:    "14 days",
		Difficulty:  "Advanced",
		Reward:      "Sleep Champion Badge + 600 points",
		Category:    "sleep",
		StartDate:   "2024-01-20",
		EndDate:     "2024-02-03",
	},
}

// challengeRanges drives the per-call randomization of the catalog above;
// indices match challengeCatalog.
var challengeRanges = []struct {
	participantBase   int
	participantSpread int
	durationDays      int
}{
	{participantBase: 1000, participantSpread: 500, durationDays: 30},
	{participantBase: 700, participantSpread: 300, durationDays: 31},
	{participantBase: 1500, participantSpread: 800, durationDays: 21},
	{participantBase: 500, participantSpread: 200, durationDays: 14},
}

var mealPlanCatalog = []MealPlan{
	{
		ID:       1,
		Name:     "Mediterranean Delight",
		Type:     "mediterranean",
		Calories: 1800,
		Meals: []Meal{
			{Type: "breakfast", Name: "Greek Yogurt with Berries", Calories: 320, Ingredients: []string{"Greek yogurt", "Mixed berries", "Honey", "Granola"}},
			{Type: "lunch", Name: "Quinoa Tabbouleh", Calories: 450, Ingredients: []string{"Quinoa", "Tomatoes", "Cucumber", "Parsley", "Lemon"}},
			{Type: "dinner", Name: "Grilled Salmon with Vegetables", Calories: 520, Ingredients: []string{"Salmon fillet", "Zucchini", "Bell peppers", "Olive oil"}},
			{Type: "snack", Name: "Hummus with Vegetables", Calories: 180, Ingredients: []string{"Hummus", "Carrots", "Celery", "Bell peppers"}},
		},
	},
	{
		ID:       2,
		Name:     "Plant-Based Power",
		Type:     "vegan",
		Calories: 1650,
		Meals: []Meal{
			{Type: "breakfast", Name: "Overnight Oats with Chia", Calories: 380, Ingredients: []string{"Oats", "Chia seeds", "Almond milk", "Banana", "Maple syrup"}},
			{Type: "lunch", Name: "Buddha Bowl", Calories: 420, Ingredients: []string{"Brown rice", "Chickpeas", "Avocado", "Kale", "Tahini"}},
			{Type: "dinner", Name: "Lentil Curry", Calories: 480, Ingredients: []string{"Red lentils", "Coconut milk", "Spinach", "Spices"}},
			{Type: "snack", Name: "Mixed Nuts and Fruit", Calories: 220, Ingredients: []string{"Almonds", "Walnuts", "Apple", "Dates"}},
		},
	},
}
