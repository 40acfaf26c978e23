package engine

import (
	"fmt"
	"strings"
)

// ChatContext carries the numeric values the responders template into their
// replies. It is derived from the user's stored vitals and food log; a nil
// context falls back to shorter canned answers.
type ChatContext struct {
	HealthScore int
	RecentMeals int
	SleepHours  float64
	StressLevel int
	Mood        int
	HeartRate   int
}

// chatRule is one entry of the priority-ordered responder table. The first
// rule whose keyword matches (case-insensitive substring) wins.
type chatRule struct {
	keywords []string
	respond  func(ctx *ChatContext) string
	basic    string
}

var chatRules = []chatRule{
	{
		keywords: []string{"sleep", "tired", "rest"},
		respond: func(ctx *ChatContext) string {
			if ctx.SleepHours < 7 {
				return fmt.Sprintf("Based on your logged %.1f hours of sleep, you're below the recommended 7-9 hours. This could be impacting your health score of %d. Try setting a consistent bedtime routine and avoiding screens 1 hour before sleep. Your elevated heart rate of %d BPM might also be related to insufficient rest.",
					ctx.SleepHours, ctx.HealthScore, ctx.HeartRate)
			}
			return fmt.Sprintf("Great job on getting %.1f hours of sleep! This is contributing positively to your health score of %d. To maintain this, keep your sleep schedule consistent even on weekends.",
				ctx.SleepHours, ctx.HealthScore)
		},
		basic: "For optimal recovery, try maintaining a consistent bedtime and avoiding screens 1 hour before sleep. Aim for 7-9 hours nightly.",
	},
	{
		keywords: []string{"exercise", "workout", "activity"},
		respond: func(ctx *ChatContext) string {
			if ctx.HealthScore < 70 {
				return fmt.Sprintf("Your current health score of %d suggests increasing physical activity could help. Start with 20-30 minutes of moderate exercise daily. Given your stress level of %d/5, try activities like yoga or walking which can reduce both stress and improve fitness.",
					ctx.HealthScore, ctx.StressLevel)
			}
			return fmt.Sprintf("Your health score of %d shows you're doing well! To maintain this, aim for 150 minutes of moderate exercise weekly. Mix cardio with strength training for optimal results.",
				ctx.HealthScore)
		},
		basic: "Regular physical activity is key to health. Start with 20-30 minutes of moderate exercise daily and gradually increase intensity.",
	},
	{
		keywords: []string{"food", "nutrition", "diet", "eat"},
		respond: func(ctx *ChatContext) string {
			if ctx.RecentMeals == 0 {
				return fmt.Sprintf("I notice you haven't logged any meals today. Consistent nutrition tracking helps optimize your health score (currently %d). Start by logging your next meal - I can help analyze the nutritional content!",
					ctx.HealthScore)
			}
			return fmt.Sprintf("You've logged %d meals recently - great job tracking! Based on your health score of %d, focus on balanced meals with lean protein, complex carbs, and healthy fats. Your current stress level of %d/5 might benefit from foods rich in omega-3s and magnesium.",
				ctx.RecentMeals, ctx.HealthScore, ctx.StressLevel)
		},
		basic: "Focus on balanced meals with lean protein, complex carbohydrates, and healthy fats. Stay hydrated and eat regular meals.",
	},
	{
		keywords: []string{"stress", "anxiety", "worried"},
		respond: func(ctx *ChatContext) string {
			if ctx.StressLevel >= 4 {
				return fmt.Sprintf("Your stress level of %d/5 is quite high and may be affecting your health score of %d. Try the 4-7-8 breathing technique: inhale for 4, hold for 7, exhale for 8. Your heart rate of %d BPM suggests your body is responding to stress. Practice this 3 times daily.",
					ctx.StressLevel, ctx.HealthScore, ctx.HeartRate)
			}
			return fmt.Sprintf("Your stress level of %d/5 is manageable! To keep it low, maintain your current sleep schedule of %.1f hours and continue regular exercise. Meditation apps can help maintain this balance.",
				ctx.StressLevel, ctx.SleepHours)
		},
		basic: "Try the 4-7-8 breathing technique: inhale for 4, hold for 7, exhale for 8. Practice mindfulness and regular exercise to manage stress.",
	},
	{
		keywords: []string{"mood", "feeling", "emotion"},
		respond: func(ctx *ChatContext) string {
			if ctx.Mood <= 2 {
				return fmt.Sprintf("I see your mood has been low (%d/5). This can impact your overall health score of %d. Regular exercise, adequate sleep (you're getting %.1f hours), and social connections help. Consider tracking what activities boost your mood most.",
					ctx.Mood, ctx.HealthScore, ctx.SleepHours)
			}
			return fmt.Sprintf("Your mood of %d/5 is positive! This contributes to your health score of %d. Keep doing what's working - whether it's your %.1f hours of sleep or stress management techniques.",
				ctx.Mood, ctx.HealthScore, ctx.SleepHours)
		},
		basic: "Regular exercise, adequate sleep, and social connections are key mood boosters. Consider tracking what activities make you feel best.",
	},
	{
		keywords: []string{"heart", "bpm", "pulse"},
		respond: func(ctx *ChatContext) string {
			if ctx.HeartRate > heartRateHighBound {
				return fmt.Sprintf("Your heart rate of %d BPM is elevated. This correlates with your stress level of %d/5 and may be impacting your health score of %d. Focus on relaxation techniques and ensure you're getting adequate sleep (currently %.1f hours).",
					ctx.HeartRate, ctx.StressLevel, ctx.HealthScore, ctx.SleepHours)
			}
			return fmt.Sprintf("Your heart rate of %d BPM is within normal range and contributing positively to your health score of %d. Keep up your current lifestyle habits!",
				ctx.HeartRate, ctx.HealthScore)
		},
		basic: "Monitoring your resting heart rate over time is a great habit. A lower resting rate generally reflects better cardiovascular fitness.",
	},
}

const defaultReply = "I'm here to help with your health questions! I can provide insights about sleep, exercise, nutrition, stress management, and more based on your tracked data."

// Reply answers a free-text message. Matching is a deterministic lookup:
// the first topic whose keyword appears in the message wins, in table order.
func Reply(message string, ctx *ChatContext) string {
	lowered := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				if ctx != nil {
					return rule.respond(ctx)
				}
				return rule.basic
			}
		}
	}
	return defaultReply
}

// Welcome produces the personalized greeting shown when a chat session
// opens.
func Welcome(ctx *ChatContext) string {
	if ctx == nil {
		return "Hello! I'm your FitOS AI assistant. I can help you understand your health data and provide personalized recommendations. What would you like to know?"
	}

	var b strings.Builder
	b.WriteString("Hello! I've analyzed your recent health data. ")
	switch {
	case ctx.HealthScore >= 80:
		fmt.Fprintf(&b, "Your health score of %d is excellent! ", ctx.HealthScore)
	case ctx.HealthScore >= 60:
		fmt.Fprintf(&b, "Your health score of %d is good, but there's room for improvement. ", ctx.HealthScore)
	default:
		fmt.Fprintf(&b, "Your health score of %d suggests we should focus on some key areas. ", ctx.HealthScore)
	}
	if ctx.SleepHours < 7 {
		fmt.Fprintf(&b, "I notice you're getting %.1f hours of sleep - let's work on improving that. ", ctx.SleepHours)
	}
	if ctx.StressLevel >= 4 {
		b.WriteString("Your stress levels seem elevated. I can help with relaxation techniques. ")
	}
	if ctx.RecentMeals == 0 {
		b.WriteString("You haven't logged any meals today - nutrition tracking can really help optimize your health! ")
	}
	b.WriteString("What would you like to focus on today?")
	return b.String()
}
