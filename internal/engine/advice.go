package engine

import "github.com/Krushna4142/FitOS-dashboard/internal"

// adviceRule pairs a condition with the item it contributes. Order is part
// of the contract: heart-rate advice always precedes mood advice, which
// precedes feeling and symptom advice.
type adviceRule struct {
	applies func(s internal.VitalsSnapshot) bool
	item    internal.AdviceItem
}

var adviceRules = []adviceRule{
	{
		applies: func(s internal.VitalsSnapshot) bool { return ClassifyHeartRate(s.HeartRate) == internal.HeartRateHigh },
		item: internal.AdviceItem{
			Title:    "Heart Rate Alert",
			Message:  "Your heart rate is elevated. Try 10 minutes of deep breathing exercises or a short walk to help lower it.",
			Severity: internal.SeverityAlert,
		},
	},
	{
		applies: func(s internal.VitalsSnapshot) bool { return ClassifyHeartRate(s.HeartRate) == internal.HeartRateLow },
		item: internal.AdviceItem{
			Title:    "Low Heart Rate",
			Message:  "Your heart rate is below normal. Consider light physical activity to get your circulation going.",
			Severity: internal.SeverityInfo,
		},
	},
	{
		applies: func(s internal.VitalsSnapshot) bool { return s.Mood <= 2 },
		item: internal.AdviceItem{
			Title:    "Mood Support",
			Message:  "Your mood seems low today. Take a short walk, listen to music, or connect with a friend to lift your spirits.",
			Severity: internal.SeverityWarning,
		},
	},
	{
		applies: func(s internal.VitalsSnapshot) bool { return s.Feeling == internal.FeelingTired },
		item: internal.AdviceItem{
			Title:    "Energy Boost",
			Message:  "Feeling tired? Ensure you're getting 7-9 hours of sleep and consider a 20-minute power nap if needed.",
			Severity: internal.SeverityWarning,
		},
	},
	{
		applies: func(s internal.VitalsSnapshot) bool { return s.Feeling == internal.FeelingUnwell },
		item: internal.AdviceItem{
			Title:    "Wellness Check",
			Message:  "Not feeling well? Stay hydrated, rest, and consider consulting a healthcare provider if symptoms persist.",
			Severity: internal.SeverityAlert,
		},
	},
	{
		applies: func(s internal.VitalsSnapshot) bool { return len(s.Symptoms) > 0 },
		item: internal.AdviceItem{
			Title:    "Symptom Tracking",
			Message:  "Keep monitoring your symptoms and note any patterns. Consider discussing them with your healthcare provider.",
			Severity: internal.SeverityWarning,
		},
	},
}

var positiveAdvice = internal.AdviceItem{
	Title:    "Great Health Status!",
	Message:  "Your vitals look good! Keep maintaining your healthy lifestyle with regular exercise and balanced nutrition.",
	Severity: internal.SeverityInfo,
}

func adviseFor(s internal.VitalsSnapshot) []internal.AdviceItem {
	var advice []internal.AdviceItem
	for _, rule := range adviceRules {
		if rule.applies(s) {
			advice = append(advice, rule.item)
		}
	}
	if len(advice) == 0 {
		advice = append(advice, positiveAdvice)
	}
	return advice
}
