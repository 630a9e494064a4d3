package risk

import (
	"fmt"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

// ruleInput carries everything an advisory rule may inspect.
type ruleInput struct {
	score   float64
	profile Profile
	weather *weather.Reading
	air     *airquality.Reading
}

// age returns the profile age for rule evaluation. Unlike vectorization,
// a missing age evaluates as 0 here so the elderly rule never fires on
// defaulted profiles.
func (in ruleInput) age() float64 {
	if in.profile.Age == nil {
		return 0
	}
	return *in.profile.Age
}

// advisoryRule pairs a predicate with an advisory builder. Rules evaluate
// in fixed order and are non-exclusive; each match appends exactly one
// advisory, and no rule removes or reorders another's output.
type advisoryRule struct {
	match func(ruleInput) bool
	build func(ruleInput) Advisory
}

var advisoryRules = []advisoryRule{
	{
		match: func(in ruleInput) bool { return in.weather.Temperature > 40 },
		build: func(ruleInput) Advisory {
			return Advisory{
				Category: CategoryHeat,
				Priority: PriorityHigh,
				Message:  "Extreme heat! Stay indoors during 11 AM - 4 PM",
				Action:   "Avoid outdoor activities",
			}
		},
	},
	{
		match: func(in ruleInput) bool {
			return in.weather.Temperature > 35 && in.weather.Temperature <= 40
		},
		build: func(ruleInput) Advisory {
			return Advisory{
				Category: CategoryHeat,
				Priority: PriorityMedium,
				Message:  "Very hot weather. Limit outdoor exposure",
				Action:   "Stay in shade, wear light clothing",
			}
		},
	},
	{
		match: func(in ruleInput) bool {
			return in.weather.Temperature > 32 || in.score > 3
		},
		build: func(in ruleInput) Advisory {
			dailyWater := 3.5 + in.score*0.3
			return Advisory{
				Category: CategoryHydration,
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("Drink at least %.1fL water today", dailyWater),
				Action:   fmt.Sprintf("Drink water every %d hours", int(12/dailyWater)),
			}
		},
	},
	{
		match: func(in ruleInput) bool { return in.air.AQI > 200 },
		build: func(ruleInput) Advisory {
			return Advisory{
				Category: CategoryAirQuality,
				Priority: PriorityHigh,
				Message:  "Poor air quality! Wear N95 mask outdoors",
				Action:   "Use air purifier indoors, close windows",
			}
		},
	},
	{
		match: func(in ruleInput) bool { return in.air.AQI > 100 && in.air.AQI <= 200 },
		build: func(ruleInput) Advisory {
			return Advisory{
				Category: CategoryAirQuality,
				Priority: PriorityMedium,
				Message:  "Moderate pollution. Consider wearing mask",
				Action:   "Reduce outdoor exercise",
			}
		},
	},
	{
		match: func(in ruleInput) bool { return in.weather.UVIndex > 7 },
		build: func(ruleInput) Advisory {
			return Advisory{
				Category: CategoryUVProtection,
				Priority: PriorityMedium,
				Message:  "High UV levels. Protect your skin",
				Action:   "Use sunscreen SPF 30+, wear sunglasses",
			}
		},
	},
	{
		match: func(in ruleInput) bool { return in.profile.HasHealthConditions() },
		build: func(ruleInput) Advisory {
			return Advisory{
				Category: CategoryHealth,
				Priority: PriorityHigh,
				Message:  "Extra caution due to health conditions",
				Action:   "Monitor symptoms closely, stay cool",
			}
		},
	},
	{
		match: func(in ruleInput) bool { return in.age() > 60 },
		build: func(ruleInput) Advisory {
			return Advisory{
				Category: CategoryHealth,
				Priority: PriorityHigh,
				Message:  "Take extra care in extreme conditions",
				Action:   "Stay indoors, keep emergency contacts ready",
			}
		},
	},
	{
		match: func(in ruleInput) bool { return in.score > 7 },
		build: func(ruleInput) Advisory {
			return Advisory{
				Category: CategoryGeneral,
				Priority: PriorityCritical,
				Message:  "VERY HIGH RISK! Minimize all outdoor activities",
				Action:   "Stay indoors, seek medical help if feeling unwell",
			}
		},
	},
}

// Recommend evaluates the advisory rule table in fixed order and returns
// the matched advisories. Rule evaluation never fails; no matches yield an
// empty list.
func Recommend(score float64, profile Profile, w *weather.Reading, aq *airquality.Reading) []Advisory {
	in := ruleInput{score: score, profile: profile, weather: w, air: aq}

	advisories := make([]Advisory, 0, len(advisoryRules))
	for _, rule := range advisoryRules {
		if rule.match(in) {
			advisories = append(advisories, rule.build(in))
		}
	}
	return advisories
}
