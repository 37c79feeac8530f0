package insights

import (
	"fmt"
	"slices"
	"strings"

	"weather-insights/internal/models"
)

const (
	SensitivityHeat = "heat"
	SensitivityCold = "cold"
	SensitivityRain = "rain"
	SensitivityWind = "wind"
)

// Clothing picks one temperature band from the average temperature and adds
// wind, rain and sensitivity extras on top.
func Clothing(stats models.WeatherStats, sensitivities []string) []models.ClothingRecommendation {
	temp := stats.AvgTemperature
	t := formatValue(temp)

	var recs []models.ClothingRecommendation
	switch {
	case temp < 5:
		recs = append(recs, models.ClothingRecommendation{
			Category: "Cold Weather",
			Items:    []string{"Heavy winter coat", "Thermal underwear", "Gloves", "Warm hat", "Insulated boots", "Scarf"},
			Reason:   fmt.Sprintf("Very cold conditions (%s°C average)", t),
		})
	case temp < 15:
		recs = append(recs, models.ClothingRecommendation{
			Category: "Cool Weather",
			Items:    []string{"Jacket or sweater", "Long pants", "Closed-toe shoes", "Light scarf"},
			Reason:   fmt.Sprintf("Cool temperatures (%s°C average)", t),
		})
	case temp < 25:
		recs = append(recs, models.ClothingRecommendation{
			Category: "Moderate Weather",
			Items:    []string{"Light jacket", "Comfortable clothing", "Sneakers or casual shoes"},
			Reason:   fmt.Sprintf("Moderate temperatures (%s°C average)", t),
		})
	case temp < 30:
		recs = append(recs, models.ClothingRecommendation{
			Category: "Warm Weather",
			Items:    []string{"Light breathable clothing", "Shorts or light pants", "Sandals", "Sunglasses", "Hat"},
			Reason:   fmt.Sprintf("Warm conditions (%s°C average)", t),
		})
	default:
		recs = append(recs, models.ClothingRecommendation{
			Category: "Hot Weather",
			Items:    []string{"Lightweight breathable fabrics", "Shorts", "Sandals", "Wide-brimmed hat", "Sunglasses", "Sunscreen"},
			Reason:   fmt.Sprintf("Hot conditions (%s°C average)", t),
		})
	}

	if stats.AvgWindspeed > 10 {
		recs = append(recs, models.ClothingRecommendation{
			Category: "Windy Conditions",
			Items:    []string{"Windbreaker", "Wind-resistant jacket", "Secure hat or no hat"},
			Reason:   fmt.Sprintf("Strong winds (%s m/s average)", formatValue(stats.AvgWindspeed)),
		})
	}

	if stats.AvgRainfall > 1 {
		recs = append(recs, models.ClothingRecommendation{
			Category: "Rainy Weather",
			Items:    []string{"Waterproof jacket", "Umbrella", "Water-resistant shoes", "Rain pants"},
			Reason:   fmt.Sprintf("Rainy conditions (%smm average daily rainfall)", formatValue(stats.AvgRainfall)),
		})
	}

	if slices.Contains(sensitivities, SensitivityHeat) && stats.MaxTemperature > 30 {
		recs = append(recs, models.ClothingRecommendation{
			Category: "Heat Sensitivity",
			Items:    []string{"Light-colored clothing", "Moisture-wicking fabrics", "Cooling towel", "Portable fan"},
			Reason:   "Based on your heat sensitivity",
		})
	}

	if slices.Contains(sensitivities, SensitivityCold) && stats.MinTemperature < 10 {
		recs = append(recs, models.ClothingRecommendation{
			Category: "Cold Sensitivity",
			Items:    []string{"Extra warm layers", "Hand warmers", "Thermal socks", "Insulated jacket"},
			Reason:   "Based on your cold sensitivity",
		})
	}

	return recs
}

type activityProfile struct {
	idealMin, idealMax float64
	riskRain, riskWind float64
}

var defaultActivity = activityProfile{idealMin: 15, idealMax: 25, riskRain: 5, riskWind: 12}

var activityProfiles = map[string]activityProfile{
	"hiking":           {idealMin: 15, idealMax: 25, riskRain: 5, riskWind: 15},
	"running":          {idealMin: 10, idealMax: 20, riskRain: 3, riskWind: 12},
	"cycling":          {idealMin: 15, idealMax: 28, riskRain: 2, riskWind: 10},
	"outdoor sports":   {idealMin: 18, idealMax: 28, riskRain: 5, riskWind: 12},
	"construction":     {idealMin: 10, idealMax: 30, riskRain: 10, riskWind: 15},
	"events":           {idealMin: 18, idealMax: 28, riskRain: 5, riskWind: 12},
	"gardening":        {idealMin: 15, idealMax: 28, riskRain: 15, riskWind: 20},
	"camping":          {idealMin: 15, idealMax: 25, riskRain: 5, riskWind: 15},
	"beach activities": {idealMin: 25, idealMax: 35, riskRain: 2, riskWind: 15},
	"fishing":          {idealMin: 15, idealMax: 28, riskRain: 8, riskWind: 12},
}

// Activities rates each activity against its ideal band and risk thresholds.
// Checks run temperature, rain, wind; a rating only ever gets worse.
func Activities(stats models.WeatherStats, activities []string) []models.ActivityRecommendation {
	temp, rain, wind := stats.AvgTemperature, stats.MaxRainfall, stats.MaxWindspeed

	recs := make([]models.ActivityRecommendation, 0, len(activities))
	for _, activity := range activities {
		p, ok := activityProfiles[strings.ToLower(activity)]
		if !ok {
			p = defaultActivity
		}

		suitability := models.SuitabilityExcellent
		var reasons []string

		switch {
		case temp < p.idealMin-5 || temp > p.idealMax+5:
			suitability = models.SuitabilityPoor
			reasons = append(reasons, fmt.Sprintf("temperature not ideal (%s°C)", formatValue(temp)))
		case temp < p.idealMin || temp > p.idealMax:
			suitability = models.SuitabilityGood
			reasons = append(reasons, "temperature slightly outside ideal range")
		}

		switch {
		case rain > p.riskRain*2:
			suitability = models.SuitabilityPoor
			reasons = append(reasons, fmt.Sprintf("heavy rainfall (%smm)", formatValue(rain)))
		case rain > p.riskRain:
			if suitability == models.SuitabilityExcellent {
				suitability = models.SuitabilityFair
			}
			reasons = append(reasons, "moderate rainfall expected")
		}

		switch {
		case wind > p.riskWind*1.5:
			suitability = models.SuitabilityPoor
			reasons = append(reasons, fmt.Sprintf("very windy conditions (%s m/s)", formatValue(wind)))
		case wind > p.riskWind:
			if suitability == models.SuitabilityExcellent {
				suitability = models.SuitabilityFair
			}
			reasons = append(reasons, "windy conditions")
		}

		if len(reasons) == 0 {
			reasons = append(reasons, "ideal weather conditions")
		}

		recs = append(recs, models.ActivityRecommendation{
			Activity:    activity,
			Suitability: suitability,
			Reason:      strings.Join(reasons, ", "),
		})
	}

	return recs
}

// SafetyTips runs the heat, cold, rain and wind checks, then the
// sensitivity-specific ones. It always returns at least one tip.
func SafetyTips(stats models.WeatherStats, sensitivities []string) []models.SafetyTip {
	maxT, minT := formatValue(stats.MaxTemperature), formatValue(stats.MinTemperature)
	rain, wind := formatValue(stats.MaxRainfall), formatValue(stats.MaxWindspeed)

	var tips []models.SafetyTip

	switch {
	case stats.MaxTemperature > 35:
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityHigh,
			Message:  fmt.Sprintf("Extreme heat warning (%s°C). Stay hydrated, avoid outdoor activities during peak hours (11am-4pm), seek air-conditioned spaces, and watch for signs of heat exhaustion.", maxT),
		})
	case stats.MaxTemperature > 30:
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityMedium,
			Message:  fmt.Sprintf("High temperatures expected (%s°C). Drink plenty of water, wear sunscreen (SPF 30+), and take breaks in shaded areas.", maxT),
		})
	}

	switch {
	case stats.MinTemperature < 0:
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityHigh,
			Message:  fmt.Sprintf("Freezing conditions (%s°C). Risk of hypothermia and frostbite. Dress in layers, cover exposed skin, and limit time outdoors.", minT),
		})
	case stats.MinTemperature < 5:
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityMedium,
			Message:  fmt.Sprintf("Very cold temperatures (%s°C). Dress warmly in layers and protect extremities from cold exposure.", minT),
		})
	}

	switch {
	case stats.MaxRainfall > 20:
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityHigh,
			Message:  fmt.Sprintf("Heavy rainfall expected (%smm). Risk of flooding. Avoid low-lying areas, do not drive through flooded roads, and stay informed about weather alerts.", rain),
		})
	case stats.MaxRainfall > 10:
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityMedium,
			Message:  fmt.Sprintf("Moderate to heavy rain (%smm). Roads may be slippery. Drive carefully and carry waterproof gear.", rain),
		})
	}

	switch {
	case stats.MaxWindspeed > 20:
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityHigh,
			Message:  fmt.Sprintf("Dangerous wind conditions (%s m/s). Secure loose objects, avoid tall trees and structures, and postpone outdoor activities.", wind),
		})
	case stats.MaxWindspeed > 15:
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityMedium,
			Message:  fmt.Sprintf("Strong winds expected (%s m/s). Be cautious outdoors and secure loose items.", wind),
		})
	}

	if slices.Contains(sensitivities, SensitivityHeat) && stats.AvgTemperature > 25 {
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityMedium,
			Message:  "Based on your heat sensitivity: Limit outdoor exposure, stay in cool environments, and monitor for heat-related symptoms.",
		})
	}
	if slices.Contains(sensitivities, SensitivityCold) && stats.AvgTemperature < 15 {
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityMedium,
			Message:  "Based on your cold sensitivity: Wear extra layers, protect extremities, and limit exposure to cold air.",
		})
	}
	if slices.Contains(sensitivities, SensitivityRain) && stats.MaxRainfall > 5 {
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityLow,
			Message:  "Based on your rain sensitivity: Carry waterproof gear and plan indoor alternatives.",
		})
	}
	if slices.Contains(sensitivities, SensitivityWind) && stats.MaxWindspeed > 10 {
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityLow,
			Message:  "Based on your wind sensitivity: Avoid exposed areas and wear wind-resistant clothing.",
		})
	}

	if len(tips) == 0 {
		tips = append(tips, models.SafetyTip{
			Priority: models.PriorityLow,
			Message:  "Weather conditions are within normal ranges. Enjoy your day!",
		})
	}

	return tips
}

// OrganizationalAdvice lists workplace guidance. The Communication item is always last.
func OrganizationalAdvice(stats models.WeatherStats) []models.OrganizationalAdvice {
	maxT, minT := stats.MaxTemperature, stats.MinTemperature
	rain, wind := stats.MaxRainfall, stats.MaxWindspeed

	var advice []models.OrganizationalAdvice

	switch {
	case maxT > 35 || minT < 0:
		advice = append(advice, models.OrganizationalAdvice{
			Category:       "Employee Safety",
			Recommendation: "Implement extreme weather protocols. Provide additional breaks in climate-controlled areas. Consider rescheduling outdoor work to cooler/warmer parts of the day or postponing non-essential tasks.",
			Priority:       models.PriorityHigh,
		})
	case maxT > 30 || minT < 5:
		advice = append(advice, models.OrganizationalAdvice{
			Category:       "Employee Safety",
			Recommendation: "Monitor employees working outdoors. Ensure access to water/warm beverages and appropriate rest areas. Provide weather-appropriate safety equipment.",
			Priority:       models.PriorityMedium,
		})
	}

	switch {
	case rain > 20:
		advice = append(advice, models.OrganizationalAdvice{
			Category:       "Operations",
			Recommendation: "Reschedule outdoor operations. Ensure proper drainage around facilities. Review emergency flooding procedures and have contingency plans ready.",
			Priority:       models.PriorityHigh,
		})
	case rain > 10:
		advice = append(advice, models.OrganizationalAdvice{
			Category:       "Operations",
			Recommendation: "Prepare for wet conditions. Ensure workers have waterproof gear. Schedule weather-sensitive tasks for drier periods. Monitor weather updates regularly.",
			Priority:       models.PriorityMedium,
		})
	}

	switch {
	case wind > 20:
		advice = append(advice, models.OrganizationalAdvice{
			Category:       "Site Safety",
			Recommendation: "Suspend operations involving heights, cranes, or scaffolding. Secure all loose equipment and materials. Conduct site safety inspections before and after wind events.",
			Priority:       models.PriorityHigh,
		})
	case wind > 15:
		advice = append(advice, models.OrganizationalAdvice{
			Category:       "Site Safety",
			Recommendation: "Exercise caution with elevated work. Secure loose items. Brief employees on wind safety protocols.",
			Priority:       models.PriorityMedium,
		})
	}

	if maxT > 25 {
		advice = append(advice, models.OrganizationalAdvice{
			Category:       "Productivity",
			Recommendation: "Schedule demanding physical tasks during cooler morning hours. Increase break frequency. Ensure adequate hydration stations are available.",
			Priority:       models.PriorityMedium,
		})
	}

	if rain > 5 || wind > 10 {
		advice = append(advice, models.OrganizationalAdvice{
			Category:       "Event Planning",
			Recommendation: "Prepare contingency plans for outdoor events. Consider tent reinforcements or indoor backup venues. Communicate weather plans to attendees in advance.",
			Priority:       models.PriorityMedium,
		})
	}

	return append(advice, models.OrganizationalAdvice{
		Category:       "Communication",
		Recommendation: "Keep employees informed of weather conditions and any operational changes. Establish clear communication channels for weather-related updates.",
		Priority:       models.PriorityLow,
	})
}

// Personalized composes the recommendation sets for one user's preferences.
// Organizational advice is only produced for organization accounts.
func Personalized(stats models.WeatherStats, prefs models.Preferences) models.PersonalizedRecommendations {
	recs := models.PersonalizedRecommendations{
		SafetyTips: SafetyTips(stats, prefs.Sensitivities),
		Clothing:   Clothing(stats, prefs.Sensitivities),
		Activities: Activities(stats, prefs.Activities),
	}
	if prefs.UserType == models.UserOrganization {
		recs.OrganizationalAdvice = OrganizationalAdvice(stats)
	}
	return recs
}
