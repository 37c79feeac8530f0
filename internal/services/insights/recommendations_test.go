package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-insights/internal/models"
	"weather-insights/internal/services/insights"
)

func categories(recs []models.ClothingRecommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Category)
	}
	return out
}

func TestClothing_TemperatureBands(t *testing.T) {
	tests := []struct {
		temp     float64
		category string
	}{
		{temp: -3, category: "Cold Weather"},
		{temp: 4.9, category: "Cold Weather"},
		{temp: 5, category: "Cool Weather"},
		{temp: 14.9, category: "Cool Weather"},
		{temp: 15, category: "Moderate Weather"},
		{temp: 24.9, category: "Moderate Weather"},
		{temp: 25, category: "Warm Weather"},
		{temp: 30, category: "Hot Weather"},
	}

	for _, tt := range tests {
		stats := normalStats()
		stats.AvgTemperature = tt.temp

		recs := insights.Clothing(stats, nil)
		require.Len(t, recs, 1)
		assert.Equal(t, tt.category, recs[0].Category, "temp %v", tt.temp)
	}
}

func TestClothing_Extras(t *testing.T) {
	stats := normalStats()
	stats.AvgTemperature = 12.3
	stats.AvgWindspeed = 10.5
	stats.AvgRainfall = 1.5
	stats.MaxTemperature = 31
	stats.MinTemperature = 9

	recs := insights.Clothing(stats, []string{"heat", "cold"})

	assert.Equal(t, []string{"Cool Weather", "Windy Conditions", "Rainy Weather", "Heat Sensitivity", "Cold Sensitivity"}, categories(recs))
	assert.Equal(t, "Cool temperatures (12.3°C average)", recs[0].Reason)
	assert.Equal(t, "Strong winds (10.5 m/s average)", recs[1].Reason)
	assert.Equal(t, "Rainy conditions (1.5mm average daily rainfall)", recs[2].Reason)

	withoutSensitivities := insights.Clothing(stats, nil)
	assert.Equal(t, []string{"Cool Weather", "Windy Conditions", "Rainy Weather"}, categories(withoutSensitivities))
}

func TestActivities(t *testing.T) {
	stats := normalStats()
	stats.AvgTemperature = 22
	stats.MaxRainfall = 0
	stats.MaxWindspeed = 5

	recs := insights.Activities(stats, []string{"Hiking", "running", "chess"})
	require.Len(t, recs, 3)

	assert.Equal(t, models.ActivityRecommendation{Activity: "Hiking", Suitability: models.SuitabilityExcellent, Reason: "ideal weather conditions"}, recs[0])
	assert.Equal(t, models.ActivityRecommendation{Activity: "running", Suitability: models.SuitabilityGood, Reason: "temperature slightly outside ideal range"}, recs[1])
	assert.Equal(t, models.SuitabilityExcellent, recs[2].Suitability)
}

func TestActivities_WorstWins(t *testing.T) {
	tests := []struct {
		name       string
		activity   string
		temp       float64
		rain, wind float64
		want       models.Suitability
		reason     string
	}{
		{
			name: "good is not lowered to fair", activity: "running", temp: 22, rain: 4, wind: 5,
			want:   models.SuitabilityGood,
			reason: "temperature slightly outside ideal range, moderate rainfall expected",
		},
		{
			name: "heavy rain overrides good", activity: "running", temp: 22, rain: 7, wind: 5,
			want:   models.SuitabilityPoor,
			reason: "temperature slightly outside ideal range, heavy rainfall (7mm)",
		},
		{
			name: "moderate rain from excellent", activity: "cycling", temp: 22, rain: 3, wind: 5,
			want:   models.SuitabilityFair,
			reason: "moderate rainfall expected",
		},
		{
			name: "poor stays poor", activity: "hiking", temp: 5, rain: 6, wind: 16,
			want:   models.SuitabilityPoor,
			reason: "temperature not ideal (5°C), moderate rainfall expected, windy conditions",
		},
		{
			name: "very windy", activity: "fishing", temp: 20, rain: 0, wind: 18.5,
			want:   models.SuitabilityPoor,
			reason: "very windy conditions (18.5 m/s)",
		},
		{
			name: "unknown activity uses default profile", activity: "picnic", temp: 20, rain: 0, wind: 13,
			want:   models.SuitabilityFair,
			reason: "windy conditions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := normalStats()
			stats.AvgTemperature = tt.temp
			stats.MaxRainfall = tt.rain
			stats.MaxWindspeed = tt.wind

			recs := insights.Activities(stats, []string{tt.activity})
			require.Len(t, recs, 1)
			assert.Equal(t, tt.want, recs[0].Suitability)
			assert.Equal(t, tt.reason, recs[0].Reason)
		})
	}
}

func TestSafetyTips(t *testing.T) {
	t.Run("normal conditions", func(t *testing.T) {
		tips := insights.SafetyTips(normalStats(), nil)
		require.Len(t, tips, 1)
		assert.Equal(t, models.PriorityLow, tips[0].Priority)
		assert.Equal(t, "Weather conditions are within normal ranges. Enjoy your day!", tips[0].Message)
	})

	t.Run("extreme conditions", func(t *testing.T) {
		stats := normalStats()
		stats.MaxTemperature = 36
		stats.MinTemperature = -1
		stats.MaxRainfall = 21
		stats.MaxWindspeed = 21

		tips := insights.SafetyTips(stats, nil)
		require.Len(t, tips, 4)
		for _, tip := range tips {
			assert.Equal(t, models.PriorityHigh, tip.Priority)
		}
		assert.Contains(t, tips[0].Message, "Extreme heat warning (36°C)")
		assert.Contains(t, tips[1].Message, "Freezing conditions (-1°C)")
		assert.Contains(t, tips[2].Message, "Heavy rainfall expected (21mm)")
		assert.Contains(t, tips[3].Message, "Dangerous wind conditions (21 m/s)")
	})

	t.Run("medium tier", func(t *testing.T) {
		stats := normalStats()
		stats.MaxTemperature = 31
		stats.MinTemperature = 4
		stats.MaxRainfall = 11
		stats.MaxWindspeed = 16

		tips := insights.SafetyTips(stats, nil)
		require.Len(t, tips, 4)
		for _, tip := range tips {
			assert.Equal(t, models.PriorityMedium, tip.Priority)
		}
	})

	t.Run("sensitivities", func(t *testing.T) {
		stats := normalStats()
		stats.AvgTemperature = 26
		stats.MaxRainfall = 6
		stats.MaxWindspeed = 11

		tips := insights.SafetyTips(stats, []string{"heat", "cold", "rain", "wind"})
		require.Len(t, tips, 3)
		assert.Equal(t, models.PriorityMedium, tips[0].Priority)
		assert.Contains(t, tips[0].Message, "heat sensitivity")
		assert.Equal(t, models.PriorityLow, tips[1].Priority)
		assert.Contains(t, tips[1].Message, "rain sensitivity")
		assert.Contains(t, tips[2].Message, "wind sensitivity")
	})
}

func TestOrganizationalAdvice(t *testing.T) {
	advice := insights.OrganizationalAdvice(normalStats())
	require.Len(t, advice, 1)
	assert.Equal(t, "Communication", advice[0].Category)
	assert.Equal(t, models.PriorityLow, advice[0].Priority)

	stats := normalStats()
	stats.MaxTemperature = 36
	stats.MaxRainfall = 15
	stats.MaxWindspeed = 25

	advice = insights.OrganizationalAdvice(stats)
	got := make([]string, 0, len(advice))
	for _, a := range advice {
		got = append(got, a.Category+":"+string(a.Priority))
	}
	assert.Equal(t, []string{
		"Employee Safety:high",
		"Operations:medium",
		"Site Safety:high",
		"Productivity:medium",
		"Event Planning:medium",
		"Communication:low",
	}, got)
}

func TestPersonalized(t *testing.T) {
	stats := normalStats()

	individual := insights.Personalized(stats, models.Preferences{
		UserType:   models.UserIndividual,
		Activities: []string{"hiking"},
	})
	assert.NotEmpty(t, individual.SafetyTips)
	assert.NotEmpty(t, individual.Clothing)
	assert.Len(t, individual.Activities, 1)
	assert.Empty(t, individual.OrganizationalAdvice)

	org := insights.Personalized(stats, models.Preferences{UserType: models.UserOrganization})
	assert.NotEmpty(t, org.OrganizationalAdvice)
	assert.Empty(t, org.Activities)
}
