package models

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Suitability string

const (
	SuitabilityExcellent Suitability = "excellent"
	SuitabilityGood      Suitability = "good"
	SuitabilityFair      Suitability = "fair"
	SuitabilityPoor      Suitability = "poor"
)

type ClothingRecommendation struct {
	Category string   `json:"category" example:"Cool Weather"`
	Items    []string `json:"items"`
	Reason   string   `json:"reason" example:"Cool temperatures (12.3°C average)"`
}

type ActivityRecommendation struct {
	Activity    string      `json:"activity" example:"hiking"`
	Suitability Suitability `json:"suitability" example:"good"`
	Reason      string      `json:"reason" example:"temperature slightly outside ideal range"`
}

type SafetyTip struct {
	Priority Priority `json:"priority" example:"medium"`
	Message  string   `json:"message"`
}

type OrganizationalAdvice struct {
	Category       string   `json:"category" example:"Operations"`
	Recommendation string   `json:"recommendation"`
	Priority       Priority `json:"priority" example:"medium"`
}

type PersonalizedRecommendations struct {
	SafetyTips           []SafetyTip              `json:"safetyTips"`
	Clothing             []ClothingRecommendation `json:"clothing,omitempty"`
	Activities           []ActivityRecommendation `json:"activities,omitempty"`
	OrganizationalAdvice []OrganizationalAdvice   `json:"organizationalAdvice,omitempty"`
}

type UserType string

const (
	UserIndividual   UserType = "individual"
	UserOrganization UserType = "organization"
)

type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// Preferences drive the personalized parts of the recommendations.
type Preferences struct {
	UserType        UserType        `json:"user_type" validate:"omitempty,oneof=individual organization" example:"individual"`
	Activities      []string        `json:"preferred_activities" example:"hiking,cycling"`
	Sensitivities   []string        `json:"weather_sensitivities" validate:"dive,oneof=heat cold rain wind" example:"heat"`
	TemperatureUnit TemperatureUnit `json:"temperature_unit" validate:"omitempty,oneof=celsius fahrenheit" example:"celsius"`
}
