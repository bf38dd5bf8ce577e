package model

// Trend is the direction of a KPI delta.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// Severity grades alerts and fraud risk.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// KPI is a single headline metric card.
type KPI struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Delta string `yaml:"delta" json:"delta"`
	Trend Trend  `yaml:"trend" json:"trend"`
}

// SeriesPoint is one labelled sample of a chart series.
type SeriesPoint struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

// ForecastPoint pairs observed and predicted demand for one slot.
type ForecastPoint struct {
	Label     string  `yaml:"label" json:"label"`
	Actual    float64 `yaml:"actual" json:"actual"`
	Predicted float64 `yaml:"predicted" json:"predicted"`
}

// Recommendation is a static "AI" suggestion.
type Recommendation struct {
	Title      string  `yaml:"title" json:"title"`
	Detail     string  `yaml:"detail" json:"detail"`
	Confidence float64 `yaml:"confidence" json:"confidence"` // 0..1
	Impact     string  `yaml:"impact" json:"impact"`
}

// Alert is an event raised against a vehicle or route.
type Alert struct {
	Vehicle  string   `yaml:"vehicle" json:"vehicle"`
	Route    string   `yaml:"route" json:"route"`
	Severity Severity `yaml:"severity" json:"severity"`
	Message  string   `yaml:"message" json:"message"`
}

// DriverScore summarizes one driver's behavior.
type DriverScore struct {
	Name         string `yaml:"name" json:"name"`
	Score        int    `yaml:"score" json:"score"` // 0..100
	HarshBraking int    `yaml:"harsh_braking" json:"harsh_braking"`
	Speeding     int    `yaml:"speeding" json:"speeding"`
	IdleMinutes  int    `yaml:"idle_minutes" json:"idle_minutes"`
}

// MaintenanceItem is a component health prediction.
type MaintenanceItem struct {
	Vehicle   string `yaml:"vehicle" json:"vehicle"`
	Component string `yaml:"component" json:"component"`
	Health    int    `yaml:"health" json:"health"` // percent
	DueInDays int    `yaml:"due_in_days" json:"due_in_days"`
}

// FraudCase is a flagged fare transaction pattern.
type FraudCase struct {
	ID     string   `yaml:"id" json:"id"`
	Kind   string   `yaml:"kind" json:"kind"`
	Route  string   `yaml:"route" json:"route"`
	Amount float64  `yaml:"amount" json:"amount"`
	Risk   int      `yaml:"risk" json:"risk"` // 0..100
	Level  Severity `yaml:"level" json:"level"`
}

// ServiceStatus is the reported state of a backend service.
type ServiceStatus string

const (
	ServiceOnline  ServiceStatus = "online"
	ServiceWarning ServiceStatus = "warning"
	ServiceError   ServiceStatus = "error"
	ServiceOffline ServiceStatus = "offline"
)

// FleetBus is one bus on the live fleet board.
type FleetBus struct {
	ID        string `yaml:"id" json:"id"`
	Route     string `yaml:"route" json:"route"`
	Crowd     string `yaml:"crowd" json:"crowd"`
	Occupancy int    `yaml:"occupancy" json:"occupancy"` // percent
	Alert     bool   `yaml:"alert" json:"alert"`
}

// SystemService is one monitored platform service.
type SystemService struct {
	Name    string        `yaml:"name" json:"name"`
	Status  ServiceStatus `yaml:"status" json:"status"`
	Uptime  string        `yaml:"uptime" json:"uptime"`
	Latency string        `yaml:"latency,omitempty" json:"latency,omitempty"`
}

// Incident is a priority item on the overview alert feed.
type Incident struct {
	Kind     string   `yaml:"kind" json:"kind"`
	Severity Severity `yaml:"severity" json:"severity"`
	Title    string   `yaml:"title" json:"title"`
	Detail   string   `yaml:"detail" json:"detail"`
	Time     string   `yaml:"time" json:"time"`
}

// Overview backs the operator overview page.
type Overview struct {
	KPIs      []KPI           `yaml:"kpis" json:"kpis"`
	Ridership []SeriesPoint   `yaml:"ridership" json:"ridership"`
	Fleet     []FleetBus      `yaml:"fleet" json:"fleet"`
	Services  []SystemService `yaml:"system_health" json:"system_health"`
	Incidents []Incident      `yaml:"alerts" json:"alerts"`
	Insight   string          `yaml:"insight" json:"insight"`
}

// HealthyServices counts services reporting online.
func (o Overview) HealthyServices() int {
	n := 0
	for _, s := range o.Services {
		if s.Status == ServiceOnline {
			n++
		}
	}
	return n
}

// DemandForecast backs the demand forecast page.
type DemandForecast struct {
	Horizon string          `yaml:"horizon" json:"horizon"`
	Points  []ForecastPoint `yaml:"points" json:"points"`
	Insight string          `yaml:"insight" json:"insight"`
}

// EmotionSafety backs the emotion and safety page.
type EmotionSafety struct {
	Sentiment []SeriesPoint `yaml:"sentiment" json:"sentiment"`
	Alerts    []Alert       `yaml:"alerts" json:"alerts"`
	Insight   string        `yaml:"insight" json:"insight"`
}

// DriverBehavior backs the driver behavior page.
type DriverBehavior struct {
	Drivers []DriverScore `yaml:"drivers" json:"drivers"`
	Insight string        `yaml:"insight" json:"insight"`
}

// Maintenance backs the predictive maintenance page.
type Maintenance struct {
	Items   []MaintenanceItem `yaml:"items" json:"items"`
	Insight string            `yaml:"insight" json:"insight"`
}

// Fraud backs the fraud detection page.
type Fraud struct {
	Cases   []FraudCase `yaml:"cases" json:"cases"`
	Insight string      `yaml:"insight" json:"insight"`
}

// Sustainability backs the sustainability page.
type Sustainability struct {
	KPIs       []KPI         `yaml:"kpis" json:"kpis"`
	CO2Savings []SeriesPoint `yaml:"co2_savings" json:"co2_savings"`
	Insight    string        `yaml:"insight" json:"insight"`
}

// RouteOption is a suggested journey on the passenger home screen.
type RouteOption struct {
	Route       string  `yaml:"route" json:"route"`
	Destination string  `yaml:"destination" json:"destination"`
	ETAMinutes  int     `yaml:"eta_minutes" json:"eta_minutes"`
	Crowd       string  `yaml:"crowd" json:"crowd"`
	Fare        float64 `yaml:"fare" json:"fare"`
}

// Stop is one stop of a tracked trip.
type Stop struct {
	Name    string `yaml:"name" json:"name"`
	Arrival string `yaml:"arrival" json:"arrival"`
}

// TrackedTrip is the live trip shown on the tracking screen.
type TrackedTrip struct {
	Route       string `yaml:"route" json:"route"`
	Vehicle     string `yaml:"vehicle" json:"vehicle"`
	Stops       []Stop `yaml:"stops" json:"stops"`
	CurrentStop int    `yaml:"current_stop" json:"current_stop"`
	ETAMinutes  int    `yaml:"eta_minutes" json:"eta_minutes"`
	Occupancy   int    `yaml:"occupancy" json:"occupancy"` // percent
}

// Passenger backs both passenger screens.
type Passenger struct {
	Greeting string        `yaml:"greeting" json:"greeting"`
	Routes   []RouteOption `yaml:"routes" json:"routes"`
	Trip     TrackedTrip   `yaml:"trip" json:"trip"`
	Insight  string        `yaml:"insight" json:"insight"`
}

// Driver backs the driver screen.
type Driver struct {
	Name      string   `yaml:"name" json:"name"`
	Shift     string   `yaml:"shift" json:"shift"`
	Route     string   `yaml:"route" json:"route"`
	NextStops []Stop   `yaml:"next_stops" json:"next_stops"`
	Score     int      `yaml:"score" json:"score"`
	Earnings  float64  `yaml:"earnings" json:"earnings"`
	Alerts    []string `yaml:"alerts" json:"alerts"`
	Insight   string   `yaml:"insight" json:"insight"`
}

// Dataset is the complete mock content of the dashboard.
type Dataset struct {
	Title           string           `yaml:"title" json:"title"`
	Overview        Overview         `yaml:"overview" json:"overview"`
	Recommendations []Recommendation `yaml:"rl_recommendations" json:"rl_recommendations"`
	DemandForecast  DemandForecast   `yaml:"demand_forecast" json:"demand_forecast"`
	EmotionSafety   EmotionSafety    `yaml:"emotion_safety" json:"emotion_safety"`
	DriverBehavior  DriverBehavior   `yaml:"driver_behavior" json:"driver_behavior"`
	Maintenance     Maintenance      `yaml:"maintenance" json:"maintenance"`
	Fraud           Fraud            `yaml:"fraud" json:"fraud"`
	Sustainability  Sustainability   `yaml:"sustainability" json:"sustainability"`
	Passenger       Passenger        `yaml:"passenger" json:"passenger"`
	Driver          Driver           `yaml:"driver" json:"driver"`
}
