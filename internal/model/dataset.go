package model

// SectionCounts returns the number of items in each list-backed section.
func (d *Dataset) SectionCounts() map[string]int {
	if d == nil {
		return map[string]int{}
	}
	return map[string]int{
		"overview_kpis":      len(d.Overview.KPIs),
		"ridership":          len(d.Overview.Ridership),
		"fleet":              len(d.Overview.Fleet),
		"system_health":      len(d.Overview.Services),
		"overview_alerts":    len(d.Overview.Incidents),
		"rl_recommendations": len(d.Recommendations),
		"demand_forecast":    len(d.DemandForecast.Points),
		"emotion_alerts":     len(d.EmotionSafety.Alerts),
		"drivers":            len(d.DriverBehavior.Drivers),
		"maintenance":        len(d.Maintenance.Items),
		"fraud_cases":        len(d.Fraud.Cases),
		"co2_savings":        len(d.Sustainability.CO2Savings),
		"passenger_routes":   len(d.Passenger.Routes),
		"trip_stops":         len(d.Passenger.Trip.Stops),
		"driver_stops":       len(d.Driver.NextStops),
	}
}
