package seriesgen

import (
	"math"
	"time"

	"github.com/kilianp07/fleethealth/core/model"
)

// sohHistoryDays covers six months of daily samples, endpoints included.
const sohHistoryDays = 180

// SohHistory generates a daily state-of-health series per vehicle covering
// the last six months (181 points). The series interpolates linearly from a
// slightly healthier past value down to the vehicle's current SoH, with
// small periodic thermal-stress and cycling perturbations on top.
func (g *Generator) SohHistory(vehicles []model.Vehicle, now time.Time) map[string][]model.SohPoint {
	out := make(map[string][]model.SohPoint, len(vehicles))
	for _, v := range vehicles {
		current := v.SoH
		start := math.Min(100, current+5+g.rng.Float64()*5)

		points := make([]model.SohPoint, 0, sohHistoryDays+1)
		for day := sohHistoryDays; day >= 0; day-- {
			ts := now.AddDate(0, 0, -day)
			progress := float64(sohHistoryDays-day) / sohHistoryDays
			base := start - progress*(start-current)

			// Fortnightly thermal stress swing and weekly cycling ripple.
			thermal := math.Sin(float64(day)/14*2*math.Pi) * 0.15
			cycling := math.Sin(float64(day)/7*2*math.Pi) * 0.1

			value := clamp(base+thermal+cycling, 0, 100)
			points = append(points, model.SohPoint{Timestamp: ts, Value: round1(value)})
		}
		out[v.ID] = points
	}
	return out
}

// SocHistory generates an hourly state-of-charge series per vehicle covering
// the last 24 hours (25 points). Values follow a repeating 8-hour
// charge/high/discharge duty pattern plus uniform noise, clamped to [5,100].
func (g *Generator) SocHistory(vehicleIDs []string, now time.Time) map[string][]model.SocPoint {
	out := make(map[string][]model.SocPoint, len(vehicleIDs))
	for _, id := range vehicleIDs {
		points := make([]model.SocPoint, 0, 25)
		for hour := 24; hour >= 0; hour-- {
			ts := now.Add(-time.Duration(hour) * time.Hour)

			var soc float64
			phase := hour % 8
			switch {
			case phase < 3: // charging
				soc = 40 + float64(3-phase)/3*55
			case phase < 6: // holding high
				soc = 90 - float64(phase-3)/3*10
			default: // discharging
				soc = 80 - float64(phase-6)/2*40
			}
			soc = clamp(soc+g.noise(5), 5, 100)
			points = append(points, model.SocPoint{Timestamp: ts, Value: math.Round(soc)})
		}
		out[id] = points
	}
	return out
}

// CycleHistory generates a weekly accumulated-cycle series per vehicle over
// the last six months (27 points). Weekly increments are random but weighted
// towards older weeks, and the running total never exceeds the vehicle's
// current cycle count.
func (g *Generator) CycleHistory(vehicles []model.Vehicle, now time.Time) map[string][]model.CyclePoint {
	const weeks = 26
	out := make(map[string][]model.CyclePoint, len(vehicles))
	for _, v := range vehicles {
		total := float64(v.CycleCount)
		points := make([]model.CyclePoint, 0, weeks+1)
		running := 0.0
		for week := weeks; week >= 0; week-- {
			ts := now.AddDate(0, 0, -7*week)
			// Older weeks contribute larger increments.
			weight := 0.5 + float64(week)/weeks
			running = math.Min(total, running+g.rng.Float64()*(total/weeks)*weight)
			points = append(points, model.CyclePoint{Timestamp: ts, Cycles: int(math.Round(running))})
		}
		out[v.ID] = points
	}
	return out
}
