package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// HealthStatus buckets a risk score.
type HealthStatus string

const (
	HealthNormal   HealthStatus = "Normal"
	HealthMonitor  HealthStatus = "Monitor"
	HealthAtRisk   HealthStatus = "AtRisk"
	HealthCritical HealthStatus = "Critical"
)

// Vitals are the five readings a health evaluation is computed from.
type Vitals struct {
	OxygenSaturation int     `json:"oxygen_saturation"`
	HeartRate        int     `json:"heart_rate"`
	SystolicBP       int     `json:"systolic_bp"`
	DiastolicBP      int     `json:"diastolic_bp"`
	BodyTemp         float64 `json:"body_temp"`
}

// HealthEvaluation is the scored result for one astronaut.
type HealthEvaluation struct {
	Vitals
	RiskScore    int          `json:"risk_score"`
	HealthStatus HealthStatus `json:"health_status"`
	RiskFactors  []string     `json:"risk_factors"`
}

// EvaluateHealth scores each vital against fixed bands and derives the
// status from the total. It is deterministic in its input.
func EvaluateHealth(v Vitals) HealthEvaluation {
	eval := HealthEvaluation{Vitals: v, RiskFactors: []string{}}
	add := func(points int, factor string) {
		eval.RiskScore += points
		eval.RiskFactors = append(eval.RiskFactors, factor)
	}

	switch {
	case v.OxygenSaturation < 90:
		add(3, fmt.Sprintf("Critical oxygen saturation (%d%%)", v.OxygenSaturation))
	case v.OxygenSaturation < 95:
		add(1, fmt.Sprintf("Low oxygen saturation (%d%%)", v.OxygenSaturation))
	}

	switch {
	case v.HeartRate < 50 || v.HeartRate > 120:
		add(3, fmt.Sprintf("Abnormal heart rate (%d bpm)", v.HeartRate))
	case v.HeartRate < 60 || v.HeartRate > 100:
		add(1, fmt.Sprintf("Elevated or low heart rate (%d bpm)", v.HeartRate))
	}

	switch {
	case v.SystolicBP < 90 || v.SystolicBP > 140:
		add(2, fmt.Sprintf("Abnormal blood pressure (%d/%d)", v.SystolicBP, v.DiastolicBP))
	case v.SystolicBP > 130:
		add(1, fmt.Sprintf("Elevated blood pressure (%d/%d)", v.SystolicBP, v.DiastolicBP))
	}

	switch {
	case v.BodyTemp < 36.0 || v.BodyTemp > 38.0:
		add(2, fmt.Sprintf("Abnormal body temperature (%.1f°C)", v.BodyTemp))
	case v.BodyTemp < 36.5 || v.BodyTemp > 37.5:
		add(1, fmt.Sprintf("Slightly abnormal body temperature (%.1f°C)", v.BodyTemp))
	}

	eval.HealthStatus = StatusForScore(eval.RiskScore)
	return eval
}

// StatusForScore maps a risk score to its status band.
func StatusForScore(score int) HealthStatus {
	switch {
	case score >= 5:
		return HealthCritical
	case score >= 3:
		return HealthAtRisk
	case score >= 1:
		return HealthMonitor
	default:
		return HealthNormal
	}
}

// SimulateVitals draws plausible in-flight readings from rng.
func SimulateVitals(rng *rand.Rand) Vitals {
	return Vitals{
		OxygenSaturation: 88 + rng.IntN(13), // 88-100
		HeartRate:        55 + rng.IntN(51), // 55-105
		SystolicBP:       110 + rng.IntN(31),
		DiastolicBP:      70 + rng.IntN(21),
		BodyTemp:         math.Round((36.1+rng.Float64()*1.1)*10) / 10,
	}
}
