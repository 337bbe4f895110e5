package pest

import (
	"fmt"
	"strings"
	"time"

	"github.com/rushi2212/agrimitra/internal/market"
)

// Level grades the assessed risk.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

const (
	// atRiskFloor is the severity a threat must exceed to appear in the
	// findings at all. The stage bonus alone never crosses it.
	atRiskFloor = 20

	stageBonus = 10

	// weatherWeight splits SeverityBase across humidity, temperature and
	// rainfall matches.
	humidityWeight = 0.4
	tempWeight     = 0.4
	rainfallWeight = 0.2

	unknownCropScore = 15
)

// LevelFor converts a numeric risk score to its level band.
func LevelFor(score float64) Level {
	switch {
	case score < 30:
		return LevelLow
	case score < 60:
		return LevelMedium
	case score < 85:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// Conditions are the weather factors feeding the assessment.
type Conditions struct {
	TemperatureC    float64 `json:"temperature_c"`
	HumidityPercent float64 `json:"humidity_percent"`
	RainfallMM      float64 `json:"rainfall_mm"`
}

// Finding is one threat flagged as active for today's conditions.
type Finding struct {
	Name        string  `json:"name"`
	Kind        Kind    `json:"kind"`
	Severity    Level   `json:"severity"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
	Reason      string  `json:"reason"`
}

// Assessment is the complete early-warning picture for one crop day.
type Assessment struct {
	Crop       string     `json:"crop_name"`
	Stage      string     `json:"crop_stage"`
	DayOfCycle int        `json:"day_of_cycle"`
	Level      Level      `json:"risk_level"`
	Score      float64    `json:"risk_score"`
	Pests      []Finding  `json:"pest_risks"`
	Diseases   []Finding  `json:"disease_risks"`
	Actions    []string   `json:"preventive_actions"`
	Conditions Conditions `json:"weather_factors"`
	UpdatedAt  time.Time  `json:"last_updated"`
}

// Assess scores every known threat for the crop against today's stage and
// weather. The overall score is the mean severity of active threats; a
// crop absent from the catalog degrades to a low-risk general assessment.
func Assess(crop, stage string, dayOfCycle int, c Conditions) Assessment {
	out := Assessment{
		Crop:       crop,
		Stage:      stage,
		DayOfCycle: dayOfCycle,
		Level:      LevelLow,
		Conditions: c,
		UpdatedAt:  time.Now().UTC(),
	}

	threats, ok := threatDB[market.NormalizeCrop(crop)]
	if !ok {
		out.Score = unknownCropScore
		out.Actions = append([]string(nil), preventiveActions[LevelLow]...)
		return out
	}

	var total float64
	var count int
	for _, t := range threats {
		score, reason, atRisk := scoreThreat(t, stage, c)
		if !atRisk {
			continue
		}
		finding := Finding{
			Name:        t.Name,
			Kind:        t.Kind,
			Severity:    LevelFor(score),
			Score:       score,
			Description: t.Description,
			Reason:      reason,
		}
		if t.Kind == KindDisease {
			out.Diseases = append(out.Diseases, finding)
		} else {
			out.Pests = append(out.Pests, finding)
		}
		total += score
		count++
	}

	if count > 0 {
		out.Score = total / float64(count)
	}
	out.Level = LevelFor(out.Score)

	out.Actions = append([]string(nil), preventiveActions[out.Level]...)
	if names := findingNames(out.Pests); names != "" {
		out.Actions = append(out.Actions, "Target pests: "+names)
	}
	if names := findingNames(out.Diseases); names != "" {
		out.Actions = append(out.Actions, "Target diseases: "+names)
	}
	return out
}

// scoreThreat accrues severity from each matched weather factor plus a
// vulnerable-stage bonus. Threats outside their vulnerable stages score
// zero regardless of weather.
func scoreThreat(t Threat, stage string, c Conditions) (score float64, reason string, atRisk bool) {
	if !stageVulnerable(t.Stages, stage) {
		return 0, "Not vulnerable at this stage", false
	}

	var reasons []string
	if c.HumidityPercent >= t.HumidityMin && c.HumidityPercent <= t.HumidityMax {
		score += t.SeverityBase * humidityWeight
		reasons = append(reasons, fmt.Sprintf("humidity %g%% in risk range", c.HumidityPercent))
	}
	if c.TemperatureC >= t.TempMin && c.TemperatureC <= t.TempMax {
		score += t.SeverityBase * tempWeight
		reasons = append(reasons, fmt.Sprintf("temperature %g°C favorable", c.TemperatureC))
	}
	if c.RainfallMM >= t.RainfallTrigger {
		score += t.SeverityBase * rainfallWeight
		reasons = append(reasons, fmt.Sprintf("rainfall %gmm triggers risk", c.RainfallMM))
	}
	score += stageBonus

	reason = "Conditions not favorable"
	if len(reasons) > 0 {
		reason = strings.Join(reasons, "; ")
	}
	return score, reason, score > atRiskFloor
}

func stageVulnerable(stages []string, stage string) bool {
	for _, s := range stages {
		if strings.EqualFold(s, stage) {
			return true
		}
	}
	return false
}

func findingNames(findings []Finding) string {
	names := make([]string, 0, len(findings))
	for _, f := range findings {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}
