package assessment

import (
	"fmt"
	"math"

	"github.com/HendryAvila/itra-gateway/internal/gateway"
)

// Minutes-per-question band used for the time estimate.
const (
	MinMinutesPerQuestion = 0.5
	MaxMinutesPerQuestion = 1.0
)

// TimeRange is an estimated duration band in whole minutes.
type TimeRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// String renders the band as "min-max".
func (r TimeRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Plan aggregates one calculation.
type Plan struct {
	Paths            []Path    `json:"paths" yaml:"paths"`
	TotalQuestions   int       `json:"total_questions" yaml:"total_questions"`
	EnabledTracks    int       `json:"enabled_tracks" yaml:"enabled_tracks"`
	EstimatedMinutes TimeRange `json:"estimated_minutes" yaml:"estimated_minutes"`
}

// EstimateMinutes floors each bound independently. Consumers depend on
// the exact values, so do not switch to a shared rounding.
func EstimateMinutes(totalQuestions int) TimeRange {
	return TimeRange{
		Min: int(math.Floor(float64(totalQuestions) * MinMinutesPerQuestion)),
		Max: int(math.Floor(float64(totalQuestions) * MaxMinutesPerQuestion)),
	}
}

// Summarize aggregates paths. Only enabled paths count toward the total.
func Summarize(paths []Path) Plan {
	plan := Plan{Paths: make([]Path, len(paths))}
	copy(plan.Paths, paths)

	for _, p := range paths {
		if !p.Enabled {
			continue
		}
		plan.TotalQuestions += p.QuestionCount
		plan.EnabledTracks++
	}
	plan.EstimatedMinutes = EstimateMinutes(plan.TotalQuestions)
	return plan
}

// Evaluate calculates and summarizes in one step.
func Evaluate(answers gateway.Answers) Plan {
	return Summarize(Calculate(answers))
}

// Breakdown returns the enabled paths that contribute questions, in
// canonical order.
func (p Plan) Breakdown() []Path {
	var out []Path
	for _, path := range p.Paths {
		if path.Enabled && path.QuestionCount > 0 {
			out = append(out, path)
		}
	}
	return out
}
