// Package assessment derives the assessment plan from gateway answers.
//
// The derivation is a fixed rule table: every track kind has a predicate
// over the answers, a question count when enabled, and a count when
// disabled. Calculate always emits one Path per track, in table order,
// so disabled tracks stay visible to consumers. Adding a track means
// adding a row, not a branch.
package assessment

import (
	"github.com/HendryAvila/itra-gateway/internal/gateway"
)

// TrackKind enumerates the assessment tracks. The numeric order is the
// canonical output order.
type TrackKind int

const (
	TrackGxP TrackKind = iota
	TrackAlternativeCompliance
	TrackAI
	TrackPatientSafety
	TrackNetwork
	TrackTiming
	TrackDataIntegrity
	TrackBase
)

// TrackCount is the number of tracks every calculation emits.
const TrackCount = 8

var trackKeys = [TrackCount]string{
	TrackGxP:                   "gxp",
	TrackAlternativeCompliance: "alternative_compliance",
	TrackAI:                    "ai",
	TrackPatientSafety:         "patient_safety",
	TrackNetwork:               "network",
	TrackTiming:                "timing",
	TrackDataIntegrity:         "data_integrity",
	TrackBase:                  "base",
}

// String returns a stable machine key for the track.
func (k TrackKind) String() string {
	if k < 0 || int(k) >= TrackCount {
		return "unknown"
	}
	return trackKeys[k]
}

// Path is one track's outcome for a given set of answers.
type Path struct {
	Name          string `json:"name" yaml:"name"`
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	QuestionCount int    `json:"question_count" yaml:"question_count"`
	Description   string `json:"description" yaml:"description"`
}

// Base track sizes per asset type.
const (
	BaseQuestionsComputerisedEquipment = 28
	BaseQuestionsITInfrastructure      = 22
	BaseQuestionsITSystem              = 30
	BaseQuestionsHealthSoftware        = 28
	// DefaultBaseQuestions applies when the asset type is unanswered or
	// not one of the known types.
	DefaultBaseQuestions = 25
)

// NetworkBaselineQuestions is what the network track contributes when it
// is not enabled, including when connectivity is unanswered.
const NetworkBaselineQuestions = 2

// rule is one row of the track table.
type rule struct {
	kind        TrackKind
	name        string
	description string
	enabled     func(gateway.Answers) bool
	count       func(gateway.Answers) int // when enabled
	disabled    int                       // when not enabled
}

func fixed(n int) func(gateway.Answers) int {
	return func(gateway.Answers) int { return n }
}

func always(gateway.Answers) bool { return true }

func answeredYes(id gateway.QuestionID) func(gateway.Answers) bool {
	return func(a gateway.Answers) bool { return a.Is(id, gateway.AnswerYes) }
}

func answeredNo(id gateway.QuestionID) func(gateway.Answers) bool {
	return func(a gateway.Answers) bool { return a.Is(id, gateway.AnswerNo) }
}

// connected is false for "Not Connected" and for an unanswered S.1.
func connected(a gateway.Answers) bool {
	v, ok := a.Value(gateway.QuestionConnectivity)
	return ok && v != gateway.ConnectivityNone
}

func timingCritical(a gateway.Answers) bool {
	return a.Is(gateway.QuestionBusinessImpact, gateway.ImpactMedium) ||
		a.Is(gateway.QuestionBusinessImpact, gateway.ImpactHigh)
}

func handlesRegulatedData(a gateway.Answers) bool {
	return a.Is(gateway.QuestionDataEntry, gateway.AnswerYes) ||
		a.Is(gateway.QuestionDataProcessing, gateway.AnswerYes)
}

// dataIntegrityQuestions adds two questions for manual entry and one for
// automatic processing of regulated data.
func dataIntegrityQuestions(a gateway.Answers) int {
	n := 0
	if a.Is(gateway.QuestionDataEntry, gateway.AnswerYes) {
		n += 2
	}
	if a.Is(gateway.QuestionDataProcessing, gateway.AnswerYes) {
		n++
	}
	return n
}

// BaseQuestions returns the base track size for an asset type.
func BaseQuestions(assetType string) int {
	switch assetType {
	case gateway.AssetComputerisedEquipment:
		return BaseQuestionsComputerisedEquipment
	case gateway.AssetITInfrastructure:
		return BaseQuestionsITInfrastructure
	case gateway.AssetITSystem:
		return BaseQuestionsITSystem
	case gateway.AssetHealthSoftware:
		return BaseQuestionsHealthSoftware
	default:
		return DefaultBaseQuestions
	}
}

func baseQuestions(a gateway.Answers) int {
	v, _ := a.Value(gateway.QuestionAssetType)
	return BaseQuestions(v)
}

// rules is the track table, in canonical order.
var rules = [TrackCount]rule{
	{
		kind:        TrackGxP,
		name:        "GxP Compliance Assessment",
		description: "Full pharmaceutical compliance assessment",
		enabled:     answeredYes(gateway.QuestionRegulated),
		count:       fixed(12),
	},
	{
		kind:        TrackAlternativeCompliance,
		name:        "Alternative Compliance (GDP/GLP/GCP)",
		description: "Non-GxP regulatory pathways",
		enabled:     answeredNo(gateway.QuestionRegulated),
		count:       fixed(3),
	},
	{
		kind:        TrackAI,
		name:        "AI Risk Assessment",
		description: "Artificial intelligence specific risks",
		enabled:     answeredYes(gateway.QuestionAI),
		count:       fixed(8),
	},
	{
		kind:        TrackPatientSafety,
		name:        "Patient Safety Assessment",
		description: "Patient health and safety impact",
		enabled:     answeredYes(gateway.QuestionPatientSafety),
		count:       fixed(2),
	},
	{
		kind:        TrackNetwork,
		name:        "Network Security Assessment",
		description: "Network connectivity and security risks",
		enabled:     connected,
		count:       fixed(4),
		disabled:    NetworkBaselineQuestions,
	},
	{
		kind:        TrackTiming,
		name:        "Detailed Timing Analysis",
		description: "Availability and recovery requirements",
		enabled:     timingCritical,
		count:       fixed(2),
	},
	{
		kind:        TrackDataIntegrity,
		name:        "Data Integrity Controls",
		description: "Data input and processing validation",
		enabled:     handlesRegulatedData,
		count:       dataIntegrityQuestions,
	},
	{
		kind:        TrackBase,
		name:        "Base Risk Assessment",
		description: "Core risk questions for all assets",
		enabled:     always,
		count:       baseQuestions,
	},
}

// Calculate evaluates every track against answers. It always returns
// TrackCount paths in canonical order and never mutates answers.
// Unanswered questions satisfy no equality condition.
func Calculate(answers gateway.Answers) []Path {
	paths := make([]Path, 0, TrackCount)
	for _, r := range rules {
		p := Path{Name: r.name, Description: r.description}
		if r.enabled(answers) {
			p.Enabled = true
			p.QuestionCount = r.count(answers)
		} else {
			p.QuestionCount = r.disabled
		}
		paths = append(paths, p)
	}
	return paths
}

// TrackName returns the display name of a track kind.
func TrackName(k TrackKind) string {
	if k < 0 || int(k) >= TrackCount {
		return ""
	}
	return rules[k].name
}
