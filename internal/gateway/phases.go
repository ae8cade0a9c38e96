package gateway

// --- Presentation phases ---
//
// The questionnaire is shown in three phases. Phase checks are purely
// presence-based: any value, including "No", completes its question.
// These checks drive presentation only; scope calculation tolerates
// partial answers at any time.

// Phase is a 1-based presentation phase number.
type Phase int

const (
	PhaseClassification Phase = 1 // what are we assessing?
	PhaseRiskCategories Phase = 2 // major risk categories
	PhaseContext        Phase = 3 // context and scope
)

// PhaseCount is the number of presentation phases.
const PhaseCount = 3

// Phases lists all phases in order.
var Phases = []Phase{PhaseClassification, PhaseRiskCategories, PhaseContext}

var phaseQuestions = map[Phase][]QuestionID{
	PhaseClassification: {QuestionAssetType},
	PhaseRiskCategories: {QuestionRegulated, QuestionAI, QuestionPatientSafety},
	PhaseContext:        {QuestionConnectivity, QuestionBusinessImpact, QuestionDataEntry, QuestionDataProcessing},
}

var phaseTitles = map[Phase]string{
	PhaseClassification: "What Are We Assessing?",
	PhaseRiskCategories: "Major Risk Categories",
	PhaseContext:        "Context & Scope",
}

// PhaseQuestions returns the questions belonging to phase, or nil for an
// unknown phase. The returned slice is a copy.
func PhaseQuestions(phase Phase) []QuestionID {
	qs, ok := phaseQuestions[phase]
	if !ok {
		return nil
	}
	out := make([]QuestionID, len(qs))
	copy(out, qs)
	return out
}

// PhaseTitle returns the display title for phase.
func PhaseTitle(phase Phase) string {
	return phaseTitles[phase]
}

// PhaseOf returns the phase a question belongs to, or 0 if unknown.
func PhaseOf(id QuestionID) Phase {
	for _, p := range Phases {
		for _, q := range phaseQuestions[p] {
			if q == id {
				return p
			}
		}
	}
	return 0
}

// IsPhaseComplete reports whether every question of phase has an answer.
// Unknown phases are never complete.
func IsPhaseComplete(answers Answers, phase Phase) bool {
	qs, ok := phaseQuestions[phase]
	if !ok {
		return false
	}
	for _, q := range qs {
		if !answers.Has(q) {
			return false
		}
	}
	return true
}

// IsPhaseUnlocked reports whether phase may be presented. Each phase
// unlocks once every earlier phase is complete.
func IsPhaseUnlocked(answers Answers, phase Phase) bool {
	if _, ok := phaseQuestions[phase]; !ok {
		return false
	}
	for p := PhaseClassification; p < phase; p++ {
		if !IsPhaseComplete(answers, p) {
			return false
		}
	}
	return true
}

// IsGatewayComplete reports whether all gateway questions are answered.
func IsGatewayComplete(answers Answers) bool {
	for _, id := range QuestionOrder {
		if !answers.Has(id) {
			return false
		}
	}
	return true
}

// Progress summarizes how far through the phases a questionnaire is.
type Progress struct {
	PhasesComplete int `json:"phases_complete"`
	CurrentPhase   int `json:"current_phase"`
	Percent        int `json:"percent"`
}

// ProgressOf counts completed phases independently of each other, so a
// later phase can count as complete while an earlier one is not.
func ProgressOf(answers Answers) Progress {
	complete := 0
	for _, p := range Phases {
		if IsPhaseComplete(answers, p) {
			complete++
		}
	}

	current := complete + 1
	if complete >= PhaseCount {
		current = PhaseCount
	}

	return Progress{
		PhasesComplete: complete,
		CurrentPhase:   current,
		Percent:        complete * 100 / PhaseCount,
	}
}
