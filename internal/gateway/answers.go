// Package gateway holds the answers to the eight ITRA gateway questions.
//
// The package owns the closed set of question identifiers and their
// canonical answer tokens, the mutable per-session AnswerSet, and the
// presence-based phase checks used by the presentation layer. Nothing in
// here decides assessment scope; that is the job of the assessment package,
// which only ever sees an Answers snapshot.
package gateway

import (
	"sort"
	"sync"
)

// --- Question identifiers ---

// QuestionID identifies one gateway question.
type QuestionID string

const (
	QuestionAssetType      QuestionID = "asset_type"
	QuestionRegulated      QuestionID = "B.2"  // GxP regulated data or processes
	QuestionAI             QuestionID = "T.6"  // AI / machine learning usage
	QuestionPatientSafety  QuestionID = "B.3"  // patient health or safety impact
	QuestionConnectivity   QuestionID = "S.1"  // network connectivity
	QuestionBusinessImpact QuestionID = "B.13" // impact of total unavailability
	QuestionDataEntry      QuestionID = "D.1"  // manual entry of regulated data
	QuestionDataProcessing QuestionID = "D.2"  // automatic processing of regulated data
)

// QuestionOrder is the canonical order of the gateway questions.
var QuestionOrder = []QuestionID{
	QuestionAssetType,
	QuestionRegulated,
	QuestionAI,
	QuestionPatientSafety,
	QuestionConnectivity,
	QuestionBusinessImpact,
	QuestionDataEntry,
	QuestionDataProcessing,
}

// --- Canonical answer tokens ---

const (
	AssetComputerisedEquipment = "computerised_equipment"
	AssetITInfrastructure      = "it_infrastructure"
	AssetITSystem              = "it_system"
	AssetHealthSoftware        = "health_software"
)

const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

const (
	ConnectivityNone     = "Not Connected"
	ConnectivityInternal = "1"
	ConnectivityMultiple = "2"
)

const (
	ImpactLow    = "Low"
	ImpactMedium = "Medium"
	ImpactHigh   = "High"
)

// --- Answers snapshot ---

// Answers is a point-in-time view of an answer set, keyed by question.
// A missing key means the question has not been answered yet.
type Answers map[QuestionID]string

// Value returns the answer for id and whether it has been given.
func (a Answers) Value(id QuestionID) (string, bool) {
	v, ok := a[id]
	return v, ok
}

// Has reports whether id has been answered.
func (a Answers) Has(id QuestionID) bool {
	_, ok := a[id]
	return ok
}

// Is reports whether id has been answered with exactly value.
// An unanswered question never matches.
func (a Answers) Is(id QuestionID, value string) bool {
	v, ok := a[id]
	return ok && v == value
}

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Answered returns the answered question ids, known questions first in
// canonical order, followed by any unknown keys sorted lexically.
func (a Answers) Answered() []QuestionID {
	ids := make([]QuestionID, 0, len(a))
	known := make(map[QuestionID]bool, len(QuestionOrder))
	for _, id := range QuestionOrder {
		known[id] = true
		if a.Has(id) {
			ids = append(ids, id)
		}
	}

	var extra []QuestionID
	for id := range a {
		if !known[id] {
			extra = append(extra, id)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(ids, extra...)
}

// --- Mutable answer set ---

// AnswerSet accumulates answers for one questionnaire session. Answers may
// be revised but never removed. All methods are safe for concurrent use;
// readers observe either the state before or after a Set, never a torn one.
type AnswerSet struct {
	mu     sync.RWMutex
	values Answers
}

// NewAnswerSet creates an empty answer set.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{values: make(Answers)}
}

// Set records or overwrites the answer for a question.
// It reports whether the stored value changed.
func (s *AnswerSet) Set(id QuestionID, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.values[id]
	s.values[id] = value
	return !ok || prev != value
}

// Get returns the current answer for id.
func (s *AnswerSet) Get(id QuestionID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Value(id)
}

// Len returns how many questions have been answered.
func (s *AnswerSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Snapshot returns a consistent copy of the current answers.
func (s *AnswerSet) Snapshot() Answers {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Clone()
}
