package gateway

import (
	"time"

	"github.com/google/uuid"
)

// Session is one user's in-progress questionnaire. It exclusively owns
// its AnswerSet; sessions share no state with each other.
type Session struct {
	ID        string
	StartedAt time.Time
	Answers   *AnswerSet
}

// NewSession starts a questionnaire, stamping its start time.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: timeNow(),
		Answers:   NewAnswerSet(),
	}
}
