package domain

import "time"

// FlowStep identifies which answer a user's conversation flow is waiting on
type FlowStep string

const (
	// StepAskName - waiting for the guest's full name
	StepAskName FlowStep = "ask_name"
	// StepAskGuests - waiting for the number of attendees
	StepAskGuests FlowStep = "ask_guests"
	// StepAskBlessing - waiting for a free-text well-wish
	StepAskBlessing FlowStep = "ask_blessing"
	// StepAskGiftSlip - waiting for a transfer-slip attachment
	StepAskGiftSlip FlowStep = "ask_gift_slip"
)

// TempFullName keys the partially collected full name in FlowSession.Temp
const TempFullName = "fullName"

// FlowSession tracks a user's progress through a multi-turn flow.
// A session exists only while the user is mid-flow; absence means idle.
type FlowSession struct {
	UserID    string
	Step      FlowStep
	Temp      map[string]string
	UpdatedAt time.Time
}

// NewFlowSession creates a session for a user entering a flow at the given
// step, with empty temp data
func NewFlowSession(userID string, step FlowStep) *FlowSession {
	return &FlowSession{
		UserID:    userID,
		Step:      step,
		Temp:      make(map[string]string),
		UpdatedAt: time.Now(),
	}
}

// SetTemp stores a partially collected answer
func (s *FlowSession) SetTemp(key, value string) {
	if s.Temp == nil {
		s.Temp = make(map[string]string)
	}
	s.Temp[key] = value
}

// GetTemp retrieves a partially collected answer
func (s *FlowSession) GetTemp(key string) (string, bool) {
	value, ok := s.Temp[key]
	return value, ok
}
