package models

import "time"

// Session is the redis-persisted login state. The JWT handed to the
// client carries only the SessionID.
type Session struct {
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	UserID    string    `json:"userId,omitempty"`
	DoctorID  string    `json:"doctorId,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsPatient() bool {
	return s.Role == "patient"
}

func (s *Session) IsDoctor() bool {
	return s.Role == "doctor"
}
