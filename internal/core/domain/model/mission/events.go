package mission

import (
	"missions/internal/core/domain/model/kernel"
)

// EventKind names the notification a transition produced.
type EventKind string

const (
	EventMissionApproved      EventKind = "mission_approved"
	EventMissionRejected      EventKind = "mission_rejected"
	EventClientAccepted       EventKind = "client_accepted"
	EventClientRejected       EventKind = "client_rejected"
	EventCrewAssigned         EventKind = "crew_assigned"
	EventExecutionStarted     EventKind = "execution_started"
	EventExecutionCompleted   EventKind = "execution_completed"
	EventValidationRequired   EventKind = "validation_required"
	EventMissionValidated     EventKind = "mission_validated"
	EventPaymentIssueReported EventKind = "payment_issue_reported"
	EventDateChangeRequested  EventKind = "date_change_requested"
	EventDateChangeApproved   EventKind = "date_change_approved"
	EventDateChangeRejected   EventKind = "date_change_rejected"
)

// Audience selects who a notification is addressed to.
type Audience int

const (
	// AudienceAdmin addresses the operations administrators.
	AudienceAdmin Audience = iota + 1

	// AudienceCrew addresses the mission's crew member.
	AudienceCrew
)

// String returns the wire name of the audience.
func (a Audience) String() string {
	switch a {
	case AudienceAdmin:
		return "admin"
	case AudienceCrew:
		return "crew"
	default:
		return "unknown"
	}
}

// Event is an outbound notification produced by a transition. Transitions
// return their events explicitly instead of broadcasting them; the
// application layer hands them to the notification dispatcher after the new
// mission snapshot is committed.
type Event struct {
	Kind           EventKind
	MissionID      kernel.UUID
	Audience       Audience
	RecipientName  string
	RecipientEmail string
	Subject        string
	Body           string
}

// PullEvents drains and returns the events recorded since the aggregate was
// loaded. Call after a successful commit; a failed transition records none.
func (m *MissionOrder) PullEvents() []Event {
	events := m.events
	m.events = nil
	return events
}

// recordAdminEvent appends an outbound notification addressed to the admins.
func (m *MissionOrder) recordAdminEvent(kind EventKind, subject, body string) {
	m.events = append(m.events, Event{
		Kind:      kind,
		MissionID: m.id,
		Audience:  AudienceAdmin,
		Subject:   subject,
		Body:      body,
	})
}

// recordCrewEvent appends an outbound notification addressed to the
// mission's crew member.
func (m *MissionOrder) recordCrewEvent(kind EventKind, subject, body string) {
	m.events = append(m.events, Event{
		Kind:           kind,
		MissionID:      m.id,
		Audience:       AudienceCrew,
		RecipientName:  m.crew.Name(),
		RecipientEmail: m.crew.Email(),
		Subject:        subject,
		Body:           body,
	})
}
