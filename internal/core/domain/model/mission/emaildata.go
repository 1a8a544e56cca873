package mission

import (
	"errors"
)

// Fees is the computed billing snapshot attached to the email sent to the
// paying party. It is produced exclusively by the pricing engine; nothing
// else may compute TotalWithMargin, which is always TotalCost plus
// MarginAmount.
type Fees struct {
	DailySalary     float64
	TotalSalary     float64
	DailyPerDiem    float64
	TotalPerDiem    float64
	TotalCost       float64
	MarginAmount    float64
	TotalWithMargin float64
}

// ErrEmailDataIsNotConstructed is returned when validating a zero-value EmailData.
var ErrEmailDataIsNotConstructed = errors.New(
	"EmailData must be created via NewEmailData constructor")

// EmailData is the billing snapshot sent to the paying party for client
// approval. Supplying it at creation time routes the mission straight to
// PendingClientApproval.
type EmailData struct {
	recipient string
	subject   string
	body      string
	fees      *Fees

	isConstructed bool
}

// NewEmailData creates a validated billing snapshot. The fees block is
// optional: it is attached once the pricing engine produced a quote.
func NewEmailData(recipient, subject, body string, fees *Fees) (*EmailData, error) {
	if err := requireText("recipient", recipient); err != nil {
		return nil, err
	}

	return &EmailData{
		recipient:     recipient,
		subject:       subject,
		body:          body,
		fees:          fees,
		isConstructed: true,
	}, nil
}

// Recipient returns the paying party's email address.
func (e *EmailData) Recipient() string { return e.recipient }

// Subject returns the email subject line.
func (e *EmailData) Subject() string { return e.subject }

// Body returns the email body.
func (e *EmailData) Body() string { return e.body }

// Fees returns the computed fees block. Nil until a quote was attached.
func (e *EmailData) Fees() *Fees { return e.fees }

// Validate checks that the snapshot was built through NewEmailData.
func (e *EmailData) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmailDataIsNotConstructed
	}
	return nil
}
