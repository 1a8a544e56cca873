// Package notify delivers the outbound notifications produced by mission
// transitions. Crew-facing events are sent by email over SMTP; admin-facing
// events go to the configured operations address. Delivery is best effort:
// the dispatcher reports failures but callers treat them as non-fatal, since
// the state change is already committed by the time events are dispatched.
package notify

import (
	"context"
	"errors"
	"log/slog"

	"missions/internal/core/domain/model/mission"

	"gopkg.in/gomail.v2"
)

// MailSender abstracts the SMTP dialer so tests can capture outgoing messages.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Config holds the sender identity and routing addresses for the dispatcher.
type Config struct {
	FromName    string
	FromAddress string
	// AdminAddress receives all admin-audience notifications. When empty,
	// admin events are logged instead of mailed.
	AdminAddress string
}

// EmailDispatcher implements the notification port on top of an SMTP sender.
type EmailDispatcher struct {
	sender MailSender
	config Config
	logger *slog.Logger
}

// NewEmailDispatcher creates a dispatcher delivering through the given sender.
func NewEmailDispatcher(sender MailSender, config Config, logger *slog.Logger) *EmailDispatcher {
	return &EmailDispatcher{
		sender: sender,
		config: config,
		logger: logger.With("component", "email_dispatcher"),
	}
}

// NewSMTPSender builds a gomail dialer for the given SMTP endpoint.
func NewSMTPSender(host string, port int, username, password string) MailSender {
	return gomail.NewDialer(host, port, username, password)
}

// Dispatch delivers each event to its audience. A failed delivery does not
// stop the rest; the joined failures are returned so callers can log them.
func (d *EmailDispatcher) Dispatch(ctx context.Context, events []mission.Event) error {
	var failures []error
	for _, event := range events {
		if err := d.dispatchOne(ctx, event); err != nil {
			d.logger.ErrorContext(ctx, "Notification delivery failed",
				"kind", string(event.Kind),
				"missionID", event.MissionID.String(),
				"audience", event.Audience.String(),
				"error", err)
			failures = append(failures, err)
		}
	}

	return errors.Join(failures...)
}

func (d *EmailDispatcher) dispatchOne(ctx context.Context, event mission.Event) error {
	recipient := event.RecipientEmail
	if event.Audience == mission.AudienceAdmin {
		recipient = d.config.AdminAddress
	}

	if recipient == "" {
		// No address to route to; surface the notification in the log so
		// operators still see it.
		d.logger.InfoContext(ctx, "Notification",
			"kind", string(event.Kind),
			"missionID", event.MissionID.String(),
			"audience", event.Audience.String(),
			"subject", event.Subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", d.config.FromAddress, d.config.FromName)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", event.Subject)
	msg.SetBody("text/plain", event.Body)

	if err := d.sender.DialAndSend(msg); err != nil {
		return err
	}

	d.logger.InfoContext(ctx, "Notification sent",
		"kind", string(event.Kind),
		"missionID", event.MissionID.String(),
		"recipient", recipient)
	return nil
}
