package notify_test

import (
	"errors"
	"log/slog"
	"testing"

	"missions/internal/adapters/out/notify"
	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type CapturingSender struct {
	Sent []*gomail.Message
	Err  error
}

func (s *CapturingSender) DialAndSend(m ...*gomail.Message) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, m...)
	return nil
}

func testConfig() notify.Config {
	return notify.Config{
		FromName:     "Mission Orders",
		FromAddress:  "noreply@example.com",
		AdminAddress: "ops@example.com",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func crewEvent(t *testing.T) mission.Event {
	t.Helper()

	return mission.Event{
		Kind:           mission.EventCrewAssigned,
		MissionID:      kernel.NewUUID(),
		Audience:       mission.AudienceCrew,
		RecipientName:  "Jean Moreau",
		RecipientEmail: "jean.moreau@example.com",
		Subject:        "Mission assigned",
		Body:           "You have been assigned to a mission.",
	}
}

func adminEvent(t *testing.T) mission.Event {
	t.Helper()

	return mission.Event{
		Kind:      mission.EventValidationRequired,
		MissionID: kernel.NewUUID(),
		Audience:  mission.AudienceAdmin,
		Subject:   "Mission awaiting validation",
		Body:      "A mission has completed and awaits validation.",
	}
}

func Test_EmailDispatcher_Dispatch_SendsToCrewAddress(t *testing.T) {
	sender := &CapturingSender{}
	dispatcher := notify.NewEmailDispatcher(sender, testConfig(), testLogger())

	err := dispatcher.Dispatch(t.Context(), []mission.Event{crewEvent(t)})

	require.NoError(t, err)
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, []string{"jean.moreau@example.com"}, sender.Sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Mission assigned"}, sender.Sent[0].GetHeader("Subject"))
}

func Test_EmailDispatcher_Dispatch_RoutesAdminEventsToAdminAddress(t *testing.T) {
	sender := &CapturingSender{}
	dispatcher := notify.NewEmailDispatcher(sender, testConfig(), testLogger())

	err := dispatcher.Dispatch(t.Context(), []mission.Event{adminEvent(t)})

	require.NoError(t, err)
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, []string{"ops@example.com"}, sender.Sent[0].GetHeader("To"))
}

func Test_EmailDispatcher_Dispatch_LogsWhenNoAddressConfigured(t *testing.T) {
	sender := &CapturingSender{}
	config := testConfig()
	config.AdminAddress = ""
	dispatcher := notify.NewEmailDispatcher(sender, config, testLogger())

	err := dispatcher.Dispatch(t.Context(), []mission.Event{adminEvent(t)})

	require.NoError(t, err)
	assert.Empty(t, sender.Sent)
}

func Test_EmailDispatcher_Dispatch_ContinuesAfterFailure(t *testing.T) {
	sender := &CapturingSender{Err: errors.New("smtp unavailable")}
	dispatcher := notify.NewEmailDispatcher(sender, testConfig(), testLogger())

	err := dispatcher.Dispatch(t.Context(), []mission.Event{crewEvent(t), adminEvent(t)})

	require.Error(t, err)
	assert.ErrorContains(t, err, "smtp unavailable")
}

func Test_EmailDispatcher_Dispatch_NoEvents(t *testing.T) {
	sender := &CapturingSender{}
	dispatcher := notify.NewEmailDispatcher(sender, testConfig(), testLogger())

	require.NoError(t, dispatcher.Dispatch(t.Context(), nil))
	assert.Empty(t, sender.Sent)
}
