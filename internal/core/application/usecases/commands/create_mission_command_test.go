package commands_test

import (
	"testing"

	"missions/internal/core/application/usecases/commands"
	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateMissionCommand(t *testing.T) {
	admin := testAdmin(t)

	crew, err := mission.NewCrewMember(
		kernel.NewUUID(), "Jean Moreau", "Captain", mission.CrewTypeInternal,
		"jean@example.com", "+33600000000")
	require.NoError(t, err)

	aircraft, err := mission.NewAircraft(kernel.NewUUID(), "F-HJCB", "Falcon 7X")
	require.NoError(t, err)

	t.Run("valid_command", func(t *testing.T) {
		missionID := kernel.NewUUID()

		cmd, err := commands.NewCreateMissionCommand(
			missionID, mission.TypeFreelance, admin, crew, aircraft,
			nil, nil, nil, false, nil, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, missionID, cmd.MissionID())
		assert.Equal(t, mission.TypeFreelance, cmd.MissionType())
		assert.Equal(t, crew, cmd.Crew())
		assert.False(t, cmd.FinanceReview())
	})

	t.Run("invalid_mission_type", func(t *testing.T) {
		_, err := commands.NewCreateMissionCommand(
			kernel.NewUUID(), mission.TypeUnknown, admin, crew, aircraft,
			nil, nil, nil, false, nil, nil)

		require.Error(t, err)
	})

	t.Run("zero_actor", func(t *testing.T) {
		_, err := commands.NewCreateMissionCommand(
			kernel.NewUUID(), mission.TypeFreelance, kernel.Actor{}, crew, aircraft,
			nil, nil, nil, false, nil, nil)

		require.Error(t, err)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.CreateMissionCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateMissionCommandIsNotConstructed)
	})
}
