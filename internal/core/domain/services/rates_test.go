package services_test

import (
	"testing"

	"missions/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_Resolve(t *testing.T) {
	table := services.DefaultRateTable()

	t.Run("known_registration_and_position", func(t *testing.T) {
		rate, ok := table.Resolve("F-HJCB", "Captain")

		require.True(t, ok)
		assert.Equal(t, 850.0, rate.DailySalary)
		assert.Equal(t, 120.0, rate.DailyPerDiem)
	})

	t.Run("unknown_registration", func(t *testing.T) {
		_, ok := table.Resolve("G-ZZZZ", "Captain")
		assert.False(t, ok)
	})

	t.Run("unknown_position", func(t *testing.T) {
		_, ok := table.Resolve("F-HJCB", "Loadmaster")
		assert.False(t, ok)
	})

	t.Run("category_changes_the_rate", func(t *testing.T) {
		heavy, ok := table.Resolve("F-HJCB", "First Officer")
		require.True(t, ok)
		light, ok := table.Resolve("F-HLJA", "First Officer")
		require.True(t, ok)

		assert.Greater(t, heavy.DailySalary, light.DailySalary)
	})
}

func TestNewRateTable_CustomGrid(t *testing.T) {
	table := services.NewRateTable(
		map[string]services.AircraftCategory{"D-TEST": services.CategoryLight},
		map[string]map[services.AircraftCategory]services.Rate{
			"Captain": {services.CategoryLight: {DailySalary: 100, DailyPerDiem: 10}},
		},
	)

	rate, ok := table.Resolve("D-TEST", "Captain")
	require.True(t, ok)
	assert.Equal(t, 100.0, rate.DailySalary)

	_, ok = table.Resolve("D-TEST", "First Officer")
	assert.False(t, ok)
}
