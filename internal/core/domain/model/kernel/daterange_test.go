package kernel_test

import (
	"testing"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid_range", func(t *testing.T) {
		r, err := kernel.NewDateRange(day(2024, time.March, 1), day(2024, time.March, 3))

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, day(2024, time.March, 1), r.Start())
		assert.Equal(t, day(2024, time.March, 3), r.End())
	})

	t.Run("same_day_range_is_valid", func(t *testing.T) {
		r, err := kernel.NewDateRange(day(2024, time.March, 1), day(2024, time.March, 1))

		require.NoError(t, err)
		assert.Equal(t, 1, r.DurationDays())
	})

	t.Run("end_before_start_is_invalid", func(t *testing.T) {
		_, err := kernel.NewDateRange(day(2024, time.March, 3), day(2024, time.March, 1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("time_of_day_is_ignored", func(t *testing.T) {
		start := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 1, 0, 15, 0, 0, time.UTC)

		r, err := kernel.NewDateRange(start, end)

		require.NoError(t, err)
		assert.Equal(t, 1, r.DurationDays())
	})
}

func TestDateRange_DurationDays(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"single_day", day(2024, time.March, 1), day(2024, time.March, 1), 1},
		{"three_days_inclusive", day(2024, time.March, 1), day(2024, time.March, 3), 3},
		{"across_month_boundary", day(2024, time.February, 28), day(2024, time.March, 2), 4},
		{"thirty_days", day(2024, time.June, 1), day(2024, time.June, 30), 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := kernel.NewDateRange(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, r.DurationDays())
		})
	}
}

func TestDateRange_EndsBefore(t *testing.T) {
	r, err := kernel.NewDateRange(day(2024, time.March, 1), day(2024, time.March, 3))
	require.NoError(t, err)

	assert.True(t, r.EndsBefore(day(2024, time.March, 4)))
	assert.False(t, r.EndsBefore(day(2024, time.March, 3)))
	assert.False(t, r.EndsBefore(day(2024, time.March, 2)))
}

func TestDateRange_IsEqual(t *testing.T) {
	a, _ := kernel.NewDateRange(day(2024, time.March, 1), day(2024, time.March, 3))
	b, _ := kernel.NewDateRange(day(2024, time.March, 1), day(2024, time.March, 3))
	c, _ := kernel.NewDateRange(day(2024, time.March, 1), day(2024, time.March, 4))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestDateRange_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var r kernel.DateRange
		require.ErrorIs(t, r.Validate(), errs.ErrValueIsRequired)
	})
}
