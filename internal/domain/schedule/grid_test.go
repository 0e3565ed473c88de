//go:build unit

package schedule_test

import (
	"testing"

	"expo-gateway/internal/domain/schedule"
	"expo-gateway/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid(t *testing.T) {
	t.Run("basic projection", func(t *testing.T) {
		info := builder.NewScheduleBuilder().BuildDomain()
		grid := schedule.BuildGrid(info.Days)

		assert.Equal(t, []string{"10:00:00", "14:00:00"}, grid.Times)
		require.Len(t, grid.Rows, 2)

		// row order follows source day order
		assert.Equal(t, int64(1), grid.Rows[0].Day.ID)
		assert.Equal(t, int64(2), grid.Rows[1].Day.ID)

		// day 1 fills both columns, day 2 only the first
		require.NotNil(t, grid.Rows[0].Cells[0])
		assert.Equal(t, "Nadežda Petrović", grid.Rows[0].Cells[0].Artist)
		require.NotNil(t, grid.Rows[0].Cells[1])
		assert.Equal(t, "Sava Šumanović", grid.Rows[0].Cells[1].Artist)
		require.NotNil(t, grid.Rows[1].Cells[0])
		assert.Equal(t, "Olga Jevrić", grid.Rows[1].Cells[0].Artist)
		assert.Nil(t, grid.Rows[1].Cells[1])
	})

	t.Run("times deduplicated across days and sorted by seconds since midnight", func(t *testing.T) {
		days := []schedule.Day{
			{ID: 1, Slots: []schedule.Slot{
				{ID: 1, OpensAt: "14:30:00"},
				{ID: 2, OpensAt: "09:00:00"},
			}},
			{ID: 2, Slots: []schedule.Slot{
				{ID: 3, OpensAt: "09:00:00"},
				{ID: 4, OpensAt: "11:15:00"},
			}},
		}
		grid := schedule.BuildGrid(days)

		if diff := cmp.Diff([]string{"09:00:00", "11:15:00", "14:30:00"}, grid.Times); diff != "" {
			t.Errorf("times mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("exact string dedupe keeps formatting variants as separate columns", func(t *testing.T) {
		days := []schedule.Day{
			{ID: 1, Slots: []schedule.Slot{
				{ID: 1, OpensAt: "9:00:00"},
				{ID: 2, OpensAt: "09:00:00"},
			}},
		}
		grid := schedule.BuildGrid(days)

		// same instant, different strings: two columns, stable order preserved
		assert.Equal(t, []string{"9:00:00", "09:00:00"}, grid.Times)
	})

	t.Run("first slot in source order wins a shared opening time", func(t *testing.T) {
		days := []schedule.Day{
			{ID: 1, Slots: []schedule.Slot{
				{ID: 1, Artist: "prvi", OpensAt: "10:00:00"},
				{ID: 2, Artist: "drugi", OpensAt: "10:00:00"},
			}},
		}
		grid := schedule.BuildGrid(days)

		require.Len(t, grid.Times, 1)
		require.NotNil(t, grid.Rows[0].Cells[0])
		assert.Equal(t, "prvi", grid.Rows[0].Cells[0].Artist)
	})

	t.Run("no days yields empty grid", func(t *testing.T) {
		grid := schedule.BuildGrid(nil)
		assert.Empty(t, grid.Times)
		assert.Empty(t, grid.Rows)
	})

	t.Run("day without slots still gets a row", func(t *testing.T) {
		days := []schedule.Day{
			{ID: 1, Slots: []schedule.Slot{{ID: 1, OpensAt: "10:00:00"}}},
			{ID: 2},
		}
		grid := schedule.BuildGrid(days)

		require.Len(t, grid.Rows, 2)
		assert.Nil(t, grid.Rows[1].Cells[0])
	})
}

func TestSecondsSinceMidnight(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "full time", input: "10:30:15", expected: 10*3600 + 30*60 + 15},
		{name: "seconds optional", input: "10:30", expected: 10*3600 + 30*60},
		{name: "midnight", input: "00:00:00", expected: 0},
		{name: "single digit hour", input: "9:05:00", expected: 9*3600 + 5*60},
		{name: "malformed component counts as zero", input: "10:xx:30", expected: 10*3600 + 30},
		{name: "extra components ignored", input: "01:00:00:30", expected: 3600},
		{name: "empty string", input: "", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, schedule.SecondsSinceMidnight(tc.input))
		})
	}
}

func TestDayLabel(t *testing.T) {
	info := builder.NewScheduleBuilder().BuildDomain()

	t.Run("known day renders date and theme", func(t *testing.T) {
		assert.Equal(t, "15. maj — Slikarstvo", info.DayLabel(1))
	})

	t.Run("unknown id falls back to numeric tag", func(t *testing.T) {
		assert.Equal(t, "#99", info.DayLabel(99))
	})

	t.Run("unparseable date keeps the raw string", func(t *testing.T) {
		alt := builder.NewScheduleBuilder().WithDays(schedule.Day{ID: 5, Date: "sreda", Theme: "Grafika"}).BuildDomain()
		assert.Equal(t, "sreda — Grafika", alt.DayLabel(5))
	})
}
