package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateCursor_Stepping(t *testing.T) {
	cursor, err := ParseCursor("2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-16", cursor.Step(1).String())
	assert.Equal(t, "2024-01-14", cursor.Step(-1).String())
	assert.Equal(t, "2024-01-15", cursor.String(), "stepping does not mutate the receiver")
}

func TestDateCursor_MonthAndYearBoundaries(t *testing.T) {
	cursor, err := ParseCursor("2023-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", cursor.Step(1).String())

	cursor, err = ParseCursor("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", cursor.Step(-1).String(), "leap day")
}

func TestDateCursor_PriorNight(t *testing.T) {
	cursor, err := ParseCursor("2024-01-16")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", cursor.PriorNight().String())
}

func TestCursorAt_TruncatesToCalendarDay(t *testing.T) {
	ts := time.Date(2024, 1, 15, 23, 45, 12, 0, time.Local)
	cursor := CursorAt(ts)
	assert.Equal(t, "2024-01-15", cursor.String())
	assert.True(t, SameDay(cursor.Time(), ts))
}

func TestParseCursor_Invalid(t *testing.T) {
	_, err := ParseCursor("15-01-2024")
	assert.Error(t, err)
}
