package holiday

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetContains(t *testing.T) {
	s := NewSet(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))

	// membership is day granular regardless of the query's clock time
	assert.True(t, s.Contains(time.Date(2024, 12, 25, 18, 30, 0, 0, time.UTC)))
	assert.False(t, s.Contains(time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holidays.json")
	require.Nil(t, os.WriteFile(path, []byte(`[{"date":"2024-01-26"},{"date":"2024-08-15"}]`), 0o644))

	s, err := Load(path)
	require.Nil(t, err)
	assert.Len(t, s, 2)
	assert.True(t, s.Contains(time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.Contains(time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "empty.json")
	require.Nil(t, os.WriteFile(path, []byte(`[]`), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoHolidayDates)

	path = filepath.Join(dir, "bad.json")
	require.Nil(t, os.WriteFile(path, []byte(`[{"date":"26/01/2024"}]`), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrBadDateFormat)
}

func TestFromCalendar(t *testing.T) {
	s := FromCalendar([]*cal.Holiday{us.ChristmasDay}, 2023, 2024)
	assert.True(t, s.Contains(time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.Contains(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.Contains(time.Date(2022, 12, 25, 0, 0, 0, 0, time.UTC)))
}
