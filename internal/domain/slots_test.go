package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.June, 14, hour, min, 0, 0, time.UTC)
}

func TestParseSlot(t *testing.T) {
	m, err := ParseSlot("18:30")
	require.NoError(t, err)
	assert.Equal(t, 18*60+30, m)

	_, err = ParseSlot("25:00")
	assert.Error(t, err)

	_, err = ParseSlot("dinner")
	assert.Error(t, err)
}

func TestIsTimeAllowed_ToleranceBoundary(t *testing.T) {
	slots := []string{"18:00"}

	assert.True(t, IsTimeAllowed(slots, at(17, 30)))
	assert.True(t, IsTimeAllowed(slots, at(18, 30)))
	assert.True(t, IsTimeAllowed(slots, at(18, 0)))

	assert.False(t, IsTimeAllowed(slots, at(17, 29)))
	assert.False(t, IsTimeAllowed(slots, at(18, 31)))
}

func TestIsTimeAllowed_MultipleSlots(t *testing.T) {
	slots := []string{"12:00", "19:00"}

	assert.True(t, IsTimeAllowed(slots, at(12, 15)))
	assert.True(t, IsTimeAllowed(slots, at(19, 30)))
	assert.False(t, IsTimeAllowed(slots, at(15, 0)))
}

func TestIsTimeAllowed_SkipsMalformedSlots(t *testing.T) {
	assert.True(t, IsTimeAllowed([]string{"bad", "18:00"}, at(18, 10)))
	assert.False(t, IsTimeAllowed([]string{"bad"}, at(18, 10)))
}

func TestConflictWindow(t *testing.T) {
	target := at(19, 0)
	start, end := ConflictWindow(target)

	assert.Equal(t, at(18, 30), start)
	assert.Equal(t, at(19, 30), end)
}
