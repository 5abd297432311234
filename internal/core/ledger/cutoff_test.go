package ledger_test

import (
	"testing"
	"time"

	"github.com/boighar/backoffice/internal/core/ledger"
	"github.com/stretchr/testify/assert"
)

func TestCutoffIsInclusive(t *testing.T) {
	at := time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)
	c := ledger.At(at)

	assert.True(t, c.Includes(at), "a record dated exactly at the cutoff is included")
	assert.True(t, c.Includes(at.Add(-time.Nanosecond)))
	assert.False(t, c.Includes(at.Add(time.Nanosecond)))
}

func TestEndOfDayIncludesSameDayTransactions(t *testing.T) {
	// Caller holds only the calendar date; a sale later that day must count.
	c := ledger.EndOfDay(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))

	evening := time.Date(2024, 12, 15, 21, 45, 12, 0, time.UTC)
	nextMorning := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, c.Includes(evening))
	assert.False(t, c.Includes(nextMorning))
	assert.Equal(t, 23, c.Time().Hour())
}

func TestEndOfDayKeepsLocation(t *testing.T) {
	loc := time.FixedZone("BST", 6*3600)
	c := ledger.EndOfDay(time.Date(2024, 3, 1, 9, 0, 0, 0, loc))

	assert.Equal(t, loc, c.Time().Location())
	assert.True(t, c.Includes(time.Date(2024, 3, 1, 23, 59, 59, 0, loc)))
}
