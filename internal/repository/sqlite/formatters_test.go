package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB_KeepsNanoseconds(t *testing.T) {
	in := time.Date(2026, 10, 18, 23, 59, 59, 999000001, time.FixedZone("X", 3600))

	s := FormatTimeForDB(in)
	assert.Equal(t, "2026-10-18T22:59:59.999000001Z", s)

	out, err := ParseTimeFromDB(s)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestParseTimeFromDB_Invalid(t *testing.T) {
	_, err := ParseTimeFromDB("yesterday")
	assert.Error(t, err)
}
