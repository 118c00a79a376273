package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayKeepsWallClockDigits(t *testing.T) {
	assert.Equal(t, "2024/03/10 08:15:00", Display("2024-03-10 08:15:00"))
	assert.Equal(t, "2024/12/31 23:59:59", Display("2024-12-31 23:59:59"))
}

func TestDisplayEmptyAndUnparsable(t *testing.T) {
	assert.Equal(t, "", Display(""))
	assert.Equal(t, "not a timestamp", Display("not a timestamp"))
}

func TestNormalizeAcceptedForms(t *testing.T) {
	cases := map[string]string{
		"2024-03-10 08:15:00":  "2024-03-10 08:15:00",
		"2024-03-10T08:15:00":  "2024-03-10 08:15:00",
		"2024-03-10T08:15":     "2024-03-10 08:15:00",
		"2024/03/10 08:15:00":  "2024-03-10 08:15:00",
	}
	for input, want := range cases {
		got, err := Normalize(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize("tomorrow at noon")
	require.Error(t, err)
	_, err = Normalize("")
	require.Error(t, err)
}

func TestNowUsesStorageLayout(t *testing.T) {
	now := Now()
	parsed, err := time.ParseInLocation(StorageLayout, now, time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 2*time.Second)
}

func TestRoundTripThroughNormalizeAndDisplay(t *testing.T) {
	stored, err := Normalize("2024-03-10T08:15")
	require.NoError(t, err)
	assert.Equal(t, "2024/03/10 08:15:00", Display(stored))
}
