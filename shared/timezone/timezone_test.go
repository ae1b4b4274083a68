package timezone_test

import (
	"testing"
	"time"

	"playcourt/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		expected string
	}{
		{name: "empty name keeps utc", zone: "", expected: "UTC"},
		{name: "unknown name falls back to utc", zone: "Mars/Olympus", expected: "UTC"},
		{name: "standard name is loaded", zone: "Asia/Jakarta", expected: "Asia/Jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { timezone.Init("UTC") })

			timezone.Init(tt.zone)

			assert.Equal(t, tt.expected, timezone.GetLocation().String())
			assert.Equal(t, tt.expected, timezone.Now().Location().String())
		})
	}
}

func TestFormatAndParse(t *testing.T) {
	timezone.Init("Asia/Jakarta")
	t.Cleanup(func() { timezone.Init("UTC") })

	utc := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01 19:00", timezone.Format(utc, "2006-01-02 15:04"))

	parsed, err := timezone.Parse("2006-01-02 15:04", "2024-01-01 19:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(utc))
}
