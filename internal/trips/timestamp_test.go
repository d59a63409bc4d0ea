package trips

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	plusTwo := time.FixedZone("", 2*60*60)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "offset without colon",
			input:    "2024-05-01T10:15:00+0200",
			expected: time.Date(2024, 5, 1, 10, 15, 0, 0, plusTwo),
		},
		{
			name:     "negative offset without colon",
			input:    "2024-05-01T10:15:00-0330",
			expected: time.Date(2024, 5, 1, 10, 15, 0, 0, time.FixedZone("", -(3*60*60+30*60))),
		},
		{
			name:     "truncated two digit offset",
			input:    "2024-05-01T10:15:00+02",
			expected: time.Date(2024, 5, 1, 10, 15, 0, 0, plusTwo),
		},
		{
			name:     "already RFC 3339",
			input:    "2024-05-01T10:15:00+02:00",
			expected: time.Date(2024, 5, 1, 10, 15, 0, 0, plusTwo),
		},
		{
			name:     "UTC designator",
			input:    "2024-05-01T08:15:00Z",
			expected: time.Date(2024, 5, 1, 8, 15, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestParseTimestampIdempotentOnWellFormedInput(t *testing.T) {
	repaired, err := ParseTimestamp("2024-05-01T10:15:00+0200")
	require.NoError(t, err)

	again, err := ParseTimestamp(repaired.Format(time.RFC3339))
	require.NoError(t, err)
	assert.True(t, repaired.Equal(again))
}

func TestParseTimestampMalformed(t *testing.T) {
	inputs := []string{
		"",
		"not a time",
		"2024-05-01T10:15:00",
		"2024-05-01T10:15:00+2",
		"2024-05-01T10:15:00+02000",
		"2024-13-01T10:15:00+0200",
		"2024-05-01T25:15:00+0200",
		"2024-05-01",
		"+0200",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimestamp(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedTimestamp))

			var malformed *MalformedTimestampError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, input, malformed.Value)
		})
	}
}
