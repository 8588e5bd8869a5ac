package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDuration(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "unpadded", in: "1:5", want: "01:05"},
		{name: "already padded", in: "01:05", want: "01:05"},
		{name: "long running", in: "12:30", want: "12:30"},
		{name: "surrounding spaces", in: " 2:15 ", want: "02:15"},
		{name: "minutes out of range", in: "1:60", wantErr: true},
		{name: "missing minutes", in: "2", wantErr: true},
		{name: "not numeric", in: "a:b", wantErr: true},
		{name: "wire shape rejected", in: "01:05:00", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDuration(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	// "1:5" normalizes to "01:05", submits as "01:05:00", and reads back
	// as "01:05" for editing.
	normalized, err := NormalizeDuration("1:5")
	require.NoError(t, err)
	assert.Equal(t, "01:05", normalized)

	wire, err := DurationToWire("1:5")
	require.NoError(t, err)
	assert.Equal(t, "01:05:00", wire)

	assert.Equal(t, "01:05", DurationFromWire(wire))
}

func TestDurationFromWire_PassesThroughOddValues(t *testing.T) {
	assert.Equal(t, "soon", DurationFromWire("soon"))
	assert.Equal(t, "x:y:z", DurationFromWire("x:y:z"))
}

func TestStartInput_RoundTripKeepsInstant(t *testing.T) {
	in := time.Date(2026, 5, 30, 18, 0, 0, 0, time.UTC)

	rendered := FormatStartInput(in)
	parsed, err := ParseStartInput(rendered)
	require.NoError(t, err)

	// Rendering and re-parsing may change the zone, never the instant.
	assert.True(t, parsed.Equal(in), "instant shifted: %v vs %v", parsed, in)
}

func TestParseStartInput_Invalid(t *testing.T) {
	_, err := ParseStartInput("yesterday")
	require.Error(t, err)
}
