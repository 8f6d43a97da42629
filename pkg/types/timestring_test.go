package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "10:00", want: "10:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:30", want: "23:30"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minutes", input: "10:61", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 2, 9, 14, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within the hour", start: "10:00", minutes: 30, want: "10:30"},
		{name: "across the hour", start: "10:30", minutes: 30, want: "11:00"},
		{name: "zero minutes", start: "10:00", minutes: 0, want: "10:00"},
		{name: "wraps past midnight", start: "23:30", minutes: 30, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		_, err := TimeString("bad").AddMinutes(30)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:30"))
	assert.False(t, TimeString("17:30").IsAfter("17:30"))
}

func TestTimeString_MinutesSince(t *testing.T) {
	got, err := TimeString("11:30").MinutesSince("10:00")
	require.NoError(t, err)
	assert.Equal(t, 90, got)

	got, err = TimeString("10:00").MinutesSince("11:30")
	require.NoError(t, err)
	assert.Equal(t, -90, got)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("10:00").Validate())
	assert.ErrorIs(t, TimeString("10:0").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}
