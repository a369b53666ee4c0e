package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "rfc3339 with zone",
			input:    `"2024-03-01T10:30:00Z"`,
			expected: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "naive datetime",
			input:    `"2024-03-01T10:30:00"`,
			expected: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "naive datetime with fraction",
			input:    `"2024-03-01T10:30:00.250000"`,
			expected: time.Date(2024, 3, 1, 10, 30, 0, 250000000, time.UTC),
		},
		{
			name:     "bare date",
			input:    `"2024-03-01"`,
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "null", input: `null`},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
		{name: "number", input: `1700000000`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_NullFieldStaysNil(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","amount":"1","date":null}`), &tx))
	assert.Nil(t, tx.Date)
	assert.Equal(t, "-", FormatDate(tx.Date))
}

func TestFormatDate(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-12-31", FormatDate(ts))
}
