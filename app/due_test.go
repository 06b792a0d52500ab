package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	// a Wednesday
	now := time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"2024-06-01", "2024-06-01"},
		{"06/01/2024", "2024-06-01"},
		{"June 1, 2024", "2024-06-01"},
		{"tomorrow", "2024-05-09"},
		{"in 3 days", "2024-05-11"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseDueDate(tc.in, now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDueDateRejectsGibberish(t *testing.T) {
	_, err := parseDueDate("whenever the mood strikes", time.Now())
	assert.ErrorIs(t, err, errInvalidDueDate)
}
