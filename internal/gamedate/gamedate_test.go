package gamedate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"minutes", "2024-01-15T18:00", time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)},
		{"seconds", "2024-01-15T18:00:30", time.Date(2024, 1, 15, 18, 0, 30, 0, time.UTC)},
		{"space separated", "2024-01-15 18:00", time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)},
		{"date only", "2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"offset keeps wall clock", "2024-01-15T18:00:00+02:00", time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2024-01-15T18:00 ", time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)},
		{"zero fraction", "2024-01-15T18:00:00.000", time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2024-13-01T10:00", "15/01/2024"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
	}
}

func TestParse_RejectsSubSecondPrecision(t *testing.T) {
	whole, err := Parse("2024-01-15T18:00:00")
	require.NoError(t, err)

	for _, input := range []string{
		"2024-01-15T18:00:00.250",
		"2024-01-15 18:00:00.5",
		"2024-01-15T18:00:00.000000001Z",
	} {
		got, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
		assert.True(t, got.IsZero(), input)
	}
	assert.Equal(t, "2024-01-15 18:00:00", Key(whole))
}

func TestFormats(t *testing.T) {
	d := time.Date(2024, 1, 15, 18, 5, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-15 18:05:00", Key(d))
	assert.Equal(t, "2024-01-15 06:05 PM", Display(d))
	assert.Equal(t, "2024-01-15T18:05", ISO(d))

	back, err := FromKey(Key(d))
	require.NoError(t, err)
	assert.True(t, d.Equal(back))

	_, err = FromKey("garbage")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestKey_NormalizesZone(t *testing.T) {
	wall := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	elsewhere := wall.In(time.FixedZone("CET", 3600))

	assert.Equal(t, "2024-01-15 18:00:00", Key(elsewhere))
	assert.Equal(t, "2024-01-15T18:00", ISO(elsewhere))
}
