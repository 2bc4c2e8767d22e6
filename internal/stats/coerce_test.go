package stats

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"absent", "", 0},
		{"null", "null", 0},
		{"empty string", `""`, 0},
		{"blank string", `"  "`, 0},
		{"integer", "3", 3},
		{"negative integer", "-2", -2},
		{"numeric string", `"4"`, 4},
		{"negative numeric string", `"-1"`, -1},
		{"padded numeric string", `" 7 "`, 7},
		{"float truncates", "2.9", 2},
		{"negative float truncates toward zero", "-2.9", -2},
		{"exponent", "1e2", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerce_Rejects(t *testing.T) {
	for _, raw := range []string{`"abc"`, `"2.5"`, "true", "false", "[]", "{}", "1e20", "99999999999", `"99999999999"`, `"-99999999999"`} {
		_, err := Coerce(json.RawMessage(raw))
		assert.Error(t, err, raw)
	}
}

func TestNormalize_ReportsField(t *testing.T) {
	_, err := normalize([]Entry{
		{PlayerID: 1, PlusMinus: Int(1)},
		{PlayerID: 2, Takeaways: json.RawMessage(`"lots"`)},
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, int64(2), verr.PlayerID)
	assert.Equal(t, "takeaways", verr.Field)
	assert.Equal(t, `"lots"`, verr.Value)
}

func TestNormalize_DefaultsMissingFields(t *testing.T) {
	lines, err := normalize([]Entry{{PlayerID: 5, PlusMinus: Int(-1)}})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, Counters{PlusMinus: -1}, lines[0].Counters)
	assert.Equal(t, int64(5), lines[0].playerID)
}

func TestNormalize_RejectsNegativeCounts(t *testing.T) {
	for _, field := range []string{"blocked_shots", "takeaways", "shots_taken"} {
		t.Run(field, func(t *testing.T) {
			e := Entry{PlayerID: 3, PlusMinus: Int(-2)}
			switch field {
			case "blocked_shots":
				e.BlockedShots = Int(-3)
			case "takeaways":
				e.Takeaways = json.RawMessage(`"-1"`)
			case "shots_taken":
				e.ShotsTaken = Int(-1)
			}

			_, err := normalize([]Entry{e})
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, field, verr.Field)
			assert.Equal(t, int64(3), verr.PlayerID)
		})
	}
}
