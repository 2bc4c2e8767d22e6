package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError reports a counter value that cannot be read as an integer, or a negative value
// for a counter that only counts up.
type ValidationError struct {
	PlayerID int64
	Field    string
	Value    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %s for %s (player %d)", e.Value, e.Field, e.PlayerID)
}

// Int encodes n as a raw counter value.
func Int(n int) json.RawMessage {
	return json.RawMessage(strconv.Itoa(n))
}

// Coerce reads a raw counter value. Absent, null and empty values are zero, integers and numeric
// strings are parsed, numbers with a fraction are truncated toward zero. Anything else fails.
func Coerce(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		return checkRange(float64(n))
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, err
		}
		if i, err := n.Int64(); err == nil {
			return checkRange(float64(i))
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return checkRange(math.Trunc(f))
	default:
		return 0, fmt.Errorf("unsupported value %s", raw)
	}
}

func checkRange(f float64) (int, error) {
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("value %v out of range", f)
	}
	return int(f), nil
}

// normalize coerces every entry of a submission before anything is written.
func normalize(entries []Entry) ([]line, error) {
	lines := make([]line, 0, len(entries))
	for _, e := range entries {
		l := line{playerID: e.PlayerID}
		fields := []struct {
			name   string
			raw    json.RawMessage
			dst    *int
			signed bool
		}{
			{"plus_minus", e.PlusMinus, &l.PlusMinus, true},
			{"blocked_shots", e.BlockedShots, &l.BlockedShots, false},
			{"takeaways", e.Takeaways, &l.Takeaways, false},
			{"shots_taken", e.ShotsTaken, &l.ShotsTaken, false},
		}
		for _, f := range fields {
			v, err := Coerce(f.raw)
			if err != nil || (v < 0 && !f.signed) {
				return nil, &ValidationError{PlayerID: e.PlayerID, Field: f.name, Value: string(f.raw)}
			}
			*f.dst = v
		}
		lines = append(lines, l)
	}
	return lines, nil
}
