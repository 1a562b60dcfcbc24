package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int is a count that clients may send as a JSON number or a numeric string.
// Strings are read up to the first non-digit, so "3 payments" is 3.
// Fractions are truncated toward zero.
type Int int

func (n *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := leadingInt(s)
		if err != nil {
			return err
		}
		*n = Int(v)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("count must be a number, got %s", data)
	}
	if math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("count out of range: %s", data)
	}
	*n = Int(math.Trunc(f))
	return nil
}

// leadingInt parses an optional sign and the digits that follow it.
// An empty string is zero.
func leadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, fmt.Errorf("count must be numeric, got %q", s)
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil || v > math.MaxInt32 || v < -math.MaxInt32 {
		return 0, fmt.Errorf("count out of range: %q", s)
	}
	return v, nil
}
