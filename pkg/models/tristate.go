package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TriState is an explicit unset / enabled / disabled flag. "Disabled" is a
// real answer and must never collapse into "unset".
type TriState int

const (
	Unset TriState = iota
	Enabled
	Disabled
)

func (t TriState) String() string {
	switch t {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	}
	return "unset"
}

// IsSet reports whether a choice was made.
func (t TriState) IsSet() bool { return t != Unset }

// IsEnabled reports an explicit enabled choice.
func (t TriState) IsEnabled() bool { return t == Enabled }

// MarshalJSON writes 1, 0 or "na".
func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case Enabled:
		return []byte("1"), nil
	case Disabled:
		return []byte("0"), nil
	}
	return []byte(`"na"`), nil
}

// UnmarshalJSON accepts null, "na", "", 0/1, "0"/"1" and true/false.
func (t *TriState) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Unset
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTriState(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTriState converts a loosely typed form value.
func ParseTriState(v interface{}) (TriState, error) {
	switch val := v.(type) {
	case nil:
		return Unset, nil
	case bool:
		if val {
			return Enabled, nil
		}
		return Disabled, nil
	case float64:
		switch val {
		case 1:
			return Enabled, nil
		case 0:
			return Disabled, nil
		}
	case int:
		return ParseTriState(float64(val))
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "", "na", "n/a", "unset":
			return Unset, nil
		case "1", "true", "yes", "enabled":
			return Enabled, nil
		case "0", "false", "no", "disabled":
			return Disabled, nil
		}
	}
	return Unset, fmt.Errorf("invalid tri-state value %v", v)
}
