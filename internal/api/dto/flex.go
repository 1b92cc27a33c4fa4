package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// OptionalInt decodes an integer that may arrive as a number, a numeric string,
// null, or junk. Anything that is not a whole number decodes as absent.
type OptionalInt struct {
	Value int
	Valid bool
}

// IntOf wraps v as a present OptionalInt.
func IntOf(v int) OptionalInt {
	return OptionalInt{Value: v, Valid: true}
}

// Ptr returns nil when absent.
func (o OptionalInt) Ptr() *int {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON never fails; undecodable input leaves the value absent.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	*o = OptionalInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(data)
	}
	raw = strings.TrimSpace(raw)

	if n, err := strconv.Atoi(raw); err == nil {
		*o = IntOf(n)
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		*o = IntOf(int(f))
	}
	return nil
}

// MarshalJSON writes null when absent.
func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

// OptionalFloat is the float counterpart of OptionalInt.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// FloatOf wraps v as a present OptionalFloat.
func FloatOf(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

// Ptr returns nil when absent.
func (o OptionalFloat) Ptr() *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON never fails; undecodable input leaves the value absent.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	*o = OptionalFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(data)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*o = FloatOf(f)
	}
	return nil
}

// MarshalJSON writes null when absent.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
