package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// NullInt64 is an integer that may be absent from an upstream payload.
type NullInt64 struct {
	Int64 int64
	Valid bool
}

// IntOf returns a set NullInt64.
func IntOf(v int64) NullInt64 {
	return NullInt64{Int64: v, Valid: true}
}

// Float converts the value, keeping the unset state.
func (n NullInt64) Float() NullFloat64 {
	if !n.Valid {
		return NullFloat64{}
	}
	return FloatOf(float64(n.Int64))
}

// MarshalJSON renders unset values as null.
func (n NullInt64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Int64)
}

// UnmarshalJSON reads null as unset.
func (n *NullInt64) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*n = NullInt64{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = IntOf(v)
	return nil
}

// NullFloat64 is a number that may be absent from an upstream payload.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// FloatOf returns a set NullFloat64.
func FloatOf(v float64) NullFloat64 {
	return NullFloat64{Float64: v, Valid: true}
}

// MarshalJSON renders unset values as null.
func (n NullFloat64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON reads null as unset.
func (n *NullFloat64) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*n = NullFloat64{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = FloatOf(v)
	return nil
}

// NullTime is a point in time that may be "not set".
type NullTime struct {
	Time  time.Time
	Valid bool
}

// TimeOf returns a set NullTime.
func TimeOf(t time.Time) NullTime {
	return NullTime{Time: t, Valid: true}
}

// MarshalJSON renders unset values as null and set values as RFC 3339.
func (n NullTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Time.UTC().Format(time.RFC3339))
}

// UnmarshalJSON reads null as unset and set values as RFC 3339.
func (n *NullTime) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*n = NullTime{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	*n = TimeOf(t)
	return nil
}

func isNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}
