package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNullValuesMarshalUnsetAsNull(t *testing.T) {
	payload := struct {
		I NullInt64   `json:"i"`
		F NullFloat64 `json:"f"`
		T NullTime    `json:"t"`
	}{}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"i":null,"f":null,"t":null}` {
		t.Fatalf("unexpected json %s", raw)
	}
}

func TestNullValuesMarshalSetValues(t *testing.T) {
	payload := struct {
		I NullInt64   `json:"i"`
		F NullFloat64 `json:"f"`
		T NullTime    `json:"t"`
	}{
		I: IntOf(42),
		F: FloatOf(1.5),
		T: TimeOf(time.Unix(1700000000, 0)),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"i":42,"f":1.5,"t":"2023-11-14T22:13:20Z"}` {
		t.Fatalf("unexpected json %s", raw)
	}
}

func TestNullInt64FloatKeepsUnset(t *testing.T) {
	if (NullInt64{}).Float().Valid {
		t.Fatalf("expected unset int to stay unset as float")
	}
	if got := IntOf(7).Float(); !got.Valid || got.Float64 != 7 {
		t.Fatalf("unexpected conversion %+v", got)
	}
}

func TestNullValuesRoundTrip(t *testing.T) {
	type rec struct {
		N  NullInt64   `json:"n"`
		F  NullFloat64 `json:"f"`
		T  NullTime    `json:"t"`
		UN NullInt64   `json:"un"`
		UF NullFloat64 `json:"uf"`
		UT NullTime    `json:"ut"`
	}
	in := rec{N: IntOf(7), F: FloatOf(17.5), T: TimeOf(time.Unix(1700000000, 0))}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out rec
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	if out.N != in.N || out.F != in.F {
		t.Fatalf("expected numbers to survive, got %+v", out)
	}
	if !out.T.Valid || !out.T.Time.Equal(in.T.Time) {
		t.Fatalf("expected time to survive, got %+v", out.T)
	}
	if out.UN.Valid || out.UF.Valid || out.UT.Valid {
		t.Fatalf("expected nulls to decode as unset, got %+v", out)
	}
}

func TestNullValuesRejectWrongTypes(t *testing.T) {
	var n NullInt64
	if err := json.Unmarshal([]byte(`"seven"`), &n); err == nil {
		t.Fatalf("expected string to be rejected for NullInt64")
	}
	var ts NullTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatalf("expected non RFC 3339 text to be rejected for NullTime")
	}
}
