package clans

import (
	"encoding/json"
	"testing"
)

func TestClanRenamed(t *testing.T) {
	if (Clan{}).Renamed() {
		t.Fatalf("expected clan without former name not to be renamed")
	}
	if !(Clan{OldName: "Old Guard"}).Renamed() {
		t.Fatalf("expected renamed clan")
	}
}

func TestSummaryMarshalsUnsetCountsAsNull(t *testing.T) {
	raw, err := json.Marshal(Summary{ID: 1, Tag: "ACE", Name: "Aces"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"tag":"ACE","name":"Aces","membersCount":null,"createdAt":null}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}
