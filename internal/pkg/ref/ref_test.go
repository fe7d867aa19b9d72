package ref

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

type state struct {
	Name string `json:"name"`
}

type body struct {
	StateID *Ref[state] `json:"state_id"`
}

func TestRefAcceptsRawID(t *testing.T) {
	id := uuid.New()
	var b body
	if err := json.Unmarshal([]byte(`{"state_id":"`+id.String()+`"}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.StateID == nil || b.StateID.ID != id {
		t.Fatalf("id: got=%v want=%s", b.StateID, id)
	}
	if b.StateID.Doc != nil {
		t.Fatalf("raw id should not carry a doc")
	}
}

func TestRefAcceptsPopulatedObject(t *testing.T) {
	id := uuid.New()
	var b body
	raw := `{"state_id":{"_id":"` + id.String() + `","name":"Goa"}}`
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.StateID.ID != id {
		t.Fatalf("id: got=%s want=%s", b.StateID.ID, id)
	}
	if b.StateID.Doc == nil || b.StateID.Doc.Name != "Goa" {
		t.Fatalf("doc: got=%#v", b.StateID.Doc)
	}
}

func TestRefMapsObjectIDsDeterministically(t *testing.T) {
	const hexID = "64b7f0c2a1b2c3d4e5f60718"
	a, err := ParseID(hexID)
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	b, _ := ParseID("64B7F0C2A1B2C3D4E5F60718")
	if a != b || a != FromObjectID(hexID) {
		t.Fatalf("object id mapping is not stable: %s %s", a, b)
	}
}

func TestRefRejectsGarbage(t *testing.T) {
	var b body
	if err := json.Unmarshal([]byte(`{"state_id":"not-an-id"}`), &b); err == nil {
		t.Fatalf("expected error for malformed id")
	}
	if err := json.Unmarshal([]byte(`{"state_id":42}`), &b); err == nil {
		t.Fatalf("expected error for numeric reference")
	}
}

func TestRefNullAndEmptyAreUnset(t *testing.T) {
	for _, raw := range []string{`{"state_id":null}`, `{"state_id":""}`} {
		var b body
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if b.StateID != nil && !b.StateID.IsZero() {
			t.Fatalf("%s should decode as unset, got %s", raw, b.StateID.ID)
		}
	}
}

func TestRefMarshal(t *testing.T) {
	id := uuid.New()
	out, err := json.Marshal(Of[state](id))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"`+id.String()+`"` {
		t.Fatalf("marshal: got=%s", out)
	}
}
