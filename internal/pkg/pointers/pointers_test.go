package pointers

import (
	"testing"

	"github.com/google/uuid"
)

func TestDeref(t *testing.T) {
	if got := Deref[int](nil); got != 0 {
		t.Fatalf("Deref(nil): got=%d want=0", got)
	}
	if got := Deref(Int(7)); got != 7 {
		t.Fatalf("Deref: got=%d want=7", got)
	}
}

func TestUUIDNilStaysUnset(t *testing.T) {
	if UUID(uuid.Nil) != nil {
		t.Fatalf("uuid.Nil should map to a nil pointer")
	}
	id := uuid.New()
	if got := UUID(id); got == nil || *got != id {
		t.Fatalf("UUID: got=%v want=%s", got, id)
	}
}
