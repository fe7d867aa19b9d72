package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRequestDataRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithRequestData(context.Background(), &RequestData{UserID: id, Role: "editor"})

	rd := GetRequestData(ctx)
	if rd == nil || rd.UserID != id {
		t.Fatalf("request data not found: %#v", rd)
	}
	if got := ActorID(ctx); got == nil || *got != id {
		t.Fatalf("ActorID: got=%v want=%s", got, id)
	}
	if ActorID(context.Background()) != nil {
		t.Fatalf("ActorID should be nil for anonymous context")
	}
}

func TestHasRole(t *testing.T) {
	super := &RequestData{Role: "SuperAdmin"}
	if !super.HasRole("admin") {
		t.Fatalf("superAdmin must bypass role checks")
	}
	editor := &RequestData{Role: "editor"}
	if !editor.HasRole("admin", "editor") {
		t.Fatalf("editor should match editor")
	}
	if editor.HasRole("admin") {
		t.Fatalf("editor should not match admin")
	}
	var anon *RequestData
	if anon.HasRole("viewer") {
		t.Fatalf("nil request data has no roles")
	}
}
