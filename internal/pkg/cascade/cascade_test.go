package cascade

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type tree struct {
	provider             Static
	mp, rj               uuid.UUID
	bhopal, jaipur       uuid.UUID
	bhopalPC, jaipurPC   uuid.UUID
	govindpura, sanganer uuid.UUID
	blockA, blockB       uuid.UUID
	booth1, booth2       uuid.UUID
}

func newTree() tree {
	t := tree{
		mp: uuid.New(), rj: uuid.New(),
		bhopal: uuid.New(), jaipur: uuid.New(),
		bhopalPC: uuid.New(), jaipurPC: uuid.New(),
		govindpura: uuid.New(), sanganer: uuid.New(),
		blockA: uuid.New(), blockB: uuid.New(),
		booth1: uuid.New(), booth2: uuid.New(),
	}
	t.provider = Static{
		State: {{ID: t.mp, Name: "Madhya Pradesh"}, {ID: t.rj, Name: "Rajasthan"}},
		Division: {
			{ID: t.bhopal, Name: "Bhopal", ParentID: t.mp},
			{ID: t.jaipur, Name: "Jaipur", ParentID: t.rj},
		},
		Parliament: {
			{ID: t.bhopalPC, Name: "Bhopal PC", ParentID: t.bhopal},
			{ID: t.jaipurPC, Name: "Jaipur PC", ParentID: t.jaipur},
		},
		Assembly: {
			{ID: t.govindpura, Name: "Govindpura", ParentID: t.bhopalPC},
			{ID: t.sanganer, Name: "Sanganer", ParentID: t.jaipurPC},
		},
		Block: {
			{ID: t.blockA, Name: "Block A", ParentID: t.govindpura},
			{ID: t.blockB, Name: "Block B", ParentID: t.govindpura},
		},
		Booth: {
			{ID: t.booth1, Name: "Booth 1", ParentID: t.blockA},
			{ID: t.booth2, Name: "Booth 2", ParentID: t.blockB},
		},
	}
	return t
}

func TestResolveEmptySelectionOnlyListsStates(t *testing.T) {
	tr := newTree()
	res, err := Resolve(context.Background(), Selection{}, tr.provider)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(res.Options[State]) != 2 {
		t.Fatalf("state options: got=%d want=2", len(res.Options[State]))
	}
	for _, l := range Levels[1:] {
		if len(res.Options[l]) != 0 {
			t.Fatalf("%s options should be empty without a parent, got %d", l, len(res.Options[l]))
		}
	}
}

func TestResolveFiltersChildrenOfSelectedParent(t *testing.T) {
	tr := newTree()
	sel := Selection{}.With(State, tr.mp).With(Division, tr.bhopal)
	res, err := Resolve(context.Background(), sel, tr.provider)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := res.Options[Division]; len(got) != 1 || got[0].ID != tr.bhopal {
		t.Fatalf("division options: got=%v", got)
	}
	if got := res.Options[Parliament]; len(got) != 1 || got[0].ID != tr.bhopalPC {
		t.Fatalf("parliament options: got=%v", got)
	}
}

func TestResolveClearsInvalidChildAndEverythingBelow(t *testing.T) {
	tr := newTree()
	// Edit mode: stored chain points at Jaipur, then the state is switched to MP.
	sel := Selection{tr.mp, tr.jaipur, tr.jaipurPC, tr.sanganer, tr.blockA, tr.booth1}
	res, err := Resolve(context.Background(), sel, tr.provider)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Selection.Get(State) != tr.mp {
		t.Fatalf("state should survive")
	}
	for _, l := range Levels[1:] {
		if res.Selection.Get(l) != uuid.Nil {
			t.Fatalf("%s should be cleared, got %s", l, res.Selection.Get(l))
		}
	}
}

func TestResolveKeepsFullyValidChain(t *testing.T) {
	tr := newTree()
	sel := Selection{tr.mp, tr.bhopal, tr.bhopalPC, tr.govindpura, tr.blockB, tr.booth2}
	res, err := Resolve(context.Background(), sel, tr.provider)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Selection != sel {
		t.Fatalf("selection changed: got=%v want=%v", res.Selection, sel)
	}
	if !res.Complete() {
		t.Fatalf("chain should be complete")
	}
}

func TestResolveBoothFromOtherBlockIsCleared(t *testing.T) {
	tr := newTree()
	sel := Selection{tr.mp, tr.bhopal, tr.bhopalPC, tr.govindpura, tr.blockA, tr.booth2}
	res, err := Resolve(context.Background(), sel, tr.provider)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Selection.Get(Block) != tr.blockA {
		t.Fatalf("block should survive")
	}
	if res.Selection.Get(Booth) != uuid.Nil {
		t.Fatalf("booth from another block should be cleared")
	}
	if res.Complete() {
		t.Fatalf("chain should not be complete")
	}
}

func TestSelectClearsLowerLevels(t *testing.T) {
	tr := newTree()
	sel := Selection{tr.mp, tr.bhopal, tr.bhopalPC, tr.govindpura, tr.blockA, tr.booth1}
	sel = sel.Select(Parliament, tr.jaipurPC)
	if sel.Get(Division) != tr.bhopal || sel.Get(Parliament) != tr.jaipurPC {
		t.Fatalf("upper levels changed: %v", sel)
	}
	for _, l := range []Level{Assembly, Block, Booth} {
		if sel.Get(l) != uuid.Nil {
			t.Fatalf("%s should be cleared by Select", l)
		}
	}
}

func TestResolvePropagatesProviderErrors(t *testing.T) {
	boom := errors.New("db down")
	p := ProviderFunc(func(context.Context, Level, uuid.UUID) ([]Option, error) { return nil, boom })
	if _, err := Resolve(context.Background(), Selection{}, p); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"state": State, "division_id": Division, " Booth ": Booth}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q): got=%v,%v want=%v", in, got, ok, want)
		}
	}
	if _, ok := ParseLevel("district"); ok {
		t.Fatalf("district is not part of the chain")
	}
}
