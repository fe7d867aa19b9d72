package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/testutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/cascade"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/pointers"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
)

func wantAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %d %q, got nil", status, message)
	}
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *apierr.Error, got %T: %v", err, err)
	}
	if apiErr.Status != status || (message != "" && apiErr.Message != message) {
		t.Fatalf("got %d %q, want %d %q", apiErr.Status, apiErr.Message, status, message)
	}
}

func TestDivisionRequiresExistingState(t *testing.T) {
	h := newHarness(t)

	state, err := h.stateSvc.Create(h.ctx, StateInput{Name: pointers.String("Test State")})
	if err != nil {
		t.Fatalf("create state: %v", err)
	}
	div, err := h.divisionSvc.Create(h.ctx, DivisionInput{
		Name:    pointers.String("Test Division"),
		StateID: ref.Of[geo.State](state.ID),
	})
	if err != nil {
		t.Fatalf("create division: %v", err)
	}
	if div.State == nil || div.State.Name != "Test State" {
		t.Fatalf("division state not populated: %+v", div.State)
	}

	_, err = h.divisionSvc.Create(h.ctx, DivisionInput{
		Name:    pointers.String("Orphan"),
		StateID: ref.Of[geo.State](uuid.New()),
	})
	wantAPIError(t, err, http.StatusBadRequest, "State not found")
	if n := h.count(t, &geo.Division{}); n != 1 {
		t.Fatalf("divisions persisted: %d", n)
	}
}

func TestDuplicateStateNameIsBadRequest(t *testing.T) {
	h := newHarness(t)
	if _, err := h.stateSvc.Create(h.ctx, StateInput{Name: pointers.String("Goa")}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := h.stateSvc.Create(h.ctx, StateInput{Name: pointers.String("Goa")})
	wantAPIError(t, err, http.StatusBadRequest, "State already exists")
}

func TestStateUpdateIsPartial(t *testing.T) {
	h := newHarness(t)
	st, err := h.stateSvc.Create(h.ctx, StateInput{Name: pointers.String("Kerala"), Code: pointers.String("KL")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := h.stateSvc.Update(h.ctx, st.ID, StateInput{Code: pointers.String("KE")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Kerala" || got.Code != "KE" {
		t.Fatalf("partial update: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Fatalf("updated_at before created_at")
	}

	_, err = h.stateSvc.Update(h.ctx, uuid.New(), StateInput{Code: pointers.String("X")})
	wantAPIError(t, err, http.StatusNotFound, "State not found")
}

func TestBoothWithMissingBlockPersistsNothing(t *testing.T) {
	h := newHarness(t)
	_, err := h.boothSvc.Create(h.ctx, BoothInput{
		Name:        pointers.String("Ghost booth"),
		BoothNumber: pointers.String("99"),
		BlockID:     ref.Of[geo.Block](uuid.New()),
	})
	wantAPIError(t, err, http.StatusBadRequest, "Block not found")
	if n := h.count(t, &geo.Booth{}); n != 0 {
		t.Fatalf("booths persisted: %d", n)
	}
}

func TestBoothDerivesAncestorsFromBlock(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Indore")

	b, err := h.boothSvc.Create(h.ctx, BoothInput{
		Name:        pointers.String("School"),
		BoothNumber: pointers.String("12"),
		BlockID:     ref.Of[geo.Block](chain.Block.ID),
		Latitude:    pointers.Float64(22.7),
	})
	if err != nil {
		t.Fatalf("create booth: %v", err)
	}
	if b.AssemblyID != chain.Assembly.ID || b.ParliamentID != chain.Parliament.ID ||
		b.DivisionID != chain.Division.ID || b.StateID != chain.State.ID {
		t.Fatalf("ancestors not derived: %+v", b)
	}

	_, err = h.boothSvc.Create(h.ctx, BoothInput{
		Name:        pointers.String("Far"),
		BoothNumber: pointers.String("13"),
		BlockID:     ref.Of[geo.Block](chain.Block.ID),
		Latitude:    pointers.Float64(120),
	})
	wantAPIError(t, err, http.StatusBadRequest, "latitude must be between -90 and 90")
}

func TestBlockDerivesAncestorsFromAssembly(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Bhopal")

	blk, err := h.blockSvc.Create(h.ctx, BlockInput{
		Name:       pointers.String("Phanda"),
		AssemblyID: ref.Of[geo.Assembly](chain.Assembly.ID),
	})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}
	if blk.StateID != chain.State.ID || blk.DivisionID != chain.Division.ID || blk.ParliamentID != chain.Parliament.ID {
		t.Fatalf("ancestors not derived: %+v", blk)
	}
	if blk.Assembly == nil || blk.Assembly.ID != chain.Assembly.ID {
		t.Fatalf("assembly not populated")
	}
}

func TestSingleCurrentMLAPerAssembly(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Dewas")
	party := testutil.SeedParty(t, h.ctx, h.db, "Party A", "PA")

	create := func(name string, start int) *politics.AccomplishedMLA {
		t.Helper()
		m, err := h.mlaSvc.Create(h.ctx, AccomplishedMLAInput{
			Name:       pointers.String(name),
			AssemblyID: ref.Of[geo.Assembly](chain.Assembly.ID),
			PartyID:    ref.Of[politics.Party](party.ID),
			TermStart:  pointers.Int(start),
			IsCurrent:  pointers.Bool(true),
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		return m
	}
	first := create("First", 2013)
	second := create("Second", 2018)

	assertCurrent := func(want uuid.UUID) {
		t.Helper()
		n, err := h.mlas.CountCurrentByAssemblyID(dbctx.Of(h.ctx), chain.Assembly.ID)
		if err != nil || n != 1 {
			t.Fatalf("current count: n=%d err=%v", n, err)
		}
		cur, err := h.mlaSvc.GetCurrent(h.ctx, chain.Assembly.ID)
		if err != nil {
			t.Fatalf("GetCurrent: %v", err)
		}
		if cur.ID != want {
			t.Fatalf("current: got=%s want=%s", cur.ID, want)
		}
	}
	assertCurrent(second.ID)

	if _, err := h.mlaSvc.SetCurrent(h.ctx, first.ID); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}
	assertCurrent(first.ID)

	if _, err := h.mlaSvc.Update(h.ctx, second.ID, AccomplishedMLAInput{IsCurrent: pointers.Bool(true)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	assertCurrent(second.ID)

	_, err := h.mlaSvc.GetCurrent(h.ctx, uuid.New())
	wantAPIError(t, err, http.StatusNotFound, "")
}

func TestElectionStatsTurnout(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Sagar")
	year := testutil.SeedYear(t, h.ctx, h.db, 2023)
	year2 := testutil.SeedYear(t, h.ctx, h.db, 2018)

	// No registered count anywhere: turnout stays absent.
	stats, err := h.statsSvc.Create(h.ctx, BoothElectionStatsInput{
		BoothID:          ref.Of[geo.Booth](chain.Booth.ID),
		YearID:           ref.Of[politics.ElectionYear](year2.ID),
		TotalVotesPolled: pointers.Int(500),
	})
	if err != nil {
		t.Fatalf("create without registered: %v", err)
	}
	if stats.TurnoutPercentage != nil {
		t.Fatalf("turnout should be absent, got %v", *stats.TurnoutPercentage)
	}

	if _, err := h.dynamicsSvc.Create(h.ctx, LocalDynamicsInput{
		BoothID:          ref.Of[geo.Booth](chain.Booth.ID),
		RegisteredVoters: pointers.Int(1200),
	}); err != nil {
		t.Fatalf("create local dynamics: %v", err)
	}
	stats, err = h.statsSvc.Create(h.ctx, BoothElectionStatsInput{
		BoothID:          ref.Of[geo.Booth](chain.Booth.ID),
		YearID:           ref.Of[politics.ElectionYear](year.ID),
		TotalVotesPolled: pointers.Int(845),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if stats.TurnoutPercentage == nil || math.Abs(*stats.TurnoutPercentage-70.42) > 0.001 {
		t.Fatalf("turnout: %v", stats.TurnoutPercentage)
	}

	explicit, err := h.statsSvc.Update(h.ctx, stats.ID, BoothElectionStatsInput{
		TotalVotesPolled:  pointers.Int(900),
		TurnoutPercentage: pointers.Float64(50),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if explicit.TurnoutPercentage == nil || *explicit.TurnoutPercentage != 50 {
		t.Fatalf("explicit turnout overwritten: %v", explicit.TurnoutPercentage)
	}

	rows, err := h.statsSvc.ListByBooth(h.ctx, chain.Booth.ID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("ListByBooth: err=%v len=%d", err, len(rows))
	}
	if rows[0].Year == nil || rows[0].Year.Year != 2023 {
		t.Fatalf("latest year first: %+v", rows[0].Year)
	}
}

func TestTurnout(t *testing.T) {
	if Turnout(10, 0) != nil {
		t.Fatalf("zero registered must be absent")
	}
	if got := Turnout(1, 3); got == nil || *got != 33.33 {
		t.Fatalf("Turnout(1,3) = %v", got)
	}
}

func TestActivePartyDuplicateAndToggle(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Rewa")
	party := testutil.SeedParty(t, h.ctx, h.db, "Party C", "PC")

	in := ActivePartyInput{
		BoothID: ref.Of[geo.Booth](chain.Booth.ID),
		PartyID: ref.Of[politics.Party](party.ID),
	}
	ap, err := h.activeSvc.Create(h.ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !ap.ActiveStatus {
		t.Fatalf("new active party should be active")
	}
	_, err = h.activeSvc.Create(h.ctx, in)
	wantAPIError(t, err, http.StatusBadRequest, "Active party already exists")
	if n := h.count(t, &booth.ActiveParty{}); n != 1 {
		t.Fatalf("rows: %d", n)
	}

	once, err := h.activeSvc.Toggle(h.ctx, ap.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if once.ActiveStatus || once.LastActiveStatus == nil || !*once.LastActiveStatus {
		t.Fatalf("after one toggle: active=%v last=%v", once.ActiveStatus, once.LastActiveStatus)
	}
	twice, err := h.activeSvc.Toggle(h.ctx, ap.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !twice.ActiveStatus || twice.LastActiveStatus == nil || *twice.LastActiveStatus {
		t.Fatalf("after two toggles: active=%v last=%v", twice.ActiveStatus, twice.LastActiveStatus)
	}
}

func TestActivePartyUpdateKeepsReferencesValid(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Sidhi")
	first := testutil.SeedParty(t, h.ctx, h.db, "Party D", "PD")
	second := testutil.SeedParty(t, h.ctx, h.db, "Party E", "PE")

	if _, err := h.activeSvc.Create(h.ctx, ActivePartyInput{
		BoothID: ref.Of[geo.Booth](chain.Booth.ID),
		PartyID: ref.Of[politics.Party](first.ID),
	}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	other, err := h.activeSvc.Create(h.ctx, ActivePartyInput{
		BoothID: ref.Of[geo.Booth](chain.Booth.ID),
		PartyID: ref.Of[politics.Party](second.ID),
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	_, err = h.activeSvc.Update(h.ctx, other.ID, ActivePartyInput{PartyID: ref.Of[politics.Party](first.ID)})
	wantAPIError(t, err, http.StatusBadRequest, "Active party already exists")

	_, err = h.activeSvc.Update(h.ctx, other.ID, ActivePartyInput{PartyID: ref.Of[politics.Party](uuid.New())})
	wantAPIError(t, err, http.StatusBadRequest, "Party not found")

	got, err := h.activeSvc.Get(h.ctx, other.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PartyID != second.ID || got.BoothID != chain.Booth.ID {
		t.Fatalf("row changed by rejected updates: %+v", got)
	}
	if n := h.count(t, &booth.ActiveParty{}); n != 2 {
		t.Fatalf("rows: %d", n)
	}
}

func TestCheckRefsReportsFirstMissingInOrder(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Satna")

	err := CheckRefs(h.ctx,
		RefID("State", chain.State.ID, h.states),
		RefID("Division", uuid.New(), h.divisions),
		RefID("Parliament", uuid.New(), h.parliaments),
		Ref("District", nil, h.districts),
	)
	wantAPIError(t, err, http.StatusBadRequest, "Division not found")

	if err := CheckRefs(h.ctx, RefID("Booth", chain.Booth.ID, h.booths)); err != nil {
		t.Fatalf("existing ref: %v", err)
	}
}

func TestBoothAdminValidation(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Katni")

	_, err := h.adminSvc.Create(h.ctx, BoothAdminInput{
		BoothID: ref.Of[geo.Booth](chain.Booth.ID),
		Name:    pointers.String("Ravi"),
		Mobile:  pointers.String("12345"),
	})
	wantAPIError(t, err, http.StatusBadRequest, "Please provide a valid 10-digit mobile number")

	a, err := h.adminSvc.Create(h.ctx, BoothAdminInput{
		BoothID: ref.Of[geo.Booth](chain.Booth.ID),
		Name:    pointers.String("Ravi"),
		Mobile:  pointers.String("9876543210"),
		Email:   pointers.String("Ravi@Example.com"),
		Role:    pointers.String("Secretary"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Role != "secretary" || a.Email != "ravi@example.com" || !a.IsActive {
		t.Fatalf("normalisation: %+v", a)
	}
}

func TestPartyActivityEnums(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Guna")
	party := testutil.SeedParty(t, h.ctx, h.db, "Party D", "PD")

	_, err := h.activitySvc.Create(h.ctx, PartyActivityInput{
		Title:        pointers.String("Rally"),
		ActivityType: pointers.String("parade"),
		ActivityDate: &Date{},
		PartyID:      ref.Of[politics.Party](party.ID),
		ParliamentID: ref.Of[geo.Parliament](chain.Parliament.ID),
	})
	if apierr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}

	var date Date
	if err := date.UnmarshalJSON([]byte(`"2024-03-01"`)); err != nil {
		t.Fatalf("date: %v", err)
	}
	act, err := h.activitySvc.Create(h.ctx, PartyActivityInput{
		Title:        pointers.String("Rally"),
		ActivityType: pointers.String("rally"),
		ActivityDate: &date,
		PartyID:      ref.Of[politics.Party](party.ID),
		ParliamentID: ref.Of[geo.Parliament](chain.Parliament.ID),
		BoothID:      ref.Of[geo.Booth](chain.Booth.ID),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if act.Status != "scheduled" || act.Booth == nil {
		t.Fatalf("activity: status=%q booth=%v", act.Status, act.Booth)
	}
}

func TestBoothSummary(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Damoh")
	if _, err := h.dynamicsSvc.Create(h.ctx, LocalDynamicsInput{
		BoothID:   ref.Of[geo.Booth](chain.Booth.ID),
		KeyIssues: &[]string{"water", " roads ", ""},
	}); err != nil {
		t.Fatalf("local dynamics: %v", err)
	}
	sum, err := h.boothSvc.Summary(h.ctx, chain.Booth.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Booth.ID != chain.Booth.ID || sum.LocalDynamics == nil {
		t.Fatalf("summary: %+v", sum)
	}
	if got := []string(sum.LocalDynamics.KeyIssues); len(got) != 2 || got[1] != "roads" {
		t.Fatalf("key issues: %v", got)
	}
	if sum.Demographics != nil || len(sum.Admins) != 0 {
		t.Fatalf("unexpected satellites: %+v", sum)
	}
}

func TestHierarchyOptionsCacheAndInvalidate(t *testing.T) {
	h := newHarness(t)
	chain := testutil.SeedChain(t, h.ctx, h.db, "Morena")

	res, err := h.hierarchy.Resolve(h.ctx, cascade.Selection{}.Select(cascade.State, chain.State.ID))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(res.Options[cascade.Division]) != 1 || res.Options[cascade.Division][0].ID != chain.Division.ID {
		t.Fatalf("division options: %+v", res.Options[cascade.Division])
	}

	if _, err := h.divisionSvc.Create(h.ctx, DivisionInput{
		Name:    pointers.String("Second"),
		StateID: ref.Of[geo.State](chain.State.ID),
	}); err != nil {
		t.Fatalf("create division: %v", err)
	}
	opts, err := h.hierarchy.Options(context.Background(), cascade.Division, chain.State.ID)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("cache not invalidated after write: %d options", len(opts))
	}
}
