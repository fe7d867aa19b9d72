package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/testutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
)

func newSeeder(t *testing.T) (*Seeder, *app.App) {
	t.Helper()
	cfg := app.Config{Env: "test", Port: 5000, JWTSecret: "test-secret", JWTExpire: time.Hour, CacheTTL: time.Minute}
	mem := cache.NewMemory(time.Minute, 0)
	t.Cleanup(func() { _ = mem.Close() })
	a := app.Assemble(cfg, testutil.Logger(t), testutil.DB(t), mem, nil)
	return New(a.Log, a.Repos, a.Services), a
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := testutil.Ctx(t)
	f, err := Load("testdata/sample.yaml")
	require.NoError(t, err)

	s, _ := newSeeder(t)
	first, err := s.Run(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"State": 1, "Division": 1, "Parliament": 1, "Assembly": 2, "Block": 2, "Booth": 2, "Party": 2, "ElectionYear": 2,
	}, first.Created)
	assert.Empty(t, first.Existing)

	second, err := s.Run(ctx, f)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Equal(t, 2, second.Existing["Booth"])
	assert.Equal(t, 2, second.Existing["ElectionYear"])
}

func TestSeedDerivesBoothAncestors(t *testing.T) {
	ctx := testutil.Ctx(t)
	f, err := Load("testdata/sample.yaml")
	require.NoError(t, err)

	s, a := newSeeder(t)
	_, err = s.Run(ctx, f)
	require.NoError(t, err)

	dbc := dbctx.Of(ctx)
	state, err := a.Repos.State.GetByName(dbc, "Madhya Pradesh")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "MP", state.Code)

	booth, err := a.Repos.Booth.FindOne(dbc, map[string]interface{}{"booth_number": "1"})
	require.NoError(t, err)
	require.NotNil(t, booth)
	assert.Equal(t, state.ID, booth.StateID)
	require.NotNil(t, booth.Latitude)
	assert.InDelta(t, 23.63, *booth.Latitude, 1e-9)

	asm, err := a.Repos.Assembly.GetByID(dbc, booth.AssemblyID)
	require.NoError(t, err)
	assert.Equal(t, "Berasia", asm.Name)
	assert.Equal(t, "SC", asm.Type)

	huzur, err := a.Repos.Assembly.FindOne(dbc, map[string]interface{}{"name": "Huzur"})
	require.NoError(t, err)
	assert.Equal(t, "General", huzur.Type)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("states:\n  - name: X\n    capital: Y\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capital")
}

func TestDecodeEmpty(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.States)
}

func TestSeedStopsOnInvalidRows(t *testing.T) {
	ctx := testutil.Ctx(t)
	f, err := Decode(strings.NewReader("parties:\n  - name: No Abbreviation\n"))
	require.NoError(t, err)

	s, _ := newSeeder(t)
	_, err = s.Run(ctx, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create Party")
}
