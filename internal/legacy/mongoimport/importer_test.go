package mongoimport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/testutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
)

type memorySource map[string][]bson.M

func (m memorySource) Each(_ context.Context, collection string, fn func(bson.M) error) error {
	for _, doc := range m[collection] {
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

func oid(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func newApp(t *testing.T) *app.App {
	t.Helper()
	cfg := app.Config{Env: "test", Port: 5000, JWTSecret: "test-secret", JWTExpire: time.Hour, CacheTTL: time.Minute}
	mem := cache.NewMemory(time.Minute, 0)
	t.Cleanup(func() { _ = mem.Close() })
	return app.Assemble(cfg, testutil.Logger(t), testutil.DB(t), mem, nil)
}

func legacyFixture(t *testing.T) (memorySource, map[string]primitive.ObjectID) {
	t.Helper()
	ids := map[string]primitive.ObjectID{
		"state":      oid(t, "64a000000000000000000001"),
		"division":   oid(t, "64a000000000000000000002"),
		"parliament": oid(t, "64a000000000000000000003"),
		"assembly":   oid(t, "64a000000000000000000004"),
		"district":   oid(t, "64a000000000000000000005"),
		"block":      oid(t, "64a000000000000000000006"),
		"booth":      oid(t, "64a000000000000000000007"),
		"orphan":     oid(t, "64a000000000000000000008"),
		"user":       oid(t, "64a000000000000000000009"),
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("legacy-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	created := primitive.NewDateTimeFromTime(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))

	src := memorySource{
		"states": {
			{"_id": ids["state"], "name": "Legacy State", "__v": int32(0), "created_at": created},
		},
		"divisions": {
			{"_id": ids["division"], "name": "Legacy Division", "state_id": ids["state"]},
		},
		"parliaments": {
			{"_id": ids["parliament"], "name": "Legacy PC", "state_id": ids["state"], "division_id": ids["division"]},
		},
		"assemblies": {
			{
				"_id":           ids["assembly"],
				"name":          "Legacy AC",
				"type":          "ST",
				"state_id":      ids["state"],
				"division_id":   ids["division"],
				"parliament_id": ids["parliament"],
				"district_id":   ids["district"],
			},
		},
		"districts": {
			{"_id": ids["district"], "name": "Legacy District", "state_id": ids["state"], "division_id": ids["division"]},
		},
		"blocks": {
			{"_id": ids["block"], "name": "Legacy Block", "assembly_id": bson.M{"_id": ids["assembly"], "name": "Legacy AC"}},
		},
		"booths": {
			{"_id": ids["booth"], "name": "Legacy Booth", "booth_number": "7", "block_id": ids["block"], "latitude": 22.5},
			{"_id": ids["orphan"], "name": "Orphan Booth", "booth_number": "8"},
		},
		"users": {
			{
				"_id":      ids["user"],
				"username": "legacy",
				"email":    "Legacy@Example.com",
				"password": string(hash),
				"role":     "admin",
				"isActive": true,
			},
		},
	}
	return src, ids
}

func find(results []Result, collection string) Result {
	for _, r := range results {
		if r.Collection == collection {
			return r
		}
	}
	return Result{}
}

func TestImportKeepsLegacyReferences(t *testing.T) {
	ctx := testutil.Ctx(t)
	a := newApp(t)
	src, ids := legacyFixture(t)

	results, err := New(a.Log, src, a.Repos, a.Services).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, find(results, "states").Imported)
	assert.Equal(t, 1, find(results, "blocks").Imported)
	assert.Equal(t, Result{Collection: "booths", Imported: 1, Failed: 1}, find(results, "booths"))
	assert.Equal(t, 1, find(results, "assemblies").Linked)

	dbc := dbctx.Of(ctx)
	booth, err := a.Repos.Booth.GetByID(dbc, ref.FromObjectID(ids["booth"].Hex()))
	require.NoError(t, err)
	require.NotNil(t, booth)
	assert.Equal(t, ref.FromObjectID(ids["assembly"].Hex()), booth.AssemblyID)
	assert.Equal(t, ref.FromObjectID(ids["state"].Hex()), booth.StateID)

	asm, err := a.Repos.Assembly.GetByID(dbc, ref.FromObjectID(ids["assembly"].Hex()))
	require.NoError(t, err)
	require.NotNil(t, asm.DistrictID)
	assert.Equal(t, ref.FromObjectID(ids["district"].Hex()), *asm.DistrictID)
	assert.Equal(t, "ST", asm.Type)

	orphan, err := a.Repos.Booth.GetByID(dbc, ref.FromObjectID(ids["orphan"].Hex()))
	require.NoError(t, err)
	assert.Nil(t, orphan)
}

func TestImportKeepsLegacyPasswordHash(t *testing.T) {
	ctx := testutil.Ctx(t)
	a := newApp(t)
	src, _ := legacyFixture(t)

	_, err := New(a.Log, src, a.Repos, a.Services).Run(ctx, "users")
	require.NoError(t, err)

	token, user, err := a.Services.Auth.Login(ctx, "legacy@example.com", "legacy-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", user.Role)
}

func TestImportIsRepeatable(t *testing.T) {
	ctx := testutil.Ctx(t)
	a := newApp(t)
	src, _ := legacyFixture(t)
	im := New(a.Log, src, a.Repos, a.Services)

	_, err := im.Run(ctx)
	require.NoError(t, err)
	again, err := im.Run(ctx)
	require.NoError(t, err)

	for _, r := range again {
		assert.Zero(t, r.Imported, r.Collection)
	}
	assert.Equal(t, 1, find(again, "states").Existing)
	assert.Equal(t, 1, find(again, "users").Existing)
}

func TestImportRejectsUnknownCollection(t *testing.T) {
	a := newApp(t)
	_, err := New(a.Log, memorySource{}, a.Repos, a.Services).Run(context.Background(), "voters")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}

func TestToJSONFlattensBSONValues(t *testing.T) {
	id := oid(t, "64a0000000000000000000aa")
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	body, err := toJSON(bson.M{
		"_id":   id,
		"__v":   int32(3),
		"ref":   id,
		"when":  primitive.NewDateTimeFromTime(at),
		"tags":  bson.A{"a", id},
		"inner": bson.D{{Key: "x", Value: int32(1)}},
		"skip":  "me",
	}, "skip")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ref": "64a0000000000000000000aa",
		"when": "2024-01-02T03:04:05Z",
		"tags": ["a", "64a0000000000000000000aa"],
		"inner": {"x": 1}
	}`, string(body))
}
