package app

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/testutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/pointers"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Total   *int64          `json:"total"`
	Page    *int            `json:"page"`
	Limit   *int            `json:"limit"`
	Pages   *int            `json:"pages"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	t   *testing.T
	app *App
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := Config{
		Env:       "test",
		Port:      5000,
		JWTSecret: "test-secret",
		JWTExpire: time.Hour,
		CacheTTL:  time.Minute,
	}
	mem := cache.NewMemory(time.Minute, 0)
	t.Cleanup(func() { _ = mem.Close() })
	return &testApp{t: t, app: Assemble(cfg, testutil.Logger(t), testutil.DB(t), mem, nil)}
}

// userToken creates a user with role and logs in through the API.
func (ta *testApp) userToken(role string) string {
	ta.t.Helper()
	ctx := testutil.Ctx(ta.t)
	email := role + "@example.com"
	_, err := ta.app.Services.User.Create(ctx, services.UserInput{
		Username: pointers.String(role),
		Email:    pointers.String(email),
		Password: pointers.String("secret123"),
		Role:     pointers.String(role),
	})
	require.NoError(ta.t, err)

	rec := ta.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "secret123"})
	require.Equal(ta.t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(ta.t, rec)
	require.NotEmpty(ta.t, env.Token)
	return env.Token
}

func (ta *testApp) do(method, path, token string, body any) *httptest.ResponseRecorder {
	ta.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ta.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ta.app.Router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func dataID(t *testing.T, env envelope) string {
	t.Helper()
	var row struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &row))
	require.NotEmpty(t, row.ID)
	return row.ID
}

func TestStateAndDivisionLifecycle(t *testing.T) {
	ta := newTestApp(t)
	token := ta.userToken("superAdmin")

	rec := ta.do(http.MethodPost, "/api/states", token, map[string]string{"name": "Test State"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	stateID := dataID(t, decode(t, rec))

	rec = ta.do(http.MethodPost, "/api/divisions", token, map[string]string{"name": "Test Division", "state_id": stateID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	divisionID := dataID(t, decode(t, rec))

	rec = ta.do(http.MethodPost, "/api/divisions", token, map[string]string{"name": "Orphan", "state_id": "65a1b2c3d4e5f6a7b8c9d0e1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "State not found", env.Message)

	rec = ta.do(http.MethodGet, "/api/divisions/"+divisionID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var division struct {
		Name    string `json:"name"`
		StateID string `json:"state_id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &division))
	assert.Equal(t, "Test Division", division.Name)
	assert.Equal(t, stateID, division.StateID)

	rec = ta.do(http.MethodPut, "/api/states/"+stateID, token, map[string]string{"name": "Renamed State"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ta.do(http.MethodPost, "/api/states", token, map[string]string{"name": "Renamed State"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "State already exists", decode(t, rec).Message)

	rec = ta.do(http.MethodDelete, "/api/states/"+stateID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ta.do(http.MethodGet, "/api/states/"+stateID, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "State not found", decode(t, rec).Message)
}

func TestUnknownAndMalformedIDs(t *testing.T) {
	ta := newTestApp(t)
	for _, id := range []string{"65a1b2c3d4e5f6a7b8c9d0e1", "not-an-id"} {
		rec := ta.do(http.MethodGet, "/api/booths/"+id, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
		assert.Equal(t, "Booth not found", decode(t, rec).Message)
	}
}

func TestWriteAccessByRole(t *testing.T) {
	ta := newTestApp(t)
	editor := ta.userToken("editor")
	viewer := ta.userToken("viewer")
	admin := ta.userToken("admin")

	rec := ta.do(http.MethodPost, "/api/parties", "", map[string]string{"name": "Party", "abbreviation": "P"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ta.do(http.MethodPost, "/api/parties", viewer, map[string]string{"name": "Party", "abbreviation": "P"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ta.do(http.MethodPost, "/api/parties", editor, map[string]string{"name": "Party", "abbreviation": "P"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	partyID := dataID(t, decode(t, rec))

	rec = ta.do(http.MethodDelete, "/api/parties/"+partyID, editor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ta.do(http.MethodGet, "/api/users", admin, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ta.do(http.MethodDelete, "/api/parties/"+partyID, admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ta.do(http.MethodGet, "/api/parties", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, *decode(t, rec).Count)
}

func TestListPagination(t *testing.T) {
	ta := newTestApp(t)
	ctx := testutil.Ctx(t)
	for i := 0; i < 23; i++ {
		_, err := ta.app.Services.State.Create(ctx, services.StateInput{Name: pointers.String("State " + strconv.Itoa(100+i))})
		require.NoError(t, err)
	}

	rec := ta.do(http.MethodGet, "/api/states?page=2&limit=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	var rows []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &rows))

	assert.LessOrEqual(t, len(rows), 10)
	assert.Equal(t, len(rows), *env.Count)
	assert.Equal(t, 2, *env.Page)
	assert.Equal(t, int64(23), *env.Total)
	assert.Equal(t, 10, *env.Limit)
	assert.Equal(t, int(math.Ceil(float64(*env.Total)/10)), *env.Pages)

	rec = ta.do(http.MethodGet, "/api/states?limit=500", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env = decode(t, rec)
	assert.Equal(t, 100, *env.Limit)
	assert.Equal(t, int(math.Ceil(float64(*env.Total)/float64(*env.Limit))), *env.Pages)

	rec = ta.do(http.MethodGet, "/api/states?search=state%20115", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), *decode(t, rec).Total)

	rec = ta.do(http.MethodGet, "/api/states?sort=password", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActivePartyToggleEndpoint(t *testing.T) {
	ta := newTestApp(t)
	token := ta.userToken("admin")
	ctx := testutil.Ctx(t)
	chain := testutil.SeedChain(t, ctx, ta.app.DB, "Toggle")
	party := testutil.SeedParty(t, ctx, ta.app.DB, "Toggle Party", "TP")

	rec := ta.do(http.MethodPost, "/api/active-parties", token, map[string]string{
		"booth_id": chain.Booth.ID.String(),
		"party_id": party.ID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := dataID(t, decode(t, rec))

	type flags struct {
		Active bool  `json:"Active_status"`
		Last   *bool `json:"last_Active_status"`
	}
	toggle := func() flags {
		rec := ta.do(http.MethodPatch, "/api/active-parties/"+id+"/toggle", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var f flags
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &f))
		return f
	}
	first := toggle()
	assert.False(t, first.Active)
	require.NotNil(t, first.Last)
	assert.True(t, *first.Last)

	second := toggle()
	assert.True(t, second.Active)
	require.NotNil(t, second.Last)
	assert.False(t, *second.Last)

	rec = ta.do(http.MethodPost, "/api/active-parties", token, map[string]string{
		"booth_id": chain.Booth.ID.String(),
		"party_id": party.ID.String(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Message, "already exists")
}

func TestHierarchyOptionsEndpoint(t *testing.T) {
	ta := newTestApp(t)
	ctx := testutil.Ctx(t)
	a := testutil.SeedChain(t, ctx, ta.app.DB, "North")
	b := testutil.SeedChain(t, ctx, ta.app.DB, "South")

	// b's division does not belong to a's state, so it is cleared along with
	// every level below it.
	rec := ta.do(http.MethodGet, "/api/hierarchy/options?state_id="+a.State.ID.String()+"&division_id="+b.Division.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var levels []struct {
		Level    string `json:"level"`
		Selected string `json:"selected"`
		Options  []struct {
			ID string `json:"_id"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &levels))
	require.Len(t, levels, 6)

	assert.Equal(t, "state", levels[0].Level)
	assert.Equal(t, a.State.ID.String(), levels[0].Selected)
	assert.Len(t, levels[0].Options, 2)

	assert.Equal(t, "division", levels[1].Level)
	assert.Empty(t, levels[1].Selected)
	require.Len(t, levels[1].Options, 1)
	assert.Equal(t, a.Division.ID.String(), levels[1].Options[0].ID)
	assert.Empty(t, levels[2].Options)

	rec = ta.do(http.MethodGet, "/api/hierarchy/options?block_id=nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthEndpoints(t *testing.T) {
	ta := newTestApp(t)
	token := ta.userToken("superAdmin")

	rec := ta.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &me))
	assert.Equal(t, "superadmin@example.com", me.Email)
	assert.Empty(t, me.Password)

	rec = ta.do(http.MethodPost, "/api/auth/register", token, map[string]string{
		"username": "ops", "email": "ops@example.com", "password": "secret123", "role": "editor",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ta.do(http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ta.do(http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ta.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ops@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthcheck(t *testing.T) {
	ta := newTestApp(t)
	rec := ta.do(http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
