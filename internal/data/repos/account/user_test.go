package account

import (
	"testing"
	"time"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/testutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: testutil.Ctx(t)}
	repo := NewUserRepo(db, testutil.Logger(t))

	u := &account.User{
		Username:  "ops",
		Email:     "ops@example.com",
		Password:  "hash",
		Role:      account.RoleEditor,
		RegionIDs: []string{"r1", "r2"},
		IsActive:  true,
	}
	u.StampCreate(time.Now().UTC(), nil)
	if err := repo.Create(dbc, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(dbc, "  OPS@example.com ")
	if err != nil || got == nil {
		t.Fatalf("GetByEmail: err=%v row=%v", err, got)
	}
	if len(got.RegionIDs) != 2 || got.RegionIDs[1] != "r2" {
		t.Fatalf("region ids: got=%v", got.RegionIDs)
	}

	if ok, _ := repo.EmailExists(dbc, "ops@example.com"); !ok {
		t.Fatalf("EmailExists should be true")
	}
	if ok, _ := repo.EmailExists(dbc, "nobody@example.com"); ok {
		t.Fatalf("EmailExists should be false")
	}

	at := time.Now().UTC().Truncate(time.Second)
	if err := repo.UpdateLastLogin(dbc, u.ID, at); err != nil {
		t.Fatalf("UpdateLastLogin: %v", err)
	}
	got, _ = repo.GetByID(dbc, u.ID)
	if got.LastLogin == nil || !got.LastLogin.Equal(at) {
		t.Fatalf("last login: got=%v want=%v", got.LastLogin, at)
	}

	if n, _ := repo.CountByRole(dbc, account.RoleEditor); n != 1 {
		t.Fatalf("CountByRole: got=%d want=1", n)
	}
}
