package booth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type ActivePartyRepo interface {
	store.Repo[booth.ActiveParty]
	ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.ActiveParty, error)
	SetStatus(dbc dbctx.Context, id uuid.UUID, active bool, last *bool, now time.Time, actor *uuid.UUID) error
}

type activePartyRepo struct {
	*store.Store[booth.ActiveParty]
}

func NewActivePartyRepo(db *gorm.DB, baseLog *logger.Logger) ActivePartyRepo {
	return &activePartyRepo{Store: store.New[booth.ActiveParty](db, baseLog.With("repo", "ActivePartyRepo"))}
}

func (r *activePartyRepo) ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.ActiveParty, error) {
	return r.FindAll(dbc, map[string]interface{}{"booth_id": boothID}, "created_at ASC")
}

func (r *activePartyRepo) SetStatus(dbc dbctx.Context, id uuid.UUID, active bool, last *bool, now time.Time, actor *uuid.UUID) error {
	updates := map[string]interface{}{
		"active_status":      active,
		"last_active_status": last,
		"updated_at":         now,
	}
	if actor != nil {
		updates["updated_by"] = *actor
	}
	return r.UpdateFields(dbc, id, updates)
}
