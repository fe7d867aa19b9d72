package booth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type BoothPartyPresenceRepo interface {
	store.Repo[booth.PartyPresence]
	ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.PartyPresence, error)
}

type boothPartyPresenceRepo struct {
	*store.Store[booth.PartyPresence]
}

func NewBoothPartyPresenceRepo(db *gorm.DB, baseLog *logger.Logger) BoothPartyPresenceRepo {
	return &boothPartyPresenceRepo{Store: store.New[booth.PartyPresence](db, baseLog.With("repo", "BoothPartyPresenceRepo"))}
}

func (r *boothPartyPresenceRepo) ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.PartyPresence, error) {
	return r.FindAll(dbc, map[string]interface{}{"booth_id": boothID}, "workers_count DESC")
}
