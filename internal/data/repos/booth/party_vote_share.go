package booth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type BoothPartyVoteShareRepo interface {
	store.Repo[booth.PartyVoteShare]
	ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.PartyVoteShare, error)
}

type boothPartyVoteShareRepo struct {
	*store.Store[booth.PartyVoteShare]
}

func NewBoothPartyVoteShareRepo(db *gorm.DB, baseLog *logger.Logger) BoothPartyVoteShareRepo {
	return &boothPartyVoteShareRepo{Store: store.New[booth.PartyVoteShare](db, baseLog.With("repo", "BoothPartyVoteShareRepo"))}
}

func (r *boothPartyVoteShareRepo) ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.PartyVoteShare, error) {
	return r.FindAll(dbc, map[string]interface{}{"booth_id": boothID}, "vote_share_percentage DESC")
}
