package booth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type VotingTrendRepo interface {
	store.Repo[booth.VotingTrend]
	ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.VotingTrend, error)
}

type votingTrendRepo struct {
	*store.Store[booth.VotingTrend]
}

func NewVotingTrendRepo(db *gorm.DB, baseLog *logger.Logger) VotingTrendRepo {
	return &votingTrendRepo{Store: store.New[booth.VotingTrend](db, baseLog.With("repo", "VotingTrendRepo"))}
}

func (r *votingTrendRepo) ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.VotingTrend, error) {
	return r.FindAll(dbc, map[string]interface{}{"booth_id": boothID}, "created_at DESC")
}
