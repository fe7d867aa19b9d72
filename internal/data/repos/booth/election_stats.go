package booth

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type BoothElectionStatsRepo interface {
	store.Repo[booth.ElectionStats]
	ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.ElectionStats, error)
}

type boothElectionStatsRepo struct {
	*store.Store[booth.ElectionStats]
}

func NewBoothElectionStatsRepo(db *gorm.DB, baseLog *logger.Logger) BoothElectionStatsRepo {
	return &boothElectionStatsRepo{Store: store.New[booth.ElectionStats](db, baseLog.With("repo", "BoothElectionStatsRepo"))}
}

// ListByBoothID returns the booth's results with their election year, newest first.
func (r *boothElectionStatsRepo) ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.ElectionStats, error) {
	var out []*booth.ElectionStats
	if boothID == uuid.Nil {
		return out, nil
	}
	err := r.DB(dbc).
		Preload("Year").
		Preload("WinningParty").
		Where("booth_id = ?", boothID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return yearOf(out[i]) > yearOf(out[j])
	})
	return out, nil
}

func yearOf(s *booth.ElectionStats) int {
	if s.Year == nil {
		return 0
	}
	return s.Year.Year
}
