package geo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type BoothRepo interface {
	store.Repo[geo.Booth]
	ListByBlockID(dbc dbctx.Context, blockID uuid.UUID) ([]*geo.Booth, error)
}

type boothRepo struct {
	*store.Store[geo.Booth]
}

func NewBoothRepo(db *gorm.DB, baseLog *logger.Logger) BoothRepo {
	return &boothRepo{Store: store.New[geo.Booth](db, baseLog.With("repo", "BoothRepo"))}
}

// ListByBlockID orders by booth_number, which is how polling lists are printed.
func (r *boothRepo) ListByBlockID(dbc dbctx.Context, blockID uuid.UUID) ([]*geo.Booth, error) {
	if blockID == uuid.Nil {
		return []*geo.Booth{}, nil
	}
	return r.FindAll(dbc, map[string]interface{}{"block_id": blockID}, "booth_number ASC")
}
