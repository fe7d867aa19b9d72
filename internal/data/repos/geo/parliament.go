package geo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type ParliamentRepo interface {
	store.Repo[geo.Parliament]
	ListByDivisionID(dbc dbctx.Context, divisionID uuid.UUID) ([]*geo.Parliament, error)
}

type parliamentRepo struct {
	*store.Store[geo.Parliament]
}

func NewParliamentRepo(db *gorm.DB, baseLog *logger.Logger) ParliamentRepo {
	return &parliamentRepo{Store: store.New[geo.Parliament](db, baseLog.With("repo", "ParliamentRepo"))}
}

func (r *parliamentRepo) ListByDivisionID(dbc dbctx.Context, divisionID uuid.UUID) ([]*geo.Parliament, error) {
	if divisionID == uuid.Nil {
		return []*geo.Parliament{}, nil
	}
	return r.FindAll(dbc, map[string]interface{}{"division_id": divisionID}, "name ASC")
}
