package geo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type DivisionRepo interface {
	store.Repo[geo.Division]
	ListByStateID(dbc dbctx.Context, stateID uuid.UUID) ([]*geo.Division, error)
}

type divisionRepo struct {
	*store.Store[geo.Division]
}

func NewDivisionRepo(db *gorm.DB, baseLog *logger.Logger) DivisionRepo {
	return &divisionRepo{Store: store.New[geo.Division](db, baseLog.With("repo", "DivisionRepo"))}
}

func (r *divisionRepo) ListByStateID(dbc dbctx.Context, stateID uuid.UUID) ([]*geo.Division, error) {
	if stateID == uuid.Nil {
		return []*geo.Division{}, nil
	}
	return r.FindAll(dbc, map[string]interface{}{"state_id": stateID}, "name ASC")
}
