package geo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type AssemblyRepo interface {
	store.Repo[geo.Assembly]
	ListByParliamentID(dbc dbctx.Context, parliamentID uuid.UUID) ([]*geo.Assembly, error)
}

type assemblyRepo struct {
	*store.Store[geo.Assembly]
}

func NewAssemblyRepo(db *gorm.DB, baseLog *logger.Logger) AssemblyRepo {
	return &assemblyRepo{Store: store.New[geo.Assembly](db, baseLog.With("repo", "AssemblyRepo"))}
}

func (r *assemblyRepo) ListByParliamentID(dbc dbctx.Context, parliamentID uuid.UUID) ([]*geo.Assembly, error) {
	if parliamentID == uuid.Nil {
		return []*geo.Assembly{}, nil
	}
	return r.FindAll(dbc, map[string]interface{}{"parliament_id": parliamentID}, "name ASC")
}
