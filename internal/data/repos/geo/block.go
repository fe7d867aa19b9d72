package geo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type BlockRepo interface {
	store.Repo[geo.Block]
	ListByAssemblyID(dbc dbctx.Context, assemblyID uuid.UUID) ([]*geo.Block, error)
}

type blockRepo struct {
	*store.Store[geo.Block]
}

func NewBlockRepo(db *gorm.DB, baseLog *logger.Logger) BlockRepo {
	return &blockRepo{Store: store.New[geo.Block](db, baseLog.With("repo", "BlockRepo"))}
}

func (r *blockRepo) ListByAssemblyID(dbc dbctx.Context, assemblyID uuid.UUID) ([]*geo.Block, error) {
	if assemblyID == uuid.Nil {
		return []*geo.Block{}, nil
	}
	return r.FindAll(dbc, map[string]interface{}{"assembly_id": assemblyID}, "name ASC")
}
