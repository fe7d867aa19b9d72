package booth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type LocalDynamicsRepo interface {
	store.Repo[booth.LocalDynamics]
	GetByBoothID(dbc dbctx.Context, boothID uuid.UUID) (*booth.LocalDynamics, error)
}

type localDynamicsRepo struct {
	*store.Store[booth.LocalDynamics]
}

func NewLocalDynamicsRepo(db *gorm.DB, baseLog *logger.Logger) LocalDynamicsRepo {
	return &localDynamicsRepo{Store: store.New[booth.LocalDynamics](db, baseLog.With("repo", "LocalDynamicsRepo"))}
}

func (r *localDynamicsRepo) GetByBoothID(dbc dbctx.Context, boothID uuid.UUID) (*booth.LocalDynamics, error) {
	if boothID == uuid.Nil {
		return nil, nil
	}
	return r.FindOne(dbc, map[string]interface{}{"booth_id": boothID})
}
