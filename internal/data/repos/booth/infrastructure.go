package booth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type BoothInfrastructureRepo interface {
	store.Repo[booth.Infrastructure]
	GetByBoothID(dbc dbctx.Context, boothID uuid.UUID) (*booth.Infrastructure, error)
}

type boothInfrastructureRepo struct {
	*store.Store[booth.Infrastructure]
}

func NewBoothInfrastructureRepo(db *gorm.DB, baseLog *logger.Logger) BoothInfrastructureRepo {
	return &boothInfrastructureRepo{Store: store.New[booth.Infrastructure](db, baseLog.With("repo", "BoothInfrastructureRepo"))}
}

func (r *boothInfrastructureRepo) GetByBoothID(dbc dbctx.Context, boothID uuid.UUID) (*booth.Infrastructure, error) {
	if boothID == uuid.Nil {
		return nil, nil
	}
	return r.FindOne(dbc, map[string]interface{}{"booth_id": boothID})
}
