package booth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type BoothAdminRepo interface {
	store.Repo[booth.Admin]
	ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.Admin, error)
}

type boothAdminRepo struct {
	*store.Store[booth.Admin]
}

func NewBoothAdminRepo(db *gorm.DB, baseLog *logger.Logger) BoothAdminRepo {
	return &boothAdminRepo{Store: store.New[booth.Admin](db, baseLog.With("repo", "BoothAdminRepo"))}
}

func (r *boothAdminRepo) ListByBoothID(dbc dbctx.Context, boothID uuid.UUID) ([]*booth.Admin, error) {
	return r.FindAll(dbc, map[string]interface{}{"booth_id": boothID}, "name ASC")
}
