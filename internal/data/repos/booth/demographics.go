package booth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type BoothDemographicsRepo interface {
	store.Repo[booth.Demographics]
	GetByBoothID(dbc dbctx.Context, boothID uuid.UUID) (*booth.Demographics, error)
}

type boothDemographicsRepo struct {
	*store.Store[booth.Demographics]
}

func NewBoothDemographicsRepo(db *gorm.DB, baseLog *logger.Logger) BoothDemographicsRepo {
	return &boothDemographicsRepo{Store: store.New[booth.Demographics](db, baseLog.With("repo", "BoothDemographicsRepo"))}
}

func (r *boothDemographicsRepo) GetByBoothID(dbc dbctx.Context, boothID uuid.UUID) (*booth.Demographics, error) {
	if boothID == uuid.Nil {
		return nil, nil
	}
	return r.FindOne(dbc, map[string]interface{}{"booth_id": boothID})
}
