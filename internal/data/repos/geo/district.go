package geo

import (
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type DistrictRepo interface {
	store.Repo[geo.District]
}

type districtRepo struct {
	*store.Store[geo.District]
}

func NewDistrictRepo(db *gorm.DB, baseLog *logger.Logger) DistrictRepo {
	return &districtRepo{Store: store.New[geo.District](db, baseLog.With("repo", "DistrictRepo"))}
}
