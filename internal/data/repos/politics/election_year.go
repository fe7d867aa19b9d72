package politics

import (
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type ElectionYearRepo interface {
	store.Repo[politics.ElectionYear]
	GetByYear(dbc dbctx.Context, year int) (*politics.ElectionYear, error)
}

type electionYearRepo struct {
	*store.Store[politics.ElectionYear]
}

func NewElectionYearRepo(db *gorm.DB, baseLog *logger.Logger) ElectionYearRepo {
	return &electionYearRepo{Store: store.New[politics.ElectionYear](db, baseLog.With("repo", "ElectionYearRepo"))}
}

func (r *electionYearRepo) GetByYear(dbc dbctx.Context, year int) (*politics.ElectionYear, error) {
	return r.FindOne(dbc, map[string]interface{}{"year": year})
}
