package geo

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type StateRepo interface {
	store.Repo[geo.State]
	GetByName(dbc dbctx.Context, name string) (*geo.State, error)
	ListAll(dbc dbctx.Context) ([]*geo.State, error)
}

type stateRepo struct {
	*store.Store[geo.State]
}

func NewStateRepo(db *gorm.DB, baseLog *logger.Logger) StateRepo {
	return &stateRepo{Store: store.New[geo.State](db, baseLog.With("repo", "StateRepo"))}
}

func (r *stateRepo) GetByName(dbc dbctx.Context, name string) (*geo.State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	return r.FindOne(dbc, map[string]interface{}{"name": name})
}

func (r *stateRepo) ListAll(dbc dbctx.Context) ([]*geo.State, error) {
	return r.FindAll(dbc, map[string]interface{}{}, "name ASC")
}
