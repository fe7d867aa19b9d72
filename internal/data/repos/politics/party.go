package politics

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type PartyRepo interface {
	store.Repo[politics.Party]
	GetByAbbreviation(dbc dbctx.Context, abbreviation string) (*politics.Party, error)
}

type partyRepo struct {
	*store.Store[politics.Party]
}

func NewPartyRepo(db *gorm.DB, baseLog *logger.Logger) PartyRepo {
	return &partyRepo{Store: store.New[politics.Party](db, baseLog.With("repo", "PartyRepo"))}
}

func (r *partyRepo) GetByAbbreviation(dbc dbctx.Context, abbreviation string) (*politics.Party, error) {
	abbreviation = strings.TrimSpace(abbreviation)
	if abbreviation == "" {
		return nil, nil
	}
	return r.FindOne(dbc, map[string]interface{}{"abbreviation": abbreviation})
}
