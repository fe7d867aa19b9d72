package politics

import (
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type PartyActivityRepo interface {
	store.Repo[politics.PartyActivity]
}

type partyActivityRepo struct {
	*store.Store[politics.PartyActivity]
}

func NewPartyActivityRepo(db *gorm.DB, baseLog *logger.Logger) PartyActivityRepo {
	return &partyActivityRepo{Store: store.New[politics.PartyActivity](db, baseLog.With("repo", "PartyActivityRepo"))}
}
