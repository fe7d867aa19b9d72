package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
)

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		// =========================
		// Accounts
		// =========================
		&account.User{},

		// =========================
		// Geography
		// =========================
		&geo.State{},
		&geo.Division{},
		&geo.Parliament{},
		&geo.Assembly{},
		&geo.District{},
		&geo.Block{},
		&geo.Booth{},

		// =========================
		// Parties + elections
		// =========================
		&politics.Party{},
		&politics.ElectionYear{},
		&politics.AccomplishedMLA{},
		&politics.PartyActivity{},

		// =========================
		// Booth satellites
		// =========================
		&booth.Admin{},
		&booth.Demographics{},
		&booth.Infrastructure{},
		&booth.ElectionStats{},
		&booth.PartyPresence{},
		&booth.PartyVoteShare{},
		&booth.LocalDynamics{},
		&booth.ActiveParty{},
		&booth.VotingTrend{},
	}
}

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
