package repos

import (
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type UserRepo = account.UserRepo

type StateRepo = geo.StateRepo
type DivisionRepo = geo.DivisionRepo
type ParliamentRepo = geo.ParliamentRepo
type AssemblyRepo = geo.AssemblyRepo
type DistrictRepo = geo.DistrictRepo
type BlockRepo = geo.BlockRepo
type BoothRepo = geo.BoothRepo

type PartyRepo = politics.PartyRepo
type ElectionYearRepo = politics.ElectionYearRepo
type AccomplishedMLARepo = politics.AccomplishedMLARepo
type PartyActivityRepo = politics.PartyActivityRepo

type BoothAdminRepo = booth.BoothAdminRepo
type BoothDemographicsRepo = booth.BoothDemographicsRepo
type BoothInfrastructureRepo = booth.BoothInfrastructureRepo
type BoothElectionStatsRepo = booth.BoothElectionStatsRepo
type BoothPartyPresenceRepo = booth.BoothPartyPresenceRepo
type BoothPartyVoteShareRepo = booth.BoothPartyVoteShareRepo
type LocalDynamicsRepo = booth.LocalDynamicsRepo
type ActivePartyRepo = booth.ActivePartyRepo
type VotingTrendRepo = booth.VotingTrendRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return account.NewUserRepo(db, baseLog) }

func NewStateRepo(db *gorm.DB, baseLog *logger.Logger) StateRepo { return geo.NewStateRepo(db, baseLog) }
func NewDivisionRepo(db *gorm.DB, baseLog *logger.Logger) DivisionRepo {
	return geo.NewDivisionRepo(db, baseLog)
}
func NewParliamentRepo(db *gorm.DB, baseLog *logger.Logger) ParliamentRepo {
	return geo.NewParliamentRepo(db, baseLog)
}
func NewAssemblyRepo(db *gorm.DB, baseLog *logger.Logger) AssemblyRepo {
	return geo.NewAssemblyRepo(db, baseLog)
}
func NewDistrictRepo(db *gorm.DB, baseLog *logger.Logger) DistrictRepo {
	return geo.NewDistrictRepo(db, baseLog)
}
func NewBlockRepo(db *gorm.DB, baseLog *logger.Logger) BlockRepo { return geo.NewBlockRepo(db, baseLog) }
func NewBoothRepo(db *gorm.DB, baseLog *logger.Logger) BoothRepo { return geo.NewBoothRepo(db, baseLog) }

func NewPartyRepo(db *gorm.DB, baseLog *logger.Logger) PartyRepo {
	return politics.NewPartyRepo(db, baseLog)
}
func NewElectionYearRepo(db *gorm.DB, baseLog *logger.Logger) ElectionYearRepo {
	return politics.NewElectionYearRepo(db, baseLog)
}
func NewAccomplishedMLARepo(db *gorm.DB, baseLog *logger.Logger) AccomplishedMLARepo {
	return politics.NewAccomplishedMLARepo(db, baseLog)
}
func NewPartyActivityRepo(db *gorm.DB, baseLog *logger.Logger) PartyActivityRepo {
	return politics.NewPartyActivityRepo(db, baseLog)
}

func NewBoothAdminRepo(db *gorm.DB, baseLog *logger.Logger) BoothAdminRepo {
	return booth.NewBoothAdminRepo(db, baseLog)
}
func NewBoothDemographicsRepo(db *gorm.DB, baseLog *logger.Logger) BoothDemographicsRepo {
	return booth.NewBoothDemographicsRepo(db, baseLog)
}
func NewBoothInfrastructureRepo(db *gorm.DB, baseLog *logger.Logger) BoothInfrastructureRepo {
	return booth.NewBoothInfrastructureRepo(db, baseLog)
}
func NewBoothElectionStatsRepo(db *gorm.DB, baseLog *logger.Logger) BoothElectionStatsRepo {
	return booth.NewBoothElectionStatsRepo(db, baseLog)
}
func NewBoothPartyPresenceRepo(db *gorm.DB, baseLog *logger.Logger) BoothPartyPresenceRepo {
	return booth.NewBoothPartyPresenceRepo(db, baseLog)
}
func NewBoothPartyVoteShareRepo(db *gorm.DB, baseLog *logger.Logger) BoothPartyVoteShareRepo {
	return booth.NewBoothPartyVoteShareRepo(db, baseLog)
}
func NewLocalDynamicsRepo(db *gorm.DB, baseLog *logger.Logger) LocalDynamicsRepo {
	return booth.NewLocalDynamicsRepo(db, baseLog)
}
func NewActivePartyRepo(db *gorm.DB, baseLog *logger.Logger) ActivePartyRepo {
	return booth.NewActivePartyRepo(db, baseLog)
}
func NewVotingTrendRepo(db *gorm.DB, baseLog *logger.Logger) VotingTrendRepo {
	return booth.NewVotingTrendRepo(db, baseLog)
}
