package app

import (
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type Repos struct {
	User repos.UserRepo

	State      repos.StateRepo
	Division   repos.DivisionRepo
	Parliament repos.ParliamentRepo
	Assembly   repos.AssemblyRepo
	District   repos.DistrictRepo
	Block      repos.BlockRepo
	Booth      repos.BoothRepo

	Party           repos.PartyRepo
	ElectionYear    repos.ElectionYearRepo
	AccomplishedMLA repos.AccomplishedMLARepo
	PartyActivity   repos.PartyActivityRepo

	Satellites services.BoothSatelliteRepos
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User: repos.NewUserRepo(db, log),

		State:      repos.NewStateRepo(db, log),
		Division:   repos.NewDivisionRepo(db, log),
		Parliament: repos.NewParliamentRepo(db, log),
		Assembly:   repos.NewAssemblyRepo(db, log),
		District:   repos.NewDistrictRepo(db, log),
		Block:      repos.NewBlockRepo(db, log),
		Booth:      repos.NewBoothRepo(db, log),

		Party:           repos.NewPartyRepo(db, log),
		ElectionYear:    repos.NewElectionYearRepo(db, log),
		AccomplishedMLA: repos.NewAccomplishedMLARepo(db, log),
		PartyActivity:   repos.NewPartyActivityRepo(db, log),

		Satellites: services.BoothSatelliteRepos{
			Admins:          repos.NewBoothAdminRepo(db, log),
			Demographics:    repos.NewBoothDemographicsRepo(db, log),
			Infrastructure:  repos.NewBoothInfrastructureRepo(db, log),
			ElectionStats:   repos.NewBoothElectionStatsRepo(db, log),
			PartyPresence:   repos.NewBoothPartyPresenceRepo(db, log),
			PartyVoteShares: repos.NewBoothPartyVoteShareRepo(db, log),
			LocalDynamics:   repos.NewLocalDynamicsRepo(db, log),
			ActiveParties:   repos.NewActivePartyRepo(db, log),
			VotingTrends:    repos.NewVotingTrendRepo(db, log),
		},
	}
}
