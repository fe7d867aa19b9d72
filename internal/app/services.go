package app

import (
	"time"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type Services struct {
	Hierarchy services.HierarchyService
	User      services.UserService
	Auth      services.AuthService

	State      services.StateService
	Division   services.DivisionService
	Parliament services.ParliamentService
	Assembly   services.AssemblyService
	District   services.DistrictService
	Block      services.BlockService
	Booth      services.BoothService

	Party           services.PartyService
	ElectionYear    services.ElectionYearService
	AccomplishedMLA services.AccomplishedMLAService
	PartyActivity   services.PartyActivityService

	BoothAdmin          services.BoothAdminService
	BoothDemographics   services.BoothDemographicsService
	BoothInfrastructure services.BoothInfrastructureService
	BoothElectionStats  services.BoothElectionStatsService
	BoothPartyPresence  services.BoothPartyPresenceService
	BoothPartyVoteShare services.BoothPartyVoteShareService
	LocalDynamics       services.LocalDynamicsService
	ActiveParty         services.ActivePartyService
	VotingTrend         services.VotingTrendService
}

type serviceDeps struct {
	log       *logger.Logger
	tx        db.TxRunner
	repos     Repos
	cache     cache.Cache
	cacheTTL  time.Duration
	jwtSecret string
	jwtExpire time.Duration
}

func wireServices(d serviceDeps) Services {
	d.log.Info("Wiring services...")
	log, tx, r, sat := d.log, d.tx, d.repos, d.repos.Satellites

	hierarchy := services.NewHierarchyService(log, d.cache, d.cacheTTL, r.State, r.Division, r.Parliament, r.Assembly, r.Block, r.Booth)
	users := services.NewUserService(log, tx, r.User)

	return Services{
		Hierarchy: hierarchy,
		User:      users,
		Auth:      services.NewAuthService(log, r.User, users, d.cache, d.jwtSecret, d.jwtExpire),

		State:      services.NewStateService(log, tx, r.State, hierarchy),
		Division:   services.NewDivisionService(log, tx, r.Division, r.State, hierarchy),
		Parliament: services.NewParliamentService(log, tx, r.Parliament, r.State, r.Division, hierarchy),
		Assembly:   services.NewAssemblyService(log, tx, r.Assembly, r.State, r.Division, r.Parliament, r.District, hierarchy),
		District:   services.NewDistrictService(log, tx, r.District, r.State, r.Division, r.Parliament, r.Assembly),
		Block:      services.NewBlockService(log, tx, r.Block, r.State, r.Division, r.Parliament, r.Assembly, r.District, hierarchy),
		Booth:      services.NewBoothService(log, tx, r.Booth, r.State, r.Division, r.Parliament, r.Assembly, r.Block, r.District, sat, hierarchy),

		Party:           services.NewPartyService(log, tx, r.Party),
		ElectionYear:    services.NewElectionYearService(log, tx, r.ElectionYear),
		AccomplishedMLA: services.NewAccomplishedMLAService(log, tx, r.AccomplishedMLA, r.Assembly, r.Party),
		PartyActivity:   services.NewPartyActivityService(log, tx, r.PartyActivity, r.Party, r.Parliament, r.State, r.Division, r.Assembly, r.Block, r.Booth),

		BoothAdmin:          services.NewBoothAdminService(log, tx, sat.Admins, r.Booth),
		BoothDemographics:   services.NewBoothDemographicsService(log, tx, sat.Demographics, r.Booth),
		BoothInfrastructure: services.NewBoothInfrastructureService(log, tx, sat.Infrastructure, r.Booth),
		BoothElectionStats:  services.NewBoothElectionStatsService(log, tx, sat.ElectionStats, r.Booth, r.ElectionYear, r.Party, sat.LocalDynamics, sat.Demographics),
		BoothPartyPresence:  services.NewBoothPartyPresenceService(log, tx, sat.PartyPresence, r.Booth, r.Party),
		BoothPartyVoteShare: services.NewBoothPartyVoteShareService(log, tx, sat.PartyVoteShares, r.Booth, r.Party, r.ElectionYear),
		LocalDynamics:       services.NewLocalDynamicsService(log, tx, sat.LocalDynamics, r.Booth),
		ActiveParty:         services.NewActivePartyService(log, tx, sat.ActiveParties, r.Booth, r.Party),
		VotingTrend:         services.NewVotingTrendService(log, tx, sat.VotingTrends, r.Booth, r.ElectionYear, r.Party),
	}
}
