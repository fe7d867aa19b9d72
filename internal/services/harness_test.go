package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/testutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
)

// harness wires every service against one in-memory database.
type harness struct {
	db    *gorm.DB
	ctx   context.Context
	cache *cache.Memory

	states      repos.StateRepo
	divisions   repos.DivisionRepo
	parliaments repos.ParliamentRepo
	assemblies  repos.AssemblyRepo
	districts   repos.DistrictRepo
	blocks      repos.BlockRepo
	booths      repos.BoothRepo
	parties     repos.PartyRepo
	years       repos.ElectionYearRepo
	mlas        repos.AccomplishedMLARepo
	users       repos.UserRepo
	satellites  BoothSatelliteRepos

	hierarchy   HierarchyService
	stateSvc    StateService
	divisionSvc DivisionService
	blockSvc    BlockService
	boothSvc    BoothService
	mlaSvc      AccomplishedMLAService
	statsSvc    BoothElectionStatsService
	activeSvc   ActivePartyService
	activitySvc PartyActivityService
	adminSvc    BoothAdminService
	dynamicsSvc LocalDynamicsService
	userSvc     UserService
	authSvc     AuthService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	tx := db.NewTxRunner(gdb)
	mem := cache.NewMemory(time.Minute, 0)

	h := &harness{db: gdb, ctx: testutil.Ctx(t), cache: mem}
	h.states = repos.NewStateRepo(gdb, log)
	h.divisions = repos.NewDivisionRepo(gdb, log)
	h.parliaments = repos.NewParliamentRepo(gdb, log)
	h.assemblies = repos.NewAssemblyRepo(gdb, log)
	h.districts = repos.NewDistrictRepo(gdb, log)
	h.blocks = repos.NewBlockRepo(gdb, log)
	h.booths = repos.NewBoothRepo(gdb, log)
	h.parties = repos.NewPartyRepo(gdb, log)
	h.years = repos.NewElectionYearRepo(gdb, log)
	h.mlas = repos.NewAccomplishedMLARepo(gdb, log)
	h.users = repos.NewUserRepo(gdb, log)
	h.satellites = BoothSatelliteRepos{
		Admins:          repos.NewBoothAdminRepo(gdb, log),
		Demographics:    repos.NewBoothDemographicsRepo(gdb, log),
		Infrastructure:  repos.NewBoothInfrastructureRepo(gdb, log),
		ElectionStats:   repos.NewBoothElectionStatsRepo(gdb, log),
		PartyPresence:   repos.NewBoothPartyPresenceRepo(gdb, log),
		PartyVoteShares: repos.NewBoothPartyVoteShareRepo(gdb, log),
		LocalDynamics:   repos.NewLocalDynamicsRepo(gdb, log),
		ActiveParties:   repos.NewActivePartyRepo(gdb, log),
		VotingTrends:    repos.NewVotingTrendRepo(gdb, log),
	}

	h.hierarchy = NewHierarchyService(log, mem, time.Minute, h.states, h.divisions, h.parliaments, h.assemblies, h.blocks, h.booths)
	h.stateSvc = NewStateService(log, tx, h.states, h.hierarchy)
	h.divisionSvc = NewDivisionService(log, tx, h.divisions, h.states, h.hierarchy)
	h.blockSvc = NewBlockService(log, tx, h.blocks, h.states, h.divisions, h.parliaments, h.assemblies, h.districts, h.hierarchy)
	h.boothSvc = NewBoothService(log, tx, h.booths, h.states, h.divisions, h.parliaments, h.assemblies, h.blocks, h.districts, h.satellites, h.hierarchy)
	h.mlaSvc = NewAccomplishedMLAService(log, tx, h.mlas, h.assemblies, h.parties)
	h.statsSvc = NewBoothElectionStatsService(log, tx, h.satellites.ElectionStats, h.booths, h.years, h.parties, h.satellites.LocalDynamics, h.satellites.Demographics)
	h.activeSvc = NewActivePartyService(log, tx, h.satellites.ActiveParties, h.booths, h.parties)
	h.activitySvc = NewPartyActivityService(log, tx, repos.NewPartyActivityRepo(gdb, log), h.parties, h.parliaments, h.states, h.divisions, h.assemblies, h.blocks, h.booths)
	h.adminSvc = NewBoothAdminService(log, tx, h.satellites.Admins, h.booths)
	h.dynamicsSvc = NewLocalDynamicsService(log, tx, h.satellites.LocalDynamics, h.booths)
	h.userSvc = NewUserService(log, tx, h.users)
	h.authSvc = NewAuthService(log, h.users, h.userSvc, mem, "test-secret", time.Hour)
	return h
}

func (h *harness) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := h.db.WithContext(h.ctx).Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
