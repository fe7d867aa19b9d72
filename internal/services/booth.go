package services

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/dberr"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/query"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// BoothSatelliteRepos groups the per-booth record stores.
type BoothSatelliteRepos struct {
	Admins          repos.BoothAdminRepo
	Demographics    repos.BoothDemographicsRepo
	Infrastructure  repos.BoothInfrastructureRepo
	ElectionStats   repos.BoothElectionStatsRepo
	PartyPresence   repos.BoothPartyPresenceRepo
	PartyVoteShares repos.BoothPartyVoteShareRepo
	LocalDynamics   repos.LocalDynamicsRepo
	ActiveParties   repos.ActivePartyRepo
	VotingTrends    repos.VotingTrendRepo
}

// BoothSummary is a booth with every record attached to it.
type BoothSummary struct {
	Booth           *geo.Booth              `json:"booth"`
	Admins          []*booth.Admin          `json:"admins"`
	Demographics    *booth.Demographics     `json:"demographics"`
	Infrastructure  *booth.Infrastructure   `json:"infrastructure"`
	ElectionStats   []*booth.ElectionStats  `json:"election_stats"`
	PartyPresence   []*booth.PartyPresence  `json:"party_presence"`
	PartyVoteShares []*booth.PartyVoteShare `json:"party_vote_shares"`
	LocalDynamics   *booth.LocalDynamics    `json:"local_dynamics"`
	ActiveParties   []*booth.ActiveParty    `json:"active_parties"`
	VotingTrends    []*booth.VotingTrend    `json:"voting_trends"`
}

func (s *boothService) Summary(ctx context.Context, id uuid.UUID) (*BoothSummary, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &BoothSummary{Booth: b}
	sat := s.satellites
	g, gctx := errgroup.WithContext(ctx)
	dbc := dbctx.Context{Ctx: gctx}
	g.Go(func() (err error) { out.Admins, err = sat.Admins.ListByBoothID(dbc, id); return })
	g.Go(func() (err error) { out.Demographics, err = sat.Demographics.GetByBoothID(dbc, id); return })
	g.Go(func() (err error) { out.Infrastructure, err = sat.Infrastructure.GetByBoothID(dbc, id); return })
	g.Go(func() (err error) { out.ElectionStats, err = sat.ElectionStats.ListByBoothID(dbc, id); return })
	g.Go(func() (err error) { out.PartyPresence, err = sat.PartyPresence.ListByBoothID(dbc, id); return })
	g.Go(func() (err error) { out.PartyVoteShares, err = sat.PartyVoteShares.ListByBoothID(dbc, id); return })
	g.Go(func() (err error) { out.LocalDynamics, err = sat.LocalDynamics.GetByBoothID(dbc, id); return })
	g.Go(func() (err error) { out.ActiveParties, err = sat.ActiveParties.ListByBoothID(dbc, id); return })
	g.Go(func() (err error) { out.VotingTrends, err = sat.VotingTrends.ListByBoothID(dbc, id); return })
	if err := g.Wait(); err != nil {
		return nil, dberr.Map("Booth", err)
	}
	return out, nil
}

// boothFilters are the filters shared by every booth-scoped list.
func boothFilters(extra ...query.Field) []query.Field {
	return append([]query.Field{{Param: "booth_id", Column: "booth_id", Kind: query.ID}}, extra...)
}

// ---------------------------------------------------------------------------
// BoothAdmin
// ---------------------------------------------------------------------------

type BoothAdminInput struct {
	BoothID  *ref.Ref[geo.Booth] `json:"booth_id"`
	Name     *string             `json:"name"`
	Mobile   *string             `json:"mobile"`
	Email    *string             `json:"email"`
	Role     *string             `json:"role"`
	IsActive *bool               `json:"is_active"`
}

type BoothAdminService interface {
	Resource[booth.Admin, BoothAdminInput]
}

type boothAdminService struct {
	*crud[booth.Admin, *booth.Admin, BoothAdminInput]
	booths repos.BoothRepo
}

func NewBoothAdminService(baseLog *logger.Logger, tx db.TxRunner, admins repos.BoothAdminRepo, booths repos.BoothRepo) BoothAdminService {
	s := &boothAdminService{booths: booths}
	s.crud = &crud[booth.Admin, *booth.Admin, BoothAdminInput]{
		name: "Booth admin",
		log:  baseLog.With("service", "BoothAdminService"),
		tx:   tx,
		repo: admins,
		spec: query.Spec{
			Fields: boothFilters(
				query.Field{Param: "role", Column: "role"},
				query.Field{Param: "is_active", Column: "is_active", Kind: query.Bool},
			),
			SearchColumns: []string{"name", "mobile", "email"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "role", "created_at"},
			Preloads:      []string{"Booth"},
		},
		preloads: []string{"Booth"},
		apply:    s.apply,
	}
	return s
}

func (s *boothAdminService) apply(ctx context.Context, row *booth.Admin, in BoothAdminInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	fe.str(&row.Name, in.Name, "name", true, creating)
	fe.str(&row.Mobile, in.Mobile, "mobile", true, creating)
	if in.Mobile != nil && row.Mobile != "" && !mobilePattern.MatchString(row.Mobile) {
		fe.add("Please provide a valid 10-digit mobile number")
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != "" && !emailPattern.MatchString(email) {
			fe.add("Please provide a valid email")
		} else {
			row.Email = email
		}
	}
	if creating {
		if row.Role == "" {
			row.Role = "worker"
		}
		row.IsActive = true
	}
	fe.enum(&row.Role, in.Role, "role", booth.AdminRoles)
	setBool(&row.IsActive, in.IsActive)
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// BoothDemographics
// ---------------------------------------------------------------------------

type BoothDemographicsInput struct {
	BoothID           *ref.Ref[geo.Booth] `json:"booth_id"`
	TotalPopulation   *int                `json:"total_population"`
	TotalVoters       *int                `json:"total_voters"`
	MaleVoters        *int                `json:"male_voters"`
	FemaleVoters      *int                `json:"female_voters"`
	OtherVoters       *int                `json:"other_voters"`
	SCPercentage      *float64            `json:"sc_percentage"`
	STPercentage      *float64            `json:"st_percentage"`
	OBCPercentage     *float64            `json:"obc_percentage"`
	GeneralPercentage *float64            `json:"general_percentage"`
	LiteracyRate      *float64            `json:"literacy_rate"`
}

type BoothDemographicsService interface {
	Resource[booth.Demographics, BoothDemographicsInput]
}

type boothDemographicsService struct {
	*crud[booth.Demographics, *booth.Demographics, BoothDemographicsInput]
	booths repos.BoothRepo
}

func NewBoothDemographicsService(baseLog *logger.Logger, tx db.TxRunner, demographics repos.BoothDemographicsRepo, booths repos.BoothRepo) BoothDemographicsService {
	s := &boothDemographicsService{booths: booths}
	s.crud = &crud[booth.Demographics, *booth.Demographics, BoothDemographicsInput]{
		name: "Booth demographics",
		log:  baseLog.With("service", "BoothDemographicsService"),
		tx:   tx,
		repo: demographics,
		spec: query.Spec{
			Fields:      boothFilters(),
			DefaultSort: "-created_at",
			Sortable:    []string{"total_population", "total_voters", "literacy_rate", "created_at"},
			Preloads:    []string{"Booth"},
		},
		preloads: []string{"Booth"},
		apply:    s.apply,
	}
	return s
}

func (s *boothDemographicsService) apply(ctx context.Context, row *booth.Demographics, in BoothDemographicsInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	fe.nonNegative(&row.TotalPopulation, in.TotalPopulation, "total_population")
	fe.nonNegative(&row.TotalVoters, in.TotalVoters, "total_voters")
	fe.nonNegative(&row.MaleVoters, in.MaleVoters, "male_voters")
	fe.nonNegative(&row.FemaleVoters, in.FemaleVoters, "female_voters")
	fe.nonNegative(&row.OtherVoters, in.OtherVoters, "other_voters")
	fe.percentage(&row.SCPercentage, in.SCPercentage, "sc_percentage")
	fe.percentage(&row.STPercentage, in.STPercentage, "st_percentage")
	fe.percentage(&row.OBCPercentage, in.OBCPercentage, "obc_percentage")
	fe.percentage(&row.GeneralPercentage, in.GeneralPercentage, "general_percentage")
	fe.percentage(&row.LiteracyRate, in.LiteracyRate, "literacy_rate")
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// BoothInfrastructure
// ---------------------------------------------------------------------------

type BoothInfrastructureInput struct {
	BoothID          *ref.Ref[geo.Booth] `json:"booth_id"`
	BuildingType     *string             `json:"building_type"`
	HasRamp          *bool               `json:"has_ramp"`
	HasDrinkingWater *bool               `json:"has_drinking_water"`
	HasToilet        *bool               `json:"has_toilet"`
	HasElectricity   *bool               `json:"has_electricity"`
	HasInternet      *bool               `json:"has_internet"`
	IsSensitive      *bool               `json:"is_sensitive"`
	RoadCondition    *string             `json:"road_condition"`
}

type BoothInfrastructureService interface {
	Resource[booth.Infrastructure, BoothInfrastructureInput]
}

type boothInfrastructureService struct {
	*crud[booth.Infrastructure, *booth.Infrastructure, BoothInfrastructureInput]
	booths repos.BoothRepo
}

func NewBoothInfrastructureService(baseLog *logger.Logger, tx db.TxRunner, infra repos.BoothInfrastructureRepo, booths repos.BoothRepo) BoothInfrastructureService {
	s := &boothInfrastructureService{booths: booths}
	s.crud = &crud[booth.Infrastructure, *booth.Infrastructure, BoothInfrastructureInput]{
		name: "Booth infrastructure",
		log:  baseLog.With("service", "BoothInfrastructureService"),
		tx:   tx,
		repo: infra,
		spec: query.Spec{
			Fields: boothFilters(
				query.Field{Param: "building_type", Column: "building_type"},
				query.Field{Param: "is_sensitive", Column: "is_sensitive", Kind: query.Bool},
			),
			SearchColumns: []string{"road_condition"},
			DefaultSort:   "-created_at",
			Sortable:      []string{"building_type", "created_at"},
			Preloads:      []string{"Booth"},
		},
		preloads: []string{"Booth"},
		apply:    s.apply,
	}
	return s
}

func (s *boothInfrastructureService) apply(ctx context.Context, row *booth.Infrastructure, in BoothInfrastructureInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	if creating && row.BuildingType == "" {
		row.BuildingType = "government"
	}
	fe.enum(&row.BuildingType, in.BuildingType, "building_type", booth.BuildingTypes)
	setBool(&row.HasRamp, in.HasRamp)
	setBool(&row.HasDrinkingWater, in.HasDrinkingWater)
	setBool(&row.HasToilet, in.HasToilet)
	setBool(&row.HasElectricity, in.HasElectricity)
	setBool(&row.HasInternet, in.HasInternet)
	setBool(&row.IsSensitive, in.IsSensitive)
	fe.str(&row.RoadCondition, in.RoadCondition, "road_condition", false, creating)
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// BoothElectionStats
// ---------------------------------------------------------------------------

type BoothElectionStatsInput struct {
	BoothID           *ref.Ref[geo.Booth]             `json:"booth_id"`
	YearID            *ref.Ref[politics.ElectionYear] `json:"year_id"`
	TotalVotesPolled  *int                            `json:"total_votes_polled"`
	TurnoutPercentage *float64                        `json:"turnout_percentage"`
	WinningPartyID    *ref.Ref[politics.Party]        `json:"winning_party_id"`
	WinningMargin     *int                            `json:"winning_margin"`
	NotaVotes         *int                            `json:"nota_votes"`
	RejectedVotes     *int                            `json:"rejected_votes"`
	Remarks           *string                         `json:"remarks"`
}

type BoothElectionStatsService interface {
	Resource[booth.ElectionStats, BoothElectionStatsInput]
	ListByBooth(ctx context.Context, boothID uuid.UUID) ([]*booth.ElectionStats, error)
}

type boothElectionStatsService struct {
	*crud[booth.ElectionStats, *booth.ElectionStats, BoothElectionStatsInput]
	stats        repos.BoothElectionStatsRepo
	booths       repos.BoothRepo
	years        repos.ElectionYearRepo
	parties      repos.PartyRepo
	dynamics     repos.LocalDynamicsRepo
	demographics repos.BoothDemographicsRepo
}

func NewBoothElectionStatsService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	stats repos.BoothElectionStatsRepo,
	booths repos.BoothRepo,
	years repos.ElectionYearRepo,
	parties repos.PartyRepo,
	dynamics repos.LocalDynamicsRepo,
	demographics repos.BoothDemographicsRepo,
) BoothElectionStatsService {
	s := &boothElectionStatsService{
		stats:        stats,
		booths:       booths,
		years:        years,
		parties:      parties,
		dynamics:     dynamics,
		demographics: demographics,
	}
	s.crud = &crud[booth.ElectionStats, *booth.ElectionStats, BoothElectionStatsInput]{
		name: "Booth election stats",
		log:  baseLog.With("service", "BoothElectionStatsService"),
		tx:   tx,
		repo: stats,
		spec: query.Spec{
			Fields: boothFilters(
				query.Field{Param: "year_id", Column: "year_id", Kind: query.ID},
				query.Field{Param: "winning_party_id", Column: "winning_party_id", Kind: query.ID},
			),
			SearchColumns: []string{"remarks"},
			DefaultSort:   "-created_at",
			Sortable:      []string{"total_votes_polled", "turnout_percentage", "winning_margin", "created_at"},
			Preloads:      []string{"Booth", "Year", "WinningParty"},
		},
		preloads: []string{"Booth", "Year", "WinningParty"},
		apply:    s.apply,
	}
	return s
}

func (s *boothElectionStatsService) apply(ctx context.Context, row *booth.ElectionStats, in BoothElectionStatsInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	if id, present := refID(in.YearID); fe.requiredRef(&row.YearID, id, present, "year_id", creating) {
		checks = append(checks, RefID("Year", row.YearID, s.years))
	}
	if id, present := refID(in.WinningPartyID); optionalRef(&row.WinningPartyID, id, present) {
		checks = append(checks, Ref("Party", row.WinningPartyID, s.parties))
	}
	fe.nonNegativePtr(&row.TotalVotesPolled, in.TotalVotesPolled, "total_votes_polled")
	fe.nonNegativePtr(&row.WinningMargin, in.WinningMargin, "winning_margin")
	fe.nonNegativePtr(&row.NotaVotes, in.NotaVotes, "nota_votes")
	fe.nonNegativePtr(&row.RejectedVotes, in.RejectedVotes, "rejected_votes")
	if in.TurnoutPercentage != nil {
		pct := *in.TurnoutPercentage
		if pct < 0 || pct > 100 {
			fe.add("turnout_percentage must be between 0 and 100")
		}
		row.TurnoutPercentage = &pct
	}
	fe.str(&row.Remarks, in.Remarks, "remarks", false, creating)
	if err := fe.err(); err != nil {
		return err
	}
	if err := CheckRefs(ctx, checks...); err != nil {
		return err
	}
	if in.TurnoutPercentage == nil && in.TotalVotesPolled != nil {
		row.TurnoutPercentage = s.deriveTurnout(ctx, row.BoothID, *in.TotalVotesPolled)
	}
	return nil
}

// deriveTurnout is polled / registered * 100 rounded to two decimals. Registered
// voters come from the booth's local dynamics, then its demographics. It returns
// nil when neither has a positive count; lookup failures are logged, not returned.
func (s *boothElectionStatsService) deriveTurnout(ctx context.Context, boothID uuid.UUID, polled int) *float64 {
	registered := 0
	dbc := dbctx.Of(ctx)
	if ld, err := s.dynamics.GetByBoothID(dbc, boothID); err != nil {
		s.log.Warn("Local dynamics lookup failed", "booth_id", boothID, "error", err)
	} else if ld != nil && ld.RegisteredVoters != nil {
		registered = *ld.RegisteredVoters
	}
	if registered <= 0 {
		if d, err := s.demographics.GetByBoothID(dbc, boothID); err != nil {
			s.log.Warn("Demographics lookup failed", "booth_id", boothID, "error", err)
		} else if d != nil {
			registered = d.TotalVoters
		}
	}
	return Turnout(polled, registered)
}

// Turnout returns polled/registered as a percentage rounded to two decimals, or
// nil when registered is not positive.
func Turnout(polled, registered int) *float64 {
	if registered <= 0 {
		return nil
	}
	pct := math.Round(float64(polled)/float64(registered)*100*100) / 100
	return &pct
}

func (s *boothElectionStatsService) ListByBooth(ctx context.Context, boothID uuid.UUID) ([]*booth.ElectionStats, error) {
	ok, err := s.booths.Exists(dbctx.Of(ctx), boothID)
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	if !ok {
		return nil, apierr.NotFound("Booth not found")
	}
	rows, err := s.stats.ListByBoothID(dbctx.Of(ctx), boothID)
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// BoothPartyPresence
// ---------------------------------------------------------------------------

type BoothPartyPresenceInput struct {
	BoothID           *ref.Ref[geo.Booth]      `json:"booth_id"`
	PartyID           *ref.Ref[politics.Party] `json:"party_id"`
	PresenceLevel     *string                  `json:"presence_level"`
	HasBoothCommittee *bool                    `json:"has_booth_committee"`
	WorkersCount      *int                     `json:"workers_count"`
	Remarks           *string                  `json:"remarks"`
}

type BoothPartyPresenceService interface {
	Resource[booth.PartyPresence, BoothPartyPresenceInput]
}

type boothPartyPresenceService struct {
	*crud[booth.PartyPresence, *booth.PartyPresence, BoothPartyPresenceInput]
	booths  repos.BoothRepo
	parties repos.PartyRepo
}

func NewBoothPartyPresenceService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	presence repos.BoothPartyPresenceRepo,
	booths repos.BoothRepo,
	parties repos.PartyRepo,
) BoothPartyPresenceService {
	s := &boothPartyPresenceService{booths: booths, parties: parties}
	s.crud = &crud[booth.PartyPresence, *booth.PartyPresence, BoothPartyPresenceInput]{
		name: "Booth party presence",
		log:  baseLog.With("service", "BoothPartyPresenceService"),
		tx:   tx,
		repo: presence,
		spec: query.Spec{
			Fields: boothFilters(
				query.Field{Param: "party_id", Column: "party_id", Kind: query.ID},
				query.Field{Param: "presence_level", Column: "presence_level"},
			),
			SearchColumns: []string{"remarks"},
			DefaultSort:   "-created_at",
			Sortable:      []string{"presence_level", "workers_count", "created_at"},
			Preloads:      []string{"Booth", "Party"},
		},
		preloads: []string{"Booth", "Party"},
		apply:    s.apply,
	}
	return s
}

func (s *boothPartyPresenceService) apply(ctx context.Context, row *booth.PartyPresence, in BoothPartyPresenceInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	if id, present := refID(in.PartyID); fe.requiredRef(&row.PartyID, id, present, "party_id", creating) {
		checks = append(checks, RefID("Party", row.PartyID, s.parties))
	}
	if creating && row.PresenceLevel == "" {
		row.PresenceLevel = "none"
	}
	fe.enum(&row.PresenceLevel, in.PresenceLevel, "presence_level", booth.PresenceLevels)
	setBool(&row.HasBoothCommittee, in.HasBoothCommittee)
	fe.nonNegative(&row.WorkersCount, in.WorkersCount, "workers_count")
	fe.str(&row.Remarks, in.Remarks, "remarks", false, creating)
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// BoothPartyVoteShare
// ---------------------------------------------------------------------------

type BoothPartyVoteShareInput struct {
	BoothID             *ref.Ref[geo.Booth]             `json:"booth_id"`
	PartyID             *ref.Ref[politics.Party]        `json:"party_id"`
	YearID              *ref.Ref[politics.ElectionYear] `json:"year_id"`
	VotesReceived       *int                            `json:"votes_received"`
	VoteSharePercentage *float64                        `json:"vote_share_percentage"`
}

type BoothPartyVoteShareService interface {
	Resource[booth.PartyVoteShare, BoothPartyVoteShareInput]
}

type boothPartyVoteShareService struct {
	*crud[booth.PartyVoteShare, *booth.PartyVoteShare, BoothPartyVoteShareInput]
	booths  repos.BoothRepo
	parties repos.PartyRepo
	years   repos.ElectionYearRepo
}

func NewBoothPartyVoteShareService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	shares repos.BoothPartyVoteShareRepo,
	booths repos.BoothRepo,
	parties repos.PartyRepo,
	years repos.ElectionYearRepo,
) BoothPartyVoteShareService {
	s := &boothPartyVoteShareService{booths: booths, parties: parties, years: years}
	s.crud = &crud[booth.PartyVoteShare, *booth.PartyVoteShare, BoothPartyVoteShareInput]{
		name: "Booth party vote share",
		log:  baseLog.With("service", "BoothPartyVoteShareService"),
		tx:   tx,
		repo: shares,
		spec: query.Spec{
			Fields: boothFilters(
				query.Field{Param: "party_id", Column: "party_id", Kind: query.ID},
				query.Field{Param: "year_id", Column: "year_id", Kind: query.ID},
			),
			DefaultSort: "-vote_share_percentage",
			Sortable:    []string{"votes_received", "vote_share_percentage", "created_at"},
			Preloads:    []string{"Booth", "Party", "Year"},
		},
		preloads: []string{"Booth", "Party", "Year"},
		apply:    s.apply,
	}
	return s
}

func (s *boothPartyVoteShareService) apply(ctx context.Context, row *booth.PartyVoteShare, in BoothPartyVoteShareInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	if id, present := refID(in.PartyID); fe.requiredRef(&row.PartyID, id, present, "party_id", creating) {
		checks = append(checks, RefID("Party", row.PartyID, s.parties))
	}
	if id, present := refID(in.YearID); optionalRef(&row.YearID, id, present) {
		checks = append(checks, Ref("Year", row.YearID, s.years))
	}
	fe.nonNegative(&row.VotesReceived, in.VotesReceived, "votes_received")
	fe.percentage(&row.VoteSharePercentage, in.VoteSharePercentage, "vote_share_percentage")
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// LocalDynamics
// ---------------------------------------------------------------------------

type LocalDynamicsInput struct {
	BoothID          *ref.Ref[geo.Booth] `json:"booth_id"`
	RegisteredVoters *int                `json:"registered_voters"`
	DominantCastes   *[]string           `json:"dominant_castes"`
	KeyIssues        *[]string           `json:"key_issues"`
	LocalLeaders     *[]string           `json:"local_leaders"`
	Notes            *string             `json:"notes"`
}

type LocalDynamicsService interface {
	Resource[booth.LocalDynamics, LocalDynamicsInput]
}

type localDynamicsService struct {
	*crud[booth.LocalDynamics, *booth.LocalDynamics, LocalDynamicsInput]
	booths repos.BoothRepo
}

func NewLocalDynamicsService(baseLog *logger.Logger, tx db.TxRunner, dynamics repos.LocalDynamicsRepo, booths repos.BoothRepo) LocalDynamicsService {
	s := &localDynamicsService{booths: booths}
	s.crud = &crud[booth.LocalDynamics, *booth.LocalDynamics, LocalDynamicsInput]{
		name: "Local dynamics",
		log:  baseLog.With("service", "LocalDynamicsService"),
		tx:   tx,
		repo: dynamics,
		spec: query.Spec{
			Fields:        boothFilters(),
			SearchColumns: []string{"notes"},
			DefaultSort:   "-created_at",
			Sortable:      []string{"registered_voters", "created_at"},
			Preloads:      []string{"Booth"},
		},
		preloads: []string{"Booth"},
		apply:    s.apply,
	}
	return s
}

func (s *localDynamicsService) apply(ctx context.Context, row *booth.LocalDynamics, in LocalDynamicsInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	fe.nonNegativePtr(&row.RegisteredVoters, in.RegisteredVoters, "registered_voters")
	setStrings(&row.DominantCastes, in.DominantCastes)
	setStrings(&row.KeyIssues, in.KeyIssues)
	setStrings(&row.LocalLeaders, in.LocalLeaders)
	fe.str(&row.Notes, in.Notes, "notes", false, creating)
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// ActiveParty
// ---------------------------------------------------------------------------

type ActivePartyInput struct {
	BoothID      *ref.Ref[geo.Booth]      `json:"booth_id"`
	PartyID      *ref.Ref[politics.Party] `json:"party_id"`
	ActiveStatus *bool                    `json:"Active_status"`
}

type ActivePartyService interface {
	Resource[booth.ActiveParty, ActivePartyInput]
	// Toggle flips Active_status and keeps the previous value in last_Active_status.
	Toggle(ctx context.Context, id uuid.UUID) (*booth.ActiveParty, error)
}

type activePartyService struct {
	*crud[booth.ActiveParty, *booth.ActiveParty, ActivePartyInput]
	actives repos.ActivePartyRepo
	booths  repos.BoothRepo
	parties repos.PartyRepo
}

func NewActivePartyService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	actives repos.ActivePartyRepo,
	booths repos.BoothRepo,
	parties repos.PartyRepo,
) ActivePartyService {
	s := &activePartyService{actives: actives, booths: booths, parties: parties}
	s.crud = &crud[booth.ActiveParty, *booth.ActiveParty, ActivePartyInput]{
		name: "Active party",
		log:  baseLog.With("service", "ActivePartyService"),
		tx:   tx,
		repo: actives,
		spec: query.Spec{
			Fields: boothFilters(
				query.Field{Param: "party_id", Column: "party_id", Kind: query.ID},
				query.Field{Param: "Active_status", Column: "active_status", Kind: query.Bool},
			),
			DefaultSort: "-created_at",
			Sortable:    []string{"created_at", "updated_at"},
			Preloads:    []string{"Booth", "Party"},
		},
		preloads: []string{"Booth", "Party"},
		apply:    s.apply,
	}
	return s
}

func (s *activePartyService) apply(ctx context.Context, row *booth.ActiveParty, in ActivePartyInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	if id, present := refID(in.PartyID); fe.requiredRef(&row.PartyID, id, present, "party_id", creating) {
		checks = append(checks, RefID("Party", row.PartyID, s.parties))
	}
	if creating {
		row.ActiveStatus = true
	}
	setBool(&row.ActiveStatus, in.ActiveStatus)
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

func (s *activePartyService) Toggle(ctx context.Context, id uuid.UUID) (*booth.ActiveParty, error) {
	row, err := s.actives.GetByID(dbctx.Of(ctx), id)
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	if row == nil {
		return nil, apierr.NotFound("%s not found", s.name)
	}
	prior := row.ActiveStatus
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		return s.actives.SetStatus(dbc, id, !prior, &prior, s.clock(), ctxutil.ActorID(ctx))
	})
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	return s.Get(ctx, id)
}

// ---------------------------------------------------------------------------
// VotingTrend
// ---------------------------------------------------------------------------

type VotingTrendInput struct {
	BoothID         *ref.Ref[geo.Booth]             `json:"booth_id"`
	YearID          *ref.Ref[politics.ElectionYear] `json:"year_id"`
	TurnoutTrend    *string                         `json:"turnout_trend"`
	SwingPartyID    *ref.Ref[politics.Party]        `json:"swing_party_id"`
	SwingPercentage *float64                        `json:"swing_percentage"`
	Notes           *string                         `json:"notes"`
}

type VotingTrendService interface {
	Resource[booth.VotingTrend, VotingTrendInput]
}

type votingTrendService struct {
	*crud[booth.VotingTrend, *booth.VotingTrend, VotingTrendInput]
	booths  repos.BoothRepo
	years   repos.ElectionYearRepo
	parties repos.PartyRepo
}

func NewVotingTrendService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	trends repos.VotingTrendRepo,
	booths repos.BoothRepo,
	years repos.ElectionYearRepo,
	parties repos.PartyRepo,
) VotingTrendService {
	s := &votingTrendService{booths: booths, years: years, parties: parties}
	s.crud = &crud[booth.VotingTrend, *booth.VotingTrend, VotingTrendInput]{
		name: "Voting trend",
		log:  baseLog.With("service", "VotingTrendService"),
		tx:   tx,
		repo: trends,
		spec: query.Spec{
			Fields: boothFilters(
				query.Field{Param: "year_id", Column: "year_id", Kind: query.ID},
				query.Field{Param: "swing_party_id", Column: "swing_party_id", Kind: query.ID},
				query.Field{Param: "turnout_trend", Column: "turnout_trend"},
			),
			SearchColumns: []string{"notes"},
			DefaultSort:   "-created_at",
			Sortable:      []string{"turnout_trend", "swing_percentage", "created_at"},
			Preloads:      []string{"Booth", "Year", "SwingParty"},
		},
		preloads: []string{"Booth", "Year", "SwingParty"},
		apply:    s.apply,
	}
	return s
}

func (s *votingTrendService) apply(ctx context.Context, row *booth.VotingTrend, in VotingTrendInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	if id, present := refID(in.BoothID); fe.requiredRef(&row.BoothID, id, present, "booth_id", creating) {
		checks = append(checks, RefID("Booth", row.BoothID, s.booths))
	}
	if id, present := refID(in.YearID); fe.requiredRef(&row.YearID, id, present, "year_id", creating) {
		checks = append(checks, RefID("Year", row.YearID, s.years))
	}
	if id, present := refID(in.SwingPartyID); optionalRef(&row.SwingPartyID, id, present) {
		checks = append(checks, Ref("Party", row.SwingPartyID, s.parties))
	}
	if creating && row.TurnoutTrend == "" {
		row.TurnoutTrend = "stable"
	}
	fe.enum(&row.TurnoutTrend, in.TurnoutTrend, "turnout_trend", booth.TurnoutTrends)
	if in.SwingPercentage != nil {
		if *in.SwingPercentage < -100 || *in.SwingPercentage > 100 {
			fe.add("swing_percentage must be between -100 and 100")
		} else {
			v := *in.SwingPercentage
			row.SwingPercentage = &v
		}
	}
	fe.str(&row.Notes, in.Notes, "notes", false, creating)
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}
