package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/dberr"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/query"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type PartyInput struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
	Symbol       *string `json:"symbol"`
	FoundedYear  *int    `json:"founded_year"`
	Description  *string `json:"description"`
}

type PartyService interface {
	Resource[politics.Party, PartyInput]
}

type partyService struct {
	*crud[politics.Party, *politics.Party, PartyInput]
}

func NewPartyService(baseLog *logger.Logger, tx db.TxRunner, parties repos.PartyRepo) PartyService {
	s := &partyService{}
	s.crud = &crud[politics.Party, *politics.Party, PartyInput]{
		name: "Party",
		log:  baseLog.With("service", "PartyService"),
		tx:   tx,
		repo: parties,
		spec: query.Spec{
			Fields:        []query.Field{{Param: "abbreviation", Column: "abbreviation"}},
			SearchColumns: []string{"name", "abbreviation"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "abbreviation", "founded_year", "created_at"},
		},
		apply: s.apply,
	}
	return s
}

func (s *partyService) apply(_ context.Context, row *politics.Party, in PartyInput, creating bool) error {
	var fe fieldErrors
	fe.str(&row.Name, in.Name, "name", true, creating)
	fe.str(&row.Abbreviation, in.Abbreviation, "abbreviation", true, creating)
	fe.str(&row.Symbol, in.Symbol, "symbol", false, creating)
	fe.str(&row.Description, in.Description, "description", false, creating)
	fe.nonNegativePtr(&row.FoundedYear, in.FoundedYear, "founded_year")
	return fe.err()
}

type ElectionYearInput struct {
	Year        *int    `json:"year"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type ElectionYearService interface {
	Resource[politics.ElectionYear, ElectionYearInput]
}

type electionYearService struct {
	*crud[politics.ElectionYear, *politics.ElectionYear, ElectionYearInput]
}

func NewElectionYearService(baseLog *logger.Logger, tx db.TxRunner, years repos.ElectionYearRepo) ElectionYearService {
	s := &electionYearService{}
	s.crud = &crud[politics.ElectionYear, *politics.ElectionYear, ElectionYearInput]{
		name: "Year",
		log:  baseLog.With("service", "ElectionYearService"),
		tx:   tx,
		repo: years,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "year", Column: "year", Kind: query.Int},
				{Param: "is_active", Column: "is_active", Kind: query.Bool},
			},
			SearchColumns: []string{"description"},
			DefaultSort:   "-year",
			Sortable:      []string{"year", "created_at"},
		},
		apply: s.apply,
	}
	return s
}

func (s *electionYearService) apply(_ context.Context, row *politics.ElectionYear, in ElectionYearInput, creating bool) error {
	var fe fieldErrors
	switch {
	case in.Year != nil && *in.Year <= 0:
		fe.add("year must be a positive number")
	case in.Year != nil:
		row.Year = *in.Year
	case creating:
		fe.add("year is required")
	}
	fe.str(&row.Description, in.Description, "description", false, creating)
	if creating {
		row.IsActive = true
	}
	setBool(&row.IsActive, in.IsActive)
	return fe.err()
}

// ---------------------------------------------------------------------------
// AccomplishedMLA
// ---------------------------------------------------------------------------

type AccomplishedMLAInput struct {
	Name         *string                  `json:"name"`
	AssemblyID   *ref.Ref[geo.Assembly]   `json:"assembly_id"`
	PartyID      *ref.Ref[politics.Party] `json:"party_id"`
	TermStart    *int                     `json:"term_start"`
	TermEnd      *int                     `json:"term_end"`
	IsCurrent    *bool                    `json:"is_current"`
	Achievements *[]string                `json:"achievements"`
	Contact      *string                  `json:"contact"`
}

type AccomplishedMLAService interface {
	Resource[politics.AccomplishedMLA, AccomplishedMLAInput]
	// SetCurrent marks id as the current MLA of its assembly.
	SetCurrent(ctx context.Context, id uuid.UUID) (*politics.AccomplishedMLA, error)
	// GetCurrent returns the assembly's current MLA, 404 when there is none.
	GetCurrent(ctx context.Context, assemblyID uuid.UUID) (*politics.AccomplishedMLA, error)
}

type accomplishedMLAService struct {
	*crud[politics.AccomplishedMLA, *politics.AccomplishedMLA, AccomplishedMLAInput]
	mlas       repos.AccomplishedMLARepo
	assemblies repos.AssemblyRepo
	parties    repos.PartyRepo
}

func NewAccomplishedMLAService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	mlas repos.AccomplishedMLARepo,
	assemblies repos.AssemblyRepo,
	parties repos.PartyRepo,
) AccomplishedMLAService {
	s := &accomplishedMLAService{mlas: mlas, assemblies: assemblies, parties: parties}
	s.crud = &crud[politics.AccomplishedMLA, *politics.AccomplishedMLA, AccomplishedMLAInput]{
		name: "Accomplished MLA",
		log:  baseLog.With("service", "AccomplishedMLAService"),
		tx:   tx,
		repo: mlas,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "assembly_id", Column: "assembly_id", Kind: query.ID},
				{Param: "party_id", Column: "party_id", Kind: query.ID},
				{Param: "is_current", Column: "is_current", Kind: query.Bool},
			},
			SearchColumns: []string{"name"},
			DefaultSort:   "-term_start",
			Sortable:      []string{"name", "term_start", "term_end", "created_at"},
			Preloads:      []string{"Assembly", "Party"},
		},
		preloads:  []string{"Assembly", "Party"},
		apply:     s.apply,
		afterSave: s.clearSiblings,
	}
	return s
}

func (s *accomplishedMLAService) apply(ctx context.Context, row *politics.AccomplishedMLA, in AccomplishedMLAInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	fe.str(&row.Name, in.Name, "name", true, creating)
	if id, present := refID(in.AssemblyID); fe.requiredRef(&row.AssemblyID, id, present, "assembly_id", creating) {
		checks = append(checks, RefID("Assembly", row.AssemblyID, s.assemblies))
	}
	if id, present := refID(in.PartyID); fe.requiredRef(&row.PartyID, id, present, "party_id", creating) {
		checks = append(checks, RefID("Party", row.PartyID, s.parties))
	}
	switch {
	case in.TermStart != nil && *in.TermStart <= 0:
		fe.add("term_start must be a positive year")
	case in.TermStart != nil:
		row.TermStart = *in.TermStart
	case creating:
		fe.add("term_start is required")
	}
	fe.nonNegativePtr(&row.TermEnd, in.TermEnd, "term_end")
	if row.TermEnd != nil && row.TermStart > 0 && *row.TermEnd < row.TermStart {
		fe.add("term_end cannot be before term_start")
	}
	setBool(&row.IsCurrent, in.IsCurrent)
	setStrings(&row.Achievements, in.Achievements)
	fe.str(&row.Contact, in.Contact, "contact", false, creating)
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// clearSiblings runs inside the write transaction. The assembly row lock makes
// concurrent writers for the same assembly take turns, so the last commit wins
// and at most one MLA stays current.
func (s *accomplishedMLAService) clearSiblings(dbc dbctx.Context, row *politics.AccomplishedMLA) error {
	if !row.IsCurrent {
		return nil
	}
	if _, err := s.mlas.LockAssembly(dbc, row.AssemblyID); err != nil {
		return err
	}
	n, err := s.mlas.ClearCurrent(dbc, row.AssemblyID, row.ID, s.clock())
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Debug("Cleared previous current MLA", "assembly_id", row.AssemblyID, "cleared", n)
	}
	return nil
}

func (s *accomplishedMLAService) SetCurrent(ctx context.Context, id uuid.UUID) (*politics.AccomplishedMLA, error) {
	row, err := s.mlas.GetByID(dbctx.Of(ctx), id)
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	if row == nil {
		return nil, apierr.NotFound("%s not found", s.name)
	}
	now := s.clock()
	updates := map[string]interface{}{"is_current": true, "updated_at": now}
	if actor := ctxutil.ActorID(ctx); actor != nil {
		updates["updated_by"] = *actor
	}
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		if err := s.mlas.UpdateFields(dbc, id, updates); err != nil {
			return err
		}
		row.IsCurrent = true
		return s.clearSiblings(dbc, row)
	})
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	return s.Get(ctx, id)
}

func (s *accomplishedMLAService) GetCurrent(ctx context.Context, assemblyID uuid.UUID) (*politics.AccomplishedMLA, error) {
	row, err := s.mlas.GetCurrentByAssemblyID(dbctx.Of(ctx), assemblyID)
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	if row == nil {
		return nil, apierr.NotFound("No current MLA found for this assembly")
	}
	return row, nil
}

// ---------------------------------------------------------------------------
// PartyActivity
// ---------------------------------------------------------------------------

type PartyActivityInput struct {
	Title           *string                  `json:"title"`
	Description     *string                  `json:"description"`
	ActivityType    *string                  `json:"activity_type"`
	Status          *string                  `json:"status"`
	ActivityDate    *Date                    `json:"activity_date"`
	AttendanceCount *int                     `json:"attendance_count"`
	MediaURLs       *[]string                `json:"media_urls"`
	PartyID         *ref.Ref[politics.Party] `json:"party_id"`
	ParliamentID    *ref.Ref[geo.Parliament] `json:"parliament_id"`
	StateID         *ref.Ref[geo.State]      `json:"state_id"`
	DivisionID      *ref.Ref[geo.Division]   `json:"division_id"`
	AssemblyID      *ref.Ref[geo.Assembly]   `json:"assembly_id"`
	BlockID         *ref.Ref[geo.Block]      `json:"block_id"`
	BoothID         *ref.Ref[geo.Booth]      `json:"booth_id"`
}

type PartyActivityService interface {
	Resource[politics.PartyActivity, PartyActivityInput]
}

type partyActivityService struct {
	*crud[politics.PartyActivity, *politics.PartyActivity, PartyActivityInput]
	parties     repos.PartyRepo
	parliaments repos.ParliamentRepo
	states      repos.StateRepo
	divisions   repos.DivisionRepo
	assemblies  repos.AssemblyRepo
	blocks      repos.BlockRepo
	booths      repos.BoothRepo
}

func NewPartyActivityService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	activities repos.PartyActivityRepo,
	parties repos.PartyRepo,
	parliaments repos.ParliamentRepo,
	states repos.StateRepo,
	divisions repos.DivisionRepo,
	assemblies repos.AssemblyRepo,
	blocks repos.BlockRepo,
	booths repos.BoothRepo,
) PartyActivityService {
	s := &partyActivityService{
		parties:     parties,
		parliaments: parliaments,
		states:      states,
		divisions:   divisions,
		assemblies:  assemblies,
		blocks:      blocks,
		booths:      booths,
	}
	s.crud = &crud[politics.PartyActivity, *politics.PartyActivity, PartyActivityInput]{
		name: "Party activity",
		log:  baseLog.With("service", "PartyActivityService"),
		tx:   tx,
		repo: activities,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "party_id", Column: "party_id", Kind: query.ID},
				{Param: "parliament_id", Column: "parliament_id", Kind: query.ID},
				{Param: "state_id", Column: "state_id", Kind: query.ID},
				{Param: "division_id", Column: "division_id", Kind: query.ID},
				{Param: "assembly_id", Column: "assembly_id", Kind: query.ID},
				{Param: "block_id", Column: "block_id", Kind: query.ID},
				{Param: "booth_id", Column: "booth_id", Kind: query.ID},
				{Param: "activity_type", Column: "activity_type"},
				{Param: "status", Column: "status"},
				{Param: "from", Column: "activity_date", Kind: query.Time, Op: ">="},
				{Param: "to", Column: "activity_date", Kind: query.Time, Op: "<="},
			},
			SearchColumns: []string{"title", "description"},
			DefaultSort:   "-activity_date",
			Sortable:      []string{"activity_date", "title", "status", "created_at"},
			Preloads:      []string{"Party", "Parliament"},
		},
		preloads: []string{"Party", "Parliament", "State", "Division", "Assembly", "Block", "Booth"},
		apply:    s.apply,
	}
	return s
}

func (s *partyActivityService) apply(ctx context.Context, row *politics.PartyActivity, in PartyActivityInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	fe.str(&row.Title, in.Title, "title", true, creating)
	fe.str(&row.Description, in.Description, "description", false, creating)
	if creating && in.ActivityType == nil {
		fe.add("activity_type is required")
	}
	fe.enum(&row.ActivityType, in.ActivityType, "activity_type", politics.ActivityTypes)
	if creating && row.Status == "" {
		row.Status = "scheduled"
	}
	fe.enum(&row.Status, in.Status, "status", politics.ActivityStatuses)
	switch {
	case in.ActivityDate != nil && !in.ActivityDate.IsZero():
		row.ActivityDate = in.ActivityDate.UTC()
	case in.ActivityDate != nil || creating:
		fe.add("activity_date is required")
	}
	fe.nonNegativePtr(&row.AttendanceCount, in.AttendanceCount, "attendance_count")
	setStrings(&row.MediaURLs, in.MediaURLs)

	if id, present := refID(in.PartyID); fe.requiredRef(&row.PartyID, id, present, "party_id", creating) {
		checks = append(checks, RefID("Party", row.PartyID, s.parties))
	}
	if id, present := refID(in.ParliamentID); fe.requiredRef(&row.ParliamentID, id, present, "parliament_id", creating) {
		checks = append(checks, RefID("Parliament", row.ParliamentID, s.parliaments))
	}
	if id, present := refID(in.StateID); optionalRef(&row.StateID, id, present) {
		checks = append(checks, Ref("State", row.StateID, s.states))
	}
	if id, present := refID(in.DivisionID); optionalRef(&row.DivisionID, id, present) {
		checks = append(checks, Ref("Division", row.DivisionID, s.divisions))
	}
	if id, present := refID(in.AssemblyID); optionalRef(&row.AssemblyID, id, present) {
		checks = append(checks, Ref("Assembly", row.AssemblyID, s.assemblies))
	}
	if id, present := refID(in.BlockID); optionalRef(&row.BlockID, id, present) {
		checks = append(checks, Ref("Block", row.BlockID, s.blocks))
	}
	if id, present := refID(in.BoothID); optionalRef(&row.BoothID, id, present) {
		checks = append(checks, Ref("Booth", row.BoothID, s.booths))
	}
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// Date accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return apierr.BadRequest("Invalid date")
	}
	s = s[1 : len(s)-1]
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return apierr.BadRequest("Invalid date: %s", s)
}
