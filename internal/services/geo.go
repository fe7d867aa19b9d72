package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/query"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

type StateInput struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

type StateService interface {
	Resource[geo.State, StateInput]
}

type stateService struct {
	*crud[geo.State, *geo.State, StateInput]
}

func NewStateService(baseLog *logger.Logger, tx db.TxRunner, states repos.StateRepo, hierarchy HierarchyService) StateService {
	s := &stateService{}
	s.crud = &crud[geo.State, *geo.State, StateInput]{
		name: "State",
		log:  baseLog.With("service", "StateService"),
		tx:   tx,
		repo: states,
		spec: query.Spec{
			SearchColumns: []string{"name", "code"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "code", "created_at"},
		},
		apply:    s.apply,
		onChange: hierarchy.Invalidate,
	}
	return s
}

func (s *stateService) apply(_ context.Context, row *geo.State, in StateInput, creating bool) error {
	var fe fieldErrors
	fe.str(&row.Name, in.Name, "name", true, creating)
	fe.str(&row.Code, in.Code, "code", false, creating)
	return fe.err()
}

// ---------------------------------------------------------------------------
// Division
// ---------------------------------------------------------------------------

type DivisionInput struct {
	Name    *string             `json:"name"`
	StateID *ref.Ref[geo.State] `json:"state_id"`
}

type DivisionService interface {
	Resource[geo.Division, DivisionInput]
}

type divisionService struct {
	*crud[geo.Division, *geo.Division, DivisionInput]
	states repos.StateRepo
}

func NewDivisionService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	divisions repos.DivisionRepo,
	states repos.StateRepo,
	hierarchy HierarchyService,
) DivisionService {
	s := &divisionService{states: states}
	s.crud = &crud[geo.Division, *geo.Division, DivisionInput]{
		name: "Division",
		log:  baseLog.With("service", "DivisionService"),
		tx:   tx,
		repo: divisions,
		spec: query.Spec{
			Fields:        []query.Field{{Param: "state_id", Column: "state_id", Kind: query.ID}},
			SearchColumns: []string{"name"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "created_at"},
			Preloads:      []string{"State"},
		},
		preloads: []string{"State"},
		apply:    s.apply,
		onChange: hierarchy.Invalidate,
	}
	return s
}

func (s *divisionService) apply(ctx context.Context, row *geo.Division, in DivisionInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	fe.str(&row.Name, in.Name, "name", true, creating)
	if id, present := refID(in.StateID); fe.requiredRef(&row.StateID, id, present, "state_id", creating) {
		checks = append(checks, RefID("State", row.StateID, s.states))
	}
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// Parliament
// ---------------------------------------------------------------------------

type ParliamentInput struct {
	Name       *string                `json:"name"`
	Category   *string                `json:"category"`
	StateID    *ref.Ref[geo.State]    `json:"state_id"`
	DivisionID *ref.Ref[geo.Division] `json:"division_id"`
}

type ParliamentService interface {
	Resource[geo.Parliament, ParliamentInput]
}

type parliamentService struct {
	*crud[geo.Parliament, *geo.Parliament, ParliamentInput]
	states    repos.StateRepo
	divisions repos.DivisionRepo
}

func NewParliamentService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	parliaments repos.ParliamentRepo,
	states repos.StateRepo,
	divisions repos.DivisionRepo,
	hierarchy HierarchyService,
) ParliamentService {
	s := &parliamentService{states: states, divisions: divisions}
	s.crud = &crud[geo.Parliament, *geo.Parliament, ParliamentInput]{
		name: "Parliament",
		log:  baseLog.With("service", "ParliamentService"),
		tx:   tx,
		repo: parliaments,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "state_id", Column: "state_id", Kind: query.ID},
				{Param: "division_id", Column: "division_id", Kind: query.ID},
				{Param: "category", Column: "category"},
			},
			SearchColumns: []string{"name"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "created_at"},
			Preloads:      []string{"State", "Division"},
		},
		preloads: []string{"State", "Division"},
		apply:    s.apply,
		onChange: hierarchy.Invalidate,
	}
	return s
}

func (s *parliamentService) apply(ctx context.Context, row *geo.Parliament, in ParliamentInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	fe.str(&row.Name, in.Name, "name", true, creating)
	fe.str(&row.Category, in.Category, "category", false, creating)
	if id, present := refID(in.StateID); fe.requiredRef(&row.StateID, id, present, "state_id", creating) {
		checks = append(checks, RefID("State", row.StateID, s.states))
	}
	if id, present := refID(in.DivisionID); fe.requiredRef(&row.DivisionID, id, present, "division_id", creating) {
		checks = append(checks, RefID("Division", row.DivisionID, s.divisions))
	}
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// Assembly
// ---------------------------------------------------------------------------

type AssemblyInput struct {
	Name         *string                  `json:"name"`
	Type         *string                  `json:"type"`
	StateID      *ref.Ref[geo.State]      `json:"state_id"`
	DivisionID   *ref.Ref[geo.Division]   `json:"division_id"`
	ParliamentID *ref.Ref[geo.Parliament] `json:"parliament_id"`
	DistrictID   *ref.Ref[geo.District]   `json:"district_id"`
}

type AssemblyService interface {
	Resource[geo.Assembly, AssemblyInput]
}

type assemblyService struct {
	*crud[geo.Assembly, *geo.Assembly, AssemblyInput]
	states      repos.StateRepo
	divisions   repos.DivisionRepo
	parliaments repos.ParliamentRepo
	districts   repos.DistrictRepo
}

func NewAssemblyService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	assemblies repos.AssemblyRepo,
	states repos.StateRepo,
	divisions repos.DivisionRepo,
	parliaments repos.ParliamentRepo,
	districts repos.DistrictRepo,
	hierarchy HierarchyService,
) AssemblyService {
	s := &assemblyService{states: states, divisions: divisions, parliaments: parliaments, districts: districts}
	s.crud = &crud[geo.Assembly, *geo.Assembly, AssemblyInput]{
		name: "Assembly",
		log:  baseLog.With("service", "AssemblyService"),
		tx:   tx,
		repo: assemblies,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "state_id", Column: "state_id", Kind: query.ID},
				{Param: "division_id", Column: "division_id", Kind: query.ID},
				{Param: "parliament_id", Column: "parliament_id", Kind: query.ID},
				{Param: "district_id", Column: "district_id", Kind: query.ID},
				{Param: "type", Column: "type"},
			},
			SearchColumns: []string{"name"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "type", "created_at"},
			Preloads:      []string{"State", "Parliament"},
		},
		preloads: []string{"State", "Division", "Parliament", "District"},
		apply:    s.apply,
		onChange: hierarchy.Invalidate,
	}
	return s
}

func (s *assemblyService) apply(ctx context.Context, row *geo.Assembly, in AssemblyInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	fe.str(&row.Name, in.Name, "name", true, creating)
	if creating && row.Type == "" {
		row.Type = geo.AssemblyTypeGeneral
	}
	fe.enum(&row.Type, in.Type, "type", geo.AssemblyTypes)
	if id, present := refID(in.StateID); fe.requiredRef(&row.StateID, id, present, "state_id", creating) {
		checks = append(checks, RefID("State", row.StateID, s.states))
	}
	if id, present := refID(in.DivisionID); fe.requiredRef(&row.DivisionID, id, present, "division_id", creating) {
		checks = append(checks, RefID("Division", row.DivisionID, s.divisions))
	}
	if id, present := refID(in.ParliamentID); fe.requiredRef(&row.ParliamentID, id, present, "parliament_id", creating) {
		checks = append(checks, RefID("Parliament", row.ParliamentID, s.parliaments))
	}
	if id, present := refID(in.DistrictID); optionalRef(&row.DistrictID, id, present) {
		checks = append(checks, Ref("District", row.DistrictID, s.districts))
	}
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// District
// ---------------------------------------------------------------------------

type DistrictInput struct {
	Name         *string                  `json:"name"`
	StateID      *ref.Ref[geo.State]      `json:"state_id"`
	DivisionID   *ref.Ref[geo.Division]   `json:"division_id"`
	ParliamentID *ref.Ref[geo.Parliament] `json:"parliament_id"`
	AssemblyID   *ref.Ref[geo.Assembly]   `json:"assembly_id"`
}

type DistrictService interface {
	Resource[geo.District, DistrictInput]
}

type districtService struct {
	*crud[geo.District, *geo.District, DistrictInput]
	states      repos.StateRepo
	divisions   repos.DivisionRepo
	parliaments repos.ParliamentRepo
	assemblies  repos.AssemblyRepo
}

func NewDistrictService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	districts repos.DistrictRepo,
	states repos.StateRepo,
	divisions repos.DivisionRepo,
	parliaments repos.ParliamentRepo,
	assemblies repos.AssemblyRepo,
) DistrictService {
	s := &districtService{states: states, divisions: divisions, parliaments: parliaments, assemblies: assemblies}
	s.crud = &crud[geo.District, *geo.District, DistrictInput]{
		name: "District",
		log:  baseLog.With("service", "DistrictService"),
		tx:   tx,
		repo: districts,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "state_id", Column: "state_id", Kind: query.ID},
				{Param: "division_id", Column: "division_id", Kind: query.ID},
				{Param: "parliament_id", Column: "parliament_id", Kind: query.ID},
				{Param: "assembly_id", Column: "assembly_id", Kind: query.ID},
			},
			SearchColumns: []string{"name"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "created_at"},
			Preloads:      []string{"State", "Division"},
		},
		preloads: []string{"State", "Division", "Parliament", "Assembly"},
		apply:    s.apply,
	}
	return s
}

func (s *districtService) apply(ctx context.Context, row *geo.District, in DistrictInput, creating bool) error {
	var fe fieldErrors
	var checks []RefCheck
	fe.str(&row.Name, in.Name, "name", true, creating)
	if id, present := refID(in.StateID); fe.requiredRef(&row.StateID, id, present, "state_id", creating) {
		checks = append(checks, RefID("State", row.StateID, s.states))
	}
	if id, present := refID(in.DivisionID); fe.requiredRef(&row.DivisionID, id, present, "division_id", creating) {
		checks = append(checks, RefID("Division", row.DivisionID, s.divisions))
	}
	if id, present := refID(in.ParliamentID); optionalRef(&row.ParliamentID, id, present) {
		checks = append(checks, Ref("Parliament", row.ParliamentID, s.parliaments))
	}
	if id, present := refID(in.AssemblyID); optionalRef(&row.AssemblyID, id, present) {
		checks = append(checks, Ref("Assembly", row.AssemblyID, s.assemblies))
	}
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// Block
// ---------------------------------------------------------------------------

type BlockInput struct {
	Name         *string                  `json:"name"`
	StateID      *ref.Ref[geo.State]      `json:"state_id"`
	DivisionID   *ref.Ref[geo.Division]   `json:"division_id"`
	ParliamentID *ref.Ref[geo.Parliament] `json:"parliament_id"`
	AssemblyID   *ref.Ref[geo.Assembly]   `json:"assembly_id"`
	DistrictID   *ref.Ref[geo.District]   `json:"district_id"`
}

type BlockService interface {
	Resource[geo.Block, BlockInput]
}

type blockService struct {
	*crud[geo.Block, *geo.Block, BlockInput]
	states      repos.StateRepo
	divisions   repos.DivisionRepo
	parliaments repos.ParliamentRepo
	assemblies  repos.AssemblyRepo
	districts   repos.DistrictRepo
}

func NewBlockService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	blocks repos.BlockRepo,
	states repos.StateRepo,
	divisions repos.DivisionRepo,
	parliaments repos.ParliamentRepo,
	assemblies repos.AssemblyRepo,
	districts repos.DistrictRepo,
	hierarchy HierarchyService,
) BlockService {
	s := &blockService{states: states, divisions: divisions, parliaments: parliaments, assemblies: assemblies, districts: districts}
	s.crud = &crud[geo.Block, *geo.Block, BlockInput]{
		name: "Block",
		log:  baseLog.With("service", "BlockService"),
		tx:   tx,
		repo: blocks,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "state_id", Column: "state_id", Kind: query.ID},
				{Param: "division_id", Column: "division_id", Kind: query.ID},
				{Param: "parliament_id", Column: "parliament_id", Kind: query.ID},
				{Param: "assembly_id", Column: "assembly_id", Kind: query.ID},
				{Param: "district_id", Column: "district_id", Kind: query.ID},
			},
			SearchColumns: []string{"name"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "created_at"},
			Preloads:      []string{"Assembly"},
		},
		preloads: []string{"State", "Division", "Parliament", "Assembly", "District"},
		apply:    s.apply,
		onChange: hierarchy.Invalidate,
	}
	return s
}

// apply loads the assembly first; omitted ancestors are taken from it.
func (s *blockService) apply(ctx context.Context, row *geo.Block, in BlockInput, creating bool) error {
	var fe fieldErrors
	fe.str(&row.Name, in.Name, "name", true, creating)

	assemblyID, assemblyPresent := refID(in.AssemblyID)
	if fe.requiredRef(&row.AssemblyID, assemblyID, assemblyPresent, "assembly_id", creating) {
		asm, err := s.assemblies.GetByID(dbctx.Of(ctx), row.AssemblyID)
		if err != nil {
			return apierr.Internal(err)
		}
		if asm == nil {
			return apierr.MissingReference("Assembly")
		}
		inheritUUID(&row.StateID, in.StateID == nil, asm.StateID)
		inheritUUID(&row.DivisionID, in.DivisionID == nil, asm.DivisionID)
		inheritUUID(&row.ParliamentID, in.ParliamentID == nil, asm.ParliamentID)
	}

	var checks []RefCheck
	if id, present := refID(in.StateID); fe.requiredRef(&row.StateID, id, present, "state_id", creating) {
		checks = append(checks, RefID("State", row.StateID, s.states))
	}
	if id, present := refID(in.DivisionID); fe.requiredRef(&row.DivisionID, id, present, "division_id", creating) {
		checks = append(checks, RefID("Division", row.DivisionID, s.divisions))
	}
	if id, present := refID(in.ParliamentID); fe.requiredRef(&row.ParliamentID, id, present, "parliament_id", creating) {
		checks = append(checks, RefID("Parliament", row.ParliamentID, s.parliaments))
	}
	if id, present := refID(in.DistrictID); optionalRef(&row.DistrictID, id, present) {
		checks = append(checks, Ref("District", row.DistrictID, s.districts))
	}
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// ---------------------------------------------------------------------------
// Booth
// ---------------------------------------------------------------------------

type BoothInput struct {
	Name         *string                  `json:"name"`
	BoothNumber  *string                  `json:"booth_number"`
	FullAddress  *string                  `json:"full_address"`
	Latitude     *float64                 `json:"latitude"`
	Longitude    *float64                 `json:"longitude"`
	StateID      *ref.Ref[geo.State]      `json:"state_id"`
	DivisionID   *ref.Ref[geo.Division]   `json:"division_id"`
	ParliamentID *ref.Ref[geo.Parliament] `json:"parliament_id"`
	AssemblyID   *ref.Ref[geo.Assembly]   `json:"assembly_id"`
	BlockID      *ref.Ref[geo.Block]      `json:"block_id"`
	DistrictID   *ref.Ref[geo.District]   `json:"district_id"`
}

type BoothService interface {
	Resource[geo.Booth, BoothInput]
	Summary(ctx context.Context, id uuid.UUID) (*BoothSummary, error)
}

type boothService struct {
	*crud[geo.Booth, *geo.Booth, BoothInput]
	states      repos.StateRepo
	divisions   repos.DivisionRepo
	parliaments repos.ParliamentRepo
	assemblies  repos.AssemblyRepo
	blocks      repos.BlockRepo
	districts   repos.DistrictRepo
	satellites  BoothSatelliteRepos
}

func NewBoothService(
	baseLog *logger.Logger,
	tx db.TxRunner,
	booths repos.BoothRepo,
	states repos.StateRepo,
	divisions repos.DivisionRepo,
	parliaments repos.ParliamentRepo,
	assemblies repos.AssemblyRepo,
	blocks repos.BlockRepo,
	districts repos.DistrictRepo,
	satellites BoothSatelliteRepos,
	hierarchy HierarchyService,
) BoothService {
	s := &boothService{
		states:      states,
		divisions:   divisions,
		parliaments: parliaments,
		assemblies:  assemblies,
		blocks:      blocks,
		districts:   districts,
		satellites:  satellites,
	}
	s.crud = &crud[geo.Booth, *geo.Booth, BoothInput]{
		name: "Booth",
		log:  baseLog.With("service", "BoothService"),
		tx:   tx,
		repo: booths,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "state_id", Column: "state_id", Kind: query.ID},
				{Param: "division_id", Column: "division_id", Kind: query.ID},
				{Param: "parliament_id", Column: "parliament_id", Kind: query.ID},
				{Param: "assembly_id", Column: "assembly_id", Kind: query.ID},
				{Param: "block_id", Column: "block_id", Kind: query.ID},
				{Param: "district_id", Column: "district_id", Kind: query.ID},
				{Param: "booth_number", Column: "booth_number"},
			},
			SearchColumns: []string{"name", "booth_number", "full_address"},
			DefaultSort:   "name",
			Sortable:      []string{"name", "booth_number", "created_at"},
			Preloads:      []string{"Assembly", "Block"},
		},
		preloads: []string{"State", "Division", "Parliament", "Assembly", "Block", "District"},
		apply:    s.apply,
		onChange: hierarchy.Invalidate,
	}
	return s
}

// apply loads the block first; omitted ancestors are taken from it.
func (s *boothService) apply(ctx context.Context, row *geo.Booth, in BoothInput, creating bool) error {
	var fe fieldErrors
	fe.str(&row.Name, in.Name, "name", true, creating)
	fe.str(&row.BoothNumber, in.BoothNumber, "booth_number", true, creating)
	fe.str(&row.FullAddress, in.FullAddress, "full_address", false, creating)
	if in.Latitude != nil {
		if *in.Latitude < -90 || *in.Latitude > 90 {
			fe.add("latitude must be between -90 and 90")
		} else {
			row.Latitude = in.Latitude
		}
	}
	if in.Longitude != nil {
		if *in.Longitude < -180 || *in.Longitude > 180 {
			fe.add("longitude must be between -180 and 180")
		} else {
			row.Longitude = in.Longitude
		}
	}

	blockID, blockPresent := refID(in.BlockID)
	if fe.requiredRef(&row.BlockID, blockID, blockPresent, "block_id", creating) {
		blk, err := s.blocks.GetByID(dbctx.Of(ctx), row.BlockID)
		if err != nil {
			return apierr.Internal(err)
		}
		if blk == nil {
			return apierr.MissingReference("Block")
		}
		inheritUUID(&row.StateID, in.StateID == nil, blk.StateID)
		inheritUUID(&row.DivisionID, in.DivisionID == nil, blk.DivisionID)
		inheritUUID(&row.ParliamentID, in.ParliamentID == nil, blk.ParliamentID)
		inheritUUID(&row.AssemblyID, in.AssemblyID == nil, blk.AssemblyID)
		if in.DistrictID == nil && blk.DistrictID != nil {
			d := *blk.DistrictID
			row.DistrictID = &d
		}
	}

	var checks []RefCheck
	if id, present := refID(in.StateID); fe.requiredRef(&row.StateID, id, present, "state_id", creating) {
		checks = append(checks, RefID("State", row.StateID, s.states))
	}
	if id, present := refID(in.DivisionID); fe.requiredRef(&row.DivisionID, id, present, "division_id", creating) {
		checks = append(checks, RefID("Division", row.DivisionID, s.divisions))
	}
	if id, present := refID(in.ParliamentID); fe.requiredRef(&row.ParliamentID, id, present, "parliament_id", creating) {
		checks = append(checks, RefID("Parliament", row.ParliamentID, s.parliaments))
	}
	if id, present := refID(in.AssemblyID); fe.requiredRef(&row.AssemblyID, id, present, "assembly_id", creating) {
		checks = append(checks, RefID("Assembly", row.AssemblyID, s.assemblies))
	}
	if id, present := refID(in.DistrictID); optionalRef(&row.DistrictID, id, present) {
		checks = append(checks, Ref("District", row.DistrictID, s.districts))
	}
	if err := fe.err(); err != nil {
		return err
	}
	return CheckRefs(ctx, checks...)
}

// inheritUUID copies from into dst when the caller did not send the field.
func inheritUUID(dst *uuid.UUID, omitted bool, from uuid.UUID) {
	if omitted && from != uuid.Nil {
		*dst = from
	}
}
