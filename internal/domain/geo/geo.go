// Package geo models the electoral containment hierarchy:
// State → Division → Parliament → Assembly → District/Block → Booth.
package geo

import (
	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain"
)

type State struct {
	domain.Base
	Name string `gorm:"column:name;not null;uniqueIndex:idx_state_name" json:"name"`
	Code string `gorm:"column:code;size:8" json:"code,omitempty"`
}

func (State) TableName() string { return "state" }

type Division struct {
	domain.Base
	Name    string    `gorm:"column:name;not null;uniqueIndex:idx_division_state_name,priority:2" json:"name"`
	StateID uuid.UUID `gorm:"type:char(36);column:state_id;not null;index;uniqueIndex:idx_division_state_name,priority:1" json:"state_id"`

	State *State `gorm:"foreignKey:StateID;references:ID" json:"state,omitempty"`
}

func (Division) TableName() string { return "division" }

type Parliament struct {
	domain.Base
	Name       string    `gorm:"column:name;not null;uniqueIndex:idx_parliament_state_name,priority:2" json:"name"`
	Category   string    `gorm:"column:category" json:"category,omitempty"`
	StateID    uuid.UUID `gorm:"type:char(36);column:state_id;not null;index;uniqueIndex:idx_parliament_state_name,priority:1" json:"state_id"`
	DivisionID uuid.UUID `gorm:"type:char(36);column:division_id;not null;index" json:"division_id"`

	State    *State    `gorm:"foreignKey:StateID;references:ID" json:"state,omitempty"`
	Division *Division `gorm:"foreignKey:DivisionID;references:ID" json:"division,omitempty"`
}

func (Parliament) TableName() string { return "parliament" }

const (
	AssemblyTypeGeneral = "General"
	AssemblyTypeSC      = "SC"
	AssemblyTypeST      = "ST"
)

var AssemblyTypes = []string{AssemblyTypeGeneral, AssemblyTypeSC, AssemblyTypeST}

type Assembly struct {
	domain.Base
	Name         string     `gorm:"column:name;not null;uniqueIndex:idx_assembly_state_name,priority:2" json:"name"`
	Type         string     `gorm:"column:type;not null;default:General" json:"type"`
	StateID      uuid.UUID  `gorm:"type:char(36);column:state_id;not null;index;uniqueIndex:idx_assembly_state_name,priority:1" json:"state_id"`
	DivisionID   uuid.UUID  `gorm:"type:char(36);column:division_id;not null;index" json:"division_id"`
	ParliamentID uuid.UUID  `gorm:"type:char(36);column:parliament_id;not null;index" json:"parliament_id"`
	DistrictID   *uuid.UUID `gorm:"type:char(36);column:district_id;index" json:"district_id,omitempty"`

	State      *State      `gorm:"foreignKey:StateID;references:ID" json:"state,omitempty"`
	Division   *Division   `gorm:"foreignKey:DivisionID;references:ID" json:"division,omitempty"`
	Parliament *Parliament `gorm:"foreignKey:ParliamentID;references:ID" json:"parliament,omitempty"`
	District   *District   `gorm:"foreignKey:DistrictID;references:ID" json:"district,omitempty"`
}

func (Assembly) TableName() string { return "assembly" }

type District struct {
	domain.Base
	Name         string     `gorm:"column:name;not null;uniqueIndex:idx_district_state_name,priority:2" json:"name"`
	StateID      uuid.UUID  `gorm:"type:char(36);column:state_id;not null;index;uniqueIndex:idx_district_state_name,priority:1" json:"state_id"`
	DivisionID   uuid.UUID  `gorm:"type:char(36);column:division_id;not null;index" json:"division_id"`
	ParliamentID *uuid.UUID `gorm:"type:char(36);column:parliament_id;index" json:"parliament_id,omitempty"`
	AssemblyID   *uuid.UUID `gorm:"type:char(36);column:assembly_id;index" json:"assembly_id,omitempty"`

	State      *State      `gorm:"foreignKey:StateID;references:ID" json:"state,omitempty"`
	Division   *Division   `gorm:"foreignKey:DivisionID;references:ID" json:"division,omitempty"`
	Parliament *Parliament `gorm:"foreignKey:ParliamentID;references:ID" json:"parliament,omitempty"`
	Assembly   *Assembly   `gorm:"foreignKey:AssemblyID;references:ID" json:"assembly,omitempty"`
}

func (District) TableName() string { return "district" }

type Block struct {
	domain.Base
	Name         string     `gorm:"column:name;not null;uniqueIndex:idx_block_assembly_name,priority:2" json:"name"`
	StateID      uuid.UUID  `gorm:"type:char(36);column:state_id;not null;index" json:"state_id"`
	DivisionID   uuid.UUID  `gorm:"type:char(36);column:division_id;not null;index" json:"division_id"`
	ParliamentID uuid.UUID  `gorm:"type:char(36);column:parliament_id;not null;index" json:"parliament_id"`
	AssemblyID   uuid.UUID  `gorm:"type:char(36);column:assembly_id;not null;index;uniqueIndex:idx_block_assembly_name,priority:1" json:"assembly_id"`
	DistrictID   *uuid.UUID `gorm:"type:char(36);column:district_id;index" json:"district_id,omitempty"`

	State      *State      `gorm:"foreignKey:StateID;references:ID" json:"state,omitempty"`
	Division   *Division   `gorm:"foreignKey:DivisionID;references:ID" json:"division,omitempty"`
	Parliament *Parliament `gorm:"foreignKey:ParliamentID;references:ID" json:"parliament,omitempty"`
	Assembly   *Assembly   `gorm:"foreignKey:AssemblyID;references:ID" json:"assembly,omitempty"`
	District   *District   `gorm:"foreignKey:DistrictID;references:ID" json:"district,omitempty"`
}

func (Block) TableName() string { return "block" }

type Booth struct {
	domain.Base
	Name         string     `gorm:"column:name;not null" json:"name"`
	BoothNumber  string     `gorm:"column:booth_number;not null;uniqueIndex:idx_booth_assembly_number,priority:2" json:"booth_number"`
	FullAddress  string     `gorm:"column:full_address" json:"full_address,omitempty"`
	Latitude     *float64   `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude    *float64   `gorm:"column:longitude" json:"longitude,omitempty"`
	StateID      uuid.UUID  `gorm:"type:char(36);column:state_id;not null;index" json:"state_id"`
	DivisionID   uuid.UUID  `gorm:"type:char(36);column:division_id;not null;index" json:"division_id"`
	ParliamentID uuid.UUID  `gorm:"type:char(36);column:parliament_id;not null;index" json:"parliament_id"`
	AssemblyID   uuid.UUID  `gorm:"type:char(36);column:assembly_id;not null;index;uniqueIndex:idx_booth_assembly_number,priority:1" json:"assembly_id"`
	BlockID      uuid.UUID  `gorm:"type:char(36);column:block_id;not null;index" json:"block_id"`
	DistrictID   *uuid.UUID `gorm:"type:char(36);column:district_id;index" json:"district_id,omitempty"`

	State      *State      `gorm:"foreignKey:StateID;references:ID" json:"state,omitempty"`
	Division   *Division   `gorm:"foreignKey:DivisionID;references:ID" json:"division,omitempty"`
	Parliament *Parliament `gorm:"foreignKey:ParliamentID;references:ID" json:"parliament,omitempty"`
	Assembly   *Assembly   `gorm:"foreignKey:AssemblyID;references:ID" json:"assembly,omitempty"`
	Block      *Block      `gorm:"foreignKey:BlockID;references:ID" json:"block,omitempty"`
	District   *District   `gorm:"foreignKey:DistrictID;references:ID" json:"district,omitempty"`
}

func (Booth) TableName() string { return "booth" }
