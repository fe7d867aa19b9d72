// Package politics models parties and the records that hang off them.
package politics

import (
	"time"

	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
)

type Party struct {
	domain.Base
	Name         string `gorm:"column:name;not null;uniqueIndex:idx_party_name" json:"name"`
	Abbreviation string `gorm:"column:abbreviation;not null;uniqueIndex:idx_party_abbreviation" json:"abbreviation"`
	Symbol       string `gorm:"column:symbol" json:"symbol,omitempty"`
	FoundedYear  *int   `gorm:"column:founded_year" json:"founded_year,omitempty"`
	Description  string `gorm:"column:description" json:"description,omitempty"`
}

func (Party) TableName() string { return "party" }

// ElectionYear is what election-scoped records key on (year_id).
type ElectionYear struct {
	domain.Base
	Year        int    `gorm:"column:year;not null;uniqueIndex:idx_election_year_year" json:"year"`
	Description string `gorm:"column:description" json:"description,omitempty"`
	IsActive    bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (ElectionYear) TableName() string { return "election_year" }

// AccomplishedMLA is a sitting or former MLA of an assembly. At most one row per
// assembly has IsCurrent set; the service clears siblings in the same transaction.
type AccomplishedMLA struct {
	domain.Base
	Name         string            `gorm:"column:name;not null" json:"name"`
	AssemblyID   uuid.UUID         `gorm:"type:char(36);column:assembly_id;not null;index" json:"assembly_id"`
	PartyID      uuid.UUID         `gorm:"type:char(36);column:party_id;not null;index" json:"party_id"`
	TermStart    int               `gorm:"column:term_start;not null" json:"term_start"`
	TermEnd      *int              `gorm:"column:term_end" json:"term_end,omitempty"`
	IsCurrent    bool              `gorm:"column:is_current;not null;default:false;index" json:"is_current"`
	Achievements domain.StringList `gorm:"column:achievements" json:"achievements"`
	Contact      string            `gorm:"column:contact" json:"contact,omitempty"`

	Assembly *geo.Assembly `gorm:"foreignKey:AssemblyID;references:ID" json:"assembly,omitempty"`
	Party    *Party        `gorm:"foreignKey:PartyID;references:ID" json:"party,omitempty"`
}

func (AccomplishedMLA) TableName() string { return "accomplished_mla" }

var ActivityTypes = []string{"rally", "meeting", "protest", "campaign", "door_to_door", "other"}

var ActivityStatuses = []string{"scheduled", "completed", "cancelled", "postponed"}

type PartyActivity struct {
	domain.Base
	Title           string            `gorm:"column:title;not null" json:"title"`
	Description     string            `gorm:"column:description" json:"description,omitempty"`
	ActivityType    string            `gorm:"column:activity_type;not null;index" json:"activity_type"`
	Status          string            `gorm:"column:status;not null;default:scheduled;index" json:"status"`
	ActivityDate    time.Time         `gorm:"column:activity_date;not null;index" json:"activity_date"`
	AttendanceCount *int              `gorm:"column:attendance_count" json:"attendance_count,omitempty"`
	MediaURLs       domain.StringList `gorm:"column:media_urls" json:"media_urls"`
	PartyID         uuid.UUID         `gorm:"type:char(36);column:party_id;not null;index" json:"party_id"`
	ParliamentID    uuid.UUID         `gorm:"type:char(36);column:parliament_id;not null;index" json:"parliament_id"`
	StateID         *uuid.UUID        `gorm:"type:char(36);column:state_id;index" json:"state_id,omitempty"`
	DivisionID      *uuid.UUID        `gorm:"type:char(36);column:division_id;index" json:"division_id,omitempty"`
	AssemblyID      *uuid.UUID        `gorm:"type:char(36);column:assembly_id;index" json:"assembly_id,omitempty"`
	BlockID         *uuid.UUID        `gorm:"type:char(36);column:block_id;index" json:"block_id,omitempty"`
	BoothID         *uuid.UUID        `gorm:"type:char(36);column:booth_id;index" json:"booth_id,omitempty"`

	Party      *Party          `gorm:"foreignKey:PartyID;references:ID" json:"party,omitempty"`
	Parliament *geo.Parliament `gorm:"foreignKey:ParliamentID;references:ID" json:"parliament,omitempty"`
	State      *geo.State      `gorm:"foreignKey:StateID;references:ID" json:"state,omitempty"`
	Division   *geo.Division   `gorm:"foreignKey:DivisionID;references:ID" json:"division,omitempty"`
	Assembly   *geo.Assembly   `gorm:"foreignKey:AssemblyID;references:ID" json:"assembly,omitempty"`
	Block      *geo.Block      `gorm:"foreignKey:BlockID;references:ID" json:"block,omitempty"`
	Booth      *geo.Booth      `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
}

func (PartyActivity) TableName() string { return "party_activity" }
