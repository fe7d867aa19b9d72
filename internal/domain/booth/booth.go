// Package booth holds the satellite records keyed by booth_id.
package booth

import (
	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
)

var AdminRoles = []string{"president", "secretary", "worker", "agent"}

type Admin struct {
	domain.Base
	BoothID  uuid.UUID `gorm:"type:char(36);column:booth_id;not null;index;uniqueIndex:idx_booth_admin_booth_mobile,priority:1" json:"booth_id"`
	Name     string    `gorm:"column:name;not null" json:"name"`
	Mobile   string    `gorm:"column:mobile;not null;uniqueIndex:idx_booth_admin_booth_mobile,priority:2" json:"mobile"`
	Email    string    `gorm:"column:email" json:"email,omitempty"`
	Role     string    `gorm:"column:role;not null;default:worker" json:"role"`
	IsActive bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	Booth *geo.Booth `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
}

func (Admin) TableName() string { return "booth_admin" }

type Demographics struct {
	domain.Base
	BoothID           uuid.UUID `gorm:"type:char(36);column:booth_id;not null;uniqueIndex:idx_booth_demographics_booth" json:"booth_id"`
	TotalPopulation   int       `gorm:"column:total_population" json:"total_population"`
	TotalVoters       int       `gorm:"column:total_voters" json:"total_voters"`
	MaleVoters        int       `gorm:"column:male_voters" json:"male_voters"`
	FemaleVoters      int       `gorm:"column:female_voters" json:"female_voters"`
	OtherVoters       int       `gorm:"column:other_voters" json:"other_voters"`
	SCPercentage      float64   `gorm:"column:sc_percentage" json:"sc_percentage"`
	STPercentage      float64   `gorm:"column:st_percentage" json:"st_percentage"`
	OBCPercentage     float64   `gorm:"column:obc_percentage" json:"obc_percentage"`
	GeneralPercentage float64   `gorm:"column:general_percentage" json:"general_percentage"`
	LiteracyRate      float64   `gorm:"column:literacy_rate" json:"literacy_rate"`

	Booth *geo.Booth `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
}

func (Demographics) TableName() string { return "booth_demographics" }

var BuildingTypes = []string{"government", "private", "community", "school", "other"}

type Infrastructure struct {
	domain.Base
	BoothID          uuid.UUID `gorm:"type:char(36);column:booth_id;not null;uniqueIndex:idx_booth_infrastructure_booth" json:"booth_id"`
	BuildingType     string    `gorm:"column:building_type;not null;default:government" json:"building_type"`
	HasRamp          bool      `gorm:"column:has_ramp" json:"has_ramp"`
	HasDrinkingWater bool      `gorm:"column:has_drinking_water" json:"has_drinking_water"`
	HasToilet        bool      `gorm:"column:has_toilet" json:"has_toilet"`
	HasElectricity   bool      `gorm:"column:has_electricity" json:"has_electricity"`
	HasInternet      bool      `gorm:"column:has_internet" json:"has_internet"`
	IsSensitive      bool      `gorm:"column:is_sensitive" json:"is_sensitive"`
	RoadCondition    string    `gorm:"column:road_condition" json:"road_condition,omitempty"`

	Booth *geo.Booth `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
}

func (Infrastructure) TableName() string { return "booth_infrastructure" }

// ElectionStats is one booth's result for one election year. TurnoutPercentage is
// derived from registered voters when the caller leaves it out.
type ElectionStats struct {
	domain.Base
	BoothID           uuid.UUID  `gorm:"type:char(36);column:booth_id;not null;uniqueIndex:idx_booth_election_stats_booth_year,priority:1" json:"booth_id"`
	YearID            uuid.UUID  `gorm:"type:char(36);column:year_id;not null;index;uniqueIndex:idx_booth_election_stats_booth_year,priority:2" json:"year_id"`
	TotalVotesPolled  *int       `gorm:"column:total_votes_polled" json:"total_votes_polled,omitempty"`
	TurnoutPercentage *float64   `gorm:"column:turnout_percentage" json:"turnout_percentage,omitempty"`
	WinningPartyID    *uuid.UUID `gorm:"type:char(36);column:winning_party_id;index" json:"winning_party_id,omitempty"`
	WinningMargin     *int       `gorm:"column:winning_margin" json:"winning_margin,omitempty"`
	NotaVotes         *int       `gorm:"column:nota_votes" json:"nota_votes,omitempty"`
	RejectedVotes     *int       `gorm:"column:rejected_votes" json:"rejected_votes,omitempty"`
	Remarks           string     `gorm:"column:remarks" json:"remarks,omitempty"`

	Booth        *geo.Booth             `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
	Year         *politics.ElectionYear `gorm:"foreignKey:YearID;references:ID" json:"year,omitempty"`
	WinningParty *politics.Party        `gorm:"foreignKey:WinningPartyID;references:ID" json:"winning_party,omitempty"`
}

func (ElectionStats) TableName() string { return "booth_election_stats" }

var PresenceLevels = []string{"strong", "moderate", "weak", "none"}

type PartyPresence struct {
	domain.Base
	BoothID           uuid.UUID `gorm:"type:char(36);column:booth_id;not null;uniqueIndex:idx_booth_party_presence_pair,priority:1" json:"booth_id"`
	PartyID           uuid.UUID `gorm:"type:char(36);column:party_id;not null;index;uniqueIndex:idx_booth_party_presence_pair,priority:2" json:"party_id"`
	PresenceLevel     string    `gorm:"column:presence_level;not null;default:none" json:"presence_level"`
	HasBoothCommittee bool      `gorm:"column:has_booth_committee" json:"has_booth_committee"`
	WorkersCount      int       `gorm:"column:workers_count" json:"workers_count"`
	Remarks           string    `gorm:"column:remarks" json:"remarks,omitempty"`

	Booth *geo.Booth      `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
	Party *politics.Party `gorm:"foreignKey:PartyID;references:ID" json:"party,omitempty"`
}

func (PartyPresence) TableName() string { return "booth_party_presence" }

type PartyVoteShare struct {
	domain.Base
	BoothID             uuid.UUID  `gorm:"type:char(36);column:booth_id;not null;uniqueIndex:idx_booth_party_vote_share_pair,priority:1" json:"booth_id"`
	PartyID             uuid.UUID  `gorm:"type:char(36);column:party_id;not null;index;uniqueIndex:idx_booth_party_vote_share_pair,priority:2" json:"party_id"`
	YearID              *uuid.UUID `gorm:"type:char(36);column:year_id;index" json:"year_id,omitempty"`
	VotesReceived       int        `gorm:"column:votes_received" json:"votes_received"`
	VoteSharePercentage float64    `gorm:"column:vote_share_percentage" json:"vote_share_percentage"`

	Booth *geo.Booth             `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
	Party *politics.Party        `gorm:"foreignKey:PartyID;references:ID" json:"party,omitempty"`
	Year  *politics.ElectionYear `gorm:"foreignKey:YearID;references:ID" json:"year,omitempty"`
}

func (PartyVoteShare) TableName() string { return "booth_party_vote_share" }

type LocalDynamics struct {
	domain.Base
	BoothID          uuid.UUID         `gorm:"type:char(36);column:booth_id;not null;uniqueIndex:idx_local_dynamics_booth" json:"booth_id"`
	RegisteredVoters *int              `gorm:"column:registered_voters" json:"registered_voters,omitempty"`
	DominantCastes   domain.StringList `gorm:"column:dominant_castes" json:"dominant_castes"`
	KeyIssues        domain.StringList `gorm:"column:key_issues" json:"key_issues"`
	LocalLeaders     domain.StringList `gorm:"column:local_leaders" json:"local_leaders"`
	Notes            string            `gorm:"column:notes" json:"notes,omitempty"`

	Booth *geo.Booth `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
}

func (LocalDynamics) TableName() string { return "local_dynamics" }

// ActiveParty flags whether a party is working a booth. LastActiveStatus holds
// the value before the most recent toggle.
type ActiveParty struct {
	domain.Base
	BoothID          uuid.UUID `gorm:"type:char(36);column:booth_id;not null;uniqueIndex:idx_active_party_pair,priority:1" json:"booth_id"`
	PartyID          uuid.UUID `gorm:"type:char(36);column:party_id;not null;index;uniqueIndex:idx_active_party_pair,priority:2" json:"party_id"`
	ActiveStatus     bool      `gorm:"column:active_status;not null;default:true" json:"Active_status"`
	LastActiveStatus *bool     `gorm:"column:last_active_status" json:"last_Active_status,omitempty"`

	Booth *geo.Booth      `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
	Party *politics.Party `gorm:"foreignKey:PartyID;references:ID" json:"party,omitempty"`
}

func (ActiveParty) TableName() string { return "active_party" }

var TurnoutTrends = []string{"increasing", "decreasing", "stable"}

type VotingTrend struct {
	domain.Base
	BoothID         uuid.UUID  `gorm:"type:char(36);column:booth_id;not null;uniqueIndex:idx_voting_trend_booth_year,priority:1" json:"booth_id"`
	YearID          uuid.UUID  `gorm:"type:char(36);column:year_id;not null;index;uniqueIndex:idx_voting_trend_booth_year,priority:2" json:"year_id"`
	TurnoutTrend    string     `gorm:"column:turnout_trend;not null;default:stable" json:"turnout_trend"`
	SwingPartyID    *uuid.UUID `gorm:"type:char(36);column:swing_party_id;index" json:"swing_party_id,omitempty"`
	SwingPercentage *float64   `gorm:"column:swing_percentage" json:"swing_percentage,omitempty"`
	Notes           string     `gorm:"column:notes" json:"notes,omitempty"`

	Booth      *geo.Booth             `gorm:"foreignKey:BoothID;references:ID" json:"booth,omitempty"`
	Year       *politics.ElectionYear `gorm:"foreignKey:YearID;references:ID" json:"year,omitempty"`
	SwingParty *politics.Party        `gorm:"foreignKey:SwingPartyID;references:ID" json:"swing_party,omitempty"`
}

func (VotingTrend) TableName() string { return "voting_trend" }
