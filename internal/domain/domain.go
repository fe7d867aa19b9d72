// Package domain holds the pieces shared by every persisted entity; the entities
// themselves live in the geo, politics, booth and account subpackages.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Base is embedded by every entity. Timestamps are owned by Stamp, not by gorm.
type Base struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey" json:"_id"`
	CreatedBy *uuid.UUID `gorm:"type:char(36);column:created_by" json:"created_by,omitempty"`
	UpdatedBy *uuid.UUID `gorm:"type:char(36);column:updated_by" json:"updated_by,omitempty"`
	CreatedAt time.Time  `gorm:"not null;column:created_at;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

func (b *Base) GetID() uuid.UUID   { return b.ID }
func (b *Base) SetID(id uuid.UUID) { b.ID = id }

// StampCreate assigns an id when missing and sets both timestamps and actors.
func (b *Base) StampCreate(now time.Time, actor *uuid.UUID) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	b.CreatedBy = actor
	b.UpdatedBy = actor
}

// StampUpdate refreshes updated_at/updated_by.
func (b *Base) StampUpdate(now time.Time, actor *uuid.UUID) {
	b.UpdatedAt = now
	if actor != nil {
		b.UpdatedBy = actor
	}
}

// Stampable is implemented by every entity through Base.
type Stampable interface {
	GetID() uuid.UUID
	StampCreate(now time.Time, actor *uuid.UUID)
	StampUpdate(now time.Time, actor *uuid.UUID)
}

// StringList is a JSON-encoded list column.
type StringList = datatypes.JSONSlice[string]

// OneOf reports whether v matches one of allowed, case-insensitively.
func OneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}

// Canonical returns the allowed spelling of v, or "" when v is not allowed.
func Canonical(v string, allowed ...string) string {
	v = strings.TrimSpace(v)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	return ""
}
