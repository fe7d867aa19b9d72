package account

import (
	"time"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain"
)

const (
	RoleSuperAdmin = "superAdmin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
	RoleViewer     = "viewer"
)

var Roles = []string{RoleSuperAdmin, RoleAdmin, RoleEditor, RoleViewer}

type User struct {
	domain.Base
	Username  string            `gorm:"column:username;not null;uniqueIndex:idx_user_username" json:"username"`
	Email     string            `gorm:"column:email;not null;uniqueIndex:idx_user_email" json:"email"`
	Password  string            `gorm:"column:password;not null" json:"-"`
	Role      string            `gorm:"column:role;not null;default:viewer" json:"role"`
	RegionIDs domain.StringList `gorm:"column:region_ids" json:"regionIds"`
	IsActive  bool              `gorm:"column:is_active;not null;default:true" json:"isActive"`
	LastLogin *time.Time        `gorm:"column:last_login" json:"last_login,omitempty"`
}

func (User) TableName() string { return "user" }
