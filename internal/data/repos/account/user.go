package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type UserRepo interface {
	store.Repo[account.User]
	GetByEmail(dbc dbctx.Context, email string) (*account.User, error)
	EmailExists(dbc dbctx.Context, email string) (bool, error)
	UpdateLastLogin(dbc dbctx.Context, userID uuid.UUID, at time.Time) error
	CountByRole(dbc dbctx.Context, role string) (int64, error)
}

type userRepo struct {
	*store.Store[account.User]
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{Store: store.New[account.User](db, baseLog.With("repo", "UserRepo"))}
}

// GetByEmail matches case-insensitively; emails are stored lowercased.
func (r *userRepo) GetByEmail(dbc dbctx.Context, email string) (*account.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, nil
	}
	return r.FindOne(dbc, map[string]interface{}{"email": email})
}

func (r *userRepo) EmailExists(dbc dbctx.Context, email string) (bool, error) {
	var count int64
	if err := r.DB(dbc).
		Model(&account.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepo) UpdateLastLogin(dbc dbctx.Context, userID uuid.UUID, at time.Time) error {
	return r.UpdateFields(dbc, userID, map[string]interface{}{"last_login": at})
}

func (r *userRepo) CountByRole(dbc dbctx.Context, role string) (int64, error) {
	var count int64
	err := r.DB(dbc).Model(&account.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
