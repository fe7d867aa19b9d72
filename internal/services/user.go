package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/dberr"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/query"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

const (
	minPasswordLength = 6
	// bcrypt only hashes the first 72 bytes and rejects longer input.
	maxPasswordBytes = 72
)

type UserInput struct {
	Username  *string   `json:"username"`
	Email     *string   `json:"email"`
	Password  *string   `json:"password"`
	Role      *string   `json:"role"`
	RegionIDs *[]string `json:"regionIds"`
	IsActive  *bool     `json:"isActive"`
}

type UserService interface {
	Resource[account.User, UserInput]
	ToggleActive(ctx context.Context, id uuid.UUID) (*account.User, error)
}

type userService struct {
	*crud[account.User, *account.User, UserInput]
	users repos.UserRepo
}

func NewUserService(baseLog *logger.Logger, tx db.TxRunner, users repos.UserRepo) UserService {
	s := &userService{users: users}
	s.crud = &crud[account.User, *account.User, UserInput]{
		name: "User",
		log:  baseLog.With("service", "UserService"),
		tx:   tx,
		repo: users,
		spec: query.Spec{
			Fields: []query.Field{
				{Param: "role", Column: "role"},
				{Param: "isActive", Column: "is_active", Kind: query.Bool},
			},
			SearchColumns: []string{"username", "email"},
			DefaultSort:   "username",
			Sortable:      []string{"username", "email", "role", "last_login", "created_at"},
		},
		apply: s.apply,
	}
	return s
}

func (s *userService) apply(ctx context.Context, row *account.User, in UserInput, creating bool) error {
	if !creating && in.IsActive != nil && !*in.IsActive {
		if actor := ctxutil.ActorID(ctx); actor != nil && *actor == row.ID {
			return apierr.BadRequest("You cannot deactivate your own account")
		}
	}
	var fe fieldErrors
	fe.str(&row.Username, in.Username, "username", true, creating)
	if in.Email != nil || creating {
		email := ""
		if in.Email != nil {
			email = strings.ToLower(strings.TrimSpace(*in.Email))
		}
		switch {
		case email == "":
			fe.add("email is required")
		case !emailPattern.MatchString(email):
			fe.add("Please provide a valid email")
		default:
			row.Email = email
		}
	}
	if creating && row.Role == "" {
		row.Role = account.RoleViewer
	}
	fe.enum(&row.Role, in.Role, "role", account.Roles)
	setStrings(&row.RegionIDs, in.RegionIDs)
	if creating {
		row.IsActive = true
	}
	setBool(&row.IsActive, in.IsActive)

	switch {
	case in.Password != nil:
		if len(*in.Password) < minPasswordLength {
			fe.add("password must be at least %d characters", minPasswordLength)
			break
		}
		if len(*in.Password) > maxPasswordBytes {
			fe.add("password must be at most %d bytes", maxPasswordBytes)
			break
		}
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return apierr.Internal(err)
		}
		row.Password = hash
	case creating:
		fe.add("password is required")
	}
	return fe.err()
}

func (s *userService) ToggleActive(ctx context.Context, id uuid.UUID) (*account.User, error) {
	row, err := s.users.GetByID(dbctx.Of(ctx), id)
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	if row == nil {
		return nil, apierr.NotFound("%s not found", s.name)
	}
	if actor := ctxutil.ActorID(ctx); actor != nil && *actor == id {
		return nil, apierr.BadRequest("You cannot deactivate your own account")
	}
	updates := map[string]interface{}{"is_active": !row.IsActive, "updated_at": s.clock()}
	err = s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		return s.users.UpdateFields(dbc, id, updates)
	})
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	return s.Get(ctx, id)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
