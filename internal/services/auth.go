package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/dberr"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

const revokedTokenPrefix = "auth:revoked:"

type JWTClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *account.User, error)
	Register(ctx context.Context, in UserInput) (*account.User, error)
	Me(ctx context.Context) (*account.User, error)
	Logout(ctx context.Context) error
	// Authenticate validates a bearer token and loads its active user.
	Authenticate(ctx context.Context, token string) (*ctxutil.RequestData, *account.User, error)
	TokenTTL() time.Duration
}

type authService struct {
	log       *logger.Logger
	users     repos.UserRepo
	userSvc   UserService
	cache     cache.Cache
	jwtSecret string
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(
	baseLog *logger.Logger,
	users repos.UserRepo,
	userSvc UserService,
	c cache.Cache,
	jwtSecret string,
	ttl time.Duration,
) AuthService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &authService{
		log:       baseLog.With("service", "AuthService"),
		users:     users,
		userSvc:   userSvc,
		cache:     c,
		jwtSecret: jwtSecret,
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (as *authService) TokenTTL() time.Duration { return as.ttl }

func (as *authService) Login(ctx context.Context, email, password string) (string, *account.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, apierr.BadRequest("Please provide an email and password")
	}
	user, err := as.users.GetByEmail(dbctx.Of(ctx), email)
	if err != nil {
		return "", nil, dberr.Map("User", err)
	}
	if user == nil {
		return "", nil, apierr.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apierr.Unauthorized("Invalid credentials")
	}
	if !user.IsActive {
		return "", nil, apierr.Unauthorized("Account is deactivated")
	}
	now := as.now()
	if err := as.users.UpdateLastLogin(dbctx.Of(ctx), user.ID, now); err != nil {
		as.log.Warn("Failed to record last login", "user_id", user.ID, "error", err)
	} else {
		user.LastLogin = &now
	}
	token, err := as.signToken(user, now)
	if err != nil {
		return "", nil, apierr.Internal(fmt.Errorf("sign token: %w", err))
	}
	as.log.Info("User logged in", "user_id", user.ID)
	return token, user, nil
}

func (as *authService) Register(ctx context.Context, in UserInput) (*account.User, error) {
	return as.userSvc.Create(ctx, in)
}

func (as *authService) Me(ctx context.Context) (*account.User, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("Not authorized to access this route")
	}
	return as.userSvc.Get(ctx, rd.UserID)
}

// Logout revokes the presented token until it would have expired anyway.
func (as *authService) Logout(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.Token == "" {
		return apierr.Unauthorized("Not authorized to access this route")
	}
	claims, err := as.parse(rd.Token)
	if err != nil {
		return apierr.Unauthorized("Not authorized to access this route")
	}
	ttl := as.ttl
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(as.now())
	}
	if ttl <= 0 || claims.ID == "" {
		return nil
	}
	if err := as.cache.Set(ctx, revokedTokenPrefix+claims.ID, true, ttl); err != nil {
		return apierr.Internal(fmt.Errorf("revoke token: %w", err))
	}
	return nil
}

func (as *authService) Authenticate(ctx context.Context, token string) (*ctxutil.RequestData, *account.User, error) {
	if token == "" {
		return nil, nil, apierr.Unauthorized("Not authorized to access this route")
	}
	claims, err := as.parse(token)
	if err != nil {
		return nil, nil, apierr.Unauthorized("Not authorized to access this route")
	}
	if claims.ID != "" {
		var revoked bool
		found, err := as.cache.Get(ctx, revokedTokenPrefix+claims.ID, &revoked)
		if err != nil {
			as.log.Warn("Token revocation lookup failed", "error", err)
		}
		if found && revoked {
			return nil, nil, apierr.Unauthorized("Token has been revoked")
		}
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, nil, apierr.Unauthorized("Not authorized to access this route")
	}
	user, err := as.users.GetByID(dbctx.Of(ctx), userID)
	if err != nil {
		return nil, nil, dberr.Map("User", err)
	}
	if user == nil {
		return nil, nil, apierr.Unauthorized("User not found")
	}
	if !user.IsActive {
		return nil, nil, apierr.Unauthorized("Account is deactivated")
	}
	rd := &ctxutil.RequestData{
		UserID:    user.ID,
		Role:      user.Role,
		RegionIDs: append([]string(nil), user.RegionIDs...),
		Token:     token,
	}
	return rd, user, nil
}

func (as *authService) signToken(user *account.User, now time.Time) (string, error) {
	claims := JWTClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecret))
}

func (as *authService) parse(token string) (*JWTClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(as.now))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// ParseExpire reads a token lifetime such as "30d", "12h", "45m" or "3600"
// (seconds). Go duration strings are accepted as well.
func ParseExpire(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("empty duration")
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	unit := raw[len(raw)-1]
	if n, err := strconv.Atoi(raw[:len(raw)-1]); err == nil {
		switch unit {
		case 'd':
			return time.Duration(n) * 24 * time.Hour, nil
		case 'w':
			return time.Duration(n) * 7 * 24 * time.Hour, nil
		case 'h':
			return time.Duration(n) * time.Hour, nil
		case 'm':
			return time.Duration(n) * time.Minute, nil
		case 's':
			return time.Duration(n) * time.Second, nil
		}
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	return d, nil
}
