package ctxutil

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type requestDataKey struct{}

// RequestData is the authenticated caller attached by the auth middleware.
type RequestData struct {
	UserID    uuid.UUID
	Role      string
	RegionIDs []string
	Token     string
}

// IsSuperAdmin reports whether the caller bypasses role checks.
func (rd *RequestData) IsSuperAdmin() bool {
	return rd != nil && strings.EqualFold(rd.Role, "superAdmin")
}

// HasRole reports whether the caller holds one of roles (superAdmin always does).
func (rd *RequestData) HasRole(roles ...string) bool {
	if rd == nil {
		return false
	}
	if rd.IsSuperAdmin() {
		return true
	}
	for _, r := range roles {
		if strings.EqualFold(rd.Role, r) {
			return true
		}
	}
	return false
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(Default(ctx), requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if ctx == nil {
		return nil
	}
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// ActorID returns the caller's user id, or nil when the request is anonymous.
func ActorID(ctx context.Context) *uuid.UUID {
	rd := GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil
	}
	id := rd.UserID
	return &id
}

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
