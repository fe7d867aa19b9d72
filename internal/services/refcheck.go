package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hbagde424/ElectionAT-sub001/internal/observability"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
)

// Existence is anything that can answer "does this id exist".
type Existence interface {
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

// RefCheck is one reference to verify. A nil ID is skipped.
type RefCheck struct {
	Entity string
	ID     *uuid.UUID
	Repo   Existence
}

func Ref(entity string, id *uuid.UUID, repo Existence) RefCheck {
	return RefCheck{Entity: entity, ID: id, Repo: repo}
}

// RefID is Ref for a required id already known to be set.
func RefID(entity string, id uuid.UUID, repo Existence) RefCheck {
	return RefCheck{Entity: entity, ID: &id, Repo: repo}
}

// CheckRefs looks up every reference concurrently and fails with a 400
// "<Entity> not found" for the first missing one in argument order. Nothing is
// written by the caller unless this returns nil.
func CheckRefs(ctx context.Context, checks ...RefCheck) error {
	missing := make([]bool, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range checks {
		i, c := i, c
		if c.ID == nil || *c.ID == uuid.Nil || c.Repo == nil {
			continue
		}
		g.Go(func() error {
			ok, err := c.Repo.Exists(dbctx.Context{Ctx: gctx}, *c.ID)
			if err != nil {
				return fmt.Errorf("lookup %s: %w", c.Entity, err)
			}
			missing[i] = !ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return apierr.Internal(err)
	}
	for i, c := range checks {
		if missing[i] {
			observability.Current().IncReferenceMiss(c.Entity)
			return apierr.MissingReference(c.Entity)
		}
	}
	return nil
}
