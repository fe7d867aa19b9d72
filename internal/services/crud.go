package services

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/dberr"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/query"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain"
	"github.com/hbagde424/ElectionAT-sub001/internal/observability"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// Resource is the CRUD surface every entity service exposes. In is the request
// body; its pointer fields distinguish "absent" from "zero" for partial updates.
type Resource[T any, In any] interface {
	Spec() query.Spec
	List(ctx context.Context, c query.Criteria) ([]*T, query.Page, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, in In) (*T, error)
	// Import creates the row under a caller-chosen id. A row that already has
	// that id is returned unchanged with created=false.
	Import(ctx context.Context, id uuid.UUID, in In) (row *T, created bool, err error)
	Update(ctx context.Context, id uuid.UUID, in In) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type entity[T any] interface {
	*T
	domain.Stampable
	SetID(id uuid.UUID)
}

type crud[T any, PT entity[T], In any] struct {
	name     string
	log      *logger.Logger
	tx       db.TxRunner
	repo     store.Repo[T]
	spec     query.Spec
	preloads []string
	now      func() time.Time

	// apply validates in, copies it onto row and verifies references.
	apply func(ctx context.Context, row *T, in In, creating bool) error
	// afterSave runs in the write transaction, after the row is stored.
	afterSave func(dbc dbctx.Context, row *T) error
	// onChange runs after any committed write.
	onChange func(ctx context.Context)
}

func (s *crud[T, PT, In]) Spec() query.Spec { return s.spec }

func (s *crud[T, PT, In]) List(ctx context.Context, c query.Criteria) ([]*T, query.Page, error) {
	rows, total, err := s.repo.List(dbctx.Of(ctx), c)
	if err != nil {
		return nil, query.Page{}, dberr.Map(s.name, err)
	}
	return rows, query.NewPage(c, total), nil
}

func (s *crud[T, PT, In]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	row, err := s.repo.GetByID(dbctx.Of(ctx), id, s.preloads...)
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	if row == nil {
		return nil, apierr.NotFound("%s not found", s.name)
	}
	return row, nil
}

func (s *crud[T, PT, In]) Create(ctx context.Context, in In) (*T, error) {
	row := new(T)
	if err := s.apply(ctx, row, in, true); err != nil {
		return nil, err
	}
	PT(row).StampCreate(s.clock(), ctxutil.ActorID(ctx))
	if err := s.write(ctx, "create", row, func(dbc dbctx.Context, r *T) error { return s.repo.Create(dbc, r) }); err != nil {
		return nil, err
	}
	return s.Get(ctx, PT(row).GetID())
}

func (s *crud[T, PT, In]) Import(ctx context.Context, id uuid.UUID, in In) (*T, bool, error) {
	existing, err := s.repo.GetByID(dbctx.Of(ctx), id)
	if err != nil {
		return nil, false, dberr.Map(s.name, err)
	}
	if existing != nil {
		return existing, false, nil
	}
	row := new(T)
	if err := s.apply(ctx, row, in, true); err != nil {
		return nil, false, err
	}
	PT(row).SetID(id)
	PT(row).StampCreate(s.clock(), ctxutil.ActorID(ctx))
	if err := s.write(ctx, "import", row, func(dbc dbctx.Context, r *T) error { return s.repo.Create(dbc, r) }); err != nil {
		return nil, false, err
	}
	return row, true, nil
}

func (s *crud[T, PT, In]) Update(ctx context.Context, id uuid.UUID, in In) (*T, error) {
	row, err := s.repo.GetByID(dbctx.Of(ctx), id)
	if err != nil {
		return nil, dberr.Map(s.name, err)
	}
	if row == nil {
		return nil, apierr.NotFound("%s not found", s.name)
	}
	if err := s.apply(ctx, row, in, false); err != nil {
		return nil, err
	}
	PT(row).StampUpdate(s.clock(), ctxutil.ActorID(ctx))
	if err := s.write(ctx, "update", row, func(dbc dbctx.Context, r *T) error { return s.repo.Update(dbc, r) }); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the row only. Children that reference it are left in place.
func (s *crud[T, PT, In]) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.FullDeleteByID(dbctx.Of(ctx), id)
	if err != nil {
		err = dberr.Map(s.name, err)
	} else if !deleted {
		err = apierr.NotFound("%s not found", s.name)
	}
	s.observe("delete", err)
	if err != nil {
		return err
	}
	s.changed(ctx)
	return nil
}

func (s *crud[T, PT, In]) write(ctx context.Context, kind string, row *T, op func(dbctx.Context, *T) error) error {
	err := s.tx.InTx(ctx, func(dbc dbctx.Context) error {
		if err := op(dbc, row); err != nil {
			return err
		}
		if s.afterSave != nil {
			return s.afterSave(dbc, row)
		}
		return nil
	})
	if err != nil {
		err = dberr.Map(s.name, err)
	}
	s.observe(kind, err)
	if err != nil {
		return err
	}
	s.changed(ctx)
	return nil
}

func (s *crud[T, PT, In]) observe(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = strconv.Itoa(apierr.StatusOf(err))
	}
	observability.Current().ObserveWrite(s.name, kind, outcome)
}

func (s *crud[T, PT, In]) changed(ctx context.Context) {
	if s.onChange != nil {
		s.onChange(ctx)
	}
}

func (s *crud[T, PT, In]) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}
