package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/observability"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/cascade"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

const hierarchyCachePrefix = "hierarchy:"

// HierarchyService serves the cascading State → … → Booth option lists.
type HierarchyService interface {
	cascade.Provider
	Resolve(ctx context.Context, sel cascade.Selection) (cascade.Result, error)
	Invalidate(ctx context.Context)
}

type hierarchyService struct {
	log         *logger.Logger
	cache       cache.Cache
	ttl         time.Duration
	states      repos.StateRepo
	divisions   repos.DivisionRepo
	parliaments repos.ParliamentRepo
	assemblies  repos.AssemblyRepo
	blocks      repos.BlockRepo
	booths      repos.BoothRepo
}

func NewHierarchyService(
	baseLog *logger.Logger,
	c cache.Cache,
	ttl time.Duration,
	states repos.StateRepo,
	divisions repos.DivisionRepo,
	parliaments repos.ParliamentRepo,
	assemblies repos.AssemblyRepo,
	blocks repos.BlockRepo,
	booths repos.BoothRepo,
) HierarchyService {
	if c == nil {
		c = cache.Noop{}
	}
	return &hierarchyService{
		log:         baseLog.With("service", "HierarchyService"),
		cache:       c,
		ttl:         ttl,
		states:      states,
		divisions:   divisions,
		parliaments: parliaments,
		assemblies:  assemblies,
		blocks:      blocks,
		booths:      booths,
	}
}

func (s *hierarchyService) Resolve(ctx context.Context, sel cascade.Selection) (cascade.Result, error) {
	return cascade.Resolve(ctx, sel, s)
}

// Options returns the children of parent at level, from cache when possible.
// A cache failure falls through to the database.
func (s *hierarchyService) Options(ctx context.Context, level cascade.Level, parent uuid.UUID) ([]cascade.Option, error) {
	key := cache.Key("hierarchy", level.String(), parent.String())
	var cached []cascade.Option
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.Warn("hierarchy cache read failed", "key", key, "error", err)
	} else if ok {
		observability.Current().ObserveCache("hierarchy", true)
		return cached, nil
	}
	observability.Current().ObserveCache("hierarchy", false)

	opts, err := s.load(ctx, level, parent)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, opts, s.ttl); err != nil {
		s.log.Warn("hierarchy cache write failed", "key", key, "error", err)
	}
	return opts, nil
}

func (s *hierarchyService) load(ctx context.Context, level cascade.Level, parent uuid.UUID) ([]cascade.Option, error) {
	dbc := dbctx.Of(ctx)
	out := []cascade.Option{}
	switch level {
	case cascade.State:
		rows, err := s.states.ListAll(dbc)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, cascade.Option{ID: r.ID, Name: r.Name})
		}
	case cascade.Division:
		rows, err := s.divisions.ListByStateID(dbc, parent)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, cascade.Option{ID: r.ID, Name: r.Name, ParentID: r.StateID})
		}
	case cascade.Parliament:
		rows, err := s.parliaments.ListByDivisionID(dbc, parent)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, cascade.Option{ID: r.ID, Name: r.Name, ParentID: r.DivisionID})
		}
	case cascade.Assembly:
		rows, err := s.assemblies.ListByParliamentID(dbc, parent)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, cascade.Option{ID: r.ID, Name: r.Name, ParentID: r.ParliamentID})
		}
	case cascade.Block:
		rows, err := s.blocks.ListByAssemblyID(dbc, parent)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, cascade.Option{ID: r.ID, Name: r.Name, ParentID: r.AssemblyID})
		}
	case cascade.Booth:
		rows, err := s.booths.ListByBlockID(dbc, parent)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, cascade.Option{ID: r.ID, Name: r.BoothNumber + " - " + r.Name, ParentID: r.BlockID})
		}
	default:
		return nil, fmt.Errorf("unknown level %s", level)
	}
	return out, nil
}

// Invalidate drops every cached option list. Called after geography writes.
func (s *hierarchyService) Invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, hierarchyCachePrefix); err != nil {
		s.log.Warn("hierarchy cache invalidation failed", "error", err)
	}
}
