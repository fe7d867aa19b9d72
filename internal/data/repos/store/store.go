// Package store is the gorm plumbing shared by every entity repo.
package store

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/query"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// Repo is the CRUD surface every entity repo exposes.
type Repo[T any] interface {
	Create(dbc dbctx.Context, row *T) error
	Update(dbc dbctx.Context, row *T) error
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error

	GetByID(dbc dbctx.Context, id uuid.UUID, preloads ...string) (*T, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*T, error)
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
	FindOne(dbc dbctx.Context, conds map[string]interface{}, preloads ...string) (*T, error)
	FindAll(dbc dbctx.Context, conds map[string]interface{}, order string) ([]*T, error)

	List(dbc dbctx.Context, c query.Criteria) ([]*T, int64, error)

	FullDeleteByID(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

// Store implements Repo[T] with gorm.
type Store[T any] struct {
	db  *gorm.DB
	log *logger.Logger
}

func New[T any](db *gorm.DB, log *logger.Logger) *Store[T] {
	return &Store[T]{db: db, log: log}
}

// DB returns the transaction in dbc, or the store's handle, bound to dbc.Ctx.
func (s *Store[T]) DB(dbc dbctx.Context) *gorm.DB {
	return dbc.DB(s.db)
}

// Create inserts row only; populated relations are never upserted.
func (s *Store[T]) Create(dbc dbctx.Context, row *T) error {
	return s.DB(dbc).Omit(clause.Associations).Create(row).Error
}

// Update writes every column of row.
func (s *Store[T]) Update(dbc dbctx.Context, row *T) error {
	return s.DB(dbc).Omit(clause.Associations).Save(row).Error
}

func (s *Store[T]) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	return s.DB(dbc).Model(new(T)).Where("id = ?", id).Updates(updates).Error
}

func (s *Store[T]) GetByID(dbc dbctx.Context, id uuid.UUID, preloads ...string) (*T, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	return s.FindOne(dbc, map[string]interface{}{"id": id}, preloads...)
}

func (s *Store[T]) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*T, error) {
	var out []*T
	if len(ids) == 0 {
		return out, nil
	}
	if err := s.DB(dbc).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store[T]) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	var count int64
	if err := s.DB(dbc).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindOne returns the first row matching conds, or nil when there is none.
func (s *Store[T]) FindOne(dbc dbctx.Context, conds map[string]interface{}, preloads ...string) (*T, error) {
	q := s.DB(dbc)
	if len(conds) > 0 {
		q = q.Where(conds)
	}
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var out []*T
	if err := q.Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (s *Store[T]) FindAll(dbc dbctx.Context, conds map[string]interface{}, order string) ([]*T, error) {
	q := s.DB(dbc)
	if len(conds) > 0 {
		q = q.Where(conds)
	}
	if order != "" {
		q = q.Order(order)
	}
	var out []*T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// List counts with the criteria's filters, then loads the requested page.
func (s *Store[T]) List(dbc dbctx.Context, c query.Criteria) ([]*T, int64, error) {
	var total int64
	if err := c.Filter(s.DB(dbc).Model(new(T))).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}
	out := make([]*T, 0, c.Limit)
	if total == 0 {
		return out, 0, nil
	}
	if err := c.Paginate(s.DB(dbc)).Find(&out).Error; err != nil {
		return nil, 0, fmt.Errorf("find: %w", err)
	}
	return out, total, nil
}

// FullDeleteByID hard-deletes one row and reports whether it existed.
func (s *Store[T]) FullDeleteByID(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	res := s.DB(dbc).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
