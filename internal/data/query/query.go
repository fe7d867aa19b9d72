// Package query builds list criteria from request parameters. The criteria are
// captured once, then applied to a count statement and to a paginated statement
// separately, so totals never depend on offset or limit.
package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Kind int

const (
	String Kind = iota
	ID
	Bool
	Int
	Time
)

// Field maps a query parameter onto a column. Op defaults to "=".
type Field struct {
	Param  string
	Column string
	Kind   Kind
	Op     string
}

// Spec describes what a list endpoint accepts.
type Spec struct {
	Fields        []Field
	SearchColumns []string
	// DefaultSort is a column name, "-" prefix for descending.
	DefaultSort string
	// Sortable lists the columns accepted in ?sort=.
	Sortable []string
	Preloads []string
}

type Clause struct {
	Column string
	Op     string
	Value  interface{}
}

type Order struct {
	Column string
	Desc   bool
}

// Criteria is the fully parsed list request.
type Criteria struct {
	Clauses       []Clause
	Search        string
	SearchColumns []string
	Order         Order
	Page          int
	Limit         int
	Preloads      []string
}

// Where adds an equality clause.
func (c Criteria) Where(column string, value interface{}) Criteria {
	c.Clauses = append(append([]Clause(nil), c.Clauses...), Clause{Column: column, Op: "=", Value: value})
	return c
}

// Offset is the number of rows skipped for Page.
func (c Criteria) Offset() int {
	if c.Page <= 1 {
		return 0
	}
	return (c.Page - 1) * c.Limit
}

// Parse reads page, limit, search, sort and the spec's filter fields.
// Missing or malformed page/limit fall back to defaults; malformed filters are
// rejected with a 400.
func Parse(values url.Values, spec Spec) (Criteria, error) {
	c := Criteria{
		Page:          positiveInt(values.Get("page"), DefaultPage),
		Limit:         positiveInt(values.Get("limit"), DefaultLimit),
		Search:        strings.TrimSpace(values.Get("search")),
		SearchColumns: spec.SearchColumns,
		Order:         parseOrder(spec.DefaultSort),
		Preloads:      spec.Preloads,
	}
	if c.Limit > MaxLimit {
		c.Limit = MaxLimit
	}
	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		o := parseOrder(raw)
		if !contains(spec.Sortable, o.Column) {
			return Criteria{}, apierr.BadRequest("Invalid sort field: %s", o.Column)
		}
		c.Order = o
	}

	for _, f := range spec.Fields {
		raw := strings.TrimSpace(values.Get(f.Param))
		if raw == "" {
			continue
		}
		v, err := convert(f.Kind, raw)
		if err != nil {
			return Criteria{}, apierr.BadRequest("Invalid %s", f.Param)
		}
		op := f.Op
		if op == "" {
			op = "="
		}
		c.Clauses = append(c.Clauses, Clause{Column: f.Column, Op: op, Value: v})
	}
	return c, nil
}

// Filter applies clauses and search, nothing else.
func (c Criteria) Filter(db *gorm.DB) *gorm.DB {
	for _, cl := range c.Clauses {
		db = db.Where(fmt.Sprintf("%s %s ?", cl.Column, cl.Op), cl.Value)
	}
	if c.Search != "" && len(c.SearchColumns) > 0 {
		pattern := "%" + escapeLike(strings.ToLower(c.Search)) + "%"
		parts := make([]string, 0, len(c.SearchColumns))
		args := make([]interface{}, 0, len(c.SearchColumns))
		for _, col := range c.SearchColumns {
			parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", col))
			args = append(args, pattern)
		}
		db = db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
	return db
}

// Paginate applies ordering, offset, limit and preloads on top of Filter.
func (c Criteria) Paginate(db *gorm.DB) *gorm.DB {
	db = c.Filter(db)
	if c.Order.Column != "" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: c.Order.Column}, Desc: c.Order.Desc})
	}
	for _, p := range c.Preloads {
		db = db.Preload(p)
	}
	if c.Limit > 0 {
		db = db.Offset(c.Offset()).Limit(c.Limit)
	}
	return db
}

// Page is the pagination half of the list envelope.
type Page struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

func NewPage(c Criteria, total int64) Page {
	return Page{Page: c.Page, Limit: c.Limit, Total: total, Pages: Pages(total, c.Limit)}
}

// Pages is ceil(total/limit); zero when limit is not positive.
func Pages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

func convert(kind Kind, raw string) (interface{}, error) {
	switch kind {
	case ID:
		return ref.ParseID(raw)
	case Bool:
		return strconv.ParseBool(raw)
	case Int:
		return strconv.Atoi(raw)
	case Time:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC(), nil
			}
		}
		return nil, fmt.Errorf("invalid time %q", raw)
	default:
		return raw, nil
	}
}

func parseOrder(raw string) Order {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "-") {
		return Order{Column: strings.TrimPrefix(raw, "-"), Desc: true}
	}
	return Order{Column: raw}
}

func positiveInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
