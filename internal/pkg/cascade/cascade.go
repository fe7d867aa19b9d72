// Package cascade resolves a selection along the geography chain
// State → Division → Parliament → Assembly → Block → Booth.
//
// Each level's options are the children of the value selected one level up.
// A selected value that is not among its level's options is cleared, which in
// turn empties every level below it.
package cascade

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Level int

const (
	State Level = iota
	Division
	Parliament
	Assembly
	Block
	Booth
)

const numLevels = int(Booth) + 1

// Levels is the chain in order, root first.
var Levels = []Level{State, Division, Parliament, Assembly, Block, Booth}

var levelNames = [numLevels]string{"state", "division", "parliament", "assembly", "block", "booth"}

func (l Level) String() string {
	if l < 0 || int(l) >= numLevels {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts the level name with or without an "_id" suffix.
func ParseLevel(s string) (Level, bool) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_id")
	for i, name := range levelNames {
		if name == s {
			return Level(i), true
		}
	}
	return 0, false
}

// Parent returns the level above l; ok is false for State.
func (l Level) Parent() (Level, bool) {
	if l <= State {
		return State, false
	}
	return l - 1, true
}

// Option is one selectable value. ParentID is uuid.Nil for states.
type Option struct {
	ID       uuid.UUID `json:"_id"`
	Name     string    `json:"name"`
	ParentID uuid.UUID `json:"parent_id,omitempty"`
}

// Selection holds the chosen id per level; uuid.Nil means nothing selected.
type Selection [numLevels]uuid.UUID

func (s Selection) Get(l Level) uuid.UUID { return s[l] }

// With returns a copy of s with level l set to id.
func (s Selection) With(l Level, id uuid.UUID) Selection {
	s[l] = id
	return s
}

// Select is the user picking id at level l: every level below is cleared.
func (s Selection) Select(l Level, id uuid.UUID) Selection {
	s[l] = id
	for i := int(l) + 1; i < numLevels; i++ {
		s[i] = uuid.Nil
	}
	return s
}

// Provider lists the options of a level under parent. For State, parent is uuid.Nil.
type Provider interface {
	Options(ctx context.Context, level Level, parent uuid.UUID) ([]Option, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, level Level, parent uuid.UUID) ([]Option, error)

func (f ProviderFunc) Options(ctx context.Context, level Level, parent uuid.UUID) ([]Option, error) {
	return f(ctx, level, parent)
}

// Result is a resolved selection plus the option list of every level.
type Result struct {
	Selection Selection
	Options   [numLevels][]Option
}

// Complete reports whether every level has a value.
func (r Result) Complete() bool {
	for _, id := range r.Selection {
		if id == uuid.Nil {
			return false
		}
	}
	return true
}

// Resolve walks the chain root first. Levels whose parent is unset get no options
// and lose their selection.
func Resolve(ctx context.Context, sel Selection, p Provider) (Result, error) {
	var res Result
	for _, level := range Levels {
		parent := uuid.Nil
		if up, ok := level.Parent(); ok {
			parent = res.Selection[up]
			if parent == uuid.Nil {
				continue
			}
		}
		opts, err := p.Options(ctx, level, parent)
		if err != nil {
			return Result{}, fmt.Errorf("%s options: %w", level, err)
		}
		res.Options[level] = opts
		if id := sel[level]; id != uuid.Nil && Contains(opts, id) {
			res.Selection[level] = id
		}
	}
	return res, nil
}

// Filter keeps the options whose ParentID is parent. It lets callers that
// already hold a full level list apply the same rule without a Provider.
func Filter(opts []Option, parent uuid.UUID) []Option {
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if o.ParentID == parent {
			out = append(out, o)
		}
	}
	return out
}

func Contains(opts []Option, id uuid.UUID) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Static is an in-memory Provider over full per-level lists.
type Static map[Level][]Option

func (s Static) Options(_ context.Context, level Level, parent uuid.UUID) ([]Option, error) {
	if level == State {
		return s[State], nil
	}
	return Filter(s[level], parent), nil
}
