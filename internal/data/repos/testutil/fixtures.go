package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
)

// Chain is one fully linked path through the geography.
type Chain struct {
	State      *geo.State
	Division   *geo.Division
	Parliament *geo.Parliament
	Assembly   *geo.Assembly
	Block      *geo.Block
	Booth      *geo.Booth
}

func insert(tb testing.TB, ctx context.Context, tx *gorm.DB, what string, row domain.Stampable) {
	tb.Helper()
	row.StampCreate(time.Now().UTC(), nil)
	if err := tx.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		tb.Fatalf("seed %s: %v", what, err)
	}
}

func SeedState(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *geo.State {
	tb.Helper()
	s := &geo.State{Name: name}
	insert(tb, ctx, tx, "state", s)
	return s
}

// SeedChain creates State → Division → Parliament → Assembly → Block → Booth, each
// named after prefix.
func SeedChain(tb testing.TB, ctx context.Context, tx *gorm.DB, prefix string) Chain {
	tb.Helper()
	var c Chain
	c.State = SeedState(tb, ctx, tx, prefix+" State")
	c.Division = &geo.Division{Name: prefix + " Division", StateID: c.State.ID}
	insert(tb, ctx, tx, "division", c.Division)
	c.Parliament = &geo.Parliament{Name: prefix + " PC", StateID: c.State.ID, DivisionID: c.Division.ID}
	insert(tb, ctx, tx, "parliament", c.Parliament)
	c.Assembly = &geo.Assembly{
		Name:         prefix + " AC",
		Type:         geo.AssemblyTypeGeneral,
		StateID:      c.State.ID,
		DivisionID:   c.Division.ID,
		ParliamentID: c.Parliament.ID,
	}
	insert(tb, ctx, tx, "assembly", c.Assembly)
	c.Block = &geo.Block{
		Name:         prefix + " Block",
		StateID:      c.State.ID,
		DivisionID:   c.Division.ID,
		ParliamentID: c.Parliament.ID,
		AssemblyID:   c.Assembly.ID,
	}
	insert(tb, ctx, tx, "block", c.Block)
	c.Booth = SeedBooth(tb, ctx, tx, c.Block, "1")
	return c
}

func SeedBooth(tb testing.TB, ctx context.Context, tx *gorm.DB, block *geo.Block, number string) *geo.Booth {
	tb.Helper()
	b := &geo.Booth{
		Name:         "Booth " + number,
		BoothNumber:  number,
		StateID:      block.StateID,
		DivisionID:   block.DivisionID,
		ParliamentID: block.ParliamentID,
		AssemblyID:   block.AssemblyID,
		BlockID:      block.ID,
	}
	insert(tb, ctx, tx, "booth", b)
	return b
}

func SeedParty(tb testing.TB, ctx context.Context, tx *gorm.DB, name, abbreviation string) *politics.Party {
	tb.Helper()
	p := &politics.Party{Name: name, Abbreviation: abbreviation}
	insert(tb, ctx, tx, "party", p)
	return p
}

func SeedYear(tb testing.TB, ctx context.Context, tx *gorm.DB, year int) *politics.ElectionYear {
	tb.Helper()
	y := &politics.ElectionYear{Year: year, IsActive: true}
	insert(tb, ctx, tx, "election year", y)
	return y
}
