package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/pointers"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

// File is the on-disk seed layout. Geography nests top-down so parents never need ids.
type File struct {
	States  []State `yaml:"states"`
	Parties []Party `yaml:"parties"`
	Years   []Year  `yaml:"years"`
}

type State struct {
	Name      string     `yaml:"name"`
	Code      string     `yaml:"code"`
	Divisions []Division `yaml:"divisions"`
}

type Division struct {
	Name        string       `yaml:"name"`
	Parliaments []Parliament `yaml:"parliaments"`
}

type Parliament struct {
	Name       string     `yaml:"name"`
	Category   string     `yaml:"category"`
	Assemblies []Assembly `yaml:"assemblies"`
}

type Assembly struct {
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type"`
	Blocks []Block `yaml:"blocks"`
}

type Block struct {
	Name   string  `yaml:"name"`
	Booths []Booth `yaml:"booths"`
}

type Booth struct {
	Name        string   `yaml:"name"`
	Number      string   `yaml:"number"`
	FullAddress string   `yaml:"full_address"`
	Latitude    *float64 `yaml:"latitude"`
	Longitude   *float64 `yaml:"longitude"`
}

type Party struct {
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
	Symbol       string `yaml:"symbol"`
	FoundedYear  int    `yaml:"founded_year"`
	Description  string `yaml:"description"`
}

type Year struct {
	Year        int    `yaml:"year"`
	Description string `yaml:"description"`
	Active      bool   `yaml:"active"`
}

// Counts reports created and already-present rows per entity name.
type Counts struct {
	Created  map[string]int
	Existing map[string]int
}

func (c Counts) String() string {
	var b strings.Builder
	for _, name := range entityOrder {
		if c.Created[name] == 0 && c.Existing[name] == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %d new/%d kept", name, c.Created[name], c.Existing[name])
	}
	return b.String()
}

var entityOrder = []string{"State", "Division", "Parliament", "Assembly", "Block", "Booth", "Party", "ElectionYear"}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var out File
	if err := dec.Decode(&out); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &out, nil
}

// Seeder writes through the services so validation, derived ancestors and cache
// invalidation match the API. Rows are matched on their natural keys first, which
// makes a second run a no-op.
type Seeder struct {
	log      *logger.Logger
	repos    app.Repos
	services app.Services
}

func New(baseLog *logger.Logger, r app.Repos, s app.Services) *Seeder {
	return &Seeder{log: baseLog.With("component", "Seeder"), repos: r, services: s}
}

func (s *Seeder) Run(ctx context.Context, f *File) (Counts, error) {
	counts := Counts{Created: map[string]int{}, Existing: map[string]int{}}
	dbc := dbctx.Of(ctx)

	for _, st := range f.States {
		state, err := ensure(counts, "State",
			func() (*geo.State, error) { return s.repos.State.GetByName(dbc, st.Name) },
			func() (*geo.State, error) {
				return s.services.State.Create(ctx, services.StateInput{Name: pointers.String(st.Name), Code: optional(st.Code)})
			})
		if err != nil {
			return counts, err
		}
		if err := s.divisions(ctx, counts, state.ID, st.Divisions); err != nil {
			return counts, err
		}
	}

	for _, p := range f.Parties {
		_, err := ensure(counts, "Party",
			func() (*politics.Party, error) {
				return s.repos.Party.FindOne(dbc, map[string]interface{}{"name": p.Name})
			},
			func() (*politics.Party, error) {
				in := services.PartyInput{
					Name:         pointers.String(p.Name),
					Abbreviation: pointers.String(p.Abbreviation),
					Symbol:       optional(p.Symbol),
					Description:  optional(p.Description),
				}
				if p.FoundedYear != 0 {
					in.FoundedYear = pointers.Int(p.FoundedYear)
				}
				return s.services.Party.Create(ctx, in)
			})
		if err != nil {
			return counts, err
		}
	}

	for _, y := range f.Years {
		_, err := ensure(counts, "ElectionYear",
			func() (*politics.ElectionYear, error) {
				return s.repos.ElectionYear.GetByYear(dbc, y.Year)
			},
			func() (*politics.ElectionYear, error) {
				return s.services.ElectionYear.Create(ctx, services.ElectionYearInput{
					Year:        pointers.Int(y.Year),
					Description: optional(y.Description),
					IsActive:    pointers.Bool(y.Active),
				})
			})
		if err != nil {
			return counts, err
		}
	}

	s.log.Info("Seed complete", "summary", counts.String())
	return counts, nil
}

func (s *Seeder) divisions(ctx context.Context, counts Counts, stateID uuid.UUID, rows []Division) error {
	dbc := dbctx.Of(ctx)
	for _, d := range rows {
		div, err := ensure(counts, "Division",
			func() (*geo.Division, error) {
				return s.repos.Division.FindOne(dbc, map[string]interface{}{"state_id": stateID, "name": d.Name})
			},
			func() (*geo.Division, error) {
				return s.services.Division.Create(ctx, services.DivisionInput{
					Name:    pointers.String(d.Name),
					StateID: ref.Of[geo.State](stateID),
				})
			})
		if err != nil {
			return err
		}
		for _, p := range d.Parliaments {
			pc, err := ensure(counts, "Parliament",
				func() (*geo.Parliament, error) {
					return s.repos.Parliament.FindOne(dbc, map[string]interface{}{"state_id": stateID, "name": p.Name})
				},
				func() (*geo.Parliament, error) {
					return s.services.Parliament.Create(ctx, services.ParliamentInput{
						Name:       pointers.String(p.Name),
						Category:   optional(p.Category),
						StateID:    ref.Of[geo.State](stateID),
						DivisionID: ref.Of[geo.Division](div.ID),
					})
				})
			if err != nil {
				return err
			}
			if err := s.assemblies(ctx, counts, pc, p.Assemblies); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) assemblies(ctx context.Context, counts Counts, pc *geo.Parliament, rows []Assembly) error {
	dbc := dbctx.Of(ctx)
	for _, a := range rows {
		ac, err := ensure(counts, "Assembly",
			func() (*geo.Assembly, error) {
				return s.repos.Assembly.FindOne(dbc, map[string]interface{}{"state_id": pc.StateID, "name": a.Name})
			},
			func() (*geo.Assembly, error) {
				return s.services.Assembly.Create(ctx, services.AssemblyInput{
					Name:         pointers.String(a.Name),
					Type:         optional(a.Type),
					StateID:      ref.Of[geo.State](pc.StateID),
					DivisionID:   ref.Of[geo.Division](pc.DivisionID),
					ParliamentID: ref.Of[geo.Parliament](pc.ID),
				})
			})
		if err != nil {
			return err
		}
		for _, b := range a.Blocks {
			block, err := ensure(counts, "Block",
				func() (*geo.Block, error) {
					return s.repos.Block.FindOne(dbc, map[string]interface{}{"assembly_id": ac.ID, "name": b.Name})
				},
				func() (*geo.Block, error) {
					return s.services.Block.Create(ctx, services.BlockInput{
						Name:       pointers.String(b.Name),
						AssemblyID: ref.Of[geo.Assembly](ac.ID),
					})
				})
			if err != nil {
				return err
			}
			for _, bt := range b.Booths {
				_, err := ensure(counts, "Booth",
					func() (*geo.Booth, error) {
						return s.repos.Booth.FindOne(dbc, map[string]interface{}{"assembly_id": ac.ID, "booth_number": bt.Number})
					},
					func() (*geo.Booth, error) {
						return s.services.Booth.Create(ctx, services.BoothInput{
							Name:        pointers.String(bt.Name),
							BoothNumber: pointers.String(bt.Number),
							FullAddress: optional(bt.FullAddress),
							Latitude:    bt.Latitude,
							Longitude:   bt.Longitude,
							BlockID:     ref.Of[geo.Block](block.ID),
						})
					})
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func ensure[T any](counts Counts, entity string, find func() (*T, error), create func() (*T, error)) (*T, error) {
	row, err := find()
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", entity, err)
	}
	if row != nil {
		counts.Existing[entity]++
		return row, nil
	}
	row, err = create()
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", entity, err)
	}
	counts.Created[entity]++
	return row, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
