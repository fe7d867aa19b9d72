// Package mongoimport copies the records of the legacy MongoDB deployment into the
// relational store. Each document goes through the same service validation as an
// API write; its ObjectID becomes the row's uuid, so references keep resolving.
package mongoimport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type Result struct {
	Collection string `json:"collection"`
	Imported   int    `json:"imported"`
	Existing   int    `json:"existing"`
	Linked     int    `json:"linked"`
	Failed     int    `json:"failed"`
}

type step struct {
	collection string
	// deferred fields are stripped on the first pass and applied once every
	// collection is in, which breaks the assembly/district reference cycle.
	deferred []string
	create   func(ctx context.Context, id uuid.UUID, body []byte) (bool, error)
	update   func(ctx context.Context, id uuid.UUID, body []byte) error
}

func resource[T any, In any](collection string, svc services.Resource[T, In], deferred ...string) step {
	return step{
		collection: collection,
		deferred:   deferred,
		create: func(ctx context.Context, id uuid.UUID, body []byte) (bool, error) {
			var in In
			if err := decode(body, &in); err != nil {
				return false, err
			}
			_, created, err := svc.Import(ctx, id, in)
			return created, err
		},
		update: func(ctx context.Context, id uuid.UUID, body []byte) error {
			var in In
			if err := decode(body, &in); err != nil {
				return err
			}
			_, err := svc.Update(ctx, id, in)
			return err
		},
	}
}

type Importer struct {
	log   *logger.Logger
	src   Source
	steps []step
}

// New lists collections parents first. Demographics and local dynamics precede
// election stats so turnout can be derived during the import.
func New(baseLog *logger.Logger, src Source, r app.Repos, s app.Services) *Importer {
	im := &Importer{log: baseLog.With("component", "MongoImporter"), src: src}
	im.steps = []step{
		resource[geo.State, services.StateInput]("states", s.State),
		resource[geo.Division, services.DivisionInput]("divisions", s.Division),
		resource[geo.Parliament, services.ParliamentInput]("parliaments", s.Parliament),
		resource[geo.Assembly, services.AssemblyInput]("assemblies", s.Assembly, "district_id"),
		resource[geo.District, services.DistrictInput]("districts", s.District),
		resource[geo.Block, services.BlockInput]("blocks", s.Block),
		resource[geo.Booth, services.BoothInput]("booths", s.Booth),
		resource[politics.Party, services.PartyInput]("parties", s.Party),
		resource[politics.ElectionYear, services.ElectionYearInput]("years", s.ElectionYear),
		resource[politics.AccomplishedMLA, services.AccomplishedMLAInput]("accomplishedmlas", s.AccomplishedMLA),
		resource[politics.PartyActivity, services.PartyActivityInput]("partyactivities", s.PartyActivity),
		resource[booth.Admin, services.BoothAdminInput]("boothadmins", s.BoothAdmin),
		resource[booth.Demographics, services.BoothDemographicsInput]("boothdemographics", s.BoothDemographics),
		resource[booth.LocalDynamics, services.LocalDynamicsInput]("localdynamics", s.LocalDynamics),
		resource[booth.Infrastructure, services.BoothInfrastructureInput]("boothinfrastructures", s.BoothInfrastructure),
		resource[booth.ElectionStats, services.BoothElectionStatsInput]("boothelectionstats", s.BoothElectionStats),
		resource[booth.PartyPresence, services.BoothPartyPresenceInput]("boothpartypresences", s.BoothPartyPresence),
		resource[booth.PartyVoteShare, services.BoothPartyVoteShareInput]("boothpartyvoteshares", s.BoothPartyVoteShare),
		resource[booth.ActiveParty, services.ActivePartyInput]("activeparties", s.ActiveParty),
		resource[booth.VotingTrend, services.VotingTrendInput]("votingtrends", s.VotingTrend),
		userStep(r.User, s.User),
	}
	return im
}

func (im *Importer) Collections() []string {
	out := make([]string, 0, len(im.steps))
	for _, st := range im.steps {
		out = append(out, st.collection)
	}
	return out
}

// Run imports the named collections, or all of them when only is empty. Invalid
// documents are logged and counted; storage failures stop the run.
func (im *Importer) Run(ctx context.Context, only ...string) ([]Result, error) {
	for _, name := range only {
		if !contains(im.Collections(), name) {
			return nil, fmt.Errorf("unknown collection %q (known: %s)", name, strings.Join(im.Collections(), ", "))
		}
	}

	var results []Result
	for _, st := range im.steps {
		if len(only) > 0 && !contains(only, st.collection) {
			continue
		}
		res, err := im.runStep(ctx, st)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}

	for _, st := range im.steps {
		if len(st.deferred) == 0 || (len(only) > 0 && !contains(only, st.collection)) {
			continue
		}
		res := &results[indexOf(results, st.collection)]
		if err := im.relink(ctx, st, res); err != nil {
			return results, err
		}
	}

	for _, res := range results {
		im.log.Info("Collection imported",
			"collection", res.Collection,
			"imported", res.Imported,
			"existing", res.Existing,
			"linked", res.Linked,
			"failed", res.Failed,
		)
	}
	return results, nil
}

func (im *Importer) runStep(ctx context.Context, st step) (Result, error) {
	res := Result{Collection: st.collection}
	err := im.src.Each(ctx, st.collection, func(doc bson.M) error {
		id, err := documentID(doc)
		if err != nil {
			res.Failed++
			im.log.Warn("Skipping document without usable _id", "collection", st.collection, "error", err)
			return nil
		}
		body, err := toJSON(doc, st.deferred...)
		if err != nil {
			return fmt.Errorf("%s %s: %w", st.collection, id, err)
		}
		created, err := st.create(ctx, id, body)
		if err := im.tolerate(st.collection, id, err, &res); err != nil {
			return err
		}
		if err == nil {
			if created {
				res.Imported++
			} else {
				res.Existing++
			}
		}
		return nil
	})
	return res, err
}

func (im *Importer) relink(ctx context.Context, st step, res *Result) error {
	return im.src.Each(ctx, st.collection, func(doc bson.M) error {
		id, err := documentID(doc)
		if err != nil {
			return nil
		}
		body, ok, err := pick(doc, st.deferred...)
		if err != nil {
			return fmt.Errorf("%s %s: %w", st.collection, id, err)
		}
		if !ok {
			return nil
		}
		err = st.update(ctx, id, body)
		if err := im.tolerate(st.collection, id, err, res); err != nil {
			return err
		}
		if err == nil {
			res.Linked++
		}
		return nil
	})
}

// tolerate counts client-class failures and passes server-class ones through.
func (im *Importer) tolerate(collection string, id uuid.UUID, err error, res *Result) error {
	if err == nil {
		return nil
	}
	if apierr.StatusOf(err) >= http.StatusInternalServerError {
		return fmt.Errorf("%s %s: %w", collection, id, err)
	}
	res.Failed++
	im.log.Warn("Skipping invalid document", "collection", collection, "legacy_id", id, "error", err)
	return nil
}

func decode(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		var typed *apierr.Error
		if errors.As(err, &typed) {
			return typed
		}
		return apierr.BadRequest("Invalid document: %v", err)
	}
	return nil
}

func indexOf(results []Result, collection string) int {
	for i, r := range results {
		if r.Collection == collection {
			return i
		}
	}
	return -1
}

// userStep keeps the legacy bcrypt hash instead of hashing it a second time.
func userStep(users repos.UserRepo, svc services.UserService) step {
	st := resource[account.User, services.UserInput]("users", svc)
	create := st.create
	st.create = func(ctx context.Context, id uuid.UUID, body []byte) (bool, error) {
		created, err := create(ctx, id, body)
		if err != nil || !created {
			return created, err
		}
		var legacy struct {
			Password string `json:"password"`
		}
		if err := json.Unmarshal(body, &legacy); err != nil || !strings.HasPrefix(legacy.Password, "$2") {
			return created, nil
		}
		if err := users.UpdateFields(dbctx.Of(ctx), id, map[string]interface{}{"password": legacy.Password}); err != nil {
			return created, apierr.Internal(err)
		}
		return created, nil
	}
	return st
}
