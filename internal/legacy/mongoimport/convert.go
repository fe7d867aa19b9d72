package mongoimport

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
)

// documentID maps the legacy _id onto the uuid the rest of the system uses for it.
func documentID(doc bson.M) (uuid.UUID, error) {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		return ref.FromObjectID(v.Hex()), nil
	case string:
		return ref.ParseID(v)
	default:
		return uuid.Nil, fmt.Errorf("unsupported _id %T", doc["_id"])
	}
}

// toJSON renders a document the way the API would have received it, so it can be
// decoded straight into a service input. drop names fields left out.
func toJSON(doc bson.M, drop ...string) ([]byte, error) {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" || k == "__v" || contains(drop, k) {
			continue
		}
		out[k] = plain(v)
	}
	return json.Marshal(out)
}

// pick renders only the named fields, skipping those the document lacks.
func pick(doc bson.M, fields ...string) ([]byte, bool, error) {
	out := map[string]any{}
	for _, f := range fields {
		if v, ok := doc[f]; ok && v != nil {
			out[f] = plain(v)
		}
	}
	if len(out) == 0 {
		return nil, false, nil
	}
	b, err := json.Marshal(out)
	return b, true, err
}

func plain(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return f
		}
		return t.String()
	case bson.M:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = plain(inner)
		}
		return m
	case bson.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.A:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = plain(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = plain(inner)
		}
		return out
	default:
		return v
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
