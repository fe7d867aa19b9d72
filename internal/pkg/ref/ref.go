// Package ref decodes references that arrive either as a bare id or as an
// expanded record carrying the id under "_id" or "id".
package ref

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// legacyNamespace scopes ids derived from 24-hex document ids.
var legacyNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("electionat/objectid"))

// FromObjectID maps a 24-hex document id onto a stable UUID. The same hex always
// yields the same UUID, so imported rows keep their identity across runs.
func FromObjectID(hexID string) uuid.UUID {
	return uuid.NewSHA1(legacyNamespace, []byte(strings.ToLower(hexID)))
}

// IsObjectID reports whether s looks like a 24-hex document id.
func IsObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// ParseID accepts a UUID or a 24-hex document id.
func ParseID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, fmt.Errorf("empty id")
	}
	if IsObjectID(s) {
		return FromObjectID(s), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// Ref is either an id or an expanded record of type T. ID is always set when the
// reference is present; Doc only when the record itself was supplied.
type Ref[T any] struct {
	ID  uuid.UUID
	Doc *T
}

// Of builds an id-only reference.
func Of[T any](id uuid.UUID) *Ref[T] { return &Ref[T]{ID: id} }

func (r Ref[T]) IsZero() bool { return r.ID == uuid.Nil }

// Ptr returns the id as an optional reference.
func (r *Ref[T]) Ptr() *uuid.UUID {
	if r == nil || r.ID == uuid.Nil {
		return nil
	}
	id := r.ID
	return &id
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*r = Ref[T]{}
			return nil
		}
		id, err := ParseID(s)
		if err != nil {
			return err
		}
		*r = Ref[T]{ID: id}
		return nil
	case '{':
		var head struct {
			UnderscoreID string `json:"_id"`
			ID           string `json:"id"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			return err
		}
		raw := head.UnderscoreID
		if raw == "" {
			raw = head.ID
		}
		id, err := ParseID(raw)
		if err != nil {
			return fmt.Errorf("reference object: %w", err)
		}
		doc := new(T)
		if err := json.Unmarshal(data, doc); err != nil {
			doc = nil
		}
		*r = Ref[T]{ID: id, Doc: doc}
		return nil
	}
	return fmt.Errorf("reference must be an id string or an object")
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Doc != nil {
		return json.Marshal(r.Doc)
	}
	if r.ID == uuid.Nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID.String())
}
