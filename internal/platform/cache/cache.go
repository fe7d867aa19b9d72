// Package cache is the small key/value surface used for option lists and token
// revocation. Values are JSON encoded so the memory and redis stores behave alike.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Cache interface {
	// Get decodes the value at key into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// Memory is an in-process Cache backed by go-cache.
type Memory struct {
	c *gocache.Cache
}

// NewMemory builds a Memory cache. A cleanupInterval of zero disables the
// background janitor; expired entries are then dropped on read.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &Memory{c: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *Memory) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.c.Get(key)
	if !ok {
		return false, nil
	}
	b, _ := raw.([]byte)
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.c.Set(key, b, ttl)
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.c.Delete(k)
	}
	return nil
}

func (m *Memory) DeletePrefix(_ context.Context, prefix string) error {
	for k := range m.c.Items() {
		if strings.HasPrefix(k, prefix) {
			m.c.Delete(k)
		}
	}
	return nil
}

func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error                       { return nil }
func (Noop) DeletePrefix(context.Context, string) error                    { return nil }
func (Noop) Close() error                                                  { return nil }

// Key joins parts with ":".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
