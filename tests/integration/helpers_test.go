// Package integration provides shared test helpers for integration tests.
package integration

import (
	"testing"

	"github.com/orthoplan/stemplan/internal/sqlite"
	"github.com/orthoplan/stemplan/pkg/implant"
	"github.com/orthoplan/stemplan/pkg/types"
)

// newTestStore opens a session store in an isolated temp directory.
// Each test case gets its own store for isolation.
func newTestStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dir
}

// mustCreateSession creates a session seeded with the product's default
// configuration for the given side, or fails the test.
func mustCreateSession(t *testing.T, store *sqlite.Store, name string, p *implant.Product, side types.Side) *types.Session {
	t.Helper()
	cfg := p.FillAndValidate(p.DefaultConfig(side))
	if !cfg.Valid {
		t.Fatalf("default %s configuration for side %s is invalid", p.Name, side)
	}
	session, err := store.CreateSession(types.Session{
		Name:    name,
		Product: p.Name,
		Side:    side,
	}, cfg)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	return session
}

// mustLatestConfig returns the session's current configuration or
// fails the test.
func mustLatestConfig(t *testing.T, store *sqlite.Store, sessionID string) types.ImplantConfig {
	t.Helper()
	cfg, err := store.LatestConfig(sessionID)
	if err != nil {
		t.Fatalf("LatestConfig(%q): %v", sessionID, err)
	}
	return cfg
}
