package sqlite

import (
	"errors"
	"testing"

	"github.com/orthoplan/stemplan/pkg/implant"
	"github.com/orthoplan/stemplan/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig(t *testing.T) types.ImplantConfig {
	t.Helper()
	cfg := implant.Optimys().DefaultConfig(types.SideRight)
	if !cfg.Valid {
		t.Fatal("default config not valid")
	}
	return cfg
}

func TestCreateAndGetSession(t *testing.T) {
	store := openTestStore(t)
	cfg := testConfig(t)

	created, err := store.CreateSession(types.Session{
		Name:    "case-042",
		Product: "optimys",
		Side:    types.SideRight,
	}, cfg)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if created.SessionID == "" {
		t.Fatal("no session ID assigned")
	}

	got, err := store.GetSession(created.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Name != "case-042" || got.Product != "optimys" || got.Side != types.SideRight {
		t.Fatalf("GetSession = %+v", got)
	}

	latest, err := store.LatestConfig(created.SessionID)
	if err != nil {
		t.Fatalf("LatestConfig: %v", err)
	}
	if latest != cfg {
		t.Fatalf("LatestConfig = %+v, want %+v", latest, cfg)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	store := openTestStore(t)
	cfg := testConfig(t)

	tests := []struct {
		name    string
		session types.Session
		wantErr error
	}{
		{"empty name", types.Session{Product: "optimys"}, types.ErrSessionNameEmpty},
		{"empty product", types.Session{Name: "case"}, types.ErrSessionProductEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.CreateSession(tt.session, cfg); !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateSession error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigHistoryOrder(t *testing.T) {
	store := openTestStore(t)
	p := implant.Optimys()
	cfg := p.DefaultConfig(types.SideRight)

	created, err := store.CreateSession(types.Session{
		Name: "progressive-fit", Product: "optimys", Side: types.SideRight,
	}, cfg)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	up := p.NextStem(cfg)
	if err := store.SaveConfig(created.SessionID, up); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	up2 := p.NextStem(up)
	if err := store.SaveConfig(created.SessionID, up2); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	history, err := store.ConfigHistory(created.SessionID)
	if err != nil {
		t.Fatalf("ConfigHistory: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[0].Stem != cfg.Stem || history[2].Stem != up2.Stem {
		t.Fatalf("history order wrong: %+v", history)
	}

	latest, err := store.LatestConfig(created.SessionID)
	if err != nil {
		t.Fatalf("LatestConfig: %v", err)
	}
	if latest.Stem != up2.Stem {
		t.Fatalf("latest stem = %d, want %d", latest.Stem, up2.Stem)
	}
}

func TestListSessions(t *testing.T) {
	store := openTestStore(t)
	cfg := testConfig(t)

	for _, name := range []string{"alpha", "beta"} {
		if _, err := store.CreateSession(types.Session{
			Name: name, Product: "optimys", Side: types.SideLeft,
		}, cfg); err != nil {
			t.Fatalf("CreateSession(%s): %v", name, err)
		}
	}

	sessions, err := store.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("session count = %d, want 2", len(sessions))
	}
}

func TestDeleteSession(t *testing.T) {
	store := openTestStore(t)
	cfg := testConfig(t)

	created, err := store.CreateSession(types.Session{
		Name: "to-delete", Product: "optimys", Side: types.SideRight,
	}, cfg)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if err := store.DeleteSession(created.SessionID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := store.GetSession(created.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("GetSession after delete = %v, want ErrSessionNotFound", err)
	}
	if err := store.DeleteSession(created.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("second delete = %v, want ErrSessionNotFound", err)
	}
}

func TestUnknownSession(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetSession("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("GetSession = %v, want ErrSessionNotFound", err)
	}
	if err := store.SaveConfig("nope", types.ImplantConfig{}); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("SaveConfig = %v, want ErrSessionNotFound", err)
	}
	if _, err := store.LatestConfig("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("LatestConfig = %v, want ErrSessionNotFound", err)
	}
}

func TestClosedStore(t *testing.T) {
	store := openTestStore(t)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Close is idempotent.
	if err := store.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := store.ListSessions(); !errors.Is(err, ErrStoreClosed) {
		t.Fatalf("ListSessions after close = %v, want ErrStoreClosed", err)
	}
}
