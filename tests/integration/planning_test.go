// Package integration tests the planning workflow end to end: catalog
// lookup, configuration validation, frame composition and the session
// store, the way the CLI drives them.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orthoplan/stemplan/internal/sqlite"
	"github.com/orthoplan/stemplan/pkg/geom"
	"github.com/orthoplan/stemplan/pkg/implant"
	"github.com/orthoplan/stemplan/pkg/types"
)

func TestSessionLifecycle(t *testing.T) {
	catalog := implant.Default()
	optimys, err := catalog.Product("optimys")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}

	store, dir := newTestStore(t)

	session := mustCreateSession(t, store, "Doe, right THA", optimys, types.SideRight)
	if session.SessionID == "" {
		t.Fatal("session has no ID")
	}
	if _, err := os.Stat(filepath.Join(dir, "sessions.db")); err != nil {
		t.Errorf("missing database file: %v", err)
	}

	t.Run("create seeds the default configuration", func(t *testing.T) {
		cfg := mustLatestConfig(t, store, session.SessionID)
		if cfg.Stem != optimys.DefaultStem {
			t.Errorf("stem = %d, want %d", cfg.Stem, optimys.DefaultStem)
		}
		if cfg.Head != optimys.DefaultHead {
			t.Errorf("head = %d, want %d", cfg.Head, optimys.DefaultHead)
		}
		if !cfg.Valid {
			t.Error("seeded configuration is not valid")
		}
	})

	t.Run("saving revisions appends to the history", func(t *testing.T) {
		cfg := mustLatestConfig(t, store, session.SessionID)
		up := optimys.NextStem(cfg)
		if err := store.SaveConfig(session.SessionID, up); err != nil {
			t.Fatalf("SaveConfig: %v", err)
		}
		up2 := optimys.NextStem(up)
		if err := store.SaveConfig(session.SessionID, up2); err != nil {
			t.Fatalf("SaveConfig: %v", err)
		}

		history, err := store.ConfigHistory(session.SessionID)
		if err != nil {
			t.Fatalf("ConfigHistory: %v", err)
		}
		if len(history) != 3 {
			t.Fatalf("history length = %d, want 3", len(history))
		}
		for i := 1; i < len(history); i++ {
			if optimys.SizeOf(history[i].Stem) != optimys.SizeOf(history[i-1].Stem)+1 {
				t.Errorf("revision %d stem %d does not follow %d", i, history[i].Stem, history[i-1].Stem)
			}
		}

		latest := mustLatestConfig(t, store, session.SessionID)
		if latest.Stem != up2.Stem {
			t.Errorf("latest stem = %d, want %d", latest.Stem, up2.Stem)
		}
	})

	t.Run("list returns the session", func(t *testing.T) {
		sessions, err := store.ListSessions()
		if err != nil {
			t.Fatalf("ListSessions: %v", err)
		}
		if len(sessions) != 1 {
			t.Fatalf("got %d sessions, want 1", len(sessions))
		}
		if sessions[0].SessionID != session.SessionID {
			t.Errorf("listed session %q, want %q", sessions[0].SessionID, session.SessionID)
		}
	})

	t.Run("delete removes the session and its history", func(t *testing.T) {
		if err := store.DeleteSession(session.SessionID); err != nil {
			t.Fatalf("DeleteSession: %v", err)
		}
		if _, err := store.GetSession(session.SessionID); err != sqlite.ErrSessionNotFound {
			t.Errorf("GetSession after delete = %v, want ErrSessionNotFound", err)
		}
		if _, err := store.LatestConfig(session.SessionID); err != sqlite.ErrSessionNotFound {
			t.Errorf("LatestConfig after delete = %v, want ErrSessionNotFound", err)
		}
	})
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	catalog := implant.Default()
	corail, err := catalog.Product("corail")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}

	dir := t.TempDir()
	store, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	session := mustCreateSession(t, store, "persists", corail, types.SideLeft)
	saved := mustLatestConfig(t, store, session.SessionID)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetSession(session.SessionID)
	if err != nil {
		t.Fatalf("GetSession after reopen: %v", err)
	}
	if got.Name != "persists" || got.Product != "corail" || got.Side != types.SideLeft {
		t.Errorf("session round-trip mismatch: %+v", got)
	}

	cfg := mustLatestConfig(t, reopened, session.SessionID)
	if cfg != saved {
		t.Errorf("config round-trip mismatch:\n got %+v\nwant %+v", cfg, saved)
	}
}

func TestEveryProductPlansOutOfTheBox(t *testing.T) {
	store, _ := newTestStore(t)

	for _, p := range implant.Default().Products() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			for _, side := range []types.Side{types.SideRight, types.SideLeft} {
				cfg := p.FillAndValidate(p.DefaultConfig(side))
				if !cfg.Valid {
					t.Fatalf("side %s: default configuration invalid", side)
				}
				if cfg.StemProduct != p.Name {
					t.Errorf("side %s: stem product = %q, want %q", side, cfg.StemProduct, p.Name)
				}

				// Frames must be computable for every stored stem.
				_ = p.HeadToStem(cfg.Stem, cfg.Head)
				_ = p.CutPlaneFor(cfg.Stem)
				_ = p.NormalFrame(cfg.Stem)
				_ = p.OffsetFF(cfg.Stem)
			}

			session := mustCreateSession(t, store, "default "+p.Name, p, types.SideRight)
			got := mustLatestConfig(t, store, session.SessionID)
			want := p.FillAndValidate(p.DefaultConfig(types.SideRight))
			if got != want {
				t.Errorf("stored configuration mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestStoredConfigDrivesFrameComposition(t *testing.T) {
	catalog := implant.Default()
	corail, err := catalog.Product("corail")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}

	store, _ := newTestStore(t)
	session := mustCreateSession(t, store, "frames", corail, types.SideLeft)

	origin := mustLatestConfig(t, store, session.SessionID)
	target := corail.NextStem(origin)
	if err := store.SaveConfig(session.SessionID, target); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	target = mustLatestConfig(t, store, session.SessionID)

	if target.Stem == origin.Stem {
		t.Fatal("NextStem did not advance the stem")
	}

	// Growing a stem moves its resection plane and reseat transform.
	m := corail.StemToStem(origin, target)
	if m.Translation() == (geom.Vec3{}) {
		t.Error("stem-to-stem transform for distinct stems is the zero translation")
	}
	if corail.CutPlaneFor(origin.Stem).Origin == corail.CutPlaneFor(target.Stem).Origin {
		t.Error("cut plane did not move with the stem size")
	}
}
