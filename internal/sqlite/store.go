// Package sqlite implements the SQLite-backed session store: named
// planning sessions with an append-only history of assembly
// configurations.
package sqlite

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/orthoplan/stemplan/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Store errors.
var (
	ErrStoreClosed     = errors.New("session store is closed")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoConfigs       = errors.New("session has no saved configurations")
)

// Store persists planning sessions in a SQLite database under the data
// directory. A Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	open   bool
	db     *sql.DB
	dbPath string
}

// Open creates the data directory if needed, opens the session
// database and applies the schema.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "sessions.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{open: true, db: db, dbPath: dbPath}, nil
}

// Close releases the database connection. Close is idempotent; after
// Close all operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	return nil
}

// CreateSession stores a new session with its initial configuration
// and returns the stored record.
func (s *Store) CreateSession(session types.Session, cfg types.ImplantConfig) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrStoreClosed
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session.SessionID = generateUUID()
	session.CreatedAt = now
	session.UpdatedAt = now

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sessions (session_id, name, product, side, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session.SessionID, session.Name, session.Product, session.Side.String(),
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, err
	}
	if err := insertConfig(tx, session.SessionID, 1, cfg, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession returns the session with the given ID.
func (s *Store) GetSession(sessionID string) (*types.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrStoreClosed
	}
	row := s.db.QueryRow(
		`SELECT session_id, name, product, side, created_at, updated_at
		 FROM sessions WHERE session_id = ?`, sessionID)
	return scanSession(row)
}

// ListSessions returns all sessions, most recently updated first.
func (s *Store) ListSessions() ([]*types.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrStoreClosed
	}
	rows, err := s.db.Query(
		`SELECT session_id, name, product, side, created_at, updated_at
		 FROM sessions ORDER BY updated_at DESC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*types.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session and its configuration history.
func (s *Store) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrStoreClosed
	}
	res, err := s.db.Exec(`DELETE FROM sessions WHERE session_id = ?`, sessionID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// SaveConfig appends a configuration to the session's history and
// bumps the session's update time.
func (s *Store) SaveConfig(sessionID string, cfg types.ImplantConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var seq int
	err = tx.QueryRow(
		`SELECT COALESCE(MAX(seq), 0) FROM configs WHERE session_id = ?`, sessionID,
	).Scan(&seq)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := tx.Exec(
		`UPDATE sessions SET updated_at = ? WHERE session_id = ?`,
		now.Format(time.RFC3339Nano), sessionID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}

	if err := insertConfig(tx, sessionID, seq+1, cfg, now); err != nil {
		return err
	}
	return tx.Commit()
}

// LatestConfig returns the most recently saved configuration of a
// session.
func (s *Store) LatestConfig(sessionID string) (types.ImplantConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cfg types.ImplantConfig
	if !s.open {
		return cfg, ErrStoreClosed
	}
	if err := s.sessionExists(sessionID); err != nil {
		return cfg, err
	}

	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM configs WHERE session_id = ? ORDER BY seq DESC LIMIT 1`,
		sessionID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return cfg, ErrNoConfigs
	}
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ConfigHistory returns the full configuration history of a session in
// save order.
func (s *Store) ConfigHistory(sessionID string) ([]types.ImplantConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrStoreClosed
	}
	if err := s.sessionExists(sessionID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT payload FROM configs WHERE session_id = ? ORDER BY seq ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]types.ImplantConfig, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var cfg types.ImplantConfig
		if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
		history = append(history, cfg)
	}
	return history, rows.Err()
}

// sessionExists reports ErrSessionNotFound for unknown sessions. The
// caller must hold at least the read lock.
func (s *Store) sessionExists(sessionID string) error {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM sessions WHERE session_id = ?`, sessionID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSessionNotFound
	}
	return err
}

func insertConfig(tx *sql.Tx, sessionID string, seq int, cfg types.ImplantConfig, now time.Time) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = tx.Exec(
		`INSERT INTO configs (config_id, session_id, seq, payload, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		generateUUID(), sessionID, seq, string(payload), now.Format(time.RFC3339Nano))
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*types.Session, error) {
	var session types.Session
	var side, createdAt, updatedAt string
	err := row.Scan(&session.SessionID, &session.Name, &session.Product, &side, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.Side, err = types.ParseSide(side); err != nil {
		return nil, err
	}
	if session.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, err
	}
	if session.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, err
	}
	return &session, nil
}

// generateUUID generates a new UUID v7 for record IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
