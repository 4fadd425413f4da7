// Package store keeps privacy-conscious visit and command counters for web
// mode in a SQLite database. IP addresses are never stored raw.
package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Retention is how long visits are kept before Purge removes them.
const Retention = 365 * 24 * time.Hour

// Visit is one tracked page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// CommandCount is how often a terminal command was submitted over HTTP.
type CommandCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Stats summarises the database.
type Stats struct {
	TotalVisitors    int64          `json:"total_visitors"`
	UniqueVisitors   int64          `json:"unique_visitors"`
	VisitorsToday    int64          `json:"visitors_today"`
	VisitorsThisWeek int64          `json:"visitors_this_week"`
	TopCommands      []CommandCount `json:"top_commands"`
	RecentVisitors   []Visit        `json:"recent_visitors"`
}

// Store wraps the database handle.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open opens (creating if needed) the database at path. An empty salt
// gets a random one, so hashes are only stable for the process lifetime.
func Open(ctx context.Context, path, salt string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if salt == "" {
		salt, err = randomSalt()
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &Store{db: db, salt: salt, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func randomSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT,
			ts INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS visitors_ts ON visitors (ts)`,
		`CREATE TABLE IF NOT EXISTS commands (
			name TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP returns a truncated salted hash of ip.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores a page view for ip.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordCommand bumps the counter for a normalized command name.
func (s *Store) RecordCommand(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO commands (name, count) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET count = count + 1`, name)
	if err != nil {
		return fmt.Errorf("record command: %w", err)
	}
	return nil
}

// Purge deletes visits older than Retention and reports how many went.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-Retention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE ts < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge visitors: %w", err)
	}
	return res.RowsAffected()
}

// Stats gathers the dashboard numbers.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{weekAgo}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, count FROM commands ORDER BY count DESC, name LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("top commands: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c CommandCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		stats.TopCommands = append(stats.TopCommands, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.RecentVisitors, err = s.RecentVisits(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RecentVisits returns up to limit visits, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), ts
		 FROM visitors ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0)
		out = append(out, v)
	}
	return out, rows.Err()
}
