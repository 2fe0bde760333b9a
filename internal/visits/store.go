// Package visits records privacy-conscious page views in SQLite. IP
// addresses are salted and hashed before they reach the database.
package visits

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

type Stats struct {
	TotalVisitors    int64 `json:"total_visitors"`
	UniqueVisitors   int64 `json:"unique_visitors"`
	VisitorsToday    int64 `json:"visitors_today"`
	VisitorsThisWeek int64 `json:"visitors_this_week"`
}

type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp);`

// Open opens (creating if needed) the visit log at path. An empty salt is
// replaced by a random one, so hashes are only stable within one process.
func Open(ctx context.Context, path, salt string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open visits db: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create visitors table: %w", err)
	}

	if salt == "" {
		salt, err = randomSalt()
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

func randomSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// HashIP returns a truncated salted hash, consistent per IP within a salt.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT hashed_ip),
			COALESCE(SUM(CASE WHEN timestamp >= ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN timestamp >= ? THEN 1 ELSE 0 END), 0)
		FROM visitors`,
		startOfDay, weekAgo,
	).Scan(&stats.TotalVisitors, &stats.UniqueVisitors, &stats.VisitorsToday, &stats.VisitorsThisWeek)
	if err != nil {
		return nil, fmt.Errorf("load visit stats: %w", err)
	}
	return stats, nil
}

// Purge deletes visits older than retention and reports how many went.
func (s *Store) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-retention)
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge visits: %w", err)
	}
	return res.RowsAffected()
}
