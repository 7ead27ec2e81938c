package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id          TEXT PRIMARY KEY,
	room        TEXT NOT NULL,
	description TEXT NOT NULL,
	status      TEXT NOT NULL,
	urgency     TEXT NOT NULL,
	ts          TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS jobs_room ON jobs(room);
CREATE INDEX IF NOT EXISTS jobs_status ON jobs(status);
`

// SQLiteStore keeps the job log in a SQLite database. Insertion order is
// preserved through the implicit rowid.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the job database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open job database %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // sqlite typically wants 1 writer
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create jobs schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LoadAll(ctx context.Context) ([]models.JobRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, room, description, status, urgency, ts FROM jobs ORDER BY rowid;`)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.JobRecord
	for rows.Next() {
		var j models.JobRecord
		var ts string
		if err := rows.Scan(&j.ID, &j.Room, &j.Description, &j.Status, &j.Urgency, &ts); err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		j.Timestamp, err = time.Parse(timestampLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("job %s: bad timestamp %q: %w", j.ID, ts, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *SQLiteStore) Append(ctx context.Context, jobs []models.JobRecord) error {
	if len(jobs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append jobs: %w", err)
	}
	defer tx.Rollback()

	for _, j := range jobs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO jobs(id, room, description, status, urgency, ts) VALUES(?,?,?,?,?,?);`,
			j.ID, j.Room, j.Description, string(j.Status), string(j.Urgency),
			j.Timestamp.Format(timestampLayout))
		if err != nil {
			return fmt.Errorf("insert job %s: %w", j.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ? WHERE id = ?;`, string(status), id)
	if err != nil {
		return fmt.Errorf("update status of %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("update status of %q: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
