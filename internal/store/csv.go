package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

// timestampLayout matches the capture-time format the maintenance log has
// always used.
const timestampLayout = "2006-01-02 15:04"

var csvHeader = []string{"ID", "Room", "Description", "Status", "Urgency", "Timestamp"}

// CSVStore keeps the job log in a flat CSV file, one row per record,
// columns matching the JobRecord attribute names. A missing file reads as
// an empty log.
type CSVStore struct {
	Path string
}

// NewCSVStore returns a store backed by the CSV file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{Path: path}
}

func (s *CSVStore) LoadAll(ctx context.Context) ([]models.JobRecord, error) {
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open job log %q: %w", s.Path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read job log %q: %w", s.Path, err)
	}

	var jobs []models.JobRecord
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == csvHeader[0] {
			continue // header row
		}
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("job log %q row %d: %d columns, want %d", s.Path, i+1, len(row), len(csvHeader))
		}
		ts, err := time.Parse(timestampLayout, row[5])
		if err != nil {
			return nil, fmt.Errorf("job log %q row %d: bad timestamp %q: %w", s.Path, i+1, row[5], err)
		}
		jobs = append(jobs, models.JobRecord{
			ID:          row[0],
			Room:        row[1],
			Description: row[2],
			Status:      models.Status(row[3]),
			Urgency:     models.Urgency(row[4]),
			Timestamp:   ts,
		})
	}
	return jobs, nil
}

func (s *CSVStore) Append(ctx context.Context, jobs []models.JobRecord) error {
	if len(jobs) == 0 {
		return nil
	}

	_, statErr := os.Stat(s.Path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open job log %q: %w", s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if fresh {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write job log header: %w", err)
		}
	}
	for _, j := range jobs {
		if err := w.Write(recordRow(j)); err != nil {
			return fmt.Errorf("write job log row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func (s *CSVStore) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	jobs, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range jobs {
		if jobs[i].ID == id {
			jobs[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("update status of %q: %w", id, ErrNotFound)
	}

	return s.rewrite(jobs)
}

// rewrite replaces the whole file. Status flips are rare enough that the
// full rewrite is not worth optimizing.
func (s *CSVStore) rewrite(jobs []models.JobRecord) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("rewrite job log %q: %w", s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write job log header: %w", err)
	}
	for _, j := range jobs {
		if err := w.Write(recordRow(j)); err != nil {
			return fmt.Errorf("write job log row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func (s *CSVStore) Close() error {
	return nil
}

func recordRow(j models.JobRecord) []string {
	return []string{
		j.ID,
		j.Room,
		j.Description,
		string(j.Status),
		string(j.Urgency),
		j.Timestamp.Format(timestampLayout),
	}
}
