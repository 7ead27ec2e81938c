package store

import (
	"context"
	"errors"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

// ErrNotFound is returned when a status update targets an unknown job ID.
var ErrNotFound = errors.New("job not found")

// RecordStore is the persistence boundary for the job log. Records are
// append-only across paste sessions; the only mutation is a status flip.
type RecordStore interface {
	// LoadAll returns every stored job in insertion order.
	LoadAll(ctx context.Context) ([]models.JobRecord, error)
	// Append adds newly extracted jobs to the log.
	Append(ctx context.Context, jobs []models.JobRecord) error
	// UpdateStatus flips the status of the job with the given ID.
	UpdateStatus(ctx context.Context, id string, status models.Status) error
	Close() error
}
