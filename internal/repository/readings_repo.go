package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gardenmon/internal/models"
)

// ErrStoreUnavailable indicates the hosted sensor store could not be
// reached or refused the query. It is never retried here; the render pass
// that triggered the read fails visibly.
var ErrStoreUnavailable = errors.New("sensor store unavailable")

// ReadingRepository reads sensor samples from the hosted store. The
// dashboard never writes; ingestion belongs to the device.
type ReadingRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewReadingRepository returns repository.
func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db, now: time.Now}
}

// FetchWindow returns every reading recorded within the last hours,
// ascending by timestamp. An empty window yields an empty slice, not an
// error.
func (r *ReadingRepository) FetchWindow(ctx context.Context, hours int) ([]models.Reading, error) {
	const query = `
		SELECT read_at, ph, humidity, light
		FROM sensor_readings
		WHERE read_at >= $1
		ORDER BY read_at ASC
	`
	cutoff := r.now().UTC().Add(-time.Duration(hours) * time.Hour)

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	readings := []models.Reading{}
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return readings, nil
}

// FetchLatest returns the single most recent reading, or (nil, nil) when
// the store holds no rows yet.
func (r *ReadingRepository) FetchLatest(ctx context.Context) (*models.Reading, error) {
	const query = `
		SELECT read_at, ph, humidity, light
		FROM sensor_readings
		ORDER BY read_at DESC
		LIMIT 1
	`
	reading, err := scanReading(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &reading, nil
}

func scanReading(row interface{ Scan(...any) error }) (models.Reading, error) {
	var (
		reading models.Reading
		ph      sql.NullFloat64
	)
	if err := row.Scan(&reading.RecordedAt, &ph, &reading.Humidity, &reading.Light); err != nil {
		return models.Reading{}, err
	}
	if ph.Valid {
		reading.PH = &ph.Float64
	}
	reading.Normalize()
	return reading, nil
}
