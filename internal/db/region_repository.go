package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/bitregion/internal/region"
)

var (
	ErrRegionNotFound   = errors.New("region not found")
	ErrChecksumMismatch = errors.New("region checksum mismatch")
)

// RegionSummary describes a stored region without its cells.
type RegionSummary struct {
	Name      string
	Width     int
	Height    int
	Cells     int
	UpdatedAt time.Time
}

// RegionRepository persists regions by name.
// Cells are stored in the region binary encoding next to their BLAKE2b-256 sum.
type RegionRepository struct {
	pool *pgxpool.Pool
}

// NewRegionRepository creates a new region repository.
func NewRegionRepository(pool *pgxpool.Pool) *RegionRepository {
	return &RegionRepository{pool: pool}
}

// Save inserts or replaces the region stored under name.
func (r *RegionRepository) Save(ctx context.Context, name string, reg *region.Region) error {
	data, err := reg.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode region %q: %w", name, err)
	}
	sum := blake2b.Sum256(data)
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO regions (name, width, height, cells, data, checksum, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (name) DO UPDATE SET
		   width = EXCLUDED.width, height = EXCLUDED.height, cells = EXCLUDED.cells,
		   data = EXCLUDED.data, checksum = EXCLUDED.checksum, updated_at = EXCLUDED.updated_at`,
		name, reg.Width(), reg.Height(), reg.Count(), data, sum[:]); err != nil {
		return fmt.Errorf("save region %q: %w", name, err)
	}
	return nil
}

// Load fetches the region stored under name.
func (r *RegionRepository) Load(ctx context.Context, name string) (*region.Region, error) {
	var data, checksum []byte
	err := r.pool.QueryRow(ctx,
		`SELECT data, checksum FROM regions WHERE name = $1`, name,
	).Scan(&data, &checksum)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("load region %q: %w", name, ErrRegionNotFound)
		}
		return nil, fmt.Errorf("load region %q: %w", name, err)
	}

	sum := blake2b.Sum256(data)
	if !bytes.Equal(sum[:], checksum) {
		return nil, fmt.Errorf("load region %q: %w", name, ErrChecksumMismatch)
	}

	var reg region.Region
	if err := reg.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("decode region %q: %w", name, err)
	}
	return &reg, nil
}

// List returns summaries of all stored regions ordered by name.
func (r *RegionRepository) List(ctx context.Context) ([]RegionSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, width, height, cells, updated_at FROM regions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query regions: %w", err)
	}
	defer rows.Close()

	var result []RegionSummary
	for rows.Next() {
		var s RegionSummary
		if err := rows.Scan(&s.Name, &s.Width, &s.Height, &s.Cells, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan region row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate region rows: %w", err)
	}
	return result, nil
}

// Delete removes the region stored under name.
func (r *RegionRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM regions WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete region %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete region %q: %w", name, ErrRegionNotFound)
	}
	return nil
}
