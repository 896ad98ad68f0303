package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/locdata"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ locdata.RegionService = (*RegionService)(nil)

// RegionService implements locdata.RegionService using SQLite.
type RegionService struct {
	db *DB
}

// NewRegionService creates a new RegionService.
func NewRegionService(db *DB) *RegionService {
	return &RegionService{db: db}
}

// CreateRegion creates a new region record.
func (s *RegionService) CreateRegion(ctx context.Context, region *locdata.Region) error {
	if err := region.Validate(); err != nil {
		return err
	}

	region.ID = uuid.New().String()
	region.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO regions (id, page_url, query, shape, proportion, sample_path, attempt, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, region.ID, region.PageURL, region.Query, string(region.Shape), region.Proportion,
		region.SamplePath, region.Attempt, region.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRegionByID retrieves a region by ID.
func (s *RegionService) FindRegionByID(ctx context.Context, id string) (*locdata.Region, error) {
	var region locdata.Region
	var shape, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, page_url, query, shape, proportion, sample_path, attempt, created_at
		FROM regions
		WHERE id = ?
	`, id).Scan(&region.ID, &region.PageURL, &region.Query, &shape, &region.Proportion,
		&region.SamplePath, &region.Attempt, &createdAt)

	if err == sql.ErrNoRows {
		return nil, locdata.Errorf(locdata.ENOTFOUND, "region not found")
	}
	if err != nil {
		return nil, err
	}

	region.Shape = locdata.Shape(shape)
	region.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &region, nil
}

// FindRegions retrieves regions matching the filter, newest first.
func (s *RegionService) FindRegions(ctx context.Context, filter locdata.RegionFilter) ([]*locdata.Region, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, page_url, query, shape, proportion, sample_path, attempt, created_at FROM regions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.PageURL != nil {
		query.WriteString(" AND page_url = ?")
		args = append(args, *filter.PageURL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regions []*locdata.Region
	for rows.Next() {
		var region locdata.Region
		var shape, createdAt string

		if err := rows.Scan(&region.ID, &region.PageURL, &region.Query, &shape, &region.Proportion,
			&region.SamplePath, &region.Attempt, &createdAt); err != nil {
			return nil, err
		}

		region.Shape = locdata.Shape(shape)
		region.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		regions = append(regions, &region)
	}

	return regions, rows.Err()
}

// DeleteRegion permanently removes a region record.
func (s *RegionService) DeleteRegion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM regions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return locdata.Errorf(locdata.ENOTFOUND, "region not found")
	}

	return nil
}
