package mock

import (
	"context"

	"github.com/fwojciec/locdata"
)

var _ locdata.RegionService = (*RegionService)(nil)

// RegionService is a mock implementation of locdata.RegionService.
type RegionService struct {
	CreateRegionFn   func(ctx context.Context, region *locdata.Region) error
	FindRegionByIDFn func(ctx context.Context, id string) (*locdata.Region, error)
	FindRegionsFn    func(ctx context.Context, filter locdata.RegionFilter) ([]*locdata.Region, error)
	DeleteRegionFn   func(ctx context.Context, id string) error
}

func (s *RegionService) CreateRegion(ctx context.Context, region *locdata.Region) error {
	return s.CreateRegionFn(ctx, region)
}

func (s *RegionService) FindRegionByID(ctx context.Context, id string) (*locdata.Region, error) {
	return s.FindRegionByIDFn(ctx, id)
}

func (s *RegionService) FindRegions(ctx context.Context, filter locdata.RegionFilter) ([]*locdata.Region, error) {
	return s.FindRegionsFn(ctx, filter)
}

func (s *RegionService) DeleteRegion(ctx context.Context, id string) error {
	return s.DeleteRegionFn(ctx, id)
}
