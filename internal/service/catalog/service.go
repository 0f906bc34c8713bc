package catalog

import (
	"context"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
)

// CatalogServicer serves the read-only clinic catalogue.
type CatalogServicer interface {
	// ListLocations returns every location, or the rows with the given id.
	ListLocations(ctx context.Context, id *int) ([]*model.Location, error)
	LocationsByService(ctx context.Context, service string) ([]*model.ServiceLocation, error)
	ServicesByLocation(ctx context.Context, location string) ([]*model.LocationOffering, error)
	ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
	ListAreas(ctx context.Context) ([]*model.Area, error)
	PhotoGallery(ctx context.Context, locationID int) ([]*model.PhotoGalleryEntry, error)
}

type Service struct {
	locations repository.LocationRepository
	services  repository.ServiceRepository
	areas     repository.AreaRepository
	gallery   repository.PhotoGalleryRepository
}

func NewService(
	locations repository.LocationRepository,
	services repository.ServiceRepository,
	areas repository.AreaRepository,
	gallery repository.PhotoGalleryRepository,
) *Service {
	return &Service{
		locations: locations,
		services:  services,
		areas:     areas,
		gallery:   gallery,
	}
}

func (s *Service) ListLocations(ctx context.Context, id *int) ([]*model.Location, error) {
	var (
		locations []*model.Location
		err       error
	)
	if id != nil {
		locations, err = s.locations.Get(ctx, *id)
	} else {
		locations, err = s.locations.List(ctx)
	}
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return locations, nil
}

func (s *Service) LocationsByService(ctx context.Context, service string) ([]*model.ServiceLocation, error) {
	rows, err := s.locations.ListByService(ctx, service)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return rows, nil
}

func (s *Service) ServicesByLocation(ctx context.Context, location string) ([]*model.LocationOffering, error) {
	rows, err := s.locations.ListByLocation(ctx, location)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return rows, nil
}

func (s *Service) ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	services, err := s.services.List(ctx, filter)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return services, nil
}

func (s *Service) ListAreas(ctx context.Context) ([]*model.Area, error) {
	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return areas, nil
}

func (s *Service) PhotoGallery(ctx context.Context, locationID int) ([]*model.PhotoGalleryEntry, error) {
	photos, err := s.gallery.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return photos, nil
}
