package sqlstore

import (
	"context"
	"fmt"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
)

const locationColumns = `
	l.id, l.name, l.address, l.phone, l.fax, l.email, l.description,
	l.highway, l.train, l.airplane, l.lat, l.lng, l.imgloc`

func (r *locationRepository) List(ctx context.Context) ([]*model.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations l ORDER BY l.id`

	var locations []*model.Location
	if err := r.selectContext(ctx, "locations.list", &locations, query); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// Get returns every location row with the given id. The id column is not
// unique, so this is a list.
func (r *locationRepository) Get(ctx context.Context, id int) ([]*model.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations l WHERE l.id = ?`

	var locations []*model.Location
	if err := r.selectContext(ctx, "locations.get", &locations, query, id); err != nil {
		return nil, fmt.Errorf("failed to get location %d: %w", id, err)
	}
	return locations, nil
}

func (r *locationRepository) ListByService(ctx context.Context, service string) ([]*model.ServiceLocation, error) {
	query := `
		SELECT ls.location, ls.service,` + locationColumns + `
		FROM location_services ls
		LEFT JOIN locations l ON l.name = ls.location
		WHERE ls.service = ?
	`

	var rows []*model.ServiceLocation
	if err := r.selectContext(ctx, "location_services.by_service", &rows, query, service); err != nil {
		return nil, fmt.Errorf("failed to list locations for service %q: %w", service, err)
	}
	return rows, nil
}

func (r *locationRepository) ListByLocation(ctx context.Context, location string) ([]*model.LocationOffering, error) {
	query := `
		SELECT
			ls.location, ls.service,
			s.id, s.searchname, s.imgser, s.name, s.shortdescription, s.description,
			s.visittime, s.mealtime, s.preparation, s.statistics
		FROM location_services ls
		LEFT JOIN services s ON s.searchname = ls.service
		WHERE ls.location = ?
	`

	var rows []*model.LocationOffering
	if err := r.selectContext(ctx, "location_services.by_location", &rows, query, location); err != nil {
		return nil, fmt.Errorf("failed to list services for location %q: %w", location, err)
	}
	return rows, nil
}
