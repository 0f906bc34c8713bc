package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
)

// All repository interfaces in one file
type (
	LocationRepository interface {
		List(ctx context.Context) ([]*model.Location, error)
		Get(ctx context.Context, id int) ([]*model.Location, error)
		ListByService(ctx context.Context, service string) ([]*model.ServiceLocation, error)
		ListByLocation(ctx context.Context, location string) ([]*model.LocationOffering, error)
	}

	ServiceRepository interface {
		List(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
		// Name returns the display name of a service, or an error wrapping
		// sql.ErrNoRows when the id is unknown.
		Name(ctx context.Context, id int) (string, error)
	}

	DoctorRepository interface {
		List(ctx context.Context, filters *model.DoctorFilters) ([]*model.DoctorDetail, error)
		// ServicesByDoctor returns the services linked to each of the given
		// doctors, keyed by doctor id. Doctors without services are absent.
		ServicesByDoctor(ctx context.Context, doctorIDs []int) (map[int][]model.ServiceRef, error)
		ListDoctorServices(ctx context.Context, serviceID *int) ([]*model.DoctorServiceRow, error)
	}

	AreaRepository interface {
		List(ctx context.Context) ([]*model.Area, error)
	}

	PhotoGalleryRepository interface {
		ListByLocation(ctx context.Context, locationID int) ([]*model.PhotoGalleryEntry, error)
	}

	NotificationRepository interface {
		Create(ctx context.Context, notification *model.Notification) error
		Update(ctx context.Context, notification *model.Notification) error
		Get(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	}
)

// ErrNotificationNotFound is returned by NotificationRepository.Get for
// unknown or expired ids.
var ErrNotificationNotFound = errors.New("notification not found")
