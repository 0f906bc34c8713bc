package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
)

type fakeLocations struct {
	rows   []*model.Location
	err    error
	lastID *int
}

func (f *fakeLocations) List(ctx context.Context) ([]*model.Location, error) {
	return f.rows, f.err
}

func (f *fakeLocations) Get(ctx context.Context, id int) ([]*model.Location, error) {
	f.lastID = &id
	var out []*model.Location
	for _, l := range f.rows {
		if l.ID == id {
			out = append(out, l)
		}
	}
	return out, f.err
}

func (f *fakeLocations) ListByService(ctx context.Context, service string) ([]*model.ServiceLocation, error) {
	return []*model.ServiceLocation{{LocationService: model.LocationService{Location: "Milano", Service: service}}}, f.err
}

func (f *fakeLocations) ListByLocation(ctx context.Context, location string) ([]*model.LocationOffering, error) {
	return []*model.LocationOffering{{LocationService: model.LocationService{Location: location, Service: "eco"}}}, f.err
}

type fakeServices struct{ err error }

func (f *fakeServices) List(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*model.Service{{ID: 1, SearchName: "eco", Name: "Ecografia"}}, nil
}

func (f *fakeServices) Name(ctx context.Context, id int) (string, error) { return "Ecografia", f.err }

type fakeAreas struct{ err error }

func (f *fakeAreas) List(ctx context.Context) ([]*model.Area, error) {
	return []*model.Area{{ID: 1, Name: "Cardiologia"}}, f.err
}

type fakeGallery struct{ err error }

func (f *fakeGallery) ListByLocation(ctx context.Context, locationID int) ([]*model.PhotoGalleryEntry, error) {
	return []*model.PhotoGalleryEntry{{ID: locationID, Img: "a.jpg"}}, f.err
}

func TestListLocations(t *testing.T) {
	locations := &fakeLocations{rows: []*model.Location{{ID: 1, Name: "Milano"}, {ID: 2, Name: "Bergamo"}}}
	svc := NewService(locations, &fakeServices{}, &fakeAreas{}, &fakeGallery{})
	ctx := context.Background()

	all, err := svc.ListLocations(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Nil(t, locations.lastID)

	id := 2
	one, err := svc.ListLocations(ctx, &id)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Bergamo", one[0].Name)
}

func TestStoreFailuresBecomeUnavailable(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	svc := NewService(&fakeLocations{err: boom}, &fakeServices{err: boom}, &fakeAreas{err: boom}, &fakeGallery{err: boom})
	ctx := context.Background()

	_, err := svc.ListLocations(ctx, nil)
	assert.True(t, apperrors.Is(err, apperrors.ErrStoreUnavailable))
	_, err = svc.LocationsByService(ctx, "eco")
	assert.True(t, apperrors.Is(err, apperrors.ErrStoreUnavailable))
	_, err = svc.ServicesByLocation(ctx, "Milano")
	assert.True(t, apperrors.Is(err, apperrors.ErrStoreUnavailable))
	_, err = svc.ListServices(ctx, model.ServiceFilter{})
	assert.True(t, apperrors.Is(err, apperrors.ErrStoreUnavailable))
	_, err = svc.ListAreas(ctx)
	assert.True(t, apperrors.Is(err, apperrors.ErrStoreUnavailable))
	_, err = svc.PhotoGallery(ctx, 1)
	assert.True(t, apperrors.Is(err, apperrors.ErrStoreUnavailable))

	assert.ErrorIs(t, err, boom)
}

func TestPassThroughReads(t *testing.T) {
	svc := NewService(&fakeLocations{}, &fakeServices{}, &fakeAreas{}, &fakeGallery{})
	ctx := context.Background()

	byService, err := svc.LocationsByService(ctx, "eco")
	require.NoError(t, err)
	assert.Equal(t, "eco", byService[0].Service)

	byLocation, err := svc.ServicesByLocation(ctx, "Como")
	require.NoError(t, err)
	assert.Equal(t, "Como", byLocation[0].Location)

	photos, err := svc.PhotoGallery(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, photos[0].ID)
}
