package sqlstore

import (
	"context"
	"fmt"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
)

func (r *areaRepository) List(ctx context.Context) ([]*model.Area, error) {
	var areas []*model.Area
	if err := r.selectContext(ctx, "areas.list", &areas, `SELECT id, name FROM areas ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

func (r *photoGalleryRepository) ListByLocation(ctx context.Context, locationID int) ([]*model.PhotoGalleryEntry, error) {
	var photos []*model.PhotoGalleryEntry
	err := r.selectContext(ctx, "photo_gallery.by_location", &photos, `SELECT id, img FROM photo_gallery WHERE id = ?`, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos for location %d: %w", locationID, err)
	}
	return photos, nil
}
