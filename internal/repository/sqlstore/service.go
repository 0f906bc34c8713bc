package sqlstore

import (
	"context"
	"fmt"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
)

func (r *serviceRepository) List(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	query := `
		SELECT
			id, searchname, imgser, name, shortdescription, description,
			visittime, mealtime, preparation, statistics
		FROM services
	`
	var args []interface{}
	switch {
	case filter.ID != nil:
		query += ` WHERE id = ?`
		args = append(args, *filter.ID)
	case filter.SearchName != nil:
		query += ` WHERE searchname = ?`
		args = append(args, *filter.SearchName)
	}
	query += ` ORDER BY id`

	var services []*model.Service
	if err := r.selectContext(ctx, "services.list", &services, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Name(ctx context.Context, id int) (string, error) {
	var name string
	err := r.getContext(ctx, "services.name", &name, `SELECT name FROM services WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return "", fmt.Errorf("failed to get service %d: %w", id, err)
	}
	return name, nil
}
