package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
)

func (r *doctorRepository) List(ctx context.Context, filters *model.DoctorFilters) ([]*model.DoctorDetail, error) {
	query := `
		SELECT
			d.singledoctorid, d.name, d.surname, d.img, d.birthdate,
			d.arearespid, d.servrespid, d.locationid, d.description, d.curriculum,
			a.name AS arearespname,
			l.name AS locationname,
			s.name AS servrespname
		FROM doctors d
		LEFT JOIN areas a ON a.id = d.arearespid
		LEFT JOIN services s ON s.id = d.servrespid
		LEFT JOIN locations l ON l.id = d.locationid
	`

	var (
		where []string
		args  []interface{}
	)
	if filters.ID != nil {
		where = append(where, "d.singledoctorid = ?")
		args = append(args, *filters.ID)
	}
	if filters.AreaRespID != nil {
		where = append(where, "d.arearespid = ?")
		args = append(args, *filters.AreaRespID)
	}
	if filters.ServRespID != nil {
		where = append(where, "d.servrespid = ?")
		args = append(args, *filters.ServRespID)
	}
	if filters.LocationID != nil {
		where = append(where, "d.locationid = ?")
		args = append(args, *filters.LocationID)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	// singledoctorid breaks surname ties so pages never overlap.
	query += " ORDER BY d.surname ASC, d.singledoctorid ASC LIMIT ? OFFSET ?"
	args = append(args, filters.Limit, filters.Start)

	var doctors []*model.DoctorDetail
	if err := r.selectContext(ctx, "doctors.list", &doctors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

type doctorServiceRef struct {
	DoctorID int `db:"doctorid"`
	model.ServiceRef
}

func (r *doctorRepository) ServicesByDoctor(ctx context.Context, doctorIDs []int) (map[int][]model.ServiceRef, error) {
	if len(doctorIDs) == 0 {
		return map[int][]model.ServiceRef{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT ds.doctorid, s.id, s.name
		FROM doctor_services ds
		JOIN services s ON s.id = ds.serviceid
		WHERE ds.doctorid IN (?)
		ORDER BY ds.doctorid, ds.id
	`, doctorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build doctor services query: %w", err)
	}

	var rows []doctorServiceRef
	if err := r.selectContext(ctx, "doctor_services.by_doctor", &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctor services: %w", err)
	}

	grouped := lo.GroupBy(rows, func(row doctorServiceRef) int { return row.DoctorID })
	return lo.MapValues(grouped, func(refs []doctorServiceRef, _ int) []model.ServiceRef {
		return lo.Map(refs, func(ref doctorServiceRef, _ int) model.ServiceRef { return ref.ServiceRef })
	}), nil
}

func (r *doctorRepository) ListDoctorServices(ctx context.Context, serviceID *int) ([]*model.DoctorServiceRow, error) {
	query := `
		SELECT d.singledoctorid, d.name, d.surname
		FROM doctor_services ds
		LEFT JOIN doctors d ON d.singledoctorid = ds.doctorid
	`
	var args []interface{}
	if serviceID != nil {
		query += ` WHERE ds.serviceid = ?`
		args = append(args, *serviceID)
	}
	query += ` ORDER BY ds.id`

	var rows []*model.DoctorServiceRow
	if err := r.selectContext(ctx, "doctor_services.list", &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctor services: %w", err)
	}
	return rows, nil
}
