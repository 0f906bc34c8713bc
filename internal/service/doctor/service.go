package doctor

import (
	"context"

	"github.com/samber/lo"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
)

type DoctorServicer interface {
	// ListDoctors returns one page of doctors, each with the services it offers.
	ListDoctors(ctx context.Context, filters *model.DoctorFilters) ([]*model.DoctorDetail, error)
	ListDoctorServices(ctx context.Context, serviceID *int) ([]*model.DoctorServiceRow, error)
}

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDoctors(ctx context.Context, filters *model.DoctorFilters) ([]*model.DoctorDetail, error) {
	doctors, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	if err := s.attachServices(ctx, doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// attachServices fills Services on every doctor with one batched lookup.
// Doctors without linked services get an empty list.
func (s *Service) attachServices(ctx context.Context, doctors []*model.DoctorDetail) error {
	if len(doctors) == 0 {
		return nil
	}

	ids := lo.Uniq(lo.Map(doctors, func(d *model.DoctorDetail, _ int) int { return d.SingleDoctorID }))
	byDoctor, err := s.repo.ServicesByDoctor(ctx, ids)
	if err != nil {
		return apperrors.StoreUnavailable(err)
	}

	for _, d := range doctors {
		d.Services = byDoctor[d.SingleDoctorID]
		if d.Services == nil {
			d.Services = []model.ServiceRef{}
		}
	}
	return nil
}

func (s *Service) ListDoctorServices(ctx context.Context, serviceID *int) ([]*model.DoctorServiceRow, error) {
	rows, err := s.repo.ListDoctorServices(ctx, serviceID)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return rows, nil
}
