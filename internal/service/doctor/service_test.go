package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
)

type mockDoctorRepository struct {
	mock.Mock
}

func (m *mockDoctorRepository) List(ctx context.Context, filters *model.DoctorFilters) ([]*model.DoctorDetail, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DoctorDetail), args.Error(1)
}

func (m *mockDoctorRepository) ServicesByDoctor(ctx context.Context, ids []int) (map[int][]model.ServiceRef, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int][]model.ServiceRef), args.Error(1)
}

func (m *mockDoctorRepository) ListDoctorServices(ctx context.Context, serviceID *int) ([]*model.DoctorServiceRow, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DoctorServiceRow), args.Error(1)
}

func doctorDetail(id int, surname string) *model.DoctorDetail {
	return &model.DoctorDetail{Doctor: model.Doctor{SingleDoctorID: id, Surname: surname}}
}

func TestListDoctors_AttachesServicesByID(t *testing.T) {
	repo := new(mockDoctorRepository)
	svc := NewService(repo)
	ctx := context.Background()
	filters := &model.DoctorFilters{Pagination: model.Pagination{Limit: 6}}

	repo.On("List", ctx, filters).Return([]*model.DoctorDetail{
		doctorDetail(7, "Bianchi"),
		doctorDetail(3, "Rossi"),
		doctorDetail(5, "Verdi"),
	}, nil)
	repo.On("ServicesByDoctor", ctx, []int{7, 3, 5}).Return(map[int][]model.ServiceRef{
		3: {{ID: 1, Name: "Ecografia"}},
		7: {{ID: 2, Name: "Visita cardiologica"}, {ID: 1, Name: "Ecografia"}},
	}, nil)

	doctors, err := svc.ListDoctors(ctx, filters)
	require.NoError(t, err)
	require.Len(t, doctors, 3)

	assert.Equal(t, []model.ServiceRef{{ID: 2, Name: "Visita cardiologica"}, {ID: 1, Name: "Ecografia"}}, doctors[0].Services)
	assert.Equal(t, []model.ServiceRef{{ID: 1, Name: "Ecografia"}}, doctors[1].Services)
	assert.NotNil(t, doctors[2].Services)
	assert.Empty(t, doctors[2].Services)
	repo.AssertExpectations(t)
}

func TestListDoctors_EmptyPageSkipsServiceLookup(t *testing.T) {
	repo := new(mockDoctorRepository)
	svc := NewService(repo)
	ctx := context.Background()
	filters := &model.DoctorFilters{Pagination: model.Pagination{Start: 60, Limit: 6}}

	repo.On("List", ctx, filters).Return([]*model.DoctorDetail{}, nil)

	doctors, err := svc.ListDoctors(ctx, filters)
	require.NoError(t, err)
	assert.Empty(t, doctors)
	repo.AssertNotCalled(t, "ServicesByDoctor", mock.Anything, mock.Anything)
}

func TestListDoctors_StoreFailures(t *testing.T) {
	ctx := context.Background()
	filters := &model.DoctorFilters{Pagination: model.Pagination{Limit: 6}}

	t.Run("listing", func(t *testing.T) {
		repo := new(mockDoctorRepository)
		repo.On("List", ctx, filters).Return(nil, errors.New("connection reset"))

		_, err := NewService(repo).ListDoctors(ctx, filters)
		assert.True(t, apperrors.Is(err, apperrors.ErrStoreUnavailable))
	})

	t.Run("aggregation", func(t *testing.T) {
		repo := new(mockDoctorRepository)
		repo.On("List", ctx, filters).Return([]*model.DoctorDetail{doctorDetail(1, "Rossi")}, nil)
		repo.On("ServicesByDoctor", ctx, []int{1}).Return(nil, errors.New("connection reset"))

		_, err := NewService(repo).ListDoctors(ctx, filters)
		assert.True(t, apperrors.Is(err, apperrors.ErrStoreUnavailable))
	})
}

func TestListDoctorServices(t *testing.T) {
	repo := new(mockDoctorRepository)
	svc := NewService(repo)
	ctx := context.Background()
	id := 1
	name := "Giulia"

	repo.On("ListDoctorServices", ctx, &id).Return([]*model.DoctorServiceRow{{Name: &name}}, nil)

	rows, err := svc.ListDoctorServices(ctx, &id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Giulia", *rows[0].Name)
}
