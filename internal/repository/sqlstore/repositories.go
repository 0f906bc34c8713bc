package sqlstore

import (
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/repository"
)

type locationRepository struct {
	BaseRepository
}

type serviceRepository struct {
	BaseRepository
}

type doctorRepository struct {
	BaseRepository
}

type areaRepository struct {
	BaseRepository
}

type photoGalleryRepository struct {
	BaseRepository
}

func NewLocationRepository(base BaseRepository) repository.LocationRepository {
	return &locationRepository{base}
}

func NewServiceRepository(base BaseRepository) repository.ServiceRepository {
	return &serviceRepository{base}
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func NewAreaRepository(base BaseRepository) repository.AreaRepository {
	return &areaRepository{base}
}

func NewPhotoGalleryRepository(base BaseRepository) repository.PhotoGalleryRepository {
	return &photoGalleryRepository{base}
}
