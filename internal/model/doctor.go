package model

// Doctor is a doctors row. AreaRespID, ServRespID and LocationID reference
// areas, services and locations without enforced constraints.
type Doctor struct {
	SingleDoctorID int    `db:"singledoctorid" json:"singledoctorid"`
	Name           string `db:"name" json:"name"`
	Surname        string `db:"surname" json:"surname"`
	Img            string `db:"img" json:"img"`
	BirthDate      string `db:"birthdate" json:"birthdate"`
	AreaRespID     int    `db:"arearespid" json:"arearespid"`
	ServRespID     int    `db:"servrespid" json:"servrespid"`
	LocationID     int    `db:"locationid" json:"locationid"`
	Description    string `db:"description" json:"description"`
	Curriculum     string `db:"curriculum" json:"curriculum"`
}

// DoctorDetail is a doctor with the joined area, location and service names
// and the list of services the doctor offers.
type DoctorDetail struct {
	Doctor
	AreaRespName *string      `db:"arearespname" json:"arearespname"`
	LocationName *string      `db:"locationname" json:"locationname"`
	ServRespName *string      `db:"servrespname" json:"servrespname"`
	Services     []ServiceRef `db:"-" json:"services"`
}

// ServiceRef is the id/name pair attached to a doctor.
type ServiceRef struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// DoctorServiceLink is a doctor_services row.
type DoctorServiceLink struct {
	ID        int `db:"id" json:"id"`
	DoctorID  int `db:"doctorid" json:"doctorid"`
	ServiceID int `db:"serviceid" json:"serviceid"`
}

// DoctorServiceRow is a doctor_services row joined to the doctor's name.
type DoctorServiceRow struct {
	SingleDoctorID *int    `db:"singledoctorid" json:"singledoctorid"`
	Name           *string `db:"name" json:"name"`
	Surname        *string `db:"surname" json:"surname"`
}

// DoctorFilters holds the optional equality filters and the page window of
// a doctor listing. Nil filters are not applied.
type DoctorFilters struct {
	ID         *int
	AreaRespID *int
	ServRespID *int
	LocationID *int
	Pagination
}
