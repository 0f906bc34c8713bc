package model

// Location is a clinic site.
type Location struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Address     string  `db:"address" json:"address"`
	Phone       string  `db:"phone" json:"phone"`
	Fax         string  `db:"fax" json:"fax"`
	Email       string  `db:"email" json:"email"`
	Description string  `db:"description" json:"description"`
	Highway     string  `db:"highway" json:"highway"`
	Train       string  `db:"train" json:"train"`
	Airplane    string  `db:"airplane" json:"airplane"`
	Lat         float64 `db:"lat" json:"lat"`
	Lng         float64 `db:"lng" json:"lng"`
	ImgLoc      string  `db:"imgloc" json:"imgLoc"`
}

// LocationService links a location (by name) to a service (by searchname).
// The pair is not unique.
type LocationService struct {
	Location string `db:"location" json:"location"`
	Service  string `db:"service" json:"service"`
}

// ServiceLocation is a location_services row for a given service with the
// matching location columns. Location columns are nil when the name does
// not resolve.
type ServiceLocation struct {
	LocationService
	ID          *int     `db:"id" json:"id"`
	Name        *string  `db:"name" json:"name"`
	Address     *string  `db:"address" json:"address"`
	Phone       *string  `db:"phone" json:"phone"`
	Fax         *string  `db:"fax" json:"fax"`
	Email       *string  `db:"email" json:"email"`
	Description *string  `db:"description" json:"description"`
	Highway     *string  `db:"highway" json:"highway"`
	Train       *string  `db:"train" json:"train"`
	Airplane    *string  `db:"airplane" json:"airplane"`
	Lat         *float64 `db:"lat" json:"lat"`
	Lng         *float64 `db:"lng" json:"lng"`
	ImgLoc      *string  `db:"imgloc" json:"imgLoc"`
}

// LocationOffering is a location_services row for a given location with the
// matching service columns.
type LocationOffering struct {
	LocationService
	ID               *int    `db:"id" json:"id"`
	SearchName       *string `db:"searchname" json:"searchname"`
	ImgSer           *string `db:"imgser" json:"imgser"`
	Name             *string `db:"name" json:"name"`
	ShortDescription *string `db:"shortdescription" json:"shortdescription"`
	Description      *string `db:"description" json:"description"`
	VisitTime        *string `db:"visittime" json:"visittime"`
	MealTime         *string `db:"mealtime" json:"mealtime"`
	Preparation      *string `db:"preparation" json:"preparation"`
	Statistics       *string `db:"statistics" json:"statistics"`
}

// PhotoGalleryEntry is one gallery image; ID is the location it belongs to.
type PhotoGalleryEntry struct {
	ID  int    `db:"id" json:"id"`
	Img string `db:"img" json:"img"`
}
