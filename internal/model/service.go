package model

// Service is a medical service offered by the clinic.
type Service struct {
	ID               int    `db:"id" json:"id"`
	SearchName       string `db:"searchname" json:"searchname"`
	ImgSer           string `db:"imgser" json:"imgser"`
	Name             string `db:"name" json:"name"`
	ShortDescription string `db:"shortdescription" json:"shortdescription"`
	Description      string `db:"description" json:"description"`
	VisitTime        string `db:"visittime" json:"visittime"`
	MealTime         string `db:"mealtime" json:"mealtime"`
	Preparation      string `db:"preparation" json:"preparation"`
	Statistics       string `db:"statistics" json:"statistics"`
}

// ServiceFilter selects services. ID takes precedence over SearchName.
type ServiceFilter struct {
	ID         *int
	SearchName *string
}

// Area is a medical area a doctor can be responsible for.
type Area struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
