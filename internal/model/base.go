package model

// Pagination is an offset/limit window.
type Pagination struct {
	Start int `json:"start" form:"start"`
	Limit int `json:"limit" form:"limit"`
}
