package models

// Customer belongs to exactly one user. Names are not unique.
type Customer struct {
	ID     int64  `json:"id" example:"3"`
	UserID int64  `json:"user_id" example:"1"`
	Name   string `json:"name" example:"Acme"`
}
