package models

// User is an account holder. Email is unique and compared exactly as stored.
type User struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"Admin User"`
	Email        string `json:"email" example:"admin@example.com"`
	PasswordHash string `json:"-"`
}
