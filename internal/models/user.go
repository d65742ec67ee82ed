package models

import "time"

// User captures application-facing fields for a registered account.
type User struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	CreatedAt    time.Time     `json:"createdAt"`
	SavedNumbers *SavedNumbers `json:"savedNumbers"`
}

// SavedNumbers is the single list of numbers a user keeps between sessions.
type SavedNumbers struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Numbers   []string  `json:"numbers"`
	UpdatedAt time.Time `json:"updatedAt"`
}
