package model

import "time"

// Store is the install state of the app on a shop
type Store struct {
	Shop        string    `db:"shop"`
	AccessToken string    `db:"access_token"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// NullStore ...
type NullStore struct {
	Valid bool
	Store Store
}
