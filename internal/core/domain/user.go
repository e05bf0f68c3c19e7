package domain

import (
	"time"
)

// User is the persisted user record. ID is assigned by storage and never changes.
type User struct {
	ID          int64
	FirstName   string
	LastName    string
	BirthDate   time.Time
	Email       string
	Address     string
	PhoneNumber string
}

// UserView is the transfer shape used at the service boundary. It carries no ID.
type UserView struct {
	FirstName   string
	LastName    string
	BirthDate   time.Time
	Email       string
	Address     string
	PhoneNumber string
}

// PaginatedUsers is one page of users plus the totals needed to walk the rest.
type PaginatedUsers struct {
	Users         []UserView
	PageNo        int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// NewUserFromView builds a record to be inserted; the ID is left for storage to assign.
func NewUserFromView(view UserView) *User {
	return &User{
		FirstName:   view.FirstName,
		LastName:    view.LastName,
		BirthDate:   view.BirthDate,
		Email:       view.Email,
		Address:     view.Address,
		PhoneNumber: view.PhoneNumber,
	}
}

// View drops the ID.
func (u *User) View() UserView {
	return UserView{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		BirthDate:   u.BirthDate,
		Email:       u.Email,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
	}
}

// Overwrite replaces every field except ID with the values from view.
func (u *User) Overwrite(view UserView) {
	u.FirstName = view.FirstName
	u.LastName = view.LastName
	u.BirthDate = view.BirthDate
	u.Email = view.Email
	u.Address = view.Address
	u.PhoneNumber = view.PhoneNumber
}

// Date truncates t to a calendar date in UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
