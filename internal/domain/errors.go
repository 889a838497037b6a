package domain

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUserNotFound       = errors.New("user not found")
)

var (
	ErrNoAvailableTables = errors.New("no available tables at requested time")
	ErrTableUnavailable  = errors.New("requested tables are not available")
	ErrSlotNotAllowed    = errors.New("time not allowed")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

var (
	ErrValidation = errors.New("validation error")
)
