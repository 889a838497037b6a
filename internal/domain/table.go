package domain

import "time"

// Table is one physical table of a restaurant. Tables are created and
// destroyed only through restaurant-management flows; the booking engine
// treats the table set as a point-in-time snapshot per call.
type Table struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Seats        int       `json:"seats"`
	CreatedAt    time.Time `json:"created_at"`
}
