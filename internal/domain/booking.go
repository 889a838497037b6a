package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID           string        `json:"id"`
	RestaurantID string        `json:"restaurant_id"`
	PartySize    int           `json:"party_size"`
	BookingTime  time.Time     `json:"booking_time"`
	Status       BookingStatus `json:"status"`

	BookerEmail     string `json:"booker_email"`
	BookerName      string `json:"booker_name"`
	BookerPhone     string `json:"booker_phone"`
	SpecialRequests string `json:"special_requests,omitempty"`

	// TableIDs are the tables currently assigned to this booking. Empty for
	// cancelled bookings, exactly one entry on the default allocation path.
	TableIDs []string `json:"table_ids"`

	ReminderSent bool      `json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Booker is the requester identity attached to a booking, resolved by the
// auth layer. The booking engine treats it as opaque contact data.
type Booker struct {
	Email string
	Name  string
	Phone string
}

type CreateBookingInput struct {
	RestaurantID    string
	PartySize       int
	BookingTime     time.Time
	SpecialRequests string
	Booker          Booker

	// TableIDs requests specific tables instead of the smallest-fit pick.
	// Every requested table must be free for the conflict window and their
	// combined seats must cover the party.
	TableIDs []string
}
