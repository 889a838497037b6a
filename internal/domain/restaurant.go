package domain

import "time"

type CostRating string

const (
	CostCheap     CostRating = "CHEAP"
	CostRegular   CostRating = "REGULAR"
	CostExpensive CostRating = "EXPENSIVE"
)

type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	CuisineType string     `json:"cuisine_type"`
	CostRating  CostRating `json:"cost_rating"`
	Description string     `json:"description"`

	// AvailableTimes are the canonical "HH:MM" reservation slots. A booking
	// request is accepted if it lands within SlotTolerance of one of them.
	AvailableTimes []string `json:"available_times"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableSize is one entry of the informational capacity catalog
// (e.g. "3 tables of 4"), derived from the physical table set.
type TableSize struct {
	Size  int `json:"size"`
	Count int `json:"count"`
}

type RestaurantDetails struct {
	Restaurant Restaurant  `json:"restaurant"`
	Tables     []Table     `json:"tables"`
	TableSizes []TableSize `json:"table_sizes"`
}

type CreateRestaurantInput struct {
	Name           string
	Address        string
	CuisineType    string
	CostRating     CostRating
	Description    string
	AvailableTimes []string
	TableSeats     []int
}
