package dto

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateRestaurantRequest struct {
	Name           string   `json:"name" binding:"required"`
	Address        string   `json:"address" binding:"required"`
	CuisineType    string   `json:"cuisine_type"`
	CostRating     string   `json:"cost_rating"`
	Description    string   `json:"description"`
	AvailableTimes []string `json:"available_times" binding:"required"`
	TableSeats     []int    `json:"table_seats"`
}

type ReplaceTablesRequest struct {
	TableSeats []int `json:"table_seats" binding:"required"`
}

type CreateBookingRequest struct {
	RestaurantID    string   `json:"restaurant_id" binding:"required,uuid"`
	PartySize       int      `json:"party_size" binding:"required,gt=0"`
	BookingTime     string   `json:"booking_time" binding:"required"`
	SpecialRequests string   `json:"special_requests"`
	TableIDs        []string `json:"table_ids"`
}
