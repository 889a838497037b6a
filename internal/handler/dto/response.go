package dto

import (
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
)

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RestaurantResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	CuisineType    string   `json:"cuisine_type"`
	CostRating     string   `json:"cost_rating"`
	Description    string   `json:"description"`
	AvailableTimes []string `json:"available_times"`
	CreatedAt      string   `json:"created_at"`
}

type TableResponse struct {
	ID    string `json:"id"`
	Seats int    `json:"seats"`
}

type TableSizeResponse struct {
	Size  int `json:"size"`
	Count int `json:"count"`
}

type RestaurantDetailsResponse struct {
	Restaurant RestaurantResponse  `json:"restaurant"`
	Tables     []TableResponse     `json:"tables"`
	TableSizes []TableSizeResponse `json:"table_sizes"`
}

type AvailabilityResponse struct {
	Available bool            `json:"available"`
	Tables    []TableResponse `json:"tables"`
}

type BookingResponse struct {
	ID              string   `json:"id"`
	RestaurantID    string   `json:"restaurant_id"`
	PartySize       int      `json:"party_size"`
	BookingTime     string   `json:"booking_time"`
	Status          string   `json:"status"`
	TableIDs        []string `json:"table_ids"`
	SpecialRequests string   `json:"special_requests,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		City:      u.City,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToRestaurantResponse(r *domain.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:             r.ID,
		Name:           r.Name,
		Address:        r.Address,
		CuisineType:    r.CuisineType,
		CostRating:     string(r.CostRating),
		Description:    r.Description,
		AvailableTimes: r.AvailableTimes,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToTableResponse(t domain.Table) TableResponse {
	return TableResponse{ID: t.ID, Seats: t.Seats}
}

func ToTablesResponse(tables []domain.Table) []TableResponse {
	resp := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		resp = append(resp, ToTableResponse(t))
	}
	return resp
}

func ToRestaurantDetailsResponse(d *domain.RestaurantDetails) RestaurantDetailsResponse {
	sizes := make([]TableSizeResponse, 0, len(d.TableSizes))
	for _, s := range d.TableSizes {
		sizes = append(sizes, TableSizeResponse{Size: s.Size, Count: s.Count})
	}

	return RestaurantDetailsResponse{
		Restaurant: ToRestaurantResponse(&d.Restaurant),
		Tables:     ToTablesResponse(d.Tables),
		TableSizes: sizes,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	tableIDs := b.TableIDs
	if tableIDs == nil {
		tableIDs = []string{}
	}

	return BookingResponse{
		ID:              b.ID,
		RestaurantID:    b.RestaurantID,
		PartySize:       b.PartySize,
		BookingTime:     b.BookingTime.Format(time.RFC3339),
		Status:          string(b.Status),
		TableIDs:        tableIDs,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
