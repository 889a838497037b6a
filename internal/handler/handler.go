package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/Praful-John2409/BookTable/internal/handler/dto"
	"github.com/Praful-John2409/BookTable/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type RestaurantSvc interface {
	Create(ctx context.Context, input domain.CreateRestaurantInput) (*domain.Restaurant, error)
	GetDetails(ctx context.Context, id string) (*domain.RestaurantDetails, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)
	ReplaceTables(ctx context.Context, restaurantID string, seats []int) ([]domain.Table, error)
}

type AvailabilitySvc interface {
	Resolve(ctx context.Context, restaurantID string, at time.Time, partySize int) ([]domain.Table, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, requesterEmail string) error
	ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	ListActiveByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Booking, error)
}

type Handler struct {
	authService         AuthSvc
	restaurantService   RestaurantSvc
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
}

func NewHandler(
	authService AuthSvc,
	restaurantService RestaurantSvc,
	availabilityService AvailabilitySvc,
	bookingService BookingSvc,
) *Handler {
	return &Handler{
		authService:         authService,
		restaurantService:   restaurantService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		City:      req.City,
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Restaurants

func (h *Handler) CreateRestaurant(c *ginext.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateRestaurantInput{
		Name:           req.Name,
		Address:        req.Address,
		CuisineType:    req.CuisineType,
		CostRating:     domain.CostRating(req.CostRating),
		Description:    req.Description,
		AvailableTimes: req.AvailableTimes,
		TableSeats:     req.TableSeats,
	}

	restaurant, err := h.restaurantService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRestaurantResponse(restaurant))
}

func (h *Handler) GetRestaurant(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid restaurant id"})
		return
	}

	details, err := h.restaurantService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRestaurantDetailsResponse(details))
}

func (h *Handler) ListRestaurants(c *ginext.Context) {
	restaurants, err := h.restaurantService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		resp = append(resp, dto.ToRestaurantResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ReplaceTables(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid restaurant id"})
		return
	}

	var req dto.ReplaceTablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tables, err := h.restaurantService.ReplaceTables(c.Request.Context(), id, req.TableSeats)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTablesResponse(tables))
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid restaurant id"})
		return
	}

	at, err := time.Parse(time.RFC3339, c.Query("time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid time, expected RFC3339",
		})
		return
	}

	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid party_size"})
		return
	}

	tables, err := h.availabilityService.Resolve(c.Request.Context(), id, at, partySize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		Available: len(tables) > 0,
		Tables:    dto.ToTablesResponse(tables),
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingTime, err := time.Parse(time.RFC3339, req.BookingTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid booking_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		RestaurantID:    req.RestaurantID,
		PartySize:       req.PartySize,
		BookingTime:     bookingTime,
		SpecialRequests: req.SpecialRequests,
		TableIDs:        req.TableIDs,
		Booker: domain.Booker{
			Email: user.Email,
			Name:  user.FirstName + " " + user.LastName,
			Phone: user.Phone,
		},
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	bookings, err := h.bookingService.ListByEmail(c.Request.Context(), user.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id, user.Email); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ListRestaurantBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid restaurant id"})
		return
	}

	bookings, err := h.bookingService.ListActiveByRestaurant(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableTables),
		errors.Is(err, domain.ErrTableUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSlotNotAllowed),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
