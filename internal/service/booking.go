package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/Praful-John2409/BookTable/internal/metrics"
	"github.com/Praful-John2409/BookTable/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// BookingService is the booking lifecycle manager: it validates a request,
// hands the atomic table allocation to the repository, and drives the
// None -> Active -> Cancelled state machine.
type BookingService struct {
	bookingRepo    ports.BookingRepo
	restaurantRepo ports.RestaurantRepo
	notifier       ports.BookingNotifier
	logger         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	restaurantRepo ports.RestaurantRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.PartySize <= 0 {
		return nil, fmt.Errorf("%w: party_size must be positive", domain.ErrValidation)
	}
	if !input.BookingTime.After(time.Now()) {
		return nil, fmt.Errorf("%w: booking_time must be in the future", domain.ErrValidation)
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("check restaurant: %w", err)
	}

	if !domain.IsTimeAllowed(restaurant.AvailableTimes, input.BookingTime) {
		return nil, fmt.Errorf("%w: choose a time within 30 minutes of: %s",
			domain.ErrSlotNotAllowed, strings.Join(restaurant.AvailableTimes, ", "))
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		RestaurantID:    input.RestaurantID,
		PartySize:       input.PartySize,
		BookingTime:     input.BookingTime,
		Status:          domain.BookingStatusActive,
		BookerEmail:     input.Booker.Email,
		BookerName:      input.Booker.Name,
		BookerPhone:     input.Booker.Phone,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.bookingRepo.Reserve(ctx, booking, input.TableIDs); err != nil {
		if errors.Is(err, domain.ErrNoAvailableTables) || errors.Is(err, domain.ErrTableUnavailable) {
			metrics.IncBookingConflict()
		}
		return nil, fmt.Errorf("reserve tables: %w", err)
	}

	metrics.IncBookingCreated()
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("restaurant_id", booking.RestaurantID),
		logger.Int("party_size", booking.PartySize),
		logger.Int("tables", len(booking.TableIDs)),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, restaurant)

	return booking, nil
}

// Cancel releases the booking's tables and marks it cancelled. Only the
// booker may cancel; a booking owned by someone else is reported as not
// found, matching the lookup scope the caller is allowed to see.
// Cancelling an already-cancelled booking succeeds without side effects.
func (s *BookingService) Cancel(ctx context.Context, bookingID, requesterEmail string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.BookerEmail != requesterEmail {
		return domain.ErrBookingNotFound
	}

	if booking.Status == domain.BookingStatusCancelled {
		return nil
	}

	if err = s.bookingRepo.Release(ctx, bookingID); err != nil {
		return fmt.Errorf("release booking: %w", err)
	}

	metrics.IncBookingCancelled()
	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("restaurant_id", booking.RestaurantID),
	)

	restaurant, err := s.restaurantRepo.GetByID(ctx, booking.RestaurantID)
	if err != nil {
		s.logger.Error("failed to get restaurant for cancel notification",
			logger.String("restaurant_id", booking.RestaurantID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, restaurant)

	return nil
}

func (s *BookingService) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByEmail(ctx, email)
}

func (s *BookingService) ListActiveByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Booking, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("check restaurant: %w", err)
	}
	return s.bookingRepo.ListActiveByRestaurant(ctx, restaurantID)
}

// SendDueReminders flags and notifies bookings starting within lead.
func (s *BookingService) SendDueReminders(ctx context.Context, lead time.Duration) ([]*domain.Booking, error) {
	due, err := s.bookingRepo.ClaimDueReminders(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("claim reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("booking reminders due",
			logger.Int("count", len(due)),
		)

		go s.notifyReminders(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *BookingService) notifyReminders(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		restaurant, err := s.restaurantRepo.GetByID(ctx, b.RestaurantID)
		if err != nil {
			s.logger.Error("failed to get restaurant for reminder",
				logger.String("restaurant_id", b.RestaurantID),
			)
			continue
		}

		s.notifier.NotifyBookingReminder(ctx, b, restaurant)
	}
}
