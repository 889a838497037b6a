package ports

import (
	"context"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
)

// BookingRepo is the allocation coordinator boundary. Reserve and Release
// are the only writers of assignment rows; both are atomic per call.
type BookingRepo interface {
	Reserve(ctx context.Context, b *domain.Booking, preferredTableIDs []string) error
	Release(ctx context.Context, bookingID string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	ListActiveByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Booking, error)
	OccupiedTables(ctx context.Context, restaurantID string, from, to time.Time) ([]string, error)
	ClaimDueReminders(ctx context.Context, lead time.Duration) ([]*domain.Booking, error)
}
