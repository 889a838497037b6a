package ports

import (
	"context"

	"github.com/Praful-John2409/BookTable/internal/domain"
)

// BookingNotifier delivers booking emails. Failures are logged by the
// implementation and never propagate into the booking operation.
type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, r *domain.Restaurant)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, r *domain.Restaurant)
	NotifyBookingReminder(ctx context.Context, b *domain.Booking, r *domain.Restaurant)
}
