package scheduler

import (
	"context"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendDueReminders(ctx context.Context, lead time.Duration) ([]*domain.Booking, error)
}

// Scheduler periodically flags bookings that start soon and triggers their
// reminder notifications.
type Scheduler struct {
	bookingService reminderSender
	interval       time.Duration
	lead           time.Duration
	logger         logger.Logger
}

func New(
	bookingService reminderSender,
	interval time.Duration,
	lead time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		lead:           lead,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("reminder_lead", s.lead),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	due, err := s.bookingService.SendDueReminders(ctx, s.lead)
	if err != nil {
		s.logger.Error("failed to send booking reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range due {
		s.logger.Info("booking reminder sent",
			logger.String("booking_id", b.ID),
			logger.String("restaurant_id", b.RestaurantID),
			logger.String("booker_email", b.BookerEmail),
		)
	}
}
