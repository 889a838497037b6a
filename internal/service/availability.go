package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/Praful-John2409/BookTable/internal/service/ports"
)

// AvailabilityService answers "which tables could seat this party at this
// time". The answer is advisory: only the reserve transaction inside the
// booking repository is authoritative.
type AvailabilityService struct {
	restaurantRepo ports.RestaurantRepo
	tableRepo      ports.TableRepo
	bookingRepo    ports.BookingRepo
}

func NewAvailabilityService(
	restaurantRepo ports.RestaurantRepo,
	tableRepo ports.TableRepo,
	bookingRepo ports.BookingRepo,
) *AvailabilityService {
	return &AvailabilityService{
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		bookingRepo:    bookingRepo,
	}
}

// Resolve returns the conflict-free tables with enough seats, smallest
// first. An empty slice means no availability.
func (s *AvailabilityService) Resolve(ctx context.Context, restaurantID string, at time.Time, partySize int) ([]domain.Table, error) {
	if partySize <= 0 {
		return nil, fmt.Errorf("%w: party_size must be positive", domain.ErrValidation)
	}

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("check restaurant: %w", err)
	}

	from, to := domain.ConflictWindow(at)
	occupiedIDs, err := s.bookingRepo.OccupiedTables(ctx, restaurantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("occupied tables: %w", err)
	}
	occupied := make(map[string]struct{}, len(occupiedIDs))
	for _, id := range occupiedIDs {
		occupied[id] = struct{}{}
	}

	tables, err := s.tableRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	return domain.FitTables(domain.FreeTables(tables, occupied), partySize), nil
}
