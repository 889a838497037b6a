package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/Praful-John2409/BookTable/internal/service/ports"
	"github.com/google/uuid"
)

type RestaurantService struct {
	repo      ports.RestaurantRepo
	tableRepo ports.TableRepo
}

func NewRestaurantService(repo ports.RestaurantRepo, tableRepo ports.TableRepo) *RestaurantService {
	return &RestaurantService{
		repo:      repo,
		tableRepo: tableRepo,
	}
}

func (s *RestaurantService) Create(ctx context.Context, input domain.CreateRestaurantInput) (*domain.Restaurant, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	if len(input.AvailableTimes) == 0 {
		return nil, fmt.Errorf("%w: available_times must not be empty", domain.ErrValidation)
	}
	for _, slot := range input.AvailableTimes {
		if _, err := domain.ParseSlot(slot); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
	}
	for _, seats := range input.TableSeats {
		if seats <= 0 {
			return nil, fmt.Errorf("%w: table seats must be positive", domain.ErrValidation)
		}
	}

	now := time.Now().UTC()
	restaurant := &domain.Restaurant{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Address:        input.Address,
		CuisineType:    input.CuisineType,
		CostRating:     input.CostRating,
		Description:    input.Description,
		AvailableTimes: input.AvailableTimes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	if len(input.TableSeats) > 0 {
		if _, err := s.tableRepo.ReplaceForRestaurant(ctx, restaurant.ID, input.TableSeats); err != nil {
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}

	return restaurant, nil
}

func (s *RestaurantService) GetDetails(ctx context.Context, id string) (*domain.RestaurantDetails, error) {
	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tables, err := s.tableRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	return &domain.RestaurantDetails{
		Restaurant: *restaurant,
		Tables:     tables,
		TableSizes: domain.SizeCatalog(tables),
	}, nil
}

func (s *RestaurantService) List(ctx context.Context) ([]*domain.Restaurant, error) {
	return s.repo.List(ctx)
}

// ReplaceTables swaps the restaurant's physical table distribution. Existing
// active bookings keep their assignments only for tables that survive.
func (s *RestaurantService) ReplaceTables(ctx context.Context, restaurantID string, seats []int) ([]domain.Table, error) {
	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: at least one table is required", domain.ErrValidation)
	}
	for _, n := range seats {
		if n <= 0 {
			return nil, fmt.Errorf("%w: table seats must be positive", domain.ErrValidation)
		}
	}

	tables, err := s.tableRepo.ReplaceForRestaurant(ctx, restaurantID, seats)
	if err != nil {
		return nil, fmt.Errorf("replace tables: %w", err)
	}
	return tables, nil
}
