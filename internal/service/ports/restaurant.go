package ports

import (
	"context"

	"github.com/Praful-John2409/BookTable/internal/domain"
)

type RestaurantRepo interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)
}

type TableRepo interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Table, error)
	ReplaceForRestaurant(ctx context.Context, restaurantID string, seats []int) ([]domain.Table, error)
}
