package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RestaurantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRestaurantRepo(db *dbpg.DB) *RestaurantRepository {
	return &RestaurantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *domain.Restaurant) error {
	query := `INSERT INTO restaurants
			(id, name, address, cuisine_type, cost_rating, description, available_times, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rest.ID, rest.Name, rest.Address, rest.CuisineType, rest.CostRating,
		rest.Description, pq.Array(rest.AvailableTimes), rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}

	return nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	query := `SELECT id, name, address, cuisine_type, cost_rating, description, available_times, created_at, updated_at
			  FROM restaurants
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}

	var rest domain.Restaurant
	if err = row.Scan(
		&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &rest.CostRating,
		&rest.Description, pq.Array(&rest.AvailableTimes), &rest.CreatedAt, &rest.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("scan restaurant: %w", err)
	}

	return &rest, nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	query := `SELECT id, name, address, cuisine_type, cost_rating, description, available_times, created_at, updated_at
			  FROM restaurants
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var res []*domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err = rows.Scan(
			&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &rest.CostRating,
			&rest.Description, pq.Array(&rest.AvailableTimes), &rest.CreatedAt, &rest.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		res = append(res, &rest)
	}

	return res, rows.Err()
}
