package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TableRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTableRepo(db *dbpg.DB) *TableRepository {
	return &TableRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TableRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	query := `SELECT id, restaurant_id, seats, created_at
			  FROM tables
			  WHERE restaurant_id = $1
			  ORDER BY seats, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var res []domain.Table
	for rows.Next() {
		var t domain.Table
		if err = rows.Scan(&t.ID, &t.RestaurantID, &t.Seats, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

// ReplaceForRestaurant swaps the restaurant's table distribution for a new
// one. Runs under the same restaurant row lock as Reserve so an in-flight
// allocation never sees a half-replaced table set.
func (r *TableRepository) ReplaceForRestaurant(ctx context.Context, restaurantID string, seats []int) ([]domain.Table, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var rid string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM restaurants WHERE id = $1 FOR UPDATE`, restaurantID).Scan(&rid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("lock restaurant: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tables WHERE restaurant_id = $1`, restaurantID); err != nil {
		return nil, fmt.Errorf("delete tables: %w", err)
	}

	now := time.Now().UTC()
	query := `INSERT INTO tables (id, restaurant_id, seats, created_at)
			  VALUES ($1, $2, $3, $4)`
	res := make([]domain.Table, 0, len(seats))
	for _, s := range seats {
		t := domain.Table{
			ID:           uuid.New().String(),
			RestaurantID: restaurantID,
			Seats:        s,
			CreatedAt:    now,
		}
		if _, err = tx.ExecContext(ctx, query, t.ID, t.RestaurantID, t.Seats, t.CreatedAt); err != nil {
			return nil, fmt.Errorf("insert table: %w", err)
		}
		res = append(res, t)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tables: %w", err)
	}
	return res, nil
}
