package order

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Orders are written once and read back whole, so the lines and
// quote live in a single JSONB payload.
func (r *PostgresRepository) Save(ctx context.Context, order *Order) error {
	doc, err := json.Marshal(map[string]interface{}{
		"lines": order.Lines,
		"quote": order.Quote,
	})
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, order_number, user_id, pickup_time, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, order.ID, order.OrderNumber, order.UserID, order.PickupTime, doc, order.CreatedAt)
	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_number, user_id, pickup_time, payload, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		var doc []byte
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.PickupTime, &doc, &o.CreatedAt); err != nil {
			return nil, err
		}
		var body struct {
			Lines []Line           `json:"lines"`
			Quote *json.RawMessage `json:"quote"`
		}
		if err := json.Unmarshal(doc, &body); err != nil {
			return nil, err
		}
		o.Lines = body.Lines
		if body.Quote != nil {
			if err := json.Unmarshal(*body.Quote, &o.Quote); err != nil {
				return nil, err
			}
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
