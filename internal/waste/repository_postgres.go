package waste

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, to_char(date, 'YYYY-MM-DD'), source, food_type, quantity, disposal_method, meal_period, notes
		FROM waste_entries
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.Date, &e.Source, &e.FoodType,
			&e.Quantity, &e.DisposalMethod, &e.MealPeriod, &e.Notes,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) Append(ctx context.Context, entry Entry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO waste_entries
			(id, date, source, food_type, quantity, disposal_method, meal_period, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		entry.ID, entry.Date, entry.Source, entry.FoodType,
		entry.Quantity, entry.DisposalMethod, entry.MealPeriod, entry.Notes,
	)
	return err
}
