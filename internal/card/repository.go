package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles all card database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert creates a new card row and returns the stored record, including the
// server-assigned id and creation timestamp.
func (r *Repository) Insert(ctx context.Context, prompt, imageURL, category string) (*Card, error) {
	c := &Card{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO cards (prompt, image_url, category)
		 VALUES ($1, $2, $3)
		 RETURNING id, image_url, prompt, category, created_at`,
		prompt, imageURL, category,
	).Scan(&c.ID, &c.ImageURL, &c.Prompt, &c.Category, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert card: %w", err)
	}
	return c, nil
}

// DeleteReturning removes the card row with the given id and returns the
// deleted record. A nil card with nil error means the statement matched
// nothing — the caller decides what that silence implies.
func (r *Repository) DeleteReturning(ctx context.Context, id string) (*Card, error) {
	c := &Card{}
	err := r.db.QueryRow(ctx,
		`DELETE FROM cards WHERE id = $1
		 RETURNING id, image_url, prompt, category, created_at`,
		id,
	).Scan(&c.ID, &c.ImageURL, &c.Prompt, &c.Category, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete card: %w", err)
	}
	return c, nil
}

// ListNewestFirst returns every card ordered by creation time, descending.
func (r *Repository) ListNewestFirst(ctx context.Context) ([]Card, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, image_url, prompt, category, created_at
		 FROM cards
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.ImageURL, &c.Prompt, &c.Category, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return cards, nil
}

// BackfillCategory assigns category to every card whose category is empty.
// One-time maintenance path, reached only from the operator CLI.
func (r *Repository) BackfillCategory(ctx context.Context, category string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE cards SET category = $1 WHERE category = ''`,
		category,
	)
	if err != nil {
		return 0, fmt.Errorf("backfill category: %w", err)
	}
	return tag.RowsAffected(), nil
}
