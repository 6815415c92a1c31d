package vehicle

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	// Ordered by event_date desc (nulls last), then created_at desc
	ListActive(ctx context.Context, page, limit int) ([]Vehicle, error)
	CountActive(ctx context.Context) (int64, error)
	// Includes inactive rows
	GetByExternalID(ctx context.Context, externalID string) (*Vehicle, error)
	GetActiveByExternalID(ctx context.Context, externalID string) (*Vehicle, error)
	GetActiveByID(ctx context.Context, id uint64) (*Vehicle, error)
	// Sets has_winning_proposal and clears is_active in one statement
	MarkWon(ctx context.Context, id uint64) error
	// Deactivates unsold vehicles whose batch date is before today; returns them
	DeactivateExpired(ctx context.Context, today time.Time) ([]Vehicle, error)
}
