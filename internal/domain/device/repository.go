package device

import "context"

type Repository interface {
	// Insert or move an existing token to this user
	Upsert(ctx context.Context, t *DeviceToken) error
	Delete(ctx context.Context, userID uint64, token string) error
	ListTokensByUser(ctx context.Context, userID uint64) ([]string, error)
}
