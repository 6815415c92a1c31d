package sqlstore

import (
	"context"

	deviceDomain "autogiro-backend/internal/domain/device"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeviceRepository struct{ db *gorm.DB }

func NewDeviceRepository(db *gorm.DB) *DeviceRepository { return &DeviceRepository{db: db} }

func (r *DeviceRepository) Upsert(ctx context.Context, t *deviceDomain.DeviceToken) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fcm_token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "updated_at"}),
	}).Create(t).Error
}

func (r *DeviceRepository) Delete(ctx context.Context, userID uint64, token string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND fcm_token = ?", userID, token).Delete(&deviceDomain.DeviceToken{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DeviceRepository) ListTokensByUser(ctx context.Context, userID uint64) ([]string, error) {
	var out []string
	res := r.db.WithContext(ctx).Model(&deviceDomain.DeviceToken{}).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Pluck("fcm_token", &out)
	return out, res.Error
}
