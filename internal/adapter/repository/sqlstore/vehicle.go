package sqlstore

import (
	"context"
	"time"

	vehicleDomain "autogiro-backend/internal/domain/vehicle"

	"gorm.io/gorm"
)

type VehicleRepository struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) *VehicleRepository { return &VehicleRepository{db: db} }

func (r *VehicleRepository) Create(ctx context.Context, v *vehicleDomain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VehicleRepository) ListActive(ctx context.Context, page, limit int) ([]vehicleDomain.Vehicle, error) {
	var out []vehicleDomain.Vehicle
	// portable "event_date DESC NULLS LAST"
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("CASE WHEN event_date IS NULL THEN 1 ELSE 0 END, event_date DESC, created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *VehicleRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&vehicleDomain.Vehicle{}).Where("is_active = ?", true).Count(&n)
	return n, res.Error
}

func (r *VehicleRepository) GetByExternalID(ctx context.Context, externalID string) (*vehicleDomain.Vehicle, error) {
	var out vehicleDomain.Vehicle
	res := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&out)
	return &out, res.Error
}

func (r *VehicleRepository) GetActiveByExternalID(ctx context.Context, externalID string) (*vehicleDomain.Vehicle, error) {
	var out vehicleDomain.Vehicle
	res := r.db.WithContext(ctx).Where("external_id = ? AND is_active = ?", externalID, true).First(&out)
	return &out, res.Error
}

func (r *VehicleRepository) GetActiveByID(ctx context.Context, id uint64) (*vehicleDomain.Vehicle, error) {
	var out vehicleDomain.Vehicle
	res := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&out)
	return &out, res.Error
}

func (r *VehicleRepository) MarkWon(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&vehicleDomain.Vehicle{}).
		Where("id = ?", id).
		Updates(map[string]any{"has_winning_proposal": true, "is_active": false}).Error
}

func (r *VehicleRepository) DeactivateExpired(ctx context.Context, today time.Time) ([]vehicleDomain.Vehicle, error) {
	var out []vehicleDomain.Vehicle
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("is_active = ? AND has_winning_proposal = ? AND batch_date < ?", true, false, today).
			Find(&out).Error; err != nil {
			return err
		}
		if len(out) == 0 {
			return nil
		}
		ids := make([]uint64, 0, len(out))
		for _, v := range out {
			ids = append(ids, v.ID)
		}
		now := time.Now().UTC()
		if err := tx.Model(&vehicleDomain.Vehicle{}).
			Where("id IN ? AND is_active = ? AND has_winning_proposal = ?", ids, true, false).
			Updates(map[string]any{"is_active": false, "deactivated_at": now}).Error; err != nil {
			return err
		}
		for i := range out {
			out[i].IsActive = false
			out[i].DeactivatedAt = &now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
