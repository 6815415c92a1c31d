package sqlstore

import (
	"context"

	userDomain "autogiro-backend/internal/domain/user"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND is_active = ?", id, true).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) LockBalance(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("phone = ?", phone).First(&out)
	return &out, res.Error
}

func (r *UserRepository) ListByApprovalStatus(ctx context.Context, s userDomain.ApprovalStatus) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("approval_status = ? AND is_active = ?", s, true).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *UserRepository) UpdateCredits(ctx context.Context, id uint64, credits decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).Where("id = ?", id).Update("credits", credits)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
