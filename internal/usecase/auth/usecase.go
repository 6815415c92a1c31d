package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Hasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hash string) bool
}

type TokenIssuer interface {
	Issue(u *user.User) (string, time.Time, error)
}

type Usecase struct {
	users  user.Repository
	hasher Hasher
	tokens TokenIssuer
	log    *zap.Logger
	now    func() time.Time
}

func NewUsecase(users user.Repository, h Hasher, tokens TokenIssuer, log *zap.Logger) *Usecase {
	return &Usecase{
		users:  users,
		hasher: h,
		tokens: tokens,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a pending customer with no credits. No token is issued
// until an admin approves the account.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	if len(in.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}
	_, err := u.users.GetByPhone(ctx, in.Phone)
	if err == nil {
		return nil, user.ErrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, uow.Transient(err)
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	usr := &user.User{
		Phone:          in.Phone,
		Name:           strings.TrimSpace(in.Name),
		Email:          in.Email,
		PasswordHash:   hash,
		Role:           user.RoleCustomer,
		ApprovalStatus: user.ApprovalPending,
		Credits:        decimal.Zero,
		IsActive:       true,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrPhoneTaken
		}
		return nil, uow.Transient(err)
	}
	u.log.Info("user registered", zap.Uint64("user_id", usr.ID))
	dto := ToUserDTO(usr)
	return &dto, nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*SessionDTO, error) {
	usr, err := u.users.GetByPhone(ctx, in.Phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, uow.Transient(err)
	}
	if !usr.IsActive || !u.hasher.Verify(in.Password, usr.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}
	if !usr.IsApproved() {
		return nil, user.ErrNotApproved
	}

	now := u.now()
	usr.LastLoginAt = &now
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, uow.Transient(err)
	}

	token, exp, err := u.tokens.Issue(usr)
	if err != nil {
		return nil, err
	}
	return &SessionDTO{Token: token, ExpiresAt: exp, User: ToUserDTO(usr)}, nil
}

func (u *Usecase) Me(ctx context.Context, userID uint64) (*UserDTO, error) {
	usr, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := ToUserDTO(usr)
	return &dto, nil
}

func (u *Usecase) AcceptTerms(ctx context.Context, userID uint64) (*UserDTO, error) {
	usr, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !usr.TermsAccepted {
		now := u.now()
		usr.TermsAccepted = true
		usr.TermsAcceptedAt = &now
		if err := u.users.Save(ctx, usr); err != nil {
			return nil, uow.Transient(err)
		}
	}
	dto := ToUserDTO(usr)
	return &dto, nil
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID uint64, in ProfileInput) (*UserDTO, error) {
	if in.Name == nil && in.Email == nil && in.CPF == nil {
		return nil, ErrNothingToUpdate
	}
	usr, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		usr.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		usr.Email = in.Email
	}
	if in.CPF != nil {
		usr.CPF = in.CPF
	}
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, uow.Transient(err)
	}
	dto := ToUserDTO(usr)
	return &dto, nil
}

func (u *Usecase) ChangePassword(ctx context.Context, userID uint64, in ChangePasswordInput) error {
	if len(in.New) < minPasswordLen {
		return ErrWeakPassword
	}
	usr, err := u.load(ctx, userID)
	if err != nil {
		return err
	}
	if !u.hasher.Verify(in.Current, usr.PasswordHash) {
		return user.ErrInvalidCredentials
	}
	hash, err := u.hasher.Hash(in.New)
	if err != nil {
		return err
	}
	usr.PasswordHash = hash
	if err := u.users.Save(ctx, usr); err != nil {
		return uow.Transient(err)
	}
	return nil
}

// DeleteAccount is a soft delete; the ledger history stays intact.
func (u *Usecase) DeleteAccount(ctx context.Context, userID uint64) error {
	usr, err := u.load(ctx, userID)
	if err != nil {
		return err
	}
	usr.IsActive = false
	if err := u.users.Save(ctx, usr); err != nil {
		return uow.Transient(err)
	}
	u.log.Info("account deactivated", zap.Uint64("user_id", userID))
	return nil
}

func (u *Usecase) load(ctx context.Context, userID uint64) (*user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, uow.Transient(err)
	}
	return usr, nil
}
