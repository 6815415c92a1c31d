package uowmock

import (
	"context"
	"errors"
	"testing"

	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/testutil/usermock"
)

func TestUoW_Unimplemented(t *testing.T) {
	m := &UoW{}
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx err = %v", err)
	}
	if err := m.WithinUserTx(context.Background(), 1, func(uow.Repos, *user.User) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinUserTx err = %v", err)
	}
}

func TestPassthrough(t *testing.T) {
	users := &usermock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*user.User, error) {
			if id != 7 {
				return nil, errors.New("no rows")
			}
			return &user.User{ID: 7}, nil
		},
	}
	m := Passthrough(uow.Repos{Users: users})

	called := false
	if err := m.WithinTx(context.Background(), func(r uow.Repos) error {
		called = r.Users == users
		return nil
	}); err != nil || !called {
		t.Fatalf("WithinTx passthrough: called=%v err=%v", called, err)
	}

	var got *user.User
	if err := m.WithinUserTx(context.Background(), 7, func(r uow.Repos, u *user.User) error {
		got = u
		return nil
	}); err != nil || got == nil || got.ID != 7 {
		t.Fatalf("WithinUserTx passthrough: got=%+v err=%v", got, err)
	}

	if err := m.WithinUserTx(context.Background(), 8, func(uow.Repos, *user.User) error { return nil }); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("missing user err = %v", err)
	}
}
