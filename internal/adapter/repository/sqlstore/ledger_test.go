package sqlstore

import (
	"context"
	"testing"

	"autogiro-backend/internal/domain/ledger"
)

func TestLedger_AppendAndList(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewLedgerRepository(gdb)
	ctx := context.Background()
	u := seedUser(t, gdb, "11911110000", "0")

	bal := dec("0")
	for _, delta := range []string{"3", "-1", "1"} {
		e, err := ledger.NewEntry(ledger.EntryAdminAdjustment, u.ID, bal, dec(delta), nil, "adj")
		if err != nil {
			t.Fatalf("NewEntry: %v", err)
		}
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
		bal = e.BalanceAfter
	}
	other := seedUser(t, gdb, "11911110001", "0")
	e, _ := ledger.NewEntry(ledger.EntryAdminAdjustment, other.ID, dec("0"), dec("9"), nil, "adj")
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("Append other: %v", err)
	}

	all, err := repo.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("entries = %d, want 3", len(all))
	}
	if err := ledger.Verify(all); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ledger.Replay(all).Equal(dec("3")) {
		t.Fatalf("replay = %s, want 3", ledger.Replay(all))
	}

	page, total, err := repo.ListByUserPage(ctx, u.ID, 1, 2)
	if err != nil {
		t.Fatalf("ListByUserPage: %v", err)
	}
	if total != 3 || len(page) != 2 {
		t.Fatalf("page len=%d total=%d", len(page), total)
	}
	if page[0].ID < page[1].ID {
		t.Fatalf("page not newest first: %d, %d", page[0].ID, page[1].ID)
	}
}
