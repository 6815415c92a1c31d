package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"autogiro-backend/internal/domain/proposal"

	"gorm.io/gorm"
)

func TestProposal_CreateAndGet(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewProposalRepository(gdb)
	ctx := context.Background()
	u := seedUser(t, gdb, "11922220000", "1")
	v := seedVehicle(t, gdb, "EXT-1", true, nil)

	p := makeProposal(u.ID, v)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByProposalID(ctx, p.ProposalID)
	if err != nil {
		t.Fatalf("GetByProposalID: %v", err)
	}
	if got.Status != proposal.StatusPending || !got.CreditsUsed.Equal(proposal.CreditsPerProposal) {
		t.Fatalf("unexpected proposal: %+v", got)
	}
	if snap := got.VehicleInfo.Data(); snap.Title != v.Title || snap.Year != 2019 {
		t.Fatalf("vehicle snapshot not persisted: %+v", snap)
	}

	locked, err := repo.GetByProposalIDForUpdate(ctx, p.ProposalID)
	if err != nil || locked.ID != p.ID {
		t.Fatalf("GetByProposalIDForUpdate = %+v, %v", locked, err)
	}

	if _, err := repo.GetByProposalID(ctx, "nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestProposal_SaveStatusAndFinalAmount(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewProposalRepository(gdb)
	ctx := context.Background()
	u := seedUser(t, gdb, "11922220001", "1")
	v := seedVehicle(t, gdb, "EXT-2", true, nil)

	p := makeProposal(u.ID, v)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	fa := dec("15000")
	p.Status = proposal.StatusWon
	p.FinalAmount = &fa
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ := repo.GetByProposalID(ctx, p.ProposalID)
	if got.Status != proposal.StatusWon || got.FinalAmount == nil || !got.FinalAmount.Equal(fa) {
		t.Fatalf("unexpected after save: %+v", got)
	}
}

func TestProposal_ListByUserNewestFirstAndFilter(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewProposalRepository(gdb)
	ctx := context.Background()
	u := seedUser(t, gdb, "11922220002", "5")
	other := seedUser(t, gdb, "11922220003", "5")
	v := seedVehicle(t, gdb, "EXT-3", true, nil)

	first := makeProposal(u.ID, v)
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	second := makeProposal(u.ID, v)
	second.Status = proposal.StatusRejected
	for _, p := range []*proposal.Proposal{first, second, makeProposal(other.ID, v)} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	mine, err := repo.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(mine) != 2 || mine[0].ProposalID != second.ProposalID {
		t.Fatalf("ListByUser order wrong: %+v", mine)
	}

	st := proposal.StatusPending
	rows, total, err := repo.List(ctx, proposal.ListFilter{Status: &st, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("pending rows=%d total=%d, want 2/2", len(rows), total)
	}

	rows, total, _ = repo.List(ctx, proposal.ListFilter{UserID: &u.ID, Page: 2, Limit: 1})
	if total != 2 || len(rows) != 1 || rows[0].ProposalID != first.ProposalID {
		t.Fatalf("paged rows=%+v total=%d", rows, total)
	}
}
